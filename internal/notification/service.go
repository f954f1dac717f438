package notification

import (
	"context"

	"gymdesk/internal/access"
	"gymdesk/internal/metrics"
)

type Service interface {
	List(ctx context.Context, userID, limit int) ([]Notification, error)
	Create(ctx context.Context, userID int, req CreateNotificationRequest) (*Notification, error)
	UnreadCount(ctx context.Context, userID int) (int, error)
	MarkRead(ctx context.Context, userID, id int) error
	MarkAllRead(ctx context.Context, userID int) error
	Delete(ctx context.Context, userID, id int) error

	// Notify creates a notification on behalf of the system rather than a request.
	Notify(ctx context.Context, userID int, notificationType, title, message string) error
}

type service struct {
	repo Repository
	gate access.Gate
}

func NewService(repo Repository, gate access.Gate) Service {
	return &service{repo: repo, gate: gate}
}

func (s *service) List(ctx context.Context, userID, limit int) ([]Notification, error) {
	return s.repo.ListByUser(ctx, userID, limit)
}

func (s *service) Create(ctx context.Context, userID int, req CreateNotificationRequest) (*Notification, error) {
	n, err := s.repo.Create(ctx, userID, req)
	if err != nil {
		return nil, err
	}
	metrics.RecordNotification(n.Type)
	return n, nil
}

func (s *service) UnreadCount(ctx context.Context, userID int) (int, error) {
	return s.repo.CountUnread(ctx, userID)
}

func (s *service) MarkRead(ctx context.Context, userID, id int) error {
	if err := s.gate.Authorize(ctx, userID, access.KindNotification, id); err != nil {
		return err
	}
	return s.repo.MarkRead(ctx, id)
}

func (s *service) MarkAllRead(ctx context.Context, userID int) error {
	_, err := s.repo.MarkAllRead(ctx, userID)
	return err
}

func (s *service) Delete(ctx context.Context, userID, id int) error {
	if err := s.gate.Authorize(ctx, userID, access.KindNotification, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *service) Notify(ctx context.Context, userID int, notificationType, title, message string) error {
	_, err := s.Create(ctx, userID, CreateNotificationRequest{Title: title, Message: message, Type: notificationType})
	return err
}
