package notification

import "context"

type Repository interface {
	Create(ctx context.Context, userID int, req CreateNotificationRequest) (*Notification, error)
	GetByID(ctx context.Context, id int) (*Notification, error)
	ListByUser(ctx context.Context, userID, limit int) ([]Notification, error)
	CountUnread(ctx context.Context, userID int) (int, error)
	MarkRead(ctx context.Context, id int) error
	MarkAllRead(ctx context.Context, userID int) (int64, error)
	Delete(ctx context.Context, id int) error
}
