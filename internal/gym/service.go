package gym

import (
	"context"

	"gymdesk/internal/access"
	"gymdesk/internal/apperr"
	"gymdesk/internal/db"
)

type Service interface {
	List(ctx context.Context, userID int) ([]Gym, error)
	Create(ctx context.Context, userID int, req CreateGymRequest) (*Gym, error)
	Get(ctx context.Context, userID, id int) (*Gym, error)
	Update(ctx context.Context, userID, id int, req UpdateGymRequest) (*Gym, error)
	Delete(ctx context.Context, userID, id int) error
}

type service struct {
	repo Repository
	gate access.Gate
}

func NewService(repo Repository, gate access.Gate) Service {
	return &service{
		repo: repo,
		gate: gate,
	}
}

func (s *service) List(ctx context.Context, userID int) ([]Gym, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *service) Create(ctx context.Context, userID int, req CreateGymRequest) (*Gym, error) {
	return s.repo.Create(ctx, userID, req)
}

func (s *service) Get(ctx context.Context, userID, id int) (*Gym, error) {
	if err := s.gate.Authorize(ctx, userID, access.KindGym, id); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) Update(ctx context.Context, userID, id int, req UpdateGymRequest) (*Gym, error) {
	if err := s.gate.Authorize(ctx, userID, access.KindGym, id); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, req)
}

func (s *service) Delete(ctx context.Context, userID, id int) error {
	if err := s.gate.Authorize(ctx, userID, access.KindGym, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if db.IsForeignKeyViolation(err) {
			return apperr.Conflict("Gym still has staff, plans or members", err)
		}
		return err
	}
	return nil
}
