package staff

import (
	"context"

	"gymdesk/internal/access"
)

type Service interface {
	List(ctx context.Context, userID, gymID int) ([]Staff, error)
	Create(ctx context.Context, userID, gymID int, req CreateStaffRequest) (*Staff, error)
	Get(ctx context.Context, userID, id int) (*Staff, error)
	Update(ctx context.Context, userID, id int, req UpdateStaffRequest) (*Staff, error)
	Delete(ctx context.Context, userID, id int) error
}

type service struct {
	repo Repository
	gate access.Gate
}

func NewService(repo Repository, gate access.Gate) Service {
	return &service{repo: repo, gate: gate}
}

func (s *service) List(ctx context.Context, userID, gymID int) ([]Staff, error) {
	if err := s.gate.Authorize(ctx, userID, access.KindGym, gymID); err != nil {
		return nil, err
	}
	return s.repo.ListByGym(ctx, gymID)
}

func (s *service) Create(ctx context.Context, userID, gymID int, req CreateStaffRequest) (*Staff, error) {
	if err := s.gate.Authorize(ctx, userID, access.KindGym, gymID); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, gymID, req)
}

func (s *service) Get(ctx context.Context, userID, id int) (*Staff, error) {
	if err := s.gate.Authorize(ctx, userID, access.KindStaff, id); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) Update(ctx context.Context, userID, id int, req UpdateStaffRequest) (*Staff, error) {
	if err := s.gate.Authorize(ctx, userID, access.KindStaff, id); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, req)
}

func (s *service) Delete(ctx context.Context, userID, id int) error {
	if err := s.gate.Authorize(ctx, userID, access.KindStaff, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
