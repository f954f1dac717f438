package plan

import (
	"context"

	"gymdesk/internal/access"
	"gymdesk/internal/apperr"
	"gymdesk/internal/db"
)

type Service interface {
	List(ctx context.Context, userID, gymID int) ([]Plan, error)
	Create(ctx context.Context, userID, gymID int, req CreatePlanRequest) (*Plan, error)
	Get(ctx context.Context, userID, id int) (*Plan, error)
	Update(ctx context.Context, userID, id int, req UpdatePlanRequest) (*Plan, error)
	Delete(ctx context.Context, userID, id int) error
}

type service struct {
	repo Repository
	gate access.Gate
}

func NewService(repo Repository, gate access.Gate) Service {
	return &service{repo: repo, gate: gate}
}

func (s *service) List(ctx context.Context, userID, gymID int) ([]Plan, error) {
	if err := s.gate.Authorize(ctx, userID, access.KindGym, gymID); err != nil {
		return nil, err
	}
	return s.repo.ListByGym(ctx, gymID)
}

func (s *service) Create(ctx context.Context, userID, gymID int, req CreatePlanRequest) (*Plan, error) {
	if err := s.gate.Authorize(ctx, userID, access.KindGym, gymID); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, gymID, req)
}

func (s *service) Get(ctx context.Context, userID, id int) (*Plan, error) {
	if err := s.gate.Authorize(ctx, userID, access.KindPlan, id); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) Update(ctx context.Context, userID, id int, req UpdatePlanRequest) (*Plan, error) {
	if err := s.gate.Authorize(ctx, userID, access.KindPlan, id); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, req)
}

func (s *service) Delete(ctx context.Context, userID, id int) error {
	if err := s.gate.Authorize(ctx, userID, access.KindPlan, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if db.IsForeignKeyViolation(err) {
			return apperr.Conflict("Plan is used by existing memberships", err)
		}
		return err
	}
	return nil
}
