package member

import (
	"context"

	"gymdesk/internal/access"
	"gymdesk/internal/apperr"
	"gymdesk/internal/db"
	"gymdesk/internal/metrics"
)

type Service interface {
	List(ctx context.Context, userID, gymID int) ([]Member, error)
	Create(ctx context.Context, userID, gymID int, req CreateMemberRequest) (*Member, error)
	Get(ctx context.Context, userID, id int) (*Member, error)
	Update(ctx context.Context, userID, id int, req UpdateMemberRequest) (*Member, error)
	Delete(ctx context.Context, userID, id int) error
}

type service struct {
	repo Repository
	gate access.Gate
}

func NewService(repo Repository, gate access.Gate) Service {
	return &service{repo: repo, gate: gate}
}

func (s *service) List(ctx context.Context, userID, gymID int) ([]Member, error) {
	if err := s.gate.Authorize(ctx, userID, access.KindGym, gymID); err != nil {
		return nil, err
	}
	return s.repo.ListByGym(ctx, gymID)
}

func (s *service) Create(ctx context.Context, userID, gymID int, req CreateMemberRequest) (*Member, error) {
	if err := s.gate.Authorize(ctx, userID, access.KindGym, gymID); err != nil {
		return nil, err
	}

	m, err := s.repo.Create(ctx, gymID, req)
	if err != nil {
		return nil, err
	}

	metrics.RecordMemberCreated()
	return m, nil
}

func (s *service) Get(ctx context.Context, userID, id int) (*Member, error) {
	if err := s.gate.Authorize(ctx, userID, access.KindMember, id); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) Update(ctx context.Context, userID, id int, req UpdateMemberRequest) (*Member, error) {
	if err := s.gate.Authorize(ctx, userID, access.KindMember, id); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, req)
}

func (s *service) Delete(ctx context.Context, userID, id int) error {
	if err := s.gate.Authorize(ctx, userID, access.KindMember, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if db.IsForeignKeyViolation(err) {
			return apperr.Conflict("Member still has memberships or payments", err)
		}
		return err
	}
	return nil
}
