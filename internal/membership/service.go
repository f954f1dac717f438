package membership

import (
	"context"
	"database/sql"
	"errors"

	"gymdesk/internal/access"
	"gymdesk/internal/apperr"
	"gymdesk/internal/db"
	"gymdesk/internal/metrics"
)

var (
	errPlanNotInGym   = apperr.Validation(apperr.Field("planId", "planId must reference a plan of the member's gym"))
	errEndBeforeStart = apperr.Validation(apperr.Field("endDate", "endDate must be after startDate"))
)

type Service interface {
	ListByGym(ctx context.Context, userID, gymID int) ([]Membership, error)
	ListByMember(ctx context.Context, userID, memberID int) ([]Membership, error)
	Create(ctx context.Context, userID, memberID int, req CreateMembershipRequest) (*Membership, error)
	Get(ctx context.Context, userID, id int) (*Membership, error)
	Update(ctx context.Context, userID, id int, req UpdateMembershipRequest) (*Membership, error)
	Delete(ctx context.Context, userID, id int) error
}

type service struct {
	repo Repository
	gate access.Gate
}

func NewService(repo Repository, gate access.Gate) Service {
	return &service{repo: repo, gate: gate}
}

func (s *service) ListByGym(ctx context.Context, userID, gymID int) ([]Membership, error) {
	if err := s.gate.Authorize(ctx, userID, access.KindGym, gymID); err != nil {
		return nil, err
	}
	return s.repo.ListByGym(ctx, gymID)
}

func (s *service) ListByMember(ctx context.Context, userID, memberID int) ([]Membership, error) {
	if err := s.gate.Authorize(ctx, userID, access.KindMember, memberID); err != nil {
		return nil, err
	}
	return s.repo.ListByMember(ctx, memberID)
}

func (s *service) planFor(ctx context.Context, memberID, planID int) (*PlanTerms, error) {
	p, err := s.repo.PlanForMember(ctx, memberID, planID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errPlanNotInGym
	}
	return p, err
}

func (s *service) Create(ctx context.Context, userID, memberID int, req CreateMembershipRequest) (*Membership, error) {
	if err := s.gate.Authorize(ctx, userID, access.KindMember, memberID); err != nil {
		return nil, err
	}

	p, err := s.planFor(ctx, memberID, req.PlanID)
	if err != nil {
		return nil, err
	}

	m := &Membership{
		PlanID:    req.PlanID,
		StartDate: req.StartDate,
		EndDate:   req.StartDate.AddDate(0, p.Duration, 0),
		Status:    StatusActive,
	}
	if req.EndDate != nil {
		m.EndDate = *req.EndDate
	}
	if req.Status != "" {
		m.Status = req.Status
	}
	if !m.EndDate.After(m.StartDate) {
		return nil, errEndBeforeStart
	}

	created, err := s.repo.Create(ctx, memberID, m)
	if err != nil {
		return nil, err
	}

	metrics.RecordMembership(created.Status)
	return created, nil
}

func (s *service) Get(ctx context.Context, userID, id int) (*Membership, error) {
	if err := s.gate.Authorize(ctx, userID, access.KindMembership, id); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

// Update validates the merged record, so moving only one of the dates still
// has to keep endDate after startDate.
func (s *service) Update(ctx context.Context, userID, id int, req UpdateMembershipRequest) (*Membership, error) {
	if err := s.gate.Authorize(ctx, userID, access.KindMembership, id); err != nil {
		return nil, err
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.PlanID != nil && *req.PlanID != current.PlanID {
		if _, err := s.planFor(ctx, current.MemberID, *req.PlanID); err != nil {
			return nil, err
		}
	}

	start, end := current.StartDate, current.EndDate
	if req.StartDate != nil {
		start = *req.StartDate
	}
	if req.EndDate != nil {
		end = *req.EndDate
	}
	if !end.After(start) {
		return nil, errEndBeforeStart
	}

	return s.repo.Update(ctx, id, req)
}

func (s *service) Delete(ctx context.Context, userID, id int) error {
	if err := s.gate.Authorize(ctx, userID, access.KindMembership, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if db.IsForeignKeyViolation(err) {
			return apperr.Conflict("Membership is still referenced", err)
		}
		return err
	}
	return nil
}
