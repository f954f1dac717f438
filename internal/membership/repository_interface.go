package membership

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, memberID int, m *Membership) (*Membership, error)
	GetByID(ctx context.Context, id int) (*Membership, error)
	ListByMember(ctx context.Context, memberID int) ([]Membership, error)
	ListByGym(ctx context.Context, gymID int) ([]Membership, error)
	Update(ctx context.Context, id int, req UpdateMembershipRequest) (*Membership, error)
	Delete(ctx context.Context, id int) error

	// PlanForMember returns the plan only when it belongs to the member's gym.
	PlanForMember(ctx context.Context, memberID, planID int) (*PlanTerms, error)

	ListExpiring(ctx context.Context, gymID int, from, to time.Time) ([]Membership, error)
	ListDueForReminder(ctx context.Context, from, to time.Time) ([]Expiring, error)
	MarkReminded(ctx context.Context, id int, at time.Time) error
	ExpireEnded(ctx context.Context, now time.Time) (int64, error)
}
