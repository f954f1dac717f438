package payment

import "context"

type Repository interface {
	Create(ctx context.Context, memberID int, p *Payment) (*Payment, error)
	GetByID(ctx context.Context, id int) (*Payment, error)
	ListByMember(ctx context.Context, memberID int) ([]Payment, error)
	ListByGym(ctx context.Context, gymID int) ([]Payment, error)
	ListRecentByGym(ctx context.Context, gymID, limit int) ([]Payment, error)
	Update(ctx context.Context, id int, req UpdatePaymentRequest) (*Payment, error)
	Delete(ctx context.Context, id int) error

	GetPayer(ctx context.Context, memberID int) (*Payer, error)
	MembershipBelongsTo(ctx context.Context, membershipID, memberID int) (bool, error)
}
