package member

import "context"

type Repository interface {
	Create(ctx context.Context, gymID int, req CreateMemberRequest) (*Member, error)
	GetByID(ctx context.Context, id int) (*Member, error)
	ListByGym(ctx context.Context, gymID int) ([]Member, error)
	Update(ctx context.Context, id int, req UpdateMemberRequest) (*Member, error)
	Delete(ctx context.Context, id int) error
}
