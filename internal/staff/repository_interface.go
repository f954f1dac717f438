package staff

import "context"

type Repository interface {
	Create(ctx context.Context, gymID int, req CreateStaffRequest) (*Staff, error)
	GetByID(ctx context.Context, id int) (*Staff, error)
	ListByGym(ctx context.Context, gymID int) ([]Staff, error)
	Update(ctx context.Context, id int, req UpdateStaffRequest) (*Staff, error)
	Delete(ctx context.Context, id int) error
}
