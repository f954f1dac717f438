package plan

import "context"

type Repository interface {
	Create(ctx context.Context, gymID int, req CreatePlanRequest) (*Plan, error)
	GetByID(ctx context.Context, id int) (*Plan, error)
	ListByGym(ctx context.Context, gymID int) ([]Plan, error)
	Update(ctx context.Context, id int, req UpdatePlanRequest) (*Plan, error)
	Delete(ctx context.Context, id int) error
}
