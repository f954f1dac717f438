package gym

import "context"

type Repository interface {
	Create(ctx context.Context, userID int, req CreateGymRequest) (*Gym, error)
	GetByID(ctx context.Context, id int) (*Gym, error)
	ListByUser(ctx context.Context, userID int) ([]Gym, error)
	Update(ctx context.Context, id int, req UpdateGymRequest) (*Gym, error)
	Delete(ctx context.Context, id int) error
}
