package gym

import (
	"context"

	"gymdesk/internal/db"

	"github.com/jmoiron/sqlx"
)

const gymColumns = `id, name, address, city, state, zipcode, phone, email, user_id, created_at, updated_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, userID int, req CreateGymRequest) (*Gym, error) {
	query := `
		INSERT INTO gyms (name, address, city, state, zipcode, phone, email, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + gymColumns

	var g Gym
	err := r.db.GetContext(ctx, &g, query,
		req.Name, req.Address, req.City, req.State, req.Zipcode, req.Phone, req.Email, userID)
	if err != nil {
		return nil, err
	}

	return &g, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Gym, error) {
	query := `SELECT ` + gymColumns + ` FROM gyms WHERE id = $1`

	var g Gym
	if err := r.db.GetContext(ctx, &g, query, id); err != nil {
		return nil, err
	}

	return &g, nil
}

func (r *repository) ListByUser(ctx context.Context, userID int) ([]Gym, error) {
	query := `SELECT ` + gymColumns + ` FROM gyms WHERE user_id = $1 ORDER BY id`

	gyms := []Gym{}
	if err := r.db.SelectContext(ctx, &gyms, query, userID); err != nil {
		return nil, err
	}

	return gyms, nil
}

func (r *repository) Update(ctx context.Context, id int, req UpdateGymRequest) (*Gym, error) {
	u := db.NewUpdate()
	db.SetIfNotNil(u, "name", req.Name)
	db.SetIfNotNil(u, "address", req.Address)
	db.SetIfNotNil(u, "city", req.City)
	db.SetIfNotNil(u, "state", req.State)
	db.SetIfNotNil(u, "zipcode", req.Zipcode)
	db.SetIfNotNil(u, "phone", req.Phone)
	db.SetIfNotNil(u, "email", req.Email)

	query, args := u.Build("gyms", id, gymColumns)

	var g Gym
	if err := r.db.GetContext(ctx, &g, query, args...); err != nil {
		return nil, err
	}

	return &g, nil
}

func (r *repository) Delete(ctx context.Context, id int) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM gyms WHERE id = $1`, id)
	return err
}
