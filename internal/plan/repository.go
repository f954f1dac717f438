package plan

import (
	"context"

	"gymdesk/internal/db"

	"github.com/jmoiron/sqlx"
)

const planColumns = `id, name, description, duration, price, type, gym_id, created_at, updated_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, gymID int, req CreatePlanRequest) (*Plan, error) {
	query := `
		INSERT INTO membership_plans (name, description, duration, price, type, gym_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + planColumns

	var p Plan
	err := r.db.GetContext(ctx, &p, query, req.Name, req.Description, req.Duration, req.Price, req.Type, gymID)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Plan, error) {
	var p Plan
	if err := r.db.GetContext(ctx, &p, `SELECT `+planColumns+` FROM membership_plans WHERE id = $1`, id); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) ListByGym(ctx context.Context, gymID int) ([]Plan, error) {
	plans := []Plan{}
	query := `SELECT ` + planColumns + ` FROM membership_plans WHERE gym_id = $1 ORDER BY duration, price`
	if err := r.db.SelectContext(ctx, &plans, query, gymID); err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *repository) Update(ctx context.Context, id int, req UpdatePlanRequest) (*Plan, error) {
	u := db.NewUpdate()
	db.SetIfNotNil(u, "name", req.Name)
	db.SetIfNotNil(u, "description", req.Description)
	db.SetIfNotNil(u, "duration", req.Duration)
	db.SetIfNotNil(u, "price", req.Price)
	db.SetIfNotNil(u, "type", req.Type)

	query, args := u.Build("membership_plans", id, planColumns)

	var p Plan
	if err := r.db.GetContext(ctx, &p, query, args...); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) Delete(ctx context.Context, id int) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM membership_plans WHERE id = $1`, id)
	return err
}
