package staff

import (
	"context"

	"gymdesk/internal/db"

	"github.com/jmoiron/sqlx"
)

const staffColumns = `id, name, email, phone, position, salary, gym_id, created_at, updated_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, gymID int, req CreateStaffRequest) (*Staff, error) {
	query := `
		INSERT INTO staff (name, email, phone, position, salary, gym_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + staffColumns

	var s Staff
	err := r.db.GetContext(ctx, &s, query, req.Name, req.Email, req.Phone, req.Position, req.Salary, gymID)
	if err != nil {
		return nil, err
	}

	return &s, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Staff, error) {
	var s Staff
	if err := r.db.GetContext(ctx, &s, `SELECT `+staffColumns+` FROM staff WHERE id = $1`, id); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) ListByGym(ctx context.Context, gymID int) ([]Staff, error) {
	list := []Staff{}
	query := `SELECT ` + staffColumns + ` FROM staff WHERE gym_id = $1 ORDER BY name`
	if err := r.db.SelectContext(ctx, &list, query, gymID); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *repository) Update(ctx context.Context, id int, req UpdateStaffRequest) (*Staff, error) {
	u := db.NewUpdate()
	db.SetIfNotNil(u, "name", req.Name)
	db.SetIfNotNil(u, "email", req.Email)
	db.SetIfNotNil(u, "phone", req.Phone)
	db.SetIfNotNil(u, "position", req.Position)
	db.SetIfNotNil(u, "salary", req.Salary)

	query, args := u.Build("staff", id, staffColumns)

	var s Staff
	if err := r.db.GetContext(ctx, &s, query, args...); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) Delete(ctx context.Context, id int) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM staff WHERE id = $1`, id)
	return err
}
