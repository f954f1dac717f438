package member

import (
	"context"

	"gymdesk/internal/db"

	"github.com/jmoiron/sqlx"
)

const memberColumns = `id, name, email, phone, address, date_of_birth, gender, emergency_contact, active, gym_id, created_at, updated_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, gymID int, req CreateMemberRequest) (*Member, error) {
	active := true
	if req.Active != nil {
		active = *req.Active
	}

	query := `
		INSERT INTO members (name, email, phone, address, date_of_birth, gender, emergency_contact, active, gym_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + memberColumns

	var m Member
	err := r.db.GetContext(ctx, &m, query,
		req.Name, req.Email, req.Phone, req.Address, req.DateOfBirth, req.Gender, req.EmergencyContact, active, gymID)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Member, error) {
	var m Member
	if err := r.db.GetContext(ctx, &m, `SELECT `+memberColumns+` FROM members WHERE id = $1`, id); err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *repository) ListByGym(ctx context.Context, gymID int) ([]Member, error) {
	members := []Member{}
	query := `SELECT ` + memberColumns + ` FROM members WHERE gym_id = $1 ORDER BY name`
	if err := r.db.SelectContext(ctx, &members, query, gymID); err != nil {
		return nil, err
	}
	return members, nil
}

func (r *repository) Update(ctx context.Context, id int, req UpdateMemberRequest) (*Member, error) {
	u := db.NewUpdate()
	db.SetIfNotNil(u, "name", req.Name)
	db.SetIfNotNil(u, "email", req.Email)
	db.SetIfNotNil(u, "phone", req.Phone)
	db.SetIfNotNil(u, "address", req.Address)
	db.SetIfNotNil(u, "date_of_birth", req.DateOfBirth)
	db.SetIfNotNil(u, "gender", req.Gender)
	db.SetIfNotNil(u, "emergency_contact", req.EmergencyContact)
	db.SetIfNotNil(u, "active", req.Active)

	query, args := u.Build("members", id, memberColumns)

	var m Member
	if err := r.db.GetContext(ctx, &m, query, args...); err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *repository) Delete(ctx context.Context, id int) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM members WHERE id = $1`, id)
	return err
}
