package access

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

var ErrNoOwner = errors.New("record not found")

// Repository resolves the user that ultimately owns a record.
type Repository interface {
	OwnerOf(ctx context.Context, kind Kind, id int) (int, error)
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// ownerQueries holds one traversal per kind. An inner join that finds no row
// anywhere along the chain yields sql.ErrNoRows.
var ownerQueries = map[Kind]string{
	KindGym: `
		SELECT g.user_id
		FROM gyms g
		WHERE g.id = $1
	`,
	KindStaff: `
		SELECT g.user_id
		FROM staff s
		JOIN gyms g ON g.id = s.gym_id
		WHERE s.id = $1
	`,
	KindPlan: `
		SELECT g.user_id
		FROM membership_plans p
		JOIN gyms g ON g.id = p.gym_id
		WHERE p.id = $1
	`,
	KindMember: `
		SELECT g.user_id
		FROM members m
		JOIN gyms g ON g.id = m.gym_id
		WHERE m.id = $1
	`,
	KindMembership: `
		SELECT g.user_id
		FROM memberships ms
		JOIN members m ON m.id = ms.member_id
		JOIN gyms g ON g.id = m.gym_id
		WHERE ms.id = $1
	`,
	KindPayment: `
		SELECT g.user_id
		FROM payments p
		JOIN members m ON m.id = p.member_id
		JOIN gyms g ON g.id = m.gym_id
		WHERE p.id = $1
	`,
	KindNotification: `
		SELECT n.user_id
		FROM notifications n
		WHERE n.id = $1
	`,
}

func (r *repository) OwnerOf(ctx context.Context, kind Kind, id int) (int, error) {
	query, ok := ownerQueries[kind]
	if !ok {
		return 0, fmt.Errorf("no owner query for %s", kind)
	}

	var userID int
	err := r.db.GetContext(ctx, &userID, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrNoOwner
	}
	if err != nil {
		return 0, err
	}

	return userID, nil
}
