package dashboard

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CountMembers(ctx context.Context, gymID int) (int, error) {
	var n int
	err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM members WHERE gym_id = $1`, gymID)
	return n, err
}

func (r *repository) CountActiveMembers(ctx context.Context, gymID int) (int, error) {
	var n int
	err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM members WHERE gym_id = $1 AND active = TRUE`, gymID)
	return n, err
}

func (r *repository) SumRevenue(ctx context.Context, gymID int, from, to time.Time) (float64, error) {
	query := `
		SELECT COALESCE(SUM(p.amount), 0)
		FROM payments p
		JOIN members m ON m.id = p.member_id
		WHERE m.gym_id = $1
		  AND p.payment_date >= $2
		  AND p.payment_date < $3
	`

	var sum float64
	err := r.db.GetContext(ctx, &sum, query, gymID, from, to)
	return sum, err
}

func (r *repository) CountExpiring(ctx context.Context, gymID int, from, to time.Time) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM memberships ms
		JOIN members m ON m.id = ms.member_id
		WHERE m.gym_id = $1
		  AND ms.status = 'active'
		  AND ms.end_date BETWEEN $2 AND $3
	`

	var n int
	err := r.db.GetContext(ctx, &n, query, gymID, from, to)
	return n, err
}

func (r *repository) Distribution(ctx context.Context, gymID int) ([]TypeCount, error) {
	query := `
		SELECT p.type, COUNT(*) AS count
		FROM memberships ms
		JOIN membership_plans p ON p.id = ms.plan_id
		JOIN members m ON m.id = ms.member_id
		WHERE m.gym_id = $1
		  AND ms.status = 'active'
		GROUP BY p.type
		ORDER BY p.type
	`

	list := []TypeCount{}
	if err := r.db.SelectContext(ctx, &list, query, gymID); err != nil {
		return nil, err
	}
	return list, nil
}
