package membership

import (
	"context"
	"time"

	"gymdesk/internal/db"

	"github.com/jmoiron/sqlx"
)

const membershipColumns = `id, member_id, plan_id, start_date, end_date, status, reminder_sent_at, created_at, updated_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, memberID int, m *Membership) (*Membership, error) {
	query := `
		INSERT INTO memberships (member_id, plan_id, start_date, end_date, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + membershipColumns

	var created Membership
	err := r.db.GetContext(ctx, &created, query, memberID, m.PlanID, m.StartDate, m.EndDate, m.Status)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Membership, error) {
	var m Membership
	if err := r.db.GetContext(ctx, &m, `SELECT `+membershipColumns+` FROM memberships WHERE id = $1`, id); err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *repository) ListByMember(ctx context.Context, memberID int) ([]Membership, error) {
	list := []Membership{}
	query := `SELECT ` + membershipColumns + ` FROM memberships WHERE member_id = $1 ORDER BY start_date DESC`
	if err := r.db.SelectContext(ctx, &list, query, memberID); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *repository) ListByGym(ctx context.Context, gymID int) ([]Membership, error) {
	query := `
		SELECT ms.id, ms.member_id, ms.plan_id, ms.start_date, ms.end_date, ms.status,
		       ms.reminder_sent_at, ms.created_at, ms.updated_at
		FROM memberships ms
		JOIN members m ON m.id = ms.member_id
		WHERE m.gym_id = $1
		ORDER BY ms.end_date DESC
	`

	list := []Membership{}
	if err := r.db.SelectContext(ctx, &list, query, gymID); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *repository) Update(ctx context.Context, id int, req UpdateMembershipRequest) (*Membership, error) {
	u := db.NewUpdate()
	db.SetIfNotNil(u, "plan_id", req.PlanID)
	db.SetIfNotNil(u, "start_date", req.StartDate)
	db.SetIfNotNil(u, "end_date", req.EndDate)
	db.SetIfNotNil(u, "status", req.Status)
	// a moved end date or a renewed status earns a fresh expiry reminder
	if req.EndDate != nil || req.Status != nil {
		u.Set("reminder_sent_at", nil)
	}

	query, args := u.Build("memberships", id, membershipColumns)

	var m Membership
	if err := r.db.GetContext(ctx, &m, query, args...); err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *repository) Delete(ctx context.Context, id int) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM memberships WHERE id = $1`, id)
	return err
}

func (r *repository) PlanForMember(ctx context.Context, memberID, planID int) (*PlanTerms, error) {
	query := `
		SELECT p.id, p.name, p.duration
		FROM membership_plans p
		JOIN members m ON m.gym_id = p.gym_id
		WHERE p.id = $1 AND m.id = $2
	`

	var p PlanTerms
	if err := r.db.GetContext(ctx, &p, query, planID, memberID); err != nil {
		return nil, err
	}
	return &p, nil
}

// ListExpiring returns active memberships of the gym whose end date falls in [from, to].
func (r *repository) ListExpiring(ctx context.Context, gymID int, from, to time.Time) ([]Membership, error) {
	query := `
		SELECT ms.id, ms.member_id, ms.plan_id, ms.start_date, ms.end_date, ms.status,
		       ms.reminder_sent_at, ms.created_at, ms.updated_at
		FROM memberships ms
		JOIN members m ON m.id = ms.member_id
		WHERE m.gym_id = $1
		  AND ms.status = 'active'
		  AND ms.end_date BETWEEN $2 AND $3
		ORDER BY ms.end_date
	`

	list := []Membership{}
	if err := r.db.SelectContext(ctx, &list, query, gymID, from, to); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *repository) ListDueForReminder(ctx context.Context, from, to time.Time) ([]Expiring, error) {
	query := `
		SELECT ms.id, ms.member_id, ms.plan_id, ms.start_date, ms.end_date, ms.status,
		       ms.reminder_sent_at, ms.created_at, ms.updated_at,
		       m.name AS member_name, m.email AS member_email,
		       p.name AS plan_name, g.name AS gym_name, g.user_id AS owner_id
		FROM memberships ms
		JOIN members m ON m.id = ms.member_id
		JOIN membership_plans p ON p.id = ms.plan_id
		JOIN gyms g ON g.id = m.gym_id
		WHERE ms.status = 'active'
		  AND ms.reminder_sent_at IS NULL
		  AND ms.end_date BETWEEN $1 AND $2
		ORDER BY ms.end_date
	`

	list := []Expiring{}
	if err := r.db.SelectContext(ctx, &list, query, from, to); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *repository) MarkReminded(ctx context.Context, id int, at time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE memberships SET reminder_sent_at = $1, updated_at = NOW() WHERE id = $2`, at, id)
	return err
}

// ExpireEnded writes status expired back for active memberships that ended before now.
func (r *repository) ExpireEnded(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE memberships SET status = 'expired', updated_at = NOW() WHERE status = 'active' AND end_date < $1`, now)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
