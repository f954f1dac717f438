package payment

import (
	"context"

	"gymdesk/internal/db"

	"github.com/jmoiron/sqlx"
)

const paymentColumns = `id, member_id, membership_id, amount, payment_date, payment_method, reference, status, created_at, updated_at`

const gymPaymentsQuery = `
	SELECT p.id, p.member_id, p.membership_id, p.amount, p.payment_date, p.payment_method,
	       p.reference, p.status, p.created_at, p.updated_at
	FROM payments p
	JOIN members m ON m.id = p.member_id
	WHERE m.gym_id = $1
	ORDER BY p.payment_date DESC, p.id DESC
`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, memberID int, p *Payment) (*Payment, error) {
	query := `
		INSERT INTO payments (member_id, membership_id, amount, payment_date, payment_method, reference, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + paymentColumns

	var created Payment
	err := r.db.GetContext(ctx, &created, query,
		memberID, p.MembershipID, p.Amount, p.PaymentDate, p.PaymentMethod, p.Reference, p.Status)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Payment, error) {
	var p Payment
	if err := r.db.GetContext(ctx, &p, `SELECT `+paymentColumns+` FROM payments WHERE id = $1`, id); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) ListByMember(ctx context.Context, memberID int) ([]Payment, error) {
	list := []Payment{}
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE member_id = $1 ORDER BY payment_date DESC, id DESC`
	if err := r.db.SelectContext(ctx, &list, query, memberID); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *repository) ListByGym(ctx context.Context, gymID int) ([]Payment, error) {
	list := []Payment{}
	if err := r.db.SelectContext(ctx, &list, gymPaymentsQuery, gymID); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *repository) ListRecentByGym(ctx context.Context, gymID, limit int) ([]Payment, error) {
	list := []Payment{}
	if err := r.db.SelectContext(ctx, &list, gymPaymentsQuery+` LIMIT $2`, gymID, limit); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *repository) Update(ctx context.Context, id int, req UpdatePaymentRequest) (*Payment, error) {
	u := db.NewUpdate()
	db.SetIfNotNil(u, "membership_id", req.MembershipID)
	db.SetIfNotNil(u, "amount", req.Amount)
	db.SetIfNotNil(u, "payment_date", req.PaymentDate)
	db.SetIfNotNil(u, "payment_method", req.PaymentMethod)
	db.SetIfNotNil(u, "reference", req.Reference)
	db.SetIfNotNil(u, "status", req.Status)

	query, args := u.Build("payments", id, paymentColumns)

	var p Payment
	if err := r.db.GetContext(ctx, &p, query, args...); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) Delete(ctx context.Context, id int) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM payments WHERE id = $1`, id)
	return err
}

func (r *repository) GetPayer(ctx context.Context, memberID int) (*Payer, error) {
	query := `
		SELECT m.id AS member_id, m.name, m.email, g.name AS gym_name, g.user_id AS owner_id
		FROM members m
		JOIN gyms g ON g.id = m.gym_id
		WHERE m.id = $1
	`

	var p Payer
	if err := r.db.GetContext(ctx, &p, query, memberID); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) MembershipBelongsTo(ctx context.Context, membershipID, memberID int) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		`SELECT EXISTS(SELECT 1 FROM memberships WHERE id = $1 AND member_id = $2)`, membershipID, memberID)
	return exists, err
}
