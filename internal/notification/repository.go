package notification

import (
	"context"

	"github.com/jmoiron/sqlx"
)

const notificationColumns = `id, title, message, type, user_id, is_read, created_at, updated_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, userID int, req CreateNotificationRequest) (*Notification, error) {
	query := `
		INSERT INTO notifications (title, message, type, user_id)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + notificationColumns

	var n Notification
	if err := r.db.GetContext(ctx, &n, query, req.Title, req.Message, req.Type, userID); err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Notification, error) {
	var n Notification
	if err := r.db.GetContext(ctx, &n, `SELECT `+notificationColumns+` FROM notifications WHERE id = $1`, id); err != nil {
		return nil, err
	}
	return &n, nil
}

// ListByUser returns the newest notifications first. limit <= 0 means all.
func (r *repository) ListByUser(ctx context.Context, userID, limit int) ([]Notification, error) {
	query := `SELECT ` + notificationColumns + ` FROM notifications WHERE user_id = $1 ORDER BY created_at DESC, id DESC`
	args := []interface{}{userID}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	list := []Notification{}
	if err := r.db.SelectContext(ctx, &list, query, args...); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *repository) CountUnread(ctx context.Context, userID int) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND is_read = FALSE`, userID)
	return count, err
}

func (r *repository) MarkRead(ctx context.Context, id int) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE notifications SET is_read = TRUE, updated_at = NOW() WHERE id = $1`, id)
	return err
}

// MarkAllRead only touches unread rows, so calling it again is a no-op.
func (r *repository) MarkAllRead(ctx context.Context, userID int) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE notifications SET is_read = TRUE, updated_at = NOW() WHERE user_id = $1 AND is_read = FALSE`, userID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *repository) Delete(ctx context.Context, id int) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM notifications WHERE id = $1`, id)
	return err
}
