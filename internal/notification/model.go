package notification

import "time"

const (
	TypePayment    = "payment"
	TypeMembership = "membership"
	TypeGeneral    = "general"
)

type Notification struct {
	ID        int       `db:"id" json:"id"`
	Title     string    `db:"title" json:"title"`
	Message   string    `db:"message" json:"message"`
	Type      string    `db:"type" json:"type"`
	UserID    int       `db:"user_id" json:"userId"`
	IsRead    bool      `db:"is_read" json:"isRead"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

type CreateNotificationRequest struct {
	Title   string `json:"title" binding:"required,max=255"`
	Message string `json:"message" binding:"required"`
	Type    string `json:"type" binding:"required,oneof=payment membership general"`
}
