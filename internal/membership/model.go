package membership

import "time"

const (
	StatusActive    = "active"
	StatusExpired   = "expired"
	StatusCancelled = "cancelled"
)

// Membership grants a plan to a member between StartDate and EndDate.
type Membership struct {
	ID             int        `db:"id" json:"id"`
	MemberID       int        `db:"member_id" json:"memberId"`
	PlanID         int        `db:"plan_id" json:"planId"`
	StartDate      time.Time  `db:"start_date" json:"startDate"`
	EndDate        time.Time  `db:"end_date" json:"endDate"`
	Status         string     `db:"status" json:"status"`
	ReminderSentAt *time.Time `db:"reminder_sent_at" json:"reminderSentAt,omitempty"`
	CreatedAt      time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt      time.Time  `db:"updated_at" json:"updatedAt"`
}

// CreateMembershipRequest may omit EndDate, in which case the plan's
// duration in months is added to StartDate.
type CreateMembershipRequest struct {
	PlanID    int        `json:"planId" binding:"required,gt=0"`
	StartDate time.Time  `json:"startDate" binding:"required"`
	EndDate   *time.Time `json:"endDate" binding:"omitempty,gtfield=StartDate"`
	Status    string     `json:"status" binding:"omitempty,oneof=active expired cancelled"`
}

type UpdateMembershipRequest struct {
	PlanID    *int       `json:"planId" binding:"omitempty,gt=0"`
	StartDate *time.Time `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`
	Status    *string    `json:"status" binding:"omitempty,oneof=active expired cancelled"`
}

// PlanTerms is the part of a plan a membership needs at creation time.
type PlanTerms struct {
	ID       int    `db:"id"`
	Name     string `db:"name"`
	Duration int    `db:"duration"`
}

// Expiring is an active membership about to end, joined with what a
// reminder needs to address the member and the gym owner.
type Expiring struct {
	Membership
	MemberName  string  `db:"member_name"`
	MemberEmail *string `db:"member_email"`
	PlanName    string  `db:"plan_name"`
	GymName     string  `db:"gym_name"`
	OwnerID     int     `db:"owner_id"`
}
