package member

import (
	"time"

	"gymdesk/internal/api"
)

type Member struct {
	ID               int        `db:"id" json:"id"`
	Name             string     `db:"name" json:"name"`
	Email            *string    `db:"email" json:"email"`
	Phone            string     `db:"phone" json:"phone"`
	Address          *string    `db:"address" json:"address"`
	DateOfBirth      *time.Time `db:"date_of_birth" json:"dateOfBirth"`
	Gender           *string    `db:"gender" json:"gender"`
	EmergencyContact *string    `db:"emergency_contact" json:"emergencyContact"`
	Active           bool       `db:"active" json:"active"`
	GymID            int        `db:"gym_id" json:"gymId"`
	CreatedAt        time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt        time.Time  `db:"updated_at" json:"updatedAt"`
}

// CreateMemberRequest leaves Active nil when the caller omits it; the
// member is then stored as active.
type CreateMemberRequest struct {
	Name             string    `json:"name" binding:"required"`
	Email            *string   `json:"email" binding:"omitempty,email"`
	Phone            string    `json:"phone" binding:"required"`
	Address          *string   `json:"address"`
	DateOfBirth      *api.Date `json:"dateOfBirth" swaggertype:"string" format:"date" example:"1990-05-01"`
	Gender           *string   `json:"gender" binding:"omitempty,oneof=male female other"`
	EmergencyContact *string   `json:"emergencyContact"`
	Active           *bool     `json:"active"`
}

type UpdateMemberRequest struct {
	Name             *string   `json:"name" binding:"omitempty,min=1"`
	Email            *string   `json:"email" binding:"omitempty,email"`
	Phone            *string   `json:"phone" binding:"omitempty,min=1"`
	Address          *string   `json:"address"`
	DateOfBirth      *api.Date `json:"dateOfBirth" swaggertype:"string" format:"date" example:"1990-05-01"`
	Gender           *string   `json:"gender" binding:"omitempty,oneof=male female other"`
	EmergencyContact *string   `json:"emergencyContact"`
	Active           *bool     `json:"active"`
}
