package plan

import "time"

const (
	TypeMonthly    = "monthly"
	TypeQuarterly  = "quarterly"
	TypeHalfYearly = "half-yearly"
	TypeAnnual     = "annual"
)

// Plan is a membership plan offered by a gym. Duration is in months.
type Plan struct {
	ID          int       `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description *string   `db:"description" json:"description"`
	Duration    int       `db:"duration" json:"duration"`
	Price       float64   `db:"price" json:"price"`
	Type        string    `db:"type" json:"type"`
	GymID       int       `db:"gym_id" json:"gymId"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

type CreatePlanRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description *string  `json:"description"`
	Duration    int      `json:"duration" binding:"required,gt=0"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
	Type        string   `json:"type" binding:"required,oneof=monthly quarterly half-yearly annual"`
}

type UpdatePlanRequest struct {
	Name        *string  `json:"name" binding:"omitempty,min=1"`
	Description *string  `json:"description"`
	Duration    *int     `json:"duration" binding:"omitempty,gt=0"`
	Price       *float64 `json:"price" binding:"omitempty,gte=0"`
	Type        *string  `json:"type" binding:"omitempty,oneof=monthly quarterly half-yearly annual"`
}
