package staff

import "time"

type Staff struct {
	ID        int       `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	Phone     *string   `db:"phone" json:"phone"`
	Position  string    `db:"position" json:"position"`
	Salary    *float64  `db:"salary" json:"salary"`
	GymID     int       `db:"gym_id" json:"gymId"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

type CreateStaffRequest struct {
	Name     string   `json:"name" binding:"required"`
	Email    string   `json:"email" binding:"required,email"`
	Phone    *string  `json:"phone"`
	Position string   `json:"position" binding:"required"`
	Salary   *float64 `json:"salary" binding:"omitempty,gte=0"`
}

type UpdateStaffRequest struct {
	Name     *string  `json:"name" binding:"omitempty,min=1"`
	Email    *string  `json:"email" binding:"omitempty,email"`
	Phone    *string  `json:"phone"`
	Position *string  `json:"position" binding:"omitempty,min=1"`
	Salary   *float64 `json:"salary" binding:"omitempty,gte=0"`
}
