package gym

import "time"

type Gym struct {
	ID        int       `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Address   string    `db:"address" json:"address"`
	City      string    `db:"city" json:"city"`
	State     string    `db:"state" json:"state"`
	Zipcode   string    `db:"zipcode" json:"zipcode"`
	Phone     *string   `db:"phone" json:"phone"`
	Email     *string   `db:"email" json:"email"`
	UserID    int       `db:"user_id" json:"userId"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

type CreateGymRequest struct {
	Name    string  `json:"name" binding:"required"`
	Address string  `json:"address" binding:"required"`
	City    string  `json:"city" binding:"required"`
	State   string  `json:"state" binding:"required"`
	Zipcode string  `json:"zipcode" binding:"required"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email" binding:"omitempty,email"`
}

type UpdateGymRequest struct {
	Name    *string `json:"name" binding:"omitempty,min=1"`
	Address *string `json:"address" binding:"omitempty,min=1"`
	City    *string `json:"city" binding:"omitempty,min=1"`
	State   *string `json:"state" binding:"omitempty,min=1"`
	Zipcode *string `json:"zipcode" binding:"omitempty,min=1"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email" binding:"omitempty,email"`
}
