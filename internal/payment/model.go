package payment

import "time"

const (
	StatusPaid    = "paid"
	StatusPending = "pending"
	StatusFailed  = "failed"
)

type Payment struct {
	ID            int       `db:"id" json:"id"`
	MemberID      int       `db:"member_id" json:"memberId"`
	MembershipID  *int      `db:"membership_id" json:"membershipId"`
	Amount        float64   `db:"amount" json:"amount"`
	PaymentDate   time.Time `db:"payment_date" json:"paymentDate"`
	PaymentMethod string    `db:"payment_method" json:"paymentMethod"`
	Reference     *string   `db:"reference" json:"reference"`
	Status        string    `db:"status" json:"status"`
	CreatedAt     time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt     time.Time `db:"updated_at" json:"updatedAt"`
}

// CreatePaymentRequest: amount 0 is a valid payment (waived fee). The
// payment method is whatever the front desk calls it ("cash", "netbanking").
type CreatePaymentRequest struct {
	MembershipID  *int       `json:"membershipId" binding:"omitempty,gt=0"`
	Amount        *float64   `json:"amount" binding:"required,gte=0"`
	PaymentDate   *time.Time `json:"paymentDate"`
	PaymentMethod string     `json:"paymentMethod" binding:"required,max=50" example:"netbanking"`
	Reference     *string    `json:"reference" binding:"omitempty,max=255"`
	Status        string     `json:"status" binding:"omitempty,oneof=paid pending failed"`
}

type UpdatePaymentRequest struct {
	MembershipID  *int       `json:"membershipId" binding:"omitempty,gt=0"`
	Amount        *float64   `json:"amount" binding:"omitempty,gte=0"`
	PaymentDate   *time.Time `json:"paymentDate"`
	PaymentMethod *string    `json:"paymentMethod" binding:"omitempty,min=1,max=50"`
	Reference     *string    `json:"reference" binding:"omitempty,max=255"`
	Status        *string    `json:"status" binding:"omitempty,oneof=paid pending failed"`
}

// Payer is the member a payment is recorded for, with what the receipt and
// the owner notification need.
type Payer struct {
	MemberID int     `db:"member_id"`
	Name     string  `db:"name"`
	Email    *string `db:"email"`
	GymName  string  `db:"gym_name"`
	OwnerID  int     `db:"owner_id"`
}
