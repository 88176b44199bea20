package entity

import "time"

const (
	OrderStatusCreated = "created"
	OrderStatusPaid    = "paid"
	OrderStatusExpired = "expired"
)

// Order is the gateway order created for a caller, kept so that verification
// can cross-check the echoed payment type and amount.
type Order struct {
	ID uint64

	RazorpayOrderID string
	Receipt         string

	UserID      string
	PaymentType string
	AmountPaise int64
	Currency    string

	Status string

	CreatedAt time.Time
	UpdatedAt time.Time
}
