package provider

import (
	"context"
	"errors"
)

var ErrEmptyOrder = errors.New("order creation returned no result")

type CreateOrderInput struct {
	AmountPaise int64
	Currency    string
	Receipt     string
	Notes       map[string]string
}

type Order struct {
	ID          string
	AmountPaise int64
	Currency    string
	Receipt     string
	Status      string
}

// Provider is the payment gateway capability used by the payment service.
type Provider interface {
	Name() string
	// KeyID is the publishable key the checkout client needs. It is not a secret.
	KeyID() string
	CreateOrder(ctx context.Context, input *CreateOrderInput) (*Order, error)
	VerifyPaymentSignature(orderID, paymentID, signature string) bool
}
