package provider

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	razorpay "github.com/razorpay/razorpay-go"
)

type RazorpayConfig struct {
	KeyID         string
	KeySecret     string
	SigningSecret string
}

type orderAPI interface {
	Create(data map[string]interface{}, extraHeaders map[string]string) (map[string]interface{}, error)
}

type RazorpayProvider struct {
	cfg    RazorpayConfig
	orders orderAPI
}

func NewRazorpayProvider(cfg RazorpayConfig) *RazorpayProvider {
	if strings.TrimSpace(cfg.SigningSecret) == "" {
		cfg.SigningSecret = cfg.KeySecret
	}
	client := razorpay.NewClient(cfg.KeyID, cfg.KeySecret)
	return &RazorpayProvider{cfg: cfg, orders: client.Order}
}

func (p *RazorpayProvider) Name() string {
	return "razorpay"
}

func (p *RazorpayProvider) KeyID() string {
	return p.cfg.KeyID
}

// CreateOrder blocks until Razorpay answers. The SDK has no context support,
// so ctx is not honored once the request is in flight.
func (p *RazorpayProvider) CreateOrder(_ context.Context, input *CreateOrderInput) (*Order, error) {
	if strings.TrimSpace(p.cfg.KeyID) == "" || strings.TrimSpace(p.cfg.KeySecret) == "" {
		return nil, errors.New("razorpay credentials are not configured")
	}
	if input == nil || input.AmountPaise <= 0 {
		return nil, errors.New("razorpay order amount must be > 0")
	}

	data := map[string]interface{}{
		"amount":   input.AmountPaise,
		"currency": input.Currency,
		"receipt":  input.Receipt,
	}
	if len(input.Notes) > 0 {
		notes := make(map[string]interface{}, len(input.Notes))
		for k, v := range input.Notes {
			notes[k] = v
		}
		data["notes"] = notes
	}

	body, err := p.orders.Create(data, nil)
	if err != nil {
		return nil, fmt.Errorf("razorpay create order failed: %w", err)
	}

	return parseOrder(body)
}

func (p *RazorpayProvider) VerifyPaymentSignature(orderID, paymentID, signature string) bool {
	return VerifyPaymentSignature(orderID, paymentID, signature, p.cfg.SigningSecret)
}

func parseOrder(body map[string]interface{}) (*Order, error) {
	if len(body) == 0 {
		return nil, ErrEmptyOrder
	}

	order := &Order{
		ID:       stringField(body, "id"),
		Currency: stringField(body, "currency"),
		Receipt:  stringField(body, "receipt"),
		Status:   stringField(body, "status"),
	}
	if order.ID == "" {
		return nil, ErrEmptyOrder
	}

	switch v := body["amount"].(type) {
	case float64:
		order.AmountPaise = int64(math.Round(v))
	case int64:
		order.AmountPaise = v
	case int:
		order.AmountPaise = int64(v)
	}

	return order, nil
}

func stringField(body map[string]interface{}, key string) string {
	if s, ok := body[key].(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}
