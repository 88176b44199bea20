package provider

import (
	"context"
	"errors"
	"testing"
)

type fakeOrderAPI struct {
	lastData map[string]interface{}
	body     map[string]interface{}
	err      error
}

func (f *fakeOrderAPI) Create(data map[string]interface{}, _ map[string]string) (map[string]interface{}, error) {
	f.lastData = data
	return f.body, f.err
}

func newTestRazorpayProvider(api orderAPI) *RazorpayProvider {
	return &RazorpayProvider{
		cfg:    RazorpayConfig{KeyID: "rzp_test_key", KeySecret: "secret", SigningSecret: "secret"},
		orders: api,
	}
}

func TestRazorpayCreateOrder(t *testing.T) {
	api := &fakeOrderAPI{body: map[string]interface{}{
		"id":       "order_abc",
		"amount":   float64(50000),
		"currency": "INR",
		"receipt":  "receipt_1",
		"status":   "created",
	}}
	p := newTestRazorpayProvider(api)

	order, err := p.CreateOrder(context.Background(), &CreateOrderInput{
		AmountPaise: 50000,
		Currency:    "INR",
		Receipt:     "receipt_1",
		Notes:       map[string]string{"payment_type": "event_fee"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.ID != "order_abc" || order.AmountPaise != 50000 || order.Currency != "INR" || order.Receipt != "receipt_1" {
		t.Fatalf("unexpected order: %+v", order)
	}
	if api.lastData["amount"] != int64(50000) || api.lastData["currency"] != "INR" || api.lastData["receipt"] != "receipt_1" {
		t.Fatalf("unexpected request data: %+v", api.lastData)
	}
	notes, ok := api.lastData["notes"].(map[string]interface{})
	if !ok || notes["payment_type"] != "event_fee" {
		t.Fatalf("unexpected notes: %+v", api.lastData["notes"])
	}
}

func TestRazorpayCreateOrderWrapsGatewayError(t *testing.T) {
	gatewayErr := errors.New("BAD_REQUEST_ERROR")
	p := newTestRazorpayProvider(&fakeOrderAPI{err: gatewayErr})

	_, err := p.CreateOrder(context.Background(), &CreateOrderInput{AmountPaise: 1000, Currency: "INR", Receipt: "r"})
	if !errors.Is(err, gatewayErr) {
		t.Fatalf("expected wrapped gateway error, got %v", err)
	}
}

func TestRazorpayCreateOrderRejectsEmptyResult(t *testing.T) {
	p := newTestRazorpayProvider(&fakeOrderAPI{body: map[string]interface{}{}})
	if _, err := p.CreateOrder(context.Background(), &CreateOrderInput{AmountPaise: 1000, Currency: "INR", Receipt: "r"}); !errors.Is(err, ErrEmptyOrder) {
		t.Fatalf("expected ErrEmptyOrder, got %v", err)
	}

	p = newTestRazorpayProvider(&fakeOrderAPI{body: map[string]interface{}{"amount": float64(1000)}})
	if _, err := p.CreateOrder(context.Background(), &CreateOrderInput{AmountPaise: 1000, Currency: "INR", Receipt: "r"}); !errors.Is(err, ErrEmptyOrder) {
		t.Fatalf("expected ErrEmptyOrder for missing id, got %v", err)
	}
}

func TestRazorpayCreateOrderRequiresCredentials(t *testing.T) {
	p := &RazorpayProvider{orders: &fakeOrderAPI{}}
	if _, err := p.CreateOrder(context.Background(), &CreateOrderInput{AmountPaise: 1000}); err == nil {
		t.Fatal("expected error without credentials")
	}
}

func TestRazorpayVerifyPaymentSignatureUsesSigningSecret(t *testing.T) {
	p := &RazorpayProvider{cfg: RazorpayConfig{KeyID: "k", KeySecret: "key-secret", SigningSecret: "signing-secret"}}

	good := PaymentSignature("order_1", "pay_1", "signing-secret")
	if !p.VerifyPaymentSignature("order_1", "pay_1", good) {
		t.Fatal("expected signature to verify with signing secret")
	}
	if p.VerifyPaymentSignature("order_1", "pay_1", PaymentSignature("order_1", "pay_1", "key-secret")) {
		t.Fatal("expected signature made with key secret to fail")
	}
}
