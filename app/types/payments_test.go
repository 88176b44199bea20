package types

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"google.golang.org/protobuf/types/known/structpb"
)

func newJSONContext(method, target, body string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestNewCreateOrderRequestFromContext(t *testing.T) {
	req, err := NewCreateOrderRequestFromContext(newJSONContext(http.MethodPost, "/", `{"paymentType":" donation ","amount":12.5}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if amount := req.GetAmount(); req.PaymentType != "donation" || amount == nil || *amount != 12.5 {
		t.Fatalf("unexpected request: %+v", req)
	}

	req, err = NewCreateOrderRequestFromContext(newJSONContext(http.MethodPost, "/", `{"paymentType":"event_fee"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.GetAmount() != nil {
		t.Fatal("expected nil amount when omitted")
	}
}

func TestNewCreateOrderRequestAcceptsNonNumericAmount(t *testing.T) {
	for _, body := range []string{
		`{"paymentType":"event_fee","amount":"500"}`,
		`{"paymentType":"donation","amount":null}`,
		`{"paymentType":"membership_fee","amount":{"value":1}}`,
	} {
		req, err := NewCreateOrderRequestFromContext(newJSONContext(http.MethodPost, "/", body))
		if err != nil {
			t.Fatalf("%s: unexpected bind error: %v", body, err)
		}
		if req.GetAmount() != nil {
			t.Fatalf("%s: expected nil amount for non-numeric value", body)
		}
	}
}

func TestNewVerifyPaymentRequestFromContext(t *testing.T) {
	body := `{"razorpay_order_id":" order_1 ","razorpay_payment_id":"pay_1","razorpay_signature":" sig\n","paymentType":" event_fee ","amountInPaise":0}`
	req, err := NewVerifyPaymentRequestFromContext(newJSONContext(http.MethodPost, "/", body))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.RazorpayOrderID != " order_1 " || req.RazorpayPaymentID != "pay_1" || req.RazorpaySignature != " sig\n" {
		t.Fatalf("expected gateway fields to be kept verbatim: %+v", req)
	}
	if req.PaymentType != "event_fee" {
		t.Fatalf("unexpected request: %+v", req)
	}
	if req.AmountInPaise == nil || *req.AmountInPaise != 0 {
		t.Fatal("expected zero amount to be present")
	}

	req, err = NewVerifyPaymentRequestFromContext(newJSONContext(http.MethodPost, "/", `{"paymentType":"event_fee"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.AmountInPaise != nil {
		t.Fatal("expected missing amount to stay nil")
	}
}

func TestListPaymentsRequest(t *testing.T) {
	req, err := NewListPaymentsRequestFromContext(newJSONContext(http.MethodGet, "/?limit=10&offset=20", ""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Limit != 10 || req.Offset != 20 {
		t.Fatalf("unexpected request: %+v", req)
	}
	if err := req.Validate(); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}

	req, _ = NewListPaymentsRequestFromContext(newJSONContext(http.MethodGet, "/", ""))
	if req.Limit != 50 {
		t.Fatalf("expected default limit 50, got %d", req.Limit)
	}

	if err := (&ListPaymentsRequest{Limit: 500}).Validate(); err == nil {
		t.Fatal("expected limit validation error")
	}
	if err := (&ListPaymentsRequest{Limit: 5, Offset: -1}).Validate(); err == nil {
		t.Fatal("expected offset validation error")
	}
	if _, err := NewListPaymentsRequestFromContext(newJSONContext(http.MethodGet, "/?limit=abc", "")); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestStructRoundTripUsesJSONFieldNames(t *testing.T) {
	msg, err := structpb.NewStruct(map[string]interface{}{
		"razorpay_order_id":   "order_1",
		"razorpay_payment_id": "pay_1",
		"razorpay_signature":  "sig",
		"paymentType":         "membership_fee",
		"amountInPaise":       500000,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req, err := NewVerifyPaymentRequestFromStruct(msg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.PaymentType != "membership_fee" || req.AmountInPaise == nil || *req.AmountInPaise != 500000 {
		t.Fatalf("unexpected request: %+v", req)
	}

	out, err := ToStruct(&CreateOrderResponse{OrderID: "order_1", Amount: 50000, Currency: "INR"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Fields["order_id"].GetStringValue() != "order_1" || out.Fields["amount"].GetNumberValue() != 50000 {
		t.Fatalf("unexpected struct: %v", out)
	}

	if _, err := NewCreateOrderRequestFromStruct(nil); err == nil {
		t.Fatal("expected error for nil struct")
	}
}
