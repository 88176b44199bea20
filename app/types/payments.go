package types

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"google.golang.org/protobuf/types/known/structpb"
)

// CreateOrderRequest keeps amount undecoded since only donations read it.
type CreateOrderRequest struct {
	PaymentType string          `json:"paymentType"`
	Amount      json.RawMessage `json:"amount,omitempty"`
}

type VerifyPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
	PaymentType       string `json:"paymentType"`
	AmountInPaise     *int64 `json:"amountInPaise"`
}

type GetPaymentRequest struct {
	ID uint64
}

type ListPaymentsRequest struct {
	Limit  int32
	Offset int32
}

func NewCreateOrderRequestFromContext(ctx echo.Context) (*CreateOrderRequest, error) {
	var body CreateOrderRequest
	if err := ctx.Bind(&body); err != nil {
		return nil, err
	}
	body.PaymentType = strings.TrimSpace(body.PaymentType)
	return &body, nil
}

func NewVerifyPaymentRequestFromContext(ctx echo.Context) (*VerifyPaymentRequest, error) {
	var body VerifyPaymentRequest
	if err := ctx.Bind(&body); err != nil {
		return nil, err
	}
	body.normalize()
	return &body, nil
}

// normalize leaves the gateway ids and signature untouched, they are signed as sent.
func (r *VerifyPaymentRequest) normalize() {
	r.PaymentType = strings.TrimSpace(r.PaymentType)
}

func (r *CreateOrderRequest) GetPaymentType() string { return r.PaymentType }

// GetAmount returns nil when amount is absent, null or not a JSON number.
func (r *CreateOrderRequest) GetAmount() *float64 {
	raw := bytes.TrimSpace(r.Amount)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	var amount float64
	if err := json.Unmarshal(raw, &amount); err != nil {
		return nil
	}
	return &amount
}

func (r *VerifyPaymentRequest) GetRazorpayOrderId() string   { return r.RazorpayOrderID }
func (r *VerifyPaymentRequest) GetRazorpayPaymentId() string { return r.RazorpayPaymentID }
func (r *VerifyPaymentRequest) GetRazorpaySignature() string { return r.RazorpaySignature }
func (r *VerifyPaymentRequest) GetPaymentType() string       { return r.PaymentType }
func (r *VerifyPaymentRequest) GetAmountInPaise() *int64     { return r.AmountInPaise }

func NewGetPaymentRequestFromContext(ctx echo.Context) (*GetPaymentRequest, error) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return nil, err
	}
	return &GetPaymentRequest{ID: id}, nil
}

func (r *GetPaymentRequest) Validate() error {
	if r.ID == 0 {
		return errors.New("invalid payment id")
	}
	return nil
}

func NewListPaymentsRequestFromContext(ctx echo.Context) (*ListPaymentsRequest, error) {
	req := &ListPaymentsRequest{Limit: 50}

	if limitRaw := strings.TrimSpace(ctx.QueryParam("limit")); limitRaw != "" {
		limit, err := strconv.ParseInt(limitRaw, 10, 32)
		if err != nil {
			return nil, err
		}
		req.Limit = int32(limit)
	}

	if offsetRaw := strings.TrimSpace(ctx.QueryParam("offset")); offsetRaw != "" {
		offset, err := strconv.ParseInt(offsetRaw, 10, 32)
		if err != nil {
			return nil, err
		}
		req.Offset = int32(offset)
	}

	return req, nil
}

func (r *ListPaymentsRequest) Validate() error {
	if r.Limit <= 0 || r.Limit > 200 {
		return errors.New("limit must be between 1 and 200")
	}
	if r.Offset < 0 {
		return errors.New("offset must be >= 0")
	}
	return nil
}

// NewCreateOrderRequestFromStruct decodes a gRPC Struct message using the same
// field names as the HTTP body.
func NewCreateOrderRequestFromStruct(msg *structpb.Struct) (*CreateOrderRequest, error) {
	var body CreateOrderRequest
	if err := decodeStruct(msg, &body); err != nil {
		return nil, err
	}
	body.PaymentType = strings.TrimSpace(body.PaymentType)
	return &body, nil
}

func NewVerifyPaymentRequestFromStruct(msg *structpb.Struct) (*VerifyPaymentRequest, error) {
	var body VerifyPaymentRequest
	if err := decodeStruct(msg, &body); err != nil {
		return nil, err
	}
	body.normalize()
	return &body, nil
}

// ToStruct encodes a response through its JSON form so gRPC and HTTP callers
// see identical field names.
func ToStruct(v interface{}) (*structpb.Struct, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var fields map[string]interface{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	return structpb.NewStruct(fields)
}

func decodeStruct(msg *structpb.Struct, dst interface{}) error {
	if msg == nil {
		return errors.New("request body is required")
	}
	raw, err := msg.MarshalJSON()
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dst)
}
