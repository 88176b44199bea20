package types

type HealthResponse struct {
	Status string `json:"status"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type StatusErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

type CreateOrderResponse struct {
	OrderID  string `json:"order_id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Name     string `json:"name"`
	Key      string `json:"key"`
	Receipt  string `json:"receipt"`
}

type VerifyPaymentResponse struct {
	Status            string  `json:"status"`
	Message           string  `json:"message"`
	PaymentID         uint64  `json:"paymentId"`
	UserID            string  `json:"userId"`
	Email             string  `json:"email"`
	PaymentType       string  `json:"paymentType"`
	Amount            float64 `json:"amount"`
	RazorpayOrderID   string  `json:"razorpay_order_id"`
	RazorpayPaymentID string  `json:"razorpay_payment_id"`
}

type Payment struct {
	ID                uint64  `json:"id"`
	UserID            string  `json:"userId"`
	Email             string  `json:"email"`
	PaymentType       string  `json:"type"`
	Amount            float64 `json:"amount"`
	Currency          string  `json:"currency"`
	RazorpayOrderID   string  `json:"razorpay_order_id"`
	RazorpayPaymentID string  `json:"razorpay_payment_id"`
	Status            string  `json:"status"`
	Timestamp         string  `json:"timestamp"`
}

type PaymentEnvelopeResponse struct {
	Payment *Payment `json:"payment"`
}

type ListPaymentsResponse struct {
	Payments []*Payment `json:"payments"`
}
