package entity

import (
	"strconv"
	"time"
)

const (
	PaymentTypeEventFee      = "event_fee"
	PaymentTypeMembershipFee = "membership_fee"
	PaymentTypeDonation      = "donation"
)

const (
	PaymentStatusSuccess = "success"
	PaymentStatusFailed  = "failed"
)

// EmailUnavailable is stored when the identity provider supplied no email claim.
const EmailUnavailable = "Email not available in claims"

const CurrencyINR = "INR"

// Payment is a verified gateway payment. Rows are insert-only.
type Payment struct {
	ID uint64

	UserID string
	Email  string

	PaymentType string
	AmountPaise int64
	Currency    string

	RazorpayOrderID   string
	RazorpayPaymentID string

	Status string

	CreatedAt time.Time
}

// Amount is AmountPaise in major currency units.
func (p *Payment) Amount() float64 {
	return float64(p.AmountPaise) / 100
}

// AmountDecimal renders AmountPaise as an exact two-decimal string.
func (p *Payment) AmountDecimal() string {
	return FormatPaise(p.AmountPaise)
}

func FormatPaise(paise int64) string {
	sign := ""
	if paise < 0 {
		sign = "-"
		paise = -paise
	}
	fraction := strconv.FormatInt(paise%100, 10)
	if len(fraction) == 1 {
		fraction = "0" + fraction
	}
	return sign + strconv.FormatInt(paise/100, 10) + "." + fraction
}

func IsValidPaymentType(paymentType string) bool {
	switch paymentType {
	case PaymentTypeEventFee, PaymentTypeMembershipFee, PaymentTypeDonation:
		return true
	default:
		return false
	}
}
