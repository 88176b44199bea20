package service

import (
	"math"
	"strconv"

	"github.com/vibast-solutions/ms-go-member-payments/app/entity"
	"github.com/vibast-solutions/ms-go-member-payments/config"
)

const paiseOverflowLimit = float64(1 << 53)

// AmountResolver maps a payment type to the charge in paise.
type AmountResolver struct {
	eventFeePaise      int64
	membershipFeePaise int64
	minDonationPaise   int64
}

func NewAmountResolver(cfg config.PaymentsConfig) *AmountResolver {
	return &AmountResolver{
		eventFeePaise:      cfg.EventFeeAmountPaise,
		membershipFeePaise: cfg.MembershipFeeAmountPaise,
		minDonationPaise:   cfg.MinDonationAmountPaise,
	}
}

// Resolve returns the charge in paise. amount is in rupees and only read for donations.
func (r *AmountResolver) Resolve(paymentType string, amount *float64) (int64, error) {
	if paymentType == "" {
		return 0, invalidRequest("Payment type is required.")
	}

	switch paymentType {
	case entity.PaymentTypeEventFee:
		return r.eventFeePaise, nil
	case entity.PaymentTypeMembershipFee:
		return r.membershipFeePaise, nil
	case entity.PaymentTypeDonation:
		return r.resolveDonation(amount)
	default:
		return 0, invalidRequest("Invalid payment type.")
	}
}

func (r *AmountResolver) resolveDonation(amount *float64) (int64, error) {
	if amount == nil || math.IsNaN(*amount) || math.IsInf(*amount, 0) || *amount <= 0 {
		return 0, invalidRequest("Valid amount is required for donation.")
	}

	scaled := math.Round(*amount * 100)
	if scaled >= paiseOverflowLimit {
		return 0, invalidRequest("Valid amount is required for donation.")
	}

	paise := int64(scaled)
	if paise < r.minDonationPaise {
		return 0, invalidRequest("Donation amount must be at least ₹" + strconv.FormatFloat(float64(r.minDonationPaise)/100, 'f', -1, 64) + ".")
	}
	return paise, nil
}
