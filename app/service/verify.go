package service

import (
	"context"
	"fmt"

	"github.com/vibast-solutions/ms-go-member-payments/app/auth"
	"github.com/vibast-solutions/ms-go-member-payments/app/entity"
	"github.com/vibast-solutions/ms-go-member-payments/app/metrics"
)

type verifyPaymentRequest interface {
	GetRazorpayOrderId() string
	GetRazorpayPaymentId() string
	GetRazorpaySignature() string
	GetPaymentType() string
	GetAmountInPaise() *int64
}

// VerifyPayment checks the gateway signature over the order and payment ids and
// records the payment once it matches. Nothing is persisted on any failure.
func (s *PaymentService) VerifyPayment(ctx context.Context, identity *auth.Identity, req verifyPaymentRequest) (*entity.Payment, error) {
	if identity == nil || identity.UserID == "" {
		return nil, ErrUnauthenticated
	}

	orderID := req.GetRazorpayOrderId()
	paymentID := req.GetRazorpayPaymentId()
	signature := req.GetRazorpaySignature()
	if orderID == "" || paymentID == "" || signature == "" {
		metrics.IncVerify("fail", "missing_fields")
		return nil, invalidRequest("Missing Razorpay payment details.")
	}

	paymentType := req.GetPaymentType()
	amountPaise := req.GetAmountInPaise()
	if paymentType == "" || amountPaise == nil {
		metrics.IncVerify("fail", "missing_fields")
		return nil, invalidRequest("Missing paymentType or amountInPaise in request body.")
	}
	if !entity.IsValidPaymentType(paymentType) {
		metrics.IncVerify("fail", "invalid_fields")
		return nil, invalidRequest("Invalid payment type.")
	}
	if *amountPaise < 0 {
		metrics.IncVerify("fail", "invalid_fields")
		return nil, invalidRequest("amountInPaise must be >= 0.")
	}

	l := s.logger.WithField("user_id", identity.UserID).WithField("order_id", orderID).WithField("payment_id", paymentID)

	if !s.gateway.VerifyPaymentSignature(orderID, paymentID, signature) {
		metrics.IncVerify("fail", "invalid_signature")
		l.Warn("Payment signature verification failed")
		return nil, ErrInvalidSignature
	}

	var order *entity.Order
	if s.paymentsCfg.EnforceOrderMatch {
		var err error
		order, err = s.orderRepo.FindByRazorpayOrderID(ctx, orderID)
		if err != nil {
			return nil, fmt.Errorf("load gateway order: %w", err)
		}
		if !orderMatches(order, identity.UserID, paymentType, *amountPaise) {
			metrics.IncVerify("fail", "order_mismatch")
			l.WithField("payment_type", paymentType).WithField("amount_paise", *amountPaise).Warn("Verified payment does not match stored order")
			return nil, ErrOrderMismatch
		}
	}

	email := identity.Email
	if email == "" {
		l.Warn("Email claim missing for caller, storing placeholder")
		email = entity.EmailUnavailable
	}

	payment := &entity.Payment{
		UserID:            identity.UserID,
		Email:             email,
		PaymentType:       paymentType,
		AmountPaise:       *amountPaise,
		Currency:          entity.CurrencyINR,
		RazorpayOrderID:   orderID,
		RazorpayPaymentID: paymentID,
		Status:            entity.PaymentStatusSuccess,
		CreatedAt:         s.now(),
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		metrics.IncVerify("fail", "store_error")
		l.WithError(err).Error("Payment verified but could not be recorded")
		return nil, fmt.Errorf("record payment: %w", err)
	}

	if order != nil && order.Status != entity.OrderStatusPaid {
		if err := s.orderRepo.UpdateStatus(ctx, order.ID, entity.OrderStatusPaid, payment.CreatedAt); err != nil {
			l.WithError(err).Warn("Failed to mark gateway order as paid")
		}
	}

	metrics.IncVerify("ok", "none")
	metrics.RecordPayment(payment.PaymentType, payment.Currency, payment.AmountPaise)
	l.WithField("payment_record_id", payment.ID).Info("Payment verified and recorded")

	return payment, nil
}

func orderMatches(order *entity.Order, userID, paymentType string, amountPaise int64) bool {
	if order == nil {
		return false
	}
	return order.UserID == userID && order.PaymentType == paymentType && order.AmountPaise == amountPaise
}
