package service

import (
	"context"
	"fmt"
	"time"

	"github.com/vibast-solutions/ms-go-member-payments/app/auth"
	"github.com/vibast-solutions/ms-go-member-payments/app/entity"
	"github.com/vibast-solutions/ms-go-member-payments/app/metrics"
	"github.com/vibast-solutions/ms-go-member-payments/app/provider"
)

type createOrderRequest interface {
	GetPaymentType() string
	GetAmount() *float64
}

type OrderResult struct {
	OrderID     string
	AmountPaise int64
	Currency    string
	Receipt     string
	Name        string
	KeyID       string
}

// CreateOrder resolves the charge for the requested payment type and creates
// the matching gateway order. No payment record is written here.
func (s *PaymentService) CreateOrder(ctx context.Context, identity *auth.Identity, req createOrderRequest) (*OrderResult, error) {
	if identity == nil || identity.UserID == "" {
		return nil, ErrUnauthenticated
	}

	paymentType := req.GetPaymentType()
	amountPaise, err := s.amounts.Resolve(paymentType, req.GetAmount())
	if err != nil {
		metrics.IncOrder(paymentType, "rejected")
		return nil, err
	}

	l := s.logger.WithField("user_id", identity.UserID).WithField("payment_type", paymentType)
	l.WithField("amount_paise", amountPaise).Info("Creating gateway order")

	receipt, err := s.newReceipt()
	if err != nil {
		return nil, err
	}

	start := time.Now()
	order, err := s.gateway.CreateOrder(ctx, &provider.CreateOrderInput{
		AmountPaise: amountPaise,
		Currency:    entity.CurrencyINR,
		Receipt:     receipt,
		Notes:       map[string]string{"payment_type": paymentType},
	})
	if err == nil && (order == nil || order.ID == "") {
		err = provider.ErrEmptyOrder
	}
	if err != nil {
		metrics.ObserveOrderGateway("error", time.Since(start))
		metrics.IncOrder(paymentType, "gateway_error")
		l.WithError(err).Error("Gateway order creation failed")
		return nil, &GatewayError{Err: err}
	}
	metrics.ObserveOrderGateway("ok", time.Since(start))

	result := &OrderResult{
		OrderID:     order.ID,
		AmountPaise: amountPaise,
		Currency:    entity.CurrencyINR,
		Receipt:     receipt,
		Name:        s.paymentsCfg.DisplayName,
		KeyID:       s.gateway.KeyID(),
	}
	if order.AmountPaise > 0 {
		result.AmountPaise = order.AmountPaise
	}
	if order.Currency != "" {
		result.Currency = order.Currency
	}
	if order.Receipt != "" {
		result.Receipt = order.Receipt
	}

	now := s.now()
	if err := s.orderRepo.Create(ctx, &entity.Order{
		RazorpayOrderID: result.OrderID,
		Receipt:         result.Receipt,
		UserID:          identity.UserID,
		PaymentType:     paymentType,
		AmountPaise:     result.AmountPaise,
		Currency:        result.Currency,
		Status:          entity.OrderStatusCreated,
		CreatedAt:       now,
		UpdatedAt:       now,
	}); err != nil {
		metrics.IncOrder(paymentType, "store_error")
		l.WithError(err).WithField("order_id", result.OrderID).Error("Failed to store gateway order")
		return nil, fmt.Errorf("store gateway order: %w", err)
	}

	metrics.IncOrder(paymentType, "created")
	l.WithField("order_id", result.OrderID).WithField("receipt", result.Receipt).Info("Gateway order created")

	return result, nil
}
