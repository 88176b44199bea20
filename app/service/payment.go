package service

import (
	"context"
	"encoding/hex"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/vibast-solutions/ms-go-member-payments/app/auth"
	"github.com/vibast-solutions/ms-go-member-payments/app/entity"
	"github.com/vibast-solutions/ms-go-member-payments/app/factory"
	"github.com/vibast-solutions/ms-go-member-payments/app/provider"
	"github.com/vibast-solutions/ms-go-member-payments/app/repository"
	"github.com/vibast-solutions/ms-go-member-payments/config"
)

const (
	defaultListLimit = int32(50)
	defaultBatchSize = int32(100)
)

type paymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	FindByID(ctx context.Context, id uint64) (*entity.Payment, error)
	List(ctx context.Context, filter repository.PaymentFilter) ([]*entity.Payment, error)
}

type orderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	FindByRazorpayOrderID(ctx context.Context, razorpayOrderID string) (*entity.Order, error)
	UpdateStatus(ctx context.Context, id uint64, status string, now time.Time) error
	ListStaleCreated(ctx context.Context, cutoff time.Time, limit int32) ([]*entity.Order, error)
}

type PaymentService struct {
	paymentRepo paymentRepository
	orderRepo   orderRepository
	gateway     provider.Provider
	amounts     *AmountResolver
	paymentsCfg config.PaymentsConfig
	logger      logrus.FieldLogger

	now        func() time.Time
	newReceipt func() (string, error)
}

func NewPaymentService(
	paymentRepo paymentRepository,
	orderRepo orderRepository,
	gateway provider.Provider,
	paymentsCfg config.PaymentsConfig,
) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		orderRepo:   orderRepo,
		gateway:     gateway,
		amounts:     NewAmountResolver(paymentsCfg),
		paymentsCfg: paymentsCfg,
		logger:      factory.NewModuleLogger("payments-service"),
		now:         func() time.Time { return time.Now().UTC() },
		newReceipt:  newReceiptID,
	}
}

func (s *PaymentService) GetPayment(ctx context.Context, identity *auth.Identity, id uint64) (*entity.Payment, error) {
	if identity == nil || identity.UserID == "" {
		return nil, ErrUnauthenticated
	}

	payment, err := s.paymentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if payment == nil || payment.UserID != identity.UserID {
		return nil, ErrPaymentNotFound
	}
	return payment, nil
}

func (s *PaymentService) ListPayments(ctx context.Context, identity *auth.Identity, limit, offset int32) ([]*entity.Payment, error) {
	if identity == nil || identity.UserID == "" {
		return nil, ErrUnauthenticated
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	if offset < 0 {
		offset = 0
	}

	return s.paymentRepo.List(ctx, repository.PaymentFilter{
		UserID: identity.UserID,
		Limit:  limit,
		Offset: offset,
	})
}

func (s *PaymentService) batchSize() int32 {
	if s.paymentsCfg.JobBatchSize > 0 {
		return s.paymentsCfg.JobBatchSize
	}
	return defaultBatchSize
}

// newReceiptID is time ordered and fits Razorpay's 40 character receipt limit.
func newReceiptID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return "receipt_" + hex.EncodeToString(id[:]), nil
}
