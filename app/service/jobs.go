package service

import (
	"context"

	"github.com/vibast-solutions/ms-go-member-payments/app/entity"
)

// RunExpireOrdersBatch marks gateway orders that were never verified within the
// configured TTL as expired. Expired orders can still be verified later.
func (s *PaymentService) RunExpireOrdersBatch(ctx context.Context) error {
	if s.paymentsCfg.OrderTTL <= 0 {
		return nil
	}

	now := s.now()
	cutoff := now.Add(-s.paymentsCfg.OrderTTL)
	items, err := s.orderRepo.ListStaleCreated(ctx, cutoff, s.batchSize())
	if err != nil {
		return err
	}

	var firstErr error
	expired := 0
	for _, order := range items {
		if order == nil || order.Status != entity.OrderStatusCreated {
			continue
		}
		if err := s.orderRepo.UpdateStatus(ctx, order.ID, entity.OrderStatusExpired, now); err != nil {
			firstErr = keepFirstErr(firstErr, err)
			continue
		}
		expired++
	}

	s.logger.WithField("expired", expired).WithField("scanned", len(items)).Debug("Expire orders batch finished")
	return firstErr
}

func keepFirstErr(current, next error) error {
	if current != nil {
		return current
	}
	return next
}
