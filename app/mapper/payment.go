package mapper

import (
	"time"

	"github.com/vibast-solutions/ms-go-member-payments/app/entity"
	"github.com/vibast-solutions/ms-go-member-payments/app/service"
	"github.com/vibast-solutions/ms-go-member-payments/app/types"
)

const verifiedMessage = "Payment verified and record saved successfully."

func PaymentToResponse(item *entity.Payment) *types.Payment {
	if item == nil {
		return nil
	}

	return &types.Payment{
		ID:                item.ID,
		UserID:            item.UserID,
		Email:             item.Email,
		PaymentType:       item.PaymentType,
		Amount:            item.Amount(),
		Currency:          item.Currency,
		RazorpayOrderID:   item.RazorpayOrderID,
		RazorpayPaymentID: item.RazorpayPaymentID,
		Status:            item.Status,
		Timestamp:         item.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func PaymentsToResponse(items []*entity.Payment) []*types.Payment {
	result := make([]*types.Payment, 0, len(items))
	for _, item := range items {
		result = append(result, PaymentToResponse(item))
	}
	return result
}

func OrderResultToResponse(item *service.OrderResult) *types.CreateOrderResponse {
	if item == nil {
		return nil
	}

	return &types.CreateOrderResponse{
		OrderID:  item.OrderID,
		Amount:   item.AmountPaise,
		Currency: item.Currency,
		Name:     item.Name,
		Key:      item.KeyID,
		Receipt:  item.Receipt,
	}
}

func VerifiedPaymentToResponse(item *entity.Payment) *types.VerifyPaymentResponse {
	if item == nil {
		return nil
	}

	return &types.VerifyPaymentResponse{
		Status:            "success",
		Message:           verifiedMessage,
		PaymentID:         item.ID,
		UserID:            item.UserID,
		Email:             item.Email,
		PaymentType:       item.PaymentType,
		Amount:            item.Amount(),
		RazorpayOrderID:   item.RazorpayOrderID,
		RazorpayPaymentID: item.RazorpayPaymentID,
	}
}
