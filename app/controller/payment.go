package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/vibast-solutions/ms-go-member-payments/app/auth"
	"github.com/vibast-solutions/ms-go-member-payments/app/factory"
	"github.com/vibast-solutions/ms-go-member-payments/app/mapper"
	"github.com/vibast-solutions/ms-go-member-payments/app/service"
	"github.com/vibast-solutions/ms-go-member-payments/app/types"
)

const (
	createOrderFailedMessage = "Could not create Razorpay order"
	verifyFailedMessage      = "Internal server error during payment verification."
	invalidSignatureMessage  = "Invalid payment signature."
	orderMismatchMessage     = "Payment details do not match the original order."
)

type PaymentController struct {
	paymentService *service.PaymentService
	logger         logrus.FieldLogger
}

func NewPaymentController(paymentService *service.PaymentService) *PaymentController {
	return &PaymentController{
		paymentService: paymentService,
		logger:         factory.NewModuleLogger("payments-controller"),
	}
}

func (c *PaymentController) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, &types.HealthResponse{Status: "ok"})
}

func (c *PaymentController) CreateOrder(ctx echo.Context) error {
	identity, ok := identityFrom(ctx)
	if !ok {
		return c.writeError(ctx, http.StatusUnauthorized, "unauthorized")
	}

	req, err := types.NewCreateOrderRequestFromContext(ctx)
	if err != nil {
		return c.writeError(ctx, http.StatusBadRequest, "invalid request body")
	}

	result, err := c.paymentService.CreateOrder(ctx.Request().Context(), identity, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRequest):
			return c.writeError(ctx, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrUnauthenticated):
			return c.writeError(ctx, http.StatusUnauthorized, "unauthorized")
		default:
			factory.LoggerWithContext(c.logger, ctx).WithError(err).Error("Create order failed")
			return ctx.JSON(http.StatusInternalServerError, &types.ErrorResponse{
				Error:   createOrderFailedMessage,
				Details: errorDetails(err),
			})
		}
	}

	return ctx.JSON(http.StatusOK, mapper.OrderResultToResponse(result))
}

func (c *PaymentController) VerifyPayment(ctx echo.Context) error {
	identity, ok := identityFrom(ctx)
	if !ok {
		return c.writeError(ctx, http.StatusUnauthorized, "unauthorized")
	}

	req, err := types.NewVerifyPaymentRequestFromContext(ctx)
	if err != nil {
		return c.writeStatusError(ctx, http.StatusBadRequest, "Invalid request body.", "")
	}

	payment, err := c.paymentService.VerifyPayment(ctx.Request().Context(), identity, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRequest):
			return c.writeStatusError(ctx, http.StatusBadRequest, err.Error(), "")
		case errors.Is(err, service.ErrInvalidSignature):
			return c.writeStatusError(ctx, http.StatusBadRequest, invalidSignatureMessage, "")
		case errors.Is(err, service.ErrOrderMismatch):
			return c.writeStatusError(ctx, http.StatusBadRequest, orderMismatchMessage, "")
		case errors.Is(err, service.ErrUnauthenticated):
			return c.writeError(ctx, http.StatusUnauthorized, "unauthorized")
		default:
			factory.LoggerWithContext(c.logger, ctx).WithError(err).Error("Verify payment failed")
			return c.writeStatusError(ctx, http.StatusInternalServerError, verifyFailedMessage, err.Error())
		}
	}

	return ctx.JSON(http.StatusOK, mapper.VerifiedPaymentToResponse(payment))
}

func (c *PaymentController) GetPayment(ctx echo.Context) error {
	identity, ok := identityFrom(ctx)
	if !ok {
		return c.writeError(ctx, http.StatusUnauthorized, "unauthorized")
	}

	req, err := types.NewGetPaymentRequestFromContext(ctx)
	if err != nil {
		return c.writeError(ctx, http.StatusBadRequest, "invalid request")
	}
	if err := req.Validate(); err != nil {
		return c.writeError(ctx, http.StatusBadRequest, err.Error())
	}

	item, err := c.paymentService.GetPayment(ctx.Request().Context(), identity, req.ID)
	if err != nil {
		if errors.Is(err, service.ErrPaymentNotFound) {
			return c.writeError(ctx, http.StatusNotFound, "payment not found")
		}
		factory.LoggerWithContext(c.logger, ctx).WithError(err).Error("Get payment failed")
		return c.writeError(ctx, http.StatusInternalServerError, "internal server error")
	}

	return ctx.JSON(http.StatusOK, &types.PaymentEnvelopeResponse{Payment: mapper.PaymentToResponse(item)})
}

func (c *PaymentController) ListPayments(ctx echo.Context) error {
	identity, ok := identityFrom(ctx)
	if !ok {
		return c.writeError(ctx, http.StatusUnauthorized, "unauthorized")
	}

	req, err := types.NewListPaymentsRequestFromContext(ctx)
	if err != nil {
		return c.writeError(ctx, http.StatusBadRequest, "invalid request")
	}
	if err := req.Validate(); err != nil {
		return c.writeError(ctx, http.StatusBadRequest, err.Error())
	}

	items, err := c.paymentService.ListPayments(ctx.Request().Context(), identity, req.Limit, req.Offset)
	if err != nil {
		factory.LoggerWithContext(c.logger, ctx).WithError(err).Error("List payments failed")
		return c.writeError(ctx, http.StatusInternalServerError, "internal server error")
	}

	return ctx.JSON(http.StatusOK, &types.ListPaymentsResponse{Payments: mapper.PaymentsToResponse(items)})
}

func (c *PaymentController) writeError(ctx echo.Context, statusCode int, message string) error {
	return ctx.JSON(statusCode, &types.ErrorResponse{Error: message})
}

func (c *PaymentController) writeStatusError(ctx echo.Context, statusCode int, message, details string) error {
	return ctx.JSON(statusCode, &types.StatusErrorResponse{Status: "error", Message: message, Details: details})
}

func identityFrom(ctx echo.Context) (*auth.Identity, bool) {
	if identity, ok := auth.IdentityFromEcho(ctx); ok {
		return identity, true
	}
	return auth.IdentityFromContext(ctx.Request().Context())
}

// errorDetails prefers the gateway's own message over the wrapped one.
func errorDetails(err error) string {
	var gwErr *service.GatewayError
	if errors.As(err, &gwErr) && gwErr.Err != nil {
		return gwErr.Err.Error()
	}
	return err.Error()
}
