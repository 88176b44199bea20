package grpc

import (
	"context"
	"errors"

	"github.com/vibast-solutions/ms-go-member-payments/app/auth"
	"github.com/vibast-solutions/ms-go-member-payments/app/mapper"
	"github.com/vibast-solutions/ms-go-member-payments/app/service"
	"github.com/vibast-solutions/ms-go-member-payments/app/types"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

type Server struct {
	paymentService *service.PaymentService
}

func NewServer(paymentService *service.PaymentService) *Server {
	return &Server{paymentService: paymentService}
}

func (s *Server) CreateOrder(ctx context.Context, msg *structpb.Struct) (*structpb.Struct, error) {
	l := loggerWithContext(ctx)
	identity, ok := auth.IdentityFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "unauthorized")
	}

	req, err := types.NewCreateOrderRequestFromStruct(msg)
	if err != nil {
		l.WithError(err).Debug("Create order decode failed")
		return nil, status.Error(codes.InvalidArgument, "invalid request body")
	}

	result, err := s.paymentService.CreateOrder(ctx, identity, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRequest):
			return nil, status.Error(codes.InvalidArgument, err.Error())
		case errors.Is(err, service.ErrUnauthenticated):
			return nil, status.Error(codes.Unauthenticated, "unauthorized")
		case errors.Is(err, service.ErrGatewayFailure):
			l.WithError(err).Error("Create order failed")
			return nil, status.Errorf(codes.Unavailable, "Could not create Razorpay order: %s", gatewayDetails(err))
		default:
			l.WithError(err).Error("Create order failed")
			return nil, status.Error(codes.Internal, "internal server error")
		}
	}

	return toStruct(mapper.OrderResultToResponse(result))
}

func (s *Server) VerifyPayment(ctx context.Context, msg *structpb.Struct) (*structpb.Struct, error) {
	l := loggerWithContext(ctx)
	identity, ok := auth.IdentityFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "unauthorized")
	}

	req, err := types.NewVerifyPaymentRequestFromStruct(msg)
	if err != nil {
		l.WithError(err).Debug("Verify payment decode failed")
		return nil, status.Error(codes.InvalidArgument, "invalid request body")
	}

	payment, err := s.paymentService.VerifyPayment(ctx, identity, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRequest):
			return nil, status.Error(codes.InvalidArgument, err.Error())
		case errors.Is(err, service.ErrInvalidSignature):
			return nil, status.Error(codes.InvalidArgument, "Invalid payment signature.")
		case errors.Is(err, service.ErrOrderMismatch):
			return nil, status.Error(codes.FailedPrecondition, "Payment details do not match the original order.")
		case errors.Is(err, service.ErrUnauthenticated):
			return nil, status.Error(codes.Unauthenticated, "unauthorized")
		default:
			l.WithError(err).Error("Verify payment failed")
			return nil, status.Error(codes.Internal, "Internal server error during payment verification.")
		}
	}

	return toStruct(mapper.VerifiedPaymentToResponse(payment))
}

func toStruct(v interface{}) (*structpb.Struct, error) {
	out, err := types.ToStruct(v)
	if err != nil {
		return nil, status.Error(codes.Internal, "internal server error")
	}
	return out, nil
}

func gatewayDetails(err error) string {
	var gwErr *service.GatewayError
	if errors.As(err, &gwErr) && gwErr.Err != nil {
		return gwErr.Err.Error()
	}
	return err.Error()
}
