package service

import "errors"

var (
	ErrInvalidRequest   = errors.New("invalid request")
	ErrUnauthenticated  = errors.New("caller identity is required")
	ErrInvalidSignature = errors.New("invalid payment signature")
	ErrOrderMismatch    = errors.New("payment does not match the original order")
	ErrGatewayFailure   = errors.New("payment gateway failure")
	ErrPaymentNotFound  = errors.New("payment not found")
)

// RequestError is a client input error whose message is safe to return to the caller.
type RequestError struct {
	Message string
}

func (e *RequestError) Error() string {
	return e.Message
}

func (e *RequestError) Is(target error) bool {
	return target == ErrInvalidRequest
}

func invalidRequest(message string) error {
	return &RequestError{Message: message}
}

// GatewayError carries the gateway's own failure so it can be reported as details.
type GatewayError struct {
	Err error
}

func (e *GatewayError) Error() string {
	return ErrGatewayFailure.Error() + ": " + e.Err.Error()
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

func (e *GatewayError) Is(target error) bool {
	return target == ErrGatewayFailure
}
