package metrics

import (
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/vibast-solutions/ms-go-member-payments/app/entity"
)

func init() {
	register(
		ordersTotal,
		orderGatewayDuration,
		verifyRequestsTotal,
		paymentsRecordedTotal,
		paymentsRevenuePaiseTotal,
	)
}

var (
	// result: created|rejected|gateway_error|store_error
	ordersTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payment_orders_total",
			Help: "Create-order calls by payment type and result.",
		},
		[]string{"payment_type", "result"},
	)

	orderGatewayDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "payment_order_gateway_duration_seconds",
			Help:    "Latency of gateway order creation in seconds.",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
		},
		[]string{"result"},
	)

	// reason (fail only): missing_fields|invalid_signature|order_mismatch|store_error
	verifyRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payment_verify_requests_total",
			Help: "Verify-payment calls by result and bounded reason.",
		},
		[]string{"result", "reason"},
	)

	paymentsRecordedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payments_recorded_total",
			Help: "Successful payments persisted, by payment type.",
		},
		[]string{"payment_type"},
	)

	paymentsRevenuePaiseTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payments_revenue_paise_total",
			Help: "Sum of recorded payment amounts in minor units, by currency.",
		},
		[]string{"currency"},
	)
)

func IncOrder(paymentType, result string) {
	ordersTotal.WithLabelValues(paymentTypeLabel(paymentType), norm(result)).Inc()
}

func ObserveOrderGateway(result string, d time.Duration) {
	orderGatewayDuration.WithLabelValues(norm(result)).Observe(d.Seconds())
}

func IncVerify(result, reason string) {
	verifyRequestsTotal.WithLabelValues(norm(result), norm(reason)).Inc()
}

func RecordPayment(paymentType, currency string, amountPaise int64) {
	paymentsRecordedTotal.WithLabelValues(paymentTypeLabel(paymentType)).Inc()
	paymentsRevenuePaiseTotal.WithLabelValues(norm(currency)).Add(float64(amountPaise))
}

// paymentTypeLabel collapses caller supplied types outside the closed set to "other".
func paymentTypeLabel(paymentType string) string {
	paymentType = strings.TrimSpace(paymentType)
	if paymentType == "" {
		return "unknown"
	}
	if !entity.IsValidPaymentType(paymentType) {
		return "other"
	}
	return paymentType
}

// norm is for server chosen label values only; it does not bound caller input.
func norm(v string) string {
	v = strings.ToLower(strings.TrimSpace(v))
	if v == "" {
		return "unknown"
	}
	if len(v) > 32 {
		return "other"
	}
	return v
}
