package metrics

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNorm(t *testing.T) {
	if norm("  Donation ") != "donation" {
		t.Fatalf("unexpected norm: %q", norm("  Donation "))
	}
	if norm("") != "unknown" {
		t.Fatal("expected unknown for empty label")
	}
	if norm("a-very-long-label-value-that-should-be-collapsed") != "other" {
		t.Fatal("expected long labels to collapse to other")
	}
}

func TestPaymentTypeLabel(t *testing.T) {
	cases := map[string]string{
		"event_fee":      "event_fee",
		"membership_fee": "membership_fee",
		"donation":       "donation",
		" donation ":     "donation",
		"":               "unknown",
		"Donation":       "other",
		"junk_1":         "other",
	}
	for in, want := range cases {
		if got := paymentTypeLabel(in); got != want {
			t.Fatalf("%q: expected %q, got %q", in, want, got)
		}
	}
}

func TestIncOrderBoundsPaymentTypeSeries(t *testing.T) {
	before := testutil.CollectAndCount(ordersTotal)
	for i := 0; i < 100; i++ {
		IncOrder(fmt.Sprintf("junk_%d", i), "rejected")
	}
	if got := testutil.CollectAndCount(ordersTotal); got > before+1 {
		t.Fatalf("expected at most one new series for unknown types, got %d new", got-before)
	}
	if got := testutil.ToFloat64(ordersTotal.WithLabelValues("other", "rejected")); got < 100 {
		t.Fatalf("expected unknown types counted under other, got %v", got)
	}
}

func TestCountersIncrement(t *testing.T) {
	before := testutil.ToFloat64(verifyRequestsTotal.WithLabelValues("fail", "invalid_signature"))
	IncVerify("fail", "invalid_signature")
	if got := testutil.ToFloat64(verifyRequestsTotal.WithLabelValues("fail", "invalid_signature")); got != before+1 {
		t.Fatalf("expected counter to increment, got %v", got)
	}

	beforeRevenue := testutil.ToFloat64(paymentsRevenuePaiseTotal.WithLabelValues("inr"))
	RecordPayment("event_fee", "INR", 50000)
	if got := testutil.ToFloat64(paymentsRevenuePaiseTotal.WithLabelValues("inr")); got != beforeRevenue+50000 {
		t.Fatalf("unexpected revenue: %v", got)
	}

	beforeJobs := testutil.ToFloat64(jobRunsTotal.WithLabelValues("expire_orders", "error"))
	ObserveJob("expire_orders", errors.New("boom"), time.Millisecond)
	if got := testutil.ToFloat64(jobRunsTotal.WithLabelValues("expire_orders", "error")); got != beforeJobs+1 {
		t.Fatalf("unexpected job runs: %v", got)
	}
}

func TestMustRegisterIsIdempotent(t *testing.T) {
	MustRegister()
	MustRegister()
}
