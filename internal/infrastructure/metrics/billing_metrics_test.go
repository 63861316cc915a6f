package metrics

import (
	"testing"
	"time"

	"billing_scheduler/internal/domain/entities"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func newTestMetrics(t *testing.T) *BillingMetrics {
	t.Helper()
	return NewBillingMetrics(prometheus.NewRegistry(), Config{ServiceName: "billing", Environment: "test"})
}

func TestObserveCharge(t *testing.T) {
	m := newTestMetrics(t)

	m.ObserveCharge(entities.BillingStageFailed2, "network", entities.InvoiceStatusFailed3)
	m.ObserveCharge(entities.BillingStageFailed2, "network", entities.InvoiceStatusFailed3)

	got := testutil.ToFloat64(m.charges.WithLabelValues("FAILED2", "network", "FAILED3"))
	if got != 2 {
		t.Fatalf("expected 2 charges, got %v", got)
	}
}

func TestObserveTick(t *testing.T) {
	m := newTestMetrics(t)

	m.ObserveTick(entities.TickReport{Stage: entities.BillingStagePending, Fetched: 5, UpdateErrors: 2, Duration: time.Second})
	m.ObserveTick(entities.TickReport{Stage: entities.BillingStagePending, FetchFailed: true})

	if got := testutil.ToFloat64(m.ticks.WithLabelValues("PENDING", TickResultOK)); got != 1 {
		t.Fatalf("expected 1 ok tick, got %v", got)
	}
	if got := testutil.ToFloat64(m.ticks.WithLabelValues("PENDING", TickResultFetchFailed)); got != 1 {
		t.Fatalf("expected 1 fetch_failed tick, got %v", got)
	}
	if got := testutil.ToFloat64(m.tickInvoices.WithLabelValues("PENDING")); got != 5 {
		t.Fatalf("expected 5 invoices, got %v", got)
	}
	if got := testutil.ToFloat64(m.updateErrors.WithLabelValues("PENDING")); got != 2 {
		t.Fatalf("expected 2 update errors, got %v", got)
	}
}

func TestSetStage(t *testing.T) {
	m := newTestMetrics(t)
	at := time.Date(2026, time.June, 1, 8, 0, 0, 0, time.UTC)

	m.SetStage(entities.BillingStagePending, at)
	m.SetStage(entities.BillingStageFailed1, at.Add(time.Hour))

	if got := testutil.ToFloat64(m.stage.WithLabelValues("FAILED1")); got != 1 {
		t.Fatalf("expected FAILED1 active, got %v", got)
	}
	if got := testutil.ToFloat64(m.stage.WithLabelValues("PENDING")); got != 0 {
		t.Fatalf("expected PENDING inactive, got %v", got)
	}
	if got := testutil.ToFloat64(m.nextRun); got != float64(at.Add(time.Hour).Unix()) {
		t.Fatalf("unexpected next run %v", got)
	}
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *BillingMetrics
	m.ObserveCharge(entities.BillingStagePending, "success", entities.InvoiceStatusPaid)
	m.ObserveTick(entities.TickReport{})
	m.SetStage(entities.BillingStagePending, time.Now())
}
