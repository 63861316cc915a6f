package response

import (
	"testing"
	"time"

	"billing_scheduler/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestFromCycleStatus(t *testing.T) {
	next := time.Date(2026, time.June, 1, 8, 0, 0, 0, time.UTC)
	status := entities.CycleStatus{
		Stage:     entities.BillingStageFailed1,
		Armed:     true,
		NextRunAt: next,
		LastRun: &entities.TickReport{
			RunID:    "run-1",
			Stage:    entities.BillingStagePending,
			Paid:     3,
			Failed:   1,
			Duration: 1500 * time.Millisecond,
		},
		Config: entities.CycleConfig{
			PendingPeriod: entities.Period{Unit: entities.PeriodUnitMonth, Amount: 1},
			FailedPeriod:  entities.Period{Unit: entities.PeriodUnitDay, Amount: 2},
		},
	}

	got := FromCycleStatus(status)
	if got.Stage != "FAILED1" || !got.Armed {
		t.Fatalf("unexpected stage/armed: %+v", got)
	}
	if got.NextRunAt == nil || !got.NextRunAt.Equal(next) {
		t.Fatalf("expected next run %s, got %v", next, got.NextRunAt)
	}
	if got.PendingPeriod != "1 month" || got.FailedPeriod != "2 day" {
		t.Fatalf("unexpected periods %q %q", got.PendingPeriod, got.FailedPeriod)
	}
	if got.LastRun == nil || got.LastRun.DurationMS != 1500 || got.LastRun.Paid != 3 {
		t.Fatalf("unexpected last run %+v", got.LastRun)
	}

	status.Armed = false
	status.LastRun = nil
	got = FromCycleStatus(status)
	if got.NextRunAt != nil || got.LastRun != nil {
		t.Fatalf("expected no next run and no last run, got %+v", got)
	}
}

func TestFromInvoice(t *testing.T) {
	inv := entities.Invoice{
		ID:         "inv-1",
		CustomerID: "cus-1",
		Amount:     entities.Money{Value: decimal.RequireFromString("7.5"), Currency: entities.CurrencySEK},
		Status:     entities.InvoiceStatusPaid,
	}

	got := FromInvoice(inv)
	if got.Amount != "7.50" || got.Currency != "SEK" || got.Status != "PAID" {
		t.Fatalf("unexpected response %+v", got)
	}
	if n := len(FromInvoices(nil)); n != 0 {
		t.Fatalf("expected empty slice, got %d", n)
	}
}
