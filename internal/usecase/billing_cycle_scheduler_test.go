package usecase

import (
	"context"
	"testing"
	"time"

	"billing_scheduler/internal/domain/entities"
	"billing_scheduler/internal/infrastructure/scheduler"
	"billing_scheduler/internal/usecase/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestBillingCycleUseCase_WithTimerScheduler(t *testing.T) {
	log := zaptest.NewLogger(t)
	repo := newMemoryInvoiceRepo(
		testInvoice("inv-1", entities.InvoiceStatusPending),
		testInvoice("inv-2", entities.InvoiceStatusPending),
	)
	gateway := gatewayFunc(func(_ context.Context, inv entities.Invoice) (bool, error) {
		return inv.ID == "inv-1", nil
	})
	sched := scheduler.New(log)

	cycle, err := NewBillingCycleUseCase(log, repo, gateway, sched, BillingCycleOptions{
		Config: entities.CycleConfig{
			PendingPeriod: entities.Period{Unit: entities.PeriodUnitSecond, Amount: 1},
			FailedPeriod:  entities.Period{Unit: entities.PeriodUnitHour, Amount: 1},
		},
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, cycle.Start(ctx))
	// Cancelling the starting context must not cancel the firing.
	cancel()

	assert.Eventually(t, func() bool {
		st := cycle.Status()
		return st.LastRun != nil && st.Stage == entities.BillingStageFailed1 && st.Armed
	}, 5*time.Second, 20*time.Millisecond)

	cycle.Stop()
	err = sched.Schedule(context.Background(), 0, func(context.Context) {})
	assert.ErrorIs(t, err, interfaces.ErrSchedulerStopped)

	st := cycle.Status()
	assert.False(t, st.Armed)
	require.NotNil(t, st.LastRun)
	assert.Equal(t, 1, st.LastRun.Paid)
	assert.Equal(t, 1, st.LastRun.Failed)

	got, _ := repo.GetByID(context.Background(), "inv-1")
	assert.Equal(t, entities.InvoiceStatusPaid, got.Status)
	got, _ = repo.GetByID(context.Background(), "inv-2")
	assert.Equal(t, entities.InvoiceStatusFailed1, got.Status)
}
