package usecase

import (
	"errors"
	"fmt"
	"time"

	"billing_scheduler/internal/domain/entities"
)

var (
	ErrIllegalInvoiceState  = errors.New("illegal invoice state")
	ErrUnknownChargeOutcome = errors.New("unknown charge outcome")
)

// NextStatusOnFailure walks one step down the retry ladder:
// PENDING -> FAILED1 -> FAILED2 -> FAILED3 -> MANUAL_CHECK.
//
// Any other status is returned unchanged together with ErrIllegalInvoiceState.
func NextStatusOnFailure(status entities.InvoiceStatus) (entities.InvoiceStatus, error) {
	switch status {
	case entities.InvoiceStatusPending:
		return entities.InvoiceStatusFailed1, nil
	case entities.InvoiceStatusFailed1:
		return entities.InvoiceStatusFailed2, nil
	case entities.InvoiceStatusFailed2:
		return entities.InvoiceStatusFailed3, nil
	case entities.InvoiceStatusFailed3:
		return entities.InvoiceStatusManualCheck, nil
	default:
		return status, fmt.Errorf("%w: %q cannot advance on failure", ErrIllegalInvoiceState, status)
	}
}

// NextFiring returns when the given stage should run next.
//
// PENDING is anchored to the 1st of the current month at 08:00 when the
// config asks for it; FAILED stages always count from now.
func NextFiring(stage entities.BillingStage, cfg entities.CycleConfig, now time.Time) time.Time {
	if stage.IsRetry() {
		return cfg.FailedPeriod.AddTo(now)
	}
	anchor := now
	if cfg.AlignToFirstOfMonth {
		anchor = time.Date(now.Year(), now.Month(), 1, 8, 0, 0, 0, now.Location())
	}
	return cfg.PendingPeriod.AddTo(anchor)
}
