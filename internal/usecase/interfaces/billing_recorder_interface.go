package interfaces

import (
	"time"

	"billing_scheduler/internal/domain/entities"
)

// IBillingRecorder receives billing cycle measurements (Prometheus in production).
type IBillingRecorder interface {
	ObserveCharge(stage entities.BillingStage, outcome string, status entities.InvoiceStatus)
	ObserveTick(report entities.TickReport)
	SetStage(stage entities.BillingStage, nextRunAt time.Time)
}
