package usecase

import (
	"context"

	"billing_scheduler/internal/domain/entities"
	"billing_scheduler/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// LogManualReviewNotifier only logs invoices that need a human.
// Alerting (mail, chat, ticketing) is not wired yet.
type LogManualReviewNotifier struct {
	log *zap.Logger
}

var _ interfaces.IManualReviewNotifier = (*LogManualReviewNotifier)(nil)

func NewLogManualReviewNotifier(log *zap.Logger) *LogManualReviewNotifier {
	if log == nil {
		log = zap.NewNop()
	}
	return &LogManualReviewNotifier{log: log.Named("billing.manual_review")}
}

func (n *LogManualReviewNotifier) NotifyManualCheck(_ context.Context, invoice entities.Invoice) {
	n.log.Warn("[billing][manual-review] invoice needs manual check",
		zap.String("invoice_id", invoice.ID),
		zap.String("customer_id", invoice.CustomerID),
		zap.String("amount", invoice.Amount.Value.StringFixed(2)),
		zap.String("currency", string(invoice.Amount.Currency)),
	)
}
