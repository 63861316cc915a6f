package interfaces

import (
	"context"

	"billing_scheduler/internal/domain/entities"
)

// IManualReviewNotifier is told about invoices that left automated billing.
type IManualReviewNotifier interface {
	NotifyManualCheck(ctx context.Context, invoice entities.Invoice)
}
