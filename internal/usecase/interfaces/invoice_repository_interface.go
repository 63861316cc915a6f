package interfaces

import (
	"context"

	"billing_scheduler/internal/domain/entities"
)

// IInvoiceRepository abstracts DynamoDB persistence for Invoice.
//
// The billing cycle only needs FetchByStatus and Update. The remaining methods
// back the invoice API:
//   - GetByID returns a zero Invoice (empty ID) when nothing is stored
//   - Update writes status and updated_at of an invoice that already exists
type IInvoiceRepository interface {
	Create(ctx context.Context, invoice entities.Invoice) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	List(ctx context.Context) ([]entities.Invoice, error)
	FetchByStatus(ctx context.Context, status entities.InvoiceStatus) ([]entities.Invoice, error)
	Update(ctx context.Context, invoice entities.Invoice) error
}
