package interfaces

import (
	"context"

	"billing_scheduler/internal/domain/entities"
)

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
//
// Charge returns paid=false with a nil error when the provider declined the
// charge. Provider errors are wrapped around entities.ErrCurrencyMismatch,
// entities.ErrCustomerNotFound or entities.ErrNetwork when they can be classified.
type IPaymentGateway interface {
	Charge(ctx context.Context, invoice entities.Invoice) (paid bool, err error)
}
