package usecase

import (
	"fmt"

	"billing_scheduler/internal/domain/entities"
)

// ClassifyChargeResult decides the status an invoice gets after a charge attempt.
//
//   - success                                 => PAID, whatever the current status
//   - currency mismatch, customer not found   => MANUAL_CHECK, never retried
//   - plain failure, network, other errors    => one step down the retry ladder
//
// Errors the provider raised but nobody classified are retried like network
// errors. If they keep failing the ladder still ends in MANUAL_CHECK.
//
// The returned error is ErrIllegalInvoiceState when the invoice cannot advance;
// the status returned alongside is then the unchanged current status.
func ClassifyChargeResult(invoice entities.Invoice, outcome entities.ChargeOutcome) (entities.InvoiceStatus, error) {
	switch outcome.Kind {
	case entities.OutcomeSuccess:
		return entities.InvoiceStatusPaid, nil
	case entities.OutcomeFailure:
		return NextStatusOnFailure(invoice.Status)
	case entities.OutcomeError:
		switch outcome.ErrorKind {
		case entities.ChargeErrorCurrencyMismatch, entities.ChargeErrorCustomerNotFound:
			return entities.InvoiceStatusManualCheck, nil
		case entities.ChargeErrorNetwork, entities.ChargeErrorOther, entities.ChargeErrorNone:
			return NextStatusOnFailure(invoice.Status)
		}
	}
	return invoice.Status, fmt.Errorf("%w: kind=%s error_kind=%s", ErrUnknownChargeOutcome, outcome.Kind, outcome.ErrorKind)
}
