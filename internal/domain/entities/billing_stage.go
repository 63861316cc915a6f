package entities

// BillingStage is the position of the billing cycle in its four-step rotation.
//
// A stage is not an invoice status, but each stage queries exactly one status.
type BillingStage string

const (
	BillingStagePending BillingStage = "PENDING"
	BillingStageFailed1 BillingStage = "FAILED1"
	BillingStageFailed2 BillingStage = "FAILED2"
	BillingStageFailed3 BillingStage = "FAILED3"
)

// BillingStages lists the stages in rotation order.
var BillingStages = []BillingStage{
	BillingStagePending,
	BillingStageFailed1,
	BillingStageFailed2,
	BillingStageFailed3,
}

func (s BillingStage) Valid() bool {
	switch s {
	case BillingStagePending, BillingStageFailed1, BillingStageFailed2, BillingStageFailed3:
		return true
	}
	return false
}

// Status is the invoice status fetched when the cycle runs this stage.
func (s BillingStage) Status() InvoiceStatus {
	return InvoiceStatus(s)
}

// Next returns the following stage: PENDING, FAILED1, FAILED2, FAILED3, PENDING, ...
// An unknown stage restarts the rotation at PENDING.
func (s BillingStage) Next() BillingStage {
	switch s {
	case BillingStagePending:
		return BillingStageFailed1
	case BillingStageFailed1:
		return BillingStageFailed2
	case BillingStageFailed2:
		return BillingStageFailed3
	default:
		return BillingStagePending
	}
}

// IsRetry reports whether the stage is one of the FAILED retry passes.
func (s BillingStage) IsRetry() bool {
	return s == BillingStageFailed1 || s == BillingStageFailed2 || s == BillingStageFailed3
}
