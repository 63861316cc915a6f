package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus represents where an invoice is in the collection lifecycle.
//
// PENDING and FAILED1..FAILED3 are picked up by the billing cycle.
// PAID and MANUAL_CHECK are terminal: the cycle never reads or mutates them again.
type InvoiceStatus string

const (
	InvoiceStatusPending     InvoiceStatus = "PENDING"
	InvoiceStatusFailed1     InvoiceStatus = "FAILED1"
	InvoiceStatusFailed2     InvoiceStatus = "FAILED2"
	InvoiceStatusFailed3     InvoiceStatus = "FAILED3"
	InvoiceStatusPaid        InvoiceStatus = "PAID"
	InvoiceStatusManualCheck InvoiceStatus = "MANUAL_CHECK"
)

// Valid reports whether s is one of the six known statuses.
func (s InvoiceStatus) Valid() bool {
	switch s {
	case InvoiceStatusPending, InvoiceStatusFailed1, InvoiceStatusFailed2, InvoiceStatusFailed3,
		InvoiceStatusPaid, InvoiceStatusManualCheck:
		return true
	}
	return false
}

func (s InvoiceStatus) IsTerminal() bool {
	return s == InvoiceStatusPaid || s == InvoiceStatusManualCheck
}

// Currency is the ISO code of the invoice amount.
type Currency string

const (
	CurrencyEUR Currency = "EUR"
	CurrencyUSD Currency = "USD"
	CurrencyDKK Currency = "DKK"
	CurrencySEK Currency = "SEK"
	CurrencyGBP Currency = "GBP"
)

func (c Currency) Valid() bool {
	switch c {
	case CurrencyEUR, CurrencyUSD, CurrencyDKK, CurrencySEK, CurrencyGBP:
		return true
	}
	return false
}

// Money is a decimal amount in a given currency.
type Money struct {
	Value    decimal.Decimal `json:"value"`
	Currency Currency        `json:"currency"`
}

// Invoice is the unit the billing cycle tries to collect.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (status-index): status
type Invoice struct {
	ID         string        `json:"id"`
	CustomerID string        `json:"customer_id"`
	Amount     Money         `json:"amount"`
	Status     InvoiceStatus `json:"status"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

// WithStatus returns a copy of the invoice carrying the new status.
func (i Invoice) WithStatus(status InvoiceStatus) Invoice {
	i.Status = status
	return i
}
