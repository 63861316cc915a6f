package request

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount = errors.New("invalid amount")
)

// CreateInvoiceRequest creates a PENDING invoice.
//
// Amount is a decimal string ("125.50") so cents never go through a float.
type CreateInvoiceRequest struct {
	CustomerID string `json:"customer_id" binding:"required"`
	Amount     string `json:"amount" binding:"required"`
	Currency   string `json:"currency" binding:"required"`
}

func (r CreateInvoiceRequest) ResolveAmount() (decimal.Decimal, error) {
	v, err := decimal.NewFromString(strings.TrimSpace(r.Amount))
	if err != nil || !v.IsPositive() {
		return decimal.Decimal{}, ErrInvalidAmount
	}
	return v, nil
}

// RunStageRequest re-drives one billing stage by hand.
type RunStageRequest struct {
	Stage string `json:"stage" binding:"required"`
}
