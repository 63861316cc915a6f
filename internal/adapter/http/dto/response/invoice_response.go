package response

import (
	"time"

	"billing_scheduler/internal/domain/entities"
)

type InvoiceResponse struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customer_id"`
	Amount     string    `json:"amount"`
	Currency   string    `json:"currency"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func FromInvoice(i entities.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:         i.ID,
		CustomerID: i.CustomerID,
		Amount:     i.Amount.Value.StringFixed(2),
		Currency:   string(i.Amount.Currency),
		Status:     string(i.Status),
		CreatedAt:  i.CreatedAt,
		UpdatedAt:  i.UpdatedAt,
	}
}

func FromInvoices(items []entities.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(items))
	for _, i := range items {
		out = append(out, FromInvoice(i))
	}
	return out
}
