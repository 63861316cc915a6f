package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"billing_scheduler/internal/domain/entities"
	"billing_scheduler/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvoiceNotFound      = errors.New("invoice not found")
	ErrInvalidInvoiceID     = errors.New("invalid invoice id")
	ErrInvalidCustomerID    = errors.New("invalid customer_id")
	ErrInvalidInvoiceAmount = errors.New("invalid invoice amount")
	ErrInvalidCurrency      = errors.New("invalid currency")
	ErrInvalidInvoiceStatus = errors.New("invalid invoice status")
)

// IInvoiceUseCase exposes the invoice read/write operations used by the API.
//
// Billing itself goes through IBillingCycleUseCase; this use case never
// changes an invoice status on its own.
type IInvoiceUseCase interface {
	Create(ctx context.Context, customerID string, amount decimal.Decimal, currency entities.Currency) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	List(ctx context.Context) ([]entities.Invoice, error)
	ListByStatus(ctx context.Context, status entities.InvoiceStatus) ([]entities.Invoice, error)
}

type InvoiceUseCase struct {
	repo interfaces.IInvoiceRepository
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(repo interfaces.IInvoiceRepository) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo}
}

// Create stores a new PENDING invoice; it is charged on the next PENDING pass.
func (u *InvoiceUseCase) Create(ctx context.Context, customerID string, amount decimal.Decimal, currency entities.Currency) (entities.Invoice, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return entities.Invoice{}, ErrInvalidCustomerID
	}
	if !amount.IsPositive() {
		return entities.Invoice{}, ErrInvalidInvoiceAmount
	}
	currency = entities.Currency(strings.ToUpper(strings.TrimSpace(string(currency))))
	if !currency.Valid() {
		return entities.Invoice{}, ErrInvalidCurrency
	}

	now := time.Now().UTC()
	inv := entities.Invoice{
		ID:         uuid.NewString(),
		CustomerID: customerID,
		Amount:     entities.Money{Value: amount, Currency: currency},
		Status:     entities.InvoiceStatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	return u.repo.Create(ctx, inv)
}

func (u *InvoiceUseCase) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}

	inv, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return inv, nil
}

func (u *InvoiceUseCase) List(ctx context.Context) ([]entities.Invoice, error) {
	return u.repo.List(ctx)
}

func (u *InvoiceUseCase) ListByStatus(ctx context.Context, status entities.InvoiceStatus) ([]entities.Invoice, error) {
	status = entities.InvoiceStatus(strings.ToUpper(strings.TrimSpace(string(status))))
	if !status.Valid() {
		return nil, ErrInvalidInvoiceStatus
	}
	return u.repo.FetchByStatus(ctx, status)
}
