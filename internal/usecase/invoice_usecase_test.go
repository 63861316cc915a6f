package usecase

import (
	"context"
	"errors"
	"testing"

	"billing_scheduler/internal/domain/entities"
	mock_interfaces "billing_scheduler/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestInvoiceUseCase_Create(t *testing.T) {
	t.Run("validations", func(t *testing.T) {
		uc := NewInvoiceUseCase(nil)
		cases := []struct {
			name     string
			customer string
			amount   decimal.Decimal
			currency entities.Currency
			want     error
		}{
			{name: "empty customer", customer: " ", amount: decimal.NewFromInt(1), currency: entities.CurrencyEUR, want: ErrInvalidCustomerID},
			{name: "zero amount", customer: "cus-1", amount: decimal.Zero, currency: entities.CurrencyEUR, want: ErrInvalidInvoiceAmount},
			{name: "negative amount", customer: "cus-1", amount: decimal.NewFromInt(-3), currency: entities.CurrencyEUR, want: ErrInvalidInvoiceAmount},
			{name: "unknown currency", customer: "cus-1", amount: decimal.NewFromInt(1), currency: "BTC", want: ErrInvalidCurrency},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := uc.Create(context.Background(), tc.customer, tc.amount, tc.currency)
				if !errors.Is(err, tc.want) {
					t.Fatalf("expected %v, got %v", tc.want, err)
				}
			})
		}
	})

	t.Run("creates pending invoice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		uc := NewInvoiceUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Invoice{})).DoAndReturn(
			func(_ context.Context, inv entities.Invoice) (entities.Invoice, error) {
				if inv.ID == "" || inv.CustomerID != "cus-1" {
					t.Fatalf("unexpected invoice: %+v", inv)
				}
				if inv.Status != entities.InvoiceStatusPending {
					t.Fatalf("new invoices must be PENDING, got %s", inv.Status)
				}
				if inv.Amount.Currency != entities.CurrencyDKK || !inv.Amount.Value.Equal(decimal.RequireFromString("12.50")) {
					t.Fatalf("unexpected amount: %+v", inv.Amount)
				}
				if inv.CreatedAt.IsZero() || !inv.CreatedAt.Equal(inv.UpdatedAt) {
					t.Fatalf("timestamps must be set")
				}
				return inv, nil
			},
		)

		inv, err := uc.Create(context.Background(), " cus-1 ", decimal.RequireFromString("12.50"), "dkk")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if inv.Status != entities.InvoiceStatusPending {
			t.Fatalf("unexpected status %s", inv.Status)
		}
	})
}

func TestInvoiceUseCase_GetByID(t *testing.T) {
	t.Run("empty id", func(t *testing.T) {
		uc := NewInvoiceUseCase(nil)
		if _, err := uc.GetByID(context.Background(), ""); !errors.Is(err, ErrInvalidInvoiceID) {
			t.Fatalf("expected ErrInvalidInvoiceID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		uc := NewInvoiceUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "404").Return(entities.Invoice{}, nil)

		if _, err := uc.GetByID(context.Background(), "404"); !errors.Is(err, ErrInvoiceNotFound) {
			t.Fatalf("expected ErrInvoiceNotFound, got %v", err)
		}
	})

	t.Run("repository error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		uc := NewInvoiceUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(entities.Invoice{}, errors.New("db"))

		if _, err := uc.GetByID(context.Background(), "inv-1"); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		uc := NewInvoiceUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(entities.Invoice{ID: "inv-1", Status: entities.InvoiceStatusPaid}, nil)

		inv, err := uc.GetByID(context.Background(), "inv-1")
		if err != nil || inv.ID != "inv-1" {
			t.Fatalf("unexpected result: %+v %v", inv, err)
		}
	})
}

func TestInvoiceUseCase_ListByStatus(t *testing.T) {
	t.Run("invalid status", func(t *testing.T) {
		uc := NewInvoiceUseCase(nil)
		if _, err := uc.ListByStatus(context.Background(), "LOST"); !errors.Is(err, ErrInvalidInvoiceStatus) {
			t.Fatalf("expected ErrInvalidInvoiceStatus, got %v", err)
		}
	})

	t.Run("normalizes status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		uc := NewInvoiceUseCase(repo)

		repo.EXPECT().FetchByStatus(gomock.Any(), entities.InvoiceStatusManualCheck).Return([]entities.Invoice{{ID: "inv-1"}}, nil)

		out, err := uc.ListByStatus(context.Background(), "manual_check")
		if err != nil || len(out) != 1 {
			t.Fatalf("unexpected result: %+v %v", out, err)
		}
	})
}
