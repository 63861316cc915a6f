package payments

import (
	"context"
	"errors"
	"testing"

	"billing_scheduler/internal/domain/entities"

	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type fakeCreator struct {
	got  payment.Request
	resp *payment.Response
	err  error
}

func (f *fakeCreator) Create(_ context.Context, req payment.Request) (*payment.Response, error) {
	f.got = req
	return f.resp, f.err
}

func testInvoice() entities.Invoice {
	return entities.Invoice{
		ID:         "inv-1",
		CustomerID: "cus-1",
		Amount:     entities.Money{Value: decimal.RequireFromString("42.50"), Currency: entities.CurrencyEUR},
		Status:     entities.InvoiceStatusPending,
	}
}

func TestMercadoPagoGateway_Charge(t *testing.T) {
	t.Run("mock mode approves", func(t *testing.T) {
		g, err := NewMercadoPagoGateway(zaptest.NewLogger(t), MercadoPagoConfig{Mock: true, Currency: entities.CurrencyEUR})
		require.NoError(t, err)

		paid, err := g.Charge(context.Background(), testInvoice())
		require.NoError(t, err)
		assert.True(t, paid)
	})

	t.Run("currency mismatch is refused before calling provider", func(t *testing.T) {
		fc := &fakeCreator{}
		g := &MercadoPagoGateway{log: zaptest.NewLogger(t), client: fc, cfg: MercadoPagoConfig{Currency: entities.CurrencyUSD}}

		paid, err := g.Charge(context.Background(), testInvoice())
		assert.False(t, paid)
		assert.ErrorIs(t, err, entities.ErrCurrencyMismatch)
		assert.Empty(t, fc.got.ExternalReference)
	})

	t.Run("approved status is paid", func(t *testing.T) {
		fc := &fakeCreator{resp: &payment.Response{ID: 10, Status: "approved"}}
		g := &MercadoPagoGateway{log: zaptest.NewLogger(t), client: fc, cfg: MercadoPagoConfig{Currency: entities.CurrencyEUR, PaymentMethodID: "account_money"}}

		paid, err := g.Charge(context.Background(), testInvoice())
		require.NoError(t, err)
		assert.True(t, paid)
		assert.Equal(t, "inv-1", fc.got.ExternalReference)
		assert.Equal(t, 42.5, fc.got.TransactionAmount)
		assert.Equal(t, "account_money", fc.got.PaymentMethodID)
	})

	t.Run("rejected status is unpaid without error", func(t *testing.T) {
		fc := &fakeCreator{resp: &payment.Response{ID: 11, Status: "rejected"}}
		g := &MercadoPagoGateway{log: zaptest.NewLogger(t), client: fc}

		paid, err := g.Charge(context.Background(), testInvoice())
		require.NoError(t, err)
		assert.False(t, paid)
	})

	t.Run("provider customer not found", func(t *testing.T) {
		fc := &fakeCreator{err: errors.New(`{"message":"Customer not found","code":2002}`)}
		g := &MercadoPagoGateway{log: zaptest.NewLogger(t), client: fc}

		_, err := g.Charge(context.Background(), testInvoice())
		assert.ErrorIs(t, err, entities.ErrCustomerNotFound)
	})

	t.Run("missing customer id", func(t *testing.T) {
		g := &MercadoPagoGateway{log: zaptest.NewLogger(t), client: &fakeCreator{}}
		inv := testInvoice()
		inv.CustomerID = " "

		_, err := g.Charge(context.Background(), inv)
		assert.ErrorIs(t, err, entities.ErrCustomerNotFound)
	})

	t.Run("nil gateway", func(t *testing.T) {
		var g *MercadoPagoGateway
		_, err := g.Charge(context.Background(), testInvoice())
		assert.ErrorIs(t, err, ErrMercadoPagoGatewayNotConfigured)
	})
}

func TestNewMercadoPagoGateway_MissingToken(t *testing.T) {
	_, err := NewMercadoPagoGateway(nil, MercadoPagoConfig{})
	assert.ErrorIs(t, err, ErrMissingMercadoPagoAccessToken)
}

func TestClassifyGatewayError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"deadline", context.DeadlineExceeded, entities.ErrNetwork},
		{"bad gateway", errors.New(`{"status":502,"message":"bad gateway"}`), entities.ErrNetwork},
		{"connection refused", errors.New("dial tcp: connection refused"), entities.ErrNetwork},
		{"customer", errors.New("customer not found"), entities.ErrCustomerNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, classifyGatewayError(tt.err), tt.want)
		})
	}

	t.Run("unclassified keeps the gateway class", func(t *testing.T) {
		err := classifyGatewayError(errors.New(`{"status":400,"message":"invalid users involved"}`))
		assert.True(t, GatewayErr.Has(err))
		assert.False(t, errors.Is(err, entities.ErrNetwork))
		assert.Equal(t, entities.ChargeErrorOther, entities.OutcomeFromCharge(false, err).ErrorKind)
	})

	assert.NoError(t, classifyGatewayError(nil))
}
