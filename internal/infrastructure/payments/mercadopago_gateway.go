package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"strings"

	"billing_scheduler/internal/domain/entities"
	"billing_scheduler/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/zeebo/errs"
	"go.uber.org/zap"
)

var (
	ErrMissingMercadoPagoAccessToken   = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
	ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
)

// GatewayErr wraps provider errors the billing cycle cannot classify further.
var GatewayErr = errs.Class("mercadopago gateway")

// paymentCreator is the part of payment.Client the gateway uses.
type paymentCreator interface {
	Create(ctx context.Context, request payment.Request) (*payment.Response, error)
}

// MercadoPagoConfig configures the gateway.
//
// Currency is the settlement currency of the Mercado Pago account; invoices in
// any other currency are refused with entities.ErrCurrencyMismatch.
type MercadoPagoConfig struct {
	AccessToken     string
	Mock            bool
	Currency        entities.Currency
	PaymentMethodID string
}

type MercadoPagoGateway struct {
	log      *zap.Logger
	client   paymentCreator
	cfg      MercadoPagoConfig
	mockMode bool
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(log *zap.Logger, cfg MercadoPagoConfig) (*MercadoPagoGateway, error) {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("payments.mercadopago")

	if cfg.Mock {
		log.Info("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{log: log, cfg: cfg, mockMode: true}, nil
	}

	if strings.TrimSpace(cfg.AccessToken) == "" {
		log.Warn("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	sdkCfg, err := config.New(cfg.AccessToken)
	if err != nil {
		log.Error("[payment][gateway] failed creating sdk config", zap.Error(err))
		return nil, GatewayErr.Wrap(err)
	}
	log.Info("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{log: log, client: payment.NewClient(sdkCfg), cfg: cfg}, nil
}

// Charge creates a payment for the invoice. It reports paid only when Mercado
// Pago answers "approved"; any other provider status is an unpaid attempt that
// the billing cycle retries on its next pass.
func (g *MercadoPagoGateway) Charge(ctx context.Context, invoice entities.Invoice) (bool, error) {
	if g == nil {
		return false, ErrMercadoPagoGatewayNotConfigured
	}
	log := g.log.With(zap.String("invoice_id", invoice.ID), zap.String("customer_id", invoice.CustomerID))

	if g.cfg.Currency != "" && invoice.Amount.Currency != g.cfg.Currency {
		log.Warn("[payment][gateway] currency mismatch",
			zap.String("invoice_currency", string(invoice.Amount.Currency)),
			zap.String("account_currency", string(g.cfg.Currency)),
		)
		return false, fmt.Errorf("invoice %s in %s, account settles in %s: %w",
			invoice.ID, invoice.Amount.Currency, g.cfg.Currency, entities.ErrCurrencyMismatch)
	}
	if strings.TrimSpace(invoice.CustomerID) == "" {
		return false, fmt.Errorf("invoice %s has no customer: %w", invoice.ID, entities.ErrCustomerNotFound)
	}

	if g.mockMode {
		log.Info("[payment][gateway] mock charge approved", zap.String("amount", invoice.Amount.Value.StringFixed(2)))
		return true, nil
	}
	if g.client == nil {
		log.Error("[payment][gateway] gateway not configured")
		return false, ErrMercadoPagoGatewayNotConfigured
	}

	req, err := g.buildRequest(invoice)
	if err != nil {
		log.Error("[payment][gateway] request build failed", zap.Error(err))
		return false, GatewayErr.Wrap(err)
	}

	log.Debug("[payment][gateway] create start")
	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Warn("[payment][gateway] sdk create failed", zap.Error(err))
		return false, classifyGatewayError(err)
	}
	if resp == nil {
		return false, GatewayErr.New("empty response for invoice %s", invoice.ID)
	}
	log.Info("[payment][gateway] create done", zap.Int("provider_payment_id", resp.ID), zap.String("provider_status", resp.Status))

	return resp.Status == "approved", nil
}

func (g *MercadoPagoGateway) buildRequest(invoice entities.Invoice) (payment.Request, error) {
	amount, _ := invoice.Amount.Value.Round(2).Float64()
	body := map[string]any{
		"transaction_amount": amount,
		"description":        fmt.Sprintf("Invoice %s", invoice.ID),
		"external_reference": invoice.ID,
		"payer": map[string]any{
			"type": "customer",
			"id":   invoice.CustomerID,
		},
	}
	if g.cfg.PaymentMethodID != "" {
		body["payment_method_id"] = g.cfg.PaymentMethodID
	}

	raw, err := json.Marshal(body)
	if err != nil {
		return payment.Request{}, err
	}
	var req payment.Request
	if err := json.Unmarshal(raw, &req); err != nil {
		return payment.Request{}, err
	}
	return req, nil
}

// classifyGatewayError maps SDK errors onto the errors the billing cycle understands.
func classifyGatewayError(err error) error {
	switch {
	case err == nil:
		return nil
	case isGatewayCustomerNotFound(err):
		return fmt.Errorf("%w: %v", entities.ErrCustomerNotFound, err)
	case isGatewayNetwork(err):
		return fmt.Errorf("%w: %v", entities.ErrNetwork, err)
	default:
		return GatewayErr.Wrap(err)
	}
}

func isGatewayCustomerNotFound(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002")
}

func isGatewayNetwork(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range []string{"\"status\":500", "\"status\":502", "\"status\":503", "\"status\":504", "connection reset", "connection refused", "timeout"} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
