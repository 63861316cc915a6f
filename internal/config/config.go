package config

import (
	"errors"
	"fmt"
	"strings"

	"billing_scheduler/internal/domain/entities"

	"github.com/spf13/viper"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds application configuration.
type Config struct {
	ServiceName string
	Environment string
	HTTPPort    string
	LogLevel    string

	DynamoDB    DynamoDBConfig
	MercadoPago MercadoPagoConfig
	Billing     BillingConfig
}

type DynamoDBConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	// Endpoint is optional; set it for DynamoDB Local (e.g. http://dynamodb:8000).
	Endpoint      string
	InvoicesTable string
}

type MercadoPagoConfig struct {
	AccessToken     string
	Mock            bool
	Currency        string
	PaymentMethodID string
}

type BillingConfig struct {
	PendingUnit         string
	PendingAmount       int
	FailedUnit          string
	FailedAmount        int
	AlignToFirstOfMonth bool
	ChargeConcurrency   int
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVICE_NAME", "billing-scheduler")
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("HTTP_PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("AWS_ACCESS_KEY_ID", "local")
	v.SetDefault("AWS_SECRET_ACCESS_KEY", "local")
	v.SetDefault("DYNAMODB_ENDPOINT", "")
	v.SetDefault("INVOICES_TABLE", "invoices")

	v.SetDefault("MERCADOPAGO_ACCESS_TOKEN", "")
	v.SetDefault("PAYMENT_GATEWAY_MOCK", false)
	v.SetDefault("MERCADOPAGO_CURRENCY", "")
	v.SetDefault("MERCADOPAGO_PAYMENT_METHOD_ID", "")

	// Collect monthly, retry daily.
	v.SetDefault("BILLING_PENDING_UNIT", "month")
	v.SetDefault("BILLING_PENDING_AMOUNT", 1)
	v.SetDefault("BILLING_FAILED_UNIT", "day")
	v.SetDefault("BILLING_FAILED_AMOUNT", 1)
	v.SetDefault("BILLING_ALIGN_FIRST_OF_MONTH", true)
	v.SetDefault("BILLING_CHARGE_CONCURRENCY", 1)
}

// Load reads configuration from the environment. A .env file, if any, is
// loaded by the entrypoint before this runs.
func Load() (Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	cfg := Config{
		ServiceName: v.GetString("SERVICE_NAME"),
		Environment: v.GetString("ENVIRONMENT"),
		HTTPPort:    strings.TrimSpace(v.GetString("HTTP_PORT")),
		LogLevel:    strings.ToLower(strings.TrimSpace(v.GetString("LOG_LEVEL"))),
		DynamoDB: DynamoDBConfig{
			Region:          v.GetString("AWS_REGION"),
			AccessKeyID:     v.GetString("AWS_ACCESS_KEY_ID"),
			SecretAccessKey: v.GetString("AWS_SECRET_ACCESS_KEY"),
			Endpoint:        strings.TrimSpace(v.GetString("DYNAMODB_ENDPOINT")),
			InvoicesTable:   v.GetString("INVOICES_TABLE"),
		},
		MercadoPago: MercadoPagoConfig{
			AccessToken:     strings.TrimSpace(v.GetString("MERCADOPAGO_ACCESS_TOKEN")),
			Mock:            v.GetBool("PAYMENT_GATEWAY_MOCK"),
			Currency:        strings.ToUpper(strings.TrimSpace(v.GetString("MERCADOPAGO_CURRENCY"))),
			PaymentMethodID: v.GetString("MERCADOPAGO_PAYMENT_METHOD_ID"),
		},
		Billing: BillingConfig{
			PendingUnit:         v.GetString("BILLING_PENDING_UNIT"),
			PendingAmount:       v.GetInt("BILLING_PENDING_AMOUNT"),
			FailedUnit:          v.GetString("BILLING_FAILED_UNIT"),
			FailedAmount:        v.GetInt("BILLING_FAILED_AMOUNT"),
			AlignToFirstOfMonth: v.GetBool("BILLING_ALIGN_FIRST_OF_MONTH"),
			ChargeConcurrency:   v.GetInt("BILLING_CHARGE_CONCURRENCY"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.HTTPPort == "" {
		return fmt.Errorf("%w: HTTP_PORT is empty", ErrInvalidConfig)
	}
	if c.DynamoDB.InvoicesTable == "" {
		return fmt.Errorf("%w: INVOICES_TABLE is empty", ErrInvalidConfig)
	}
	if c.MercadoPago.Currency != "" && !entities.Currency(c.MercadoPago.Currency).Valid() {
		return fmt.Errorf("%w: unsupported MERCADOPAGO_CURRENCY %q", ErrInvalidConfig, c.MercadoPago.Currency)
	}
	if c.Billing.ChargeConcurrency < 1 {
		return fmt.Errorf("%w: BILLING_CHARGE_CONCURRENCY must be >= 1, got %d", ErrInvalidConfig, c.Billing.ChargeConcurrency)
	}
	if _, err := c.Billing.CycleConfig(); err != nil {
		return err
	}
	return nil
}

// CycleConfig converts the env driven settings into the billing cycle configuration.
func (b BillingConfig) CycleConfig() (entities.CycleConfig, error) {
	pendingUnit, err := entities.ParsePeriodUnit(b.PendingUnit)
	if err != nil {
		return entities.CycleConfig{}, fmt.Errorf("%w: BILLING_PENDING_UNIT: %v", ErrInvalidConfig, err)
	}
	failedUnit, err := entities.ParsePeriodUnit(b.FailedUnit)
	if err != nil {
		return entities.CycleConfig{}, fmt.Errorf("%w: BILLING_FAILED_UNIT: %v", ErrInvalidConfig, err)
	}

	cfg := entities.CycleConfig{
		PendingPeriod:       entities.Period{Unit: pendingUnit, Amount: b.PendingAmount},
		FailedPeriod:        entities.Period{Unit: failedUnit, Amount: b.FailedAmount},
		AlignToFirstOfMonth: b.AlignToFirstOfMonth,
	}
	if err := cfg.Validate(); err != nil {
		return entities.CycleConfig{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return cfg, nil
}
