package cli

import (
	"context"

	"billing_scheduler/internal/adapter/persistence/repository"
	"billing_scheduler/internal/config"
	"billing_scheduler/internal/domain/entities"
	"billing_scheduler/internal/infrastructure/database"
	"billing_scheduler/internal/infrastructure/metrics"
	"billing_scheduler/internal/infrastructure/payments"
	"billing_scheduler/internal/infrastructure/scheduler"
	"billing_scheduler/internal/logger"
	"billing_scheduler/internal/usecase"

	"go.uber.org/zap"
)

// app holds the wired service. Built once per command.
type app struct {
	cfg      config.Config
	log      *zap.Logger
	invoices *usecase.InvoiceUseCase
	cycle    *usecase.BillingCycleUseCase
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	log = log.With(zap.String("service", cfg.ServiceName), zap.String("env", cfg.Environment))

	cycleCfg, err := cfg.Billing.CycleConfig()
	if err != nil {
		return nil, err
	}

	ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
	if err != nil {
		log.Error("[app] dynamodb connect failed", zap.Error(err))
		return nil, err
	}
	repo := repository.NewInvoiceDynamoRepository(log, ddb, cfg.DynamoDB.InvoicesTable)

	gateway, err := payments.NewMercadoPagoGateway(log, payments.MercadoPagoConfig{
		AccessToken:     cfg.MercadoPago.AccessToken,
		Mock:            cfg.MercadoPago.Mock,
		Currency:        entities.Currency(cfg.MercadoPago.Currency),
		PaymentMethodID: cfg.MercadoPago.PaymentMethodID,
	})
	if err != nil {
		log.Error("[app] payment gateway not configured", zap.Error(err))
		return nil, err
	}

	sched := scheduler.New(log)
	cycle, err := usecase.NewBillingCycleUseCase(log, repo, gateway, sched, usecase.BillingCycleOptions{
		Config:            cycleCfg,
		ChargeConcurrency: cfg.Billing.ChargeConcurrency,
		Notifier:          usecase.NewLogManualReviewNotifier(log),
		Recorder:          metrics.Billing(metrics.Config{ServiceName: cfg.ServiceName, Environment: cfg.Environment}),
	})
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:      cfg,
		log:      log,
		invoices: usecase.NewInvoiceUseCase(repo),
		cycle:    cycle,
	}, nil
}

func (a *app) close() {
	a.cycle.Stop()
	_ = a.log.Sync()
}
