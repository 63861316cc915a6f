package cli

import (
	"context"
	"os/signal"
	"syscall"

	"billing_scheduler/internal/adapter/http/routes"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the billing cycle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx)
		},
	}
}

func serve(ctx context.Context) error {
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	if err := a.cycle.Start(ctx); err != nil {
		a.log.Error("[app] billing cycle start failed", zap.Error(err))
		return err
	}

	err = routes.Run(ctx, ":"+a.cfg.HTTPPort, routes.Dependencies{
		Log:            a.log,
		InvoiceUseCase: a.invoices,
		BillingCycle:   a.cycle,
	})
	// close stops the scheduler; a billing pass already running finishes first.
	a.log.Info("[app] shutting down", zap.Error(err))
	return err
}
