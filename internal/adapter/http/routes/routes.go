package routes

import (
	"context"
	"errors"
	"net/http"
	"time"

	_ "billing_scheduler/docs" // swagger spec registration
	"billing_scheduler/internal/adapter/http/handlers"
	"billing_scheduler/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// Dependencies are the use cases served over HTTP.
type Dependencies struct {
	Log            *zap.Logger
	InvoiceUseCase usecase.IInvoiceUseCase
	BillingCycle   usecase.IBillingCycleUseCase
	// Metrics defaults to the Prometheus default gatherer.
	Metrics http.Handler
}

// NewRouter builds the gin engine with every route registered.
func NewRouter(deps Dependencies) *gin.Engine {
	if deps.Log == nil {
		deps.Log = zap.NewNop()
	}
	if deps.Metrics == nil {
		deps.Metrics = promhttp.Handler()
	}

	router := gin.New()
	setMiddlewares(router, deps.Log)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(deps.Metrics))

	invoiceHandler := handlers.NewInvoiceHandler(deps.Log, deps.InvoiceUseCase)
	billingHandler := handlers.NewBillingCycleHandler(deps.Log, deps.BillingCycle)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addInvoiceRoutes(v1, invoiceHandler)
	addBillingRoutes(v1, billingHandler)
	return router
}

// Run serves the API on addr until ctx is cancelled, then drains in-flight requests.
func Run(ctx context.Context, addr string, deps Dependencies) error {
	log := deps.Log
	if log == nil {
		log = zap.NewNop()
	}
	srv := &http.Server{
		Addr:              addr,
		Handler:           NewRouter(deps),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("[http] listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			log.Error("[http] failed to start the application", zap.Error(err))
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	log.Info("[http] shutting down")
	return srv.Shutdown(shutdownCtx)
}

func setMiddlewares(router *gin.Engine, log *zap.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error("[http] recovered from panic", zap.Any("panic", recovered), zap.String("path", c.FullPath()))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
