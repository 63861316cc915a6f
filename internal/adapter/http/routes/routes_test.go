package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"billing_scheduler/internal/adapter/http/handlers/mocks"
	"billing_scheduler/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/mock/gomock"
)

func TestNewRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	invoices := mocks.NewMockIInvoiceUseCase(ctrl)
	cycle := mocks.NewMockIBillingCycleUseCase(ctrl)

	registry := prometheus.NewRegistry()
	hits := prometheus.NewCounter(prometheus.CounterOpts{Name: "billing_test_hits_total", Help: "test"})
	registry.MustRegister(hits)
	hits.Inc()

	router := NewRouter(Dependencies{
		InvoiceUseCase: invoices,
		BillingCycle:   cycle,
		Metrics:        promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	})

	t.Run("ping", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))
		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "pong") {
			t.Fatalf("expected pong, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("metrics", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "billing_test_hits_total 1") {
			t.Fatalf("expected metrics output, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("billing cycle", func(t *testing.T) {
		cycle.EXPECT().Status().Return(entities.CycleStatus{Stage: entities.BillingStagePending})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/billing/cycle", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("invoices", func(t *testing.T) {
		invoices.EXPECT().List(gomock.Any()).Return(nil, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/invoices", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
