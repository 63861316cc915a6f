package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"billing_scheduler/internal/adapter/http/handlers/mocks"
	"billing_scheduler/internal/domain/entities"
	"billing_scheduler/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newBillingRouter(t *testing.T) (*gin.Engine, *mocks.MockIBillingCycleUseCase) {
	t.Helper()
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIBillingCycleUseCase(ctrl)
	h := NewBillingCycleHandler(nil, uc)

	r := gin.New()
	r.GET("/v1/billing/cycle", h.GetCycle)
	r.POST("/v1/billing/cycle/run", h.RunStage)
	return r, uc
}

func TestBillingCycleHandler_GetCycle(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r, uc := newBillingRouter(t)

	next := time.Date(2026, time.June, 1, 8, 0, 0, 0, time.UTC)
	uc.EXPECT().Status().Return(entities.CycleStatus{
		Stage:     entities.BillingStageFailed2,
		Armed:     true,
		NextRunAt: next,
		Config: entities.CycleConfig{
			PendingPeriod: entities.Period{Unit: entities.PeriodUnitMonth, Amount: 1},
			FailedPeriod:  entities.Period{Unit: entities.PeriodUnitDay, Amount: 1},
		},
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/billing/cycle", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body: %v", err)
	}
	if body["stage"] != "FAILED2" || body["next_run_at"] != "2026-06-01T08:00:00Z" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestBillingCycleHandler_RunStage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing stage", func(t *testing.T) {
		r, _ := newBillingRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/v1/billing/cycle/run", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid stage", func(t *testing.T) {
		r, uc := newBillingRouter(t)
		uc.EXPECT().RunStage(gomock.Any(), entities.BillingStage("PAID")).Return(entities.TickReport{}, usecase.ErrInvalidBillingStage)

		req := httptest.NewRequest(http.MethodPost, "/v1/billing/cycle/run", bytes.NewBufferString(`{"stage":"paid"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newBillingRouter(t)
		uc.EXPECT().RunStage(gomock.Any(), entities.BillingStageFailed1).Return(entities.TickReport{
			RunID:   "run-1",
			Stage:   entities.BillingStageFailed1,
			Fetched: 2,
			Paid:    1,
			Failed:  1,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/billing/cycle/run", bytes.NewBufferString(`{"stage":" failed1 "}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json body: %v", err)
		}
		if body["run_id"] != "run-1" || body["paid"] != float64(1) {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}
