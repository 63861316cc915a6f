package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "billing_scheduler/internal/adapter/http/dto/request"
	response "billing_scheduler/internal/adapter/http/dto/response"
	"billing_scheduler/internal/domain/entities"
	"billing_scheduler/internal/usecase"
	"billing_scheduler/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type BillingCycleHandler struct {
	log     *zap.Logger
	usecase usecase.IBillingCycleUseCase
}

func NewBillingCycleHandler(log *zap.Logger, uc usecase.IBillingCycleUseCase) *BillingCycleHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &BillingCycleHandler{log: log.Named("http.billing"), usecase: uc}
}

// GetCycle godoc
// @Summary  Current billing stage, next firing and last pass
// @Tags     billing
// @Produce  json
// @Success  200  {object}  response.BillingCycleResponse
// @Router   /v1/billing/cycle [get]
func (h *BillingCycleHandler) GetCycle(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromCycleStatus(h.usecase.Status()))
}

// RunStage godoc
// @Summary  Run one billing pass for a stage now, outside the schedule
// @Tags     billing
// @Accept   json
// @Produce  json
// @Param    stage  body      request.RunStageRequest  true  "Stage"
// @Success  200    {object}  response.TickReportResponse
// @Failure  400    {object}  pkg.HTTPError
// @Router   /v1/billing/cycle/run [post]
func (h *BillingCycleHandler) RunStage(c *gin.Context) {
	var payload request.RunStageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest).ToHTTPError())
		return
	}

	stage := entities.BillingStage(strings.ToUpper(strings.TrimSpace(payload.Stage)))
	h.log.Info("[billing][handler] manual run requested", zap.String("stage", string(stage)))

	report, err := h.usecase.RunStage(c.Request.Context(), stage)
	if err != nil {
		appErr := mapBillingCycleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTickReport(report))
}

func mapBillingCycleError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBillingStage):
		return pkg.NewDomainErrorSimple("INVALID_BILLING_STAGE", "Stage must be PENDING, FAILED1, FAILED2 or FAILED3", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
