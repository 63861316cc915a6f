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

var (
	errInvalidInvoicePayload = pkg.NewDomainErrorSimple("INVALID_INVOICE_INPUT", "Invalid invoice payload", http.StatusBadRequest)
)

// InvoiceHandler handles HTTP requests for invoices.
//
// Invoices are created PENDING and only the billing cycle moves them forward.
type InvoiceHandler struct {
	log     *zap.Logger
	usecase usecase.IInvoiceUseCase
}

func NewInvoiceHandler(log *zap.Logger, uc usecase.IInvoiceUseCase) *InvoiceHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &InvoiceHandler{log: log.Named("http.invoice"), usecase: uc}
}

// CreateInvoice godoc
// @Summary  Create a PENDING invoice
// @Tags     invoices
// @Accept   json
// @Produce  json
// @Param    invoice  body      request.CreateInvoiceRequest  true  "Invoice"
// @Success  201      {object}  response.InvoiceResponse
// @Failure  400      {object}  pkg.HTTPError
// @Router   /v1/invoices [post]
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var payload request.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInvoicePayload.HTTPStatus, errInvalidInvoicePayload.ToHTTPError())
		return
	}
	amount, err := payload.ResolveAmount()
	if err != nil {
		c.JSON(errInvalidInvoicePayload.HTTPStatus, errInvalidInvoicePayload.ToHTTPError())
		return
	}

	inv, err := h.usecase.Create(c.Request.Context(), payload.CustomerID, amount, entities.Currency(payload.Currency))
	if err != nil {
		h.log.Warn("[invoice][handler] create failed", zap.String("customer_id", payload.CustomerID), zap.Error(err))
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	h.log.Info("[invoice][handler] created", zap.String("invoice_id", inv.ID), zap.String("customer_id", inv.CustomerID))

	c.JSON(http.StatusCreated, response.FromInvoice(inv))
}

// GetInvoice godoc
// @Summary  Fetch one invoice
// @Tags     invoices
// @Produce  json
// @Param    id   path      string  true  "Invoice ID"
// @Success  200  {object}  response.InvoiceResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /v1/invoices/{id} [get]
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	inv, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

// ListInvoices godoc
// @Summary  List invoices, optionally filtered by status
// @Tags     invoices
// @Produce  json
// @Param    status  query     string  false  "PENDING, FAILED1, FAILED2, FAILED3, PAID or MANUAL_CHECK"
// @Success  200     {array}   response.InvoiceResponse
// @Failure  400     {object}  pkg.HTTPError
// @Router   /v1/invoices [get]
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	var (
		items []entities.Invoice
		err   error
	)
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		items, err = h.usecase.ListByStatus(c.Request.Context(), entities.InvoiceStatus(status))
	} else {
		items, err = h.usecase.List(c.Request.Context())
	}
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromInvoices(items))
}

func mapInvoiceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInvoiceID), errors.Is(err, usecase.ErrInvalidCustomerID),
		errors.Is(err, usecase.ErrInvalidInvoiceAmount), errors.Is(err, usecase.ErrInvalidCurrency),
		errors.Is(err, usecase.ErrInvalidInvoiceStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
