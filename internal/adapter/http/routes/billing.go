package routes

import (
	"billing_scheduler/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathInvoices = "/invoices"
	PathBilling  = "/billing"
)

func addInvoiceRoutes(rg *gin.RouterGroup, h *handlers.InvoiceHandler) {
	invoices := rg.Group(PathInvoices)
	{
		invoices.POST("", h.CreateInvoice)
		invoices.GET("", h.ListInvoices)
		invoices.GET("/:id", h.GetInvoice)
	}
}

func addBillingRoutes(rg *gin.RouterGroup, h *handlers.BillingCycleHandler) {
	billing := rg.Group(PathBilling)
	{
		billing.GET("/cycle", h.GetCycle)
		billing.POST("/cycle/run", h.RunStage)
	}
}
