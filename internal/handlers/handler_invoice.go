package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/ledger_saas_app/internal/core/ports/services"
	"github.com/SscSPs/ledger_saas_app/internal/dto"
	"github.com/SscSPs/ledger_saas_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// invoiceHandler handles HTTP requests related to invoices, bills and payroll slips.
type invoiceHandler struct {
	invoiceService portssvc.InvoiceSvcFacade
}

// newInvoiceHandler creates a new invoiceHandler.
func newInvoiceHandler(is portssvc.InvoiceSvcFacade) *invoiceHandler {
	return &invoiceHandler{
		invoiceService: is,
	}
}

// registerInvoiceRoutes registers routes related to invoices.
func registerInvoiceRoutes(rg *gin.RouterGroup, invoiceService portssvc.InvoiceSvcFacade) {
	h := newInvoiceHandler(invoiceService)

	invoices := rg.Group("/invoices")
	{
		invoices.GET("", h.listInvoices)
		invoices.POST("", h.createInvoice)
		invoices.DELETE("/:invoice_id", h.deleteInvoice)
		invoices.POST("/:invoice_id/payments", h.payInvoice)
	}
}

// listInvoices godoc
// @Summary List invoices
// @Description Lists sale invoices or purchase bills (payroll slips are listed with purchases), newest first
// @Tags invoices
// @Produce json
// @Param org_id path string true "Organization ID"
// @Param type query string false "Invoice type" Enums(SALE, PURCHASE) default(SALE)
// @Success 200 {array} dto.InvoiceResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden (User not authorized)"
// @Failure 500 {object} map[string]string "Failed to list invoices"
// @Security BearerAuth
// @Router /organizations/{org_id}/invoices [get]
func (h *invoiceHandler) listInvoices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	organizationID, userID, ok := requestScope(c)
	if !ok {
		return
	}

	var params dto.ListInvoicesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query parameters for ListInvoices", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	invoices, err := h.invoiceService.ListInvoices(c.Request.Context(), organizationID, userID, params.Type)
	if err != nil {
		respondWithError(c, err, "Failed to list invoices")
		return
	}

	c.JSON(http.StatusOK, dto.ToListInvoiceResponse(invoices))
}

// createInvoice godoc
// @Summary Create an invoice
// @Description Issues a sale invoice, purchase bill or payroll slip
// @Tags invoices
// @Accept json
// @Produce json
// @Param org_id path string true "Organization ID"
// @Param invoice body dto.CreateInvoiceRequest true "Invoice details"
// @Success 201 {object} dto.InvoiceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden (User not authorized)"
// @Failure 409 {object} map[string]string "Invoice number already used"
// @Failure 500 {object} map[string]string "Failed to create invoice"
// @Security BearerAuth
// @Router /organizations/{org_id}/invoices [post]
func (h *invoiceHandler) createInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	organizationID, userID, ok := requestScope(c)
	if !ok {
		return
	}

	var req dto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateInvoice", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	invoice, err := h.invoiceService.CreateInvoice(c.Request.Context(), organizationID, req, userID)
	if err != nil {
		respondWithError(c, err, "Failed to create invoice")
		return
	}

	logger.Info("Invoice created", slog.String("invoice_id", invoice.InvoiceID), slog.String("invoice_number", invoice.InvoiceNumber))
	c.JSON(http.StatusCreated, dto.ToInvoiceResponse(invoice))
}

// payInvoice godoc
// @Summary Pay an invoice
// @Description Records the full payment of an open invoice and marks it paid
// @Tags invoices
// @Accept json
// @Produce json
// @Param org_id path string true "Organization ID"
// @Param invoice_id path string true "Invoice ID"
// @Param payment body dto.PayInvoiceRequest true "Payment details"
// @Success 201 {object} dto.PaymentResponse
// @Failure 400 {object} map[string]string "Invalid input, non-cash account or invoice already paid"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden (User not authorized)"
// @Failure 404 {object} map[string]string "Invoice not found"
// @Failure 500 {object} map[string]string "Failed to pay invoice"
// @Security BearerAuth
// @Router /organizations/{org_id}/invoices/{invoice_id}/payments [post]
func (h *invoiceHandler) payInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	organizationID, userID, ok := requestScope(c)
	if !ok {
		return
	}
	invoiceID := c.Param("invoice_id")

	var req dto.PayInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for PayInvoice", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	payment, err := h.invoiceService.PayInvoice(c.Request.Context(), organizationID, invoiceID, req, userID)
	if err != nil {
		respondWithError(c, err, "Failed to pay invoice")
		return
	}

	logger.Info("Invoice paid", slog.String("invoice_id", invoiceID), slog.String("payment_id", payment.PaymentID))
	c.JSON(http.StatusCreated, dto.ToPaymentResponse(payment))
}

// deleteInvoice godoc
// @Summary Delete an invoice
// @Description Deletes an invoice together with the journal entries referencing its number
// @Tags invoices
// @Param org_id path string true "Organization ID"
// @Param invoice_id path string true "Invoice ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden (admin role required)"
// @Failure 404 {object} map[string]string "Invoice not found"
// @Failure 500 {object} map[string]string "Failed to delete invoice"
// @Security BearerAuth
// @Router /organizations/{org_id}/invoices/{invoice_id} [delete]
func (h *invoiceHandler) deleteInvoice(c *gin.Context) {
	organizationID, userID, ok := requestScope(c)
	if !ok {
		return
	}
	invoiceID := c.Param("invoice_id")

	if err := h.invoiceService.DeleteInvoice(c.Request.Context(), organizationID, invoiceID, userID); err != nil {
		respondWithError(c, err, "Failed to delete invoice")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Invoice deleted", slog.String("invoice_id", invoiceID))
	c.Status(http.StatusNoContent)
}
