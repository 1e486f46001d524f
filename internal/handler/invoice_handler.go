package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"gstbill/internal/domain"
	"gstbill/internal/service"
)

// InvoiceHandler handles invoice endpoints.
type InvoiceHandler struct {
	invoiceService service.InvoiceService
}

// NewInvoiceHandler creates a new InvoiceHandler.
func NewInvoiceHandler(invoiceService service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// parseInvoiceFilters extracts list filter parameters from query params.
func parseInvoiceFilters(c *gin.Context) (domain.InvoiceFilters, error) {
	filters := domain.InvoiceFilters{}

	if fromStr := c.Query("start_date"); fromStr != "" {
		t, err := time.Parse("2006-01-02", fromStr)
		if err != nil {
			return filters, domain.NewValidationError("start_date", "must be YYYY-MM-DD")
		}
		filters.StartDate = &t
	}
	if toStr := c.Query("end_date"); toStr != "" {
		t, err := time.Parse("2006-01-02", toStr)
		if err != nil {
			return filters, domain.NewValidationError("end_date", "must be YYYY-MM-DD")
		}
		// EndDate is an exclusive bound; advance one day so invoices
		// created any time on the requested end date are included.
		end := t.AddDate(0, 0, 1)
		filters.EndDate = &end
	}
	if cidStr := c.Query("customer_id"); cidStr != "" {
		cid, err := uuid.Parse(cidStr)
		if err != nil {
			return filters, domain.NewValidationError("customer_id", "must be a valid UUID")
		}
		filters.CustomerID = &cid
	}
	if typeStr := c.Query("invoice_type"); typeStr != "" {
		invoiceType := domain.InvoiceType(typeStr)
		if !domain.ValidInvoiceTypes[invoiceType] {
			return filters, domain.NewValidationError("invoice_type", "must be one of B2B, B2C, Export, SEZ")
		}
		filters.InvoiceType = invoiceType
	}
	return filters, nil
}

// Create handles POST /api/v1/invoices
// @Summary      Create invoice
// @Description  Creates a tax invoice with its line items in one atomic transaction
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        body body service.CreateInvoiceInput true "Invoice request"
// @Success      201 {object} APIResponse{data=domain.Invoice}
// @Failure      400 {object} APIResponse
// @Failure      404 {object} APIResponse
// @Failure      409 {object} APIResponse
// @Failure      500 {object} APIResponse
// @Security     BearerAuth
// @Router       /invoices [post]
func (h *InvoiceHandler) Create(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	var input service.CreateInvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	inv, err := h.invoiceService.Create(c.Request.Context(), input, actor)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, inv)
}

// List handles GET /api/v1/invoices
// @Summary      List invoices
// @Description  Lists invoice headers, newest first, capped at 100 rows
// @Tags         invoices
// @Produce      json
// @Param        start_date query string false "Start date (YYYY-MM-DD)"
// @Param        end_date query string false "End date (YYYY-MM-DD, inclusive)"
// @Param        customer_id query string false "Customer UUID"
// @Param        invoice_type query string false "Invoice type" Enums(B2B, B2C, Export, SEZ)
// @Success      200 {object} APIResponse{data=[]domain.Invoice}
// @Failure      400 {object} APIResponse
// @Failure      500 {object} APIResponse
// @Security     BearerAuth
// @Router       /invoices [get]
func (h *InvoiceHandler) List(c *gin.Context) {
	filters, err := parseInvoiceFilters(c)
	if err != nil {
		HandleError(c, err)
		return
	}

	invoices, err := h.invoiceService.List(c.Request.Context(), filters)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, invoices)
}

// GetByID handles GET /api/v1/invoices/:id
// @Summary      Get invoice
// @Description  Returns an invoice header with its nested items
// @Tags         invoices
// @Produce      json
// @Param        id path string true "Invoice UUID"
// @Success      200 {object} APIResponse{data=domain.Invoice}
// @Failure      400 {object} APIResponse
// @Failure      404 {object} APIResponse
// @Failure      500 {object} APIResponse
// @Security     BearerAuth
// @Router       /invoices/{id} [get]
func (h *InvoiceHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid invoice id")
		return
	}

	inv, err := h.invoiceService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, inv)
}

// Summary handles GET /api/v1/invoices/summary
// @Summary      Invoice summary
// @Description  Per-invoice-type totals over an optional date window
// @Tags         invoices
// @Produce      json
// @Param        start_date query string false "Start date (YYYY-MM-DD)"
// @Param        end_date query string false "End date (YYYY-MM-DD, inclusive)"
// @Success      200 {object} APIResponse{data=[]domain.InvoiceTypeSummaryRow}
// @Failure      400 {object} APIResponse
// @Failure      500 {object} APIResponse
// @Security     BearerAuth
// @Router       /invoices/summary [get]
func (h *InvoiceHandler) Summary(c *gin.Context) {
	filters, err := parseInvoiceFilters(c)
	if err != nil {
		HandleError(c, err)
		return
	}

	rows, err := h.invoiceService.SummaryByType(c.Request.Context(), filters)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, rows)
}
