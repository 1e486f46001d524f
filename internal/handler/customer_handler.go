package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"gstbill/internal/service"
)

// CustomerHandler handles customer endpoints.
type CustomerHandler struct {
	customerService service.CustomerService
}

// NewCustomerHandler creates a new CustomerHandler.
func NewCustomerHandler(customerService service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// Create handles POST /api/v1/customers
// @Summary      Create customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        body body service.CreateCustomerInput true "Customer request"
// @Success      201 {object} APIResponse{data=domain.Customer}
// @Failure      400 {object} APIResponse
// @Failure      500 {object} APIResponse
// @Security     BearerAuth
// @Router       /customers [post]
func (h *CustomerHandler) Create(c *gin.Context) {
	var input service.CreateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	customer, err := h.customerService.Create(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, customer)
}

// GetByID handles GET /api/v1/customers/:id
// @Summary      Get customer
// @Tags         customers
// @Produce      json
// @Param        id path string true "Customer UUID"
// @Success      200 {object} APIResponse{data=domain.Customer}
// @Failure      400 {object} APIResponse
// @Failure      404 {object} APIResponse
// @Failure      500 {object} APIResponse
// @Security     BearerAuth
// @Router       /customers/{id} [get]
func (h *CustomerHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid customer id")
		return
	}

	customer, err := h.customerService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, customer)
}

// List handles GET /api/v1/customers
// @Summary      List customers
// @Tags         customers
// @Produce      json
// @Param        limit query int false "Page size (default 50)"
// @Param        offset query int false "Page offset"
// @Success      200 {object} APIResponse{data=[]domain.Customer}
// @Failure      500 {object} APIResponse
// @Security     BearerAuth
// @Router       /customers [get]
func (h *CustomerHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	customers, err := h.customerService.List(c.Request.Context(), limit, offset)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, customers)
}
