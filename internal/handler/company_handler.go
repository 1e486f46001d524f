package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gstbill/internal/service"
)

// CompanyHandler handles company settings endpoints.
type CompanyHandler struct {
	companyService service.CompanyService
}

// NewCompanyHandler creates a new CompanyHandler.
func NewCompanyHandler(companyService service.CompanyService) *CompanyHandler {
	return &CompanyHandler{companyService: companyService}
}

// Get handles GET /api/v1/company
// @Summary      Get company settings
// @Description  Returns the seller profile used for invoice snapshots and jurisdiction resolution
// @Tags         company
// @Produce      json
// @Success      200 {object} APIResponse{data=domain.CompanySettings}
// @Failure      500 {object} APIResponse
// @Security     BearerAuth
// @Router       /company [get]
func (h *CompanyHandler) Get(c *gin.Context) {
	settings, err := h.companyService.Get(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, settings)
}

// Update handles PUT /api/v1/company
// @Summary      Update company settings
// @Description  Creates or replaces the seller profile. Admin only.
// @Tags         company
// @Accept       json
// @Produce      json
// @Param        body body service.UpdateCompanyInput true "Company settings"
// @Success      200 {object} APIResponse{data=domain.CompanySettings}
// @Failure      400 {object} APIResponse
// @Failure      403 {object} APIResponse
// @Failure      500 {object} APIResponse
// @Security     BearerAuth
// @Router       /company [put]
func (h *CompanyHandler) Update(c *gin.Context) {
	var input service.UpdateCompanyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	settings, err := h.companyService.Update(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, settings)
}
