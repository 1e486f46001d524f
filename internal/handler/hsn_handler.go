package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"gstbill/internal/service"
)

// HSNHandler handles HSN code lookup endpoints.
type HSNHandler struct {
	hsnService service.HSNService
}

// NewHSNHandler creates a new HSNHandler.
func NewHSNHandler(hsnService service.HSNService) *HSNHandler {
	return &HSNHandler{hsnService: hsnService}
}

// Search handles GET /api/v1/hsn/search
// @Summary      Search HSN codes
// @Description  Matches by code prefix or description substring
// @Tags         hsn
// @Produce      json
// @Param        q query string true "Search query"
// @Param        limit query int false "Max results (default 20, cap 50)"
// @Success      200 {object} APIResponse{data=[]domain.HSNCode}
// @Failure      400 {object} APIResponse
// @Failure      500 {object} APIResponse
// @Security     BearerAuth
// @Router       /hsn/search [get]
func (h *HSNHandler) Search(c *gin.Context) {
	query := c.Query("q")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	codes, err := h.hsnService.Search(c.Request.Context(), query, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, codes)
}
