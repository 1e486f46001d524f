package handler

import (
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gstbill/internal/csvexport"
	"gstbill/internal/domain"
	"gstbill/internal/middleware"
	"gstbill/internal/service"
)

// ReportHandler handles statutory report endpoints.
type ReportHandler struct {
	reportService service.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// parsePeriod extracts the month and year query params. Range validation
// happens in the service layer.
func parsePeriod(c *gin.Context) (month, year int, err error) {
	month, err = strconv.Atoi(c.Query("month"))
	if err != nil {
		return 0, 0, domain.NewValidationError("month", "must be an integer")
	}
	year, err = strconv.Atoi(c.Query("year"))
	if err != nil {
		return 0, 0, domain.NewValidationError("year", "must be an integer")
	}
	return month, year, nil
}

// GSTR1 handles GET /api/v1/reports/gstr1
// @Summary      GSTR-1 report
// @Description  Outward supply return with B2B, B2C-Large, and B2C-Small sections for a tax period
// @Tags         reports
// @Produce      json
// @Param        month query int true "Tax period month (1-12)"
// @Param        year query int true "Tax period year"
// @Success      200 {object} APIResponse{data=domain.GSTR1Report}
// @Failure      400 {object} APIResponse
// @Failure      500 {object} APIResponse
// @Security     BearerAuth
// @Router       /reports/gstr1 [get]
func (h *ReportHandler) GSTR1(c *gin.Context) {
	month, year, err := parsePeriod(c)
	if err != nil {
		HandleError(c, err)
		return
	}

	report, err := h.reportService.GSTR1(c.Request.Context(), month, year)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, report)
}

// GSTR1Export handles GET /api/v1/reports/gstr1/export
// @Summary      GSTR-1 CSV export
// @Description  Downloads the GSTR-1 B2B section as a CSV file
// @Tags         reports
// @Produce      text/csv
// @Param        month query int true "Tax period month (1-12)"
// @Param        year query int true "Tax period year"
// @Success      200 {string} string "CSV file"
// @Failure      400 {object} APIResponse
// @Failure      500 {object} APIResponse
// @Security     BearerAuth
// @Router       /reports/gstr1/export [get]
func (h *ReportHandler) GSTR1Export(c *gin.Context) {
	month, year, err := parsePeriod(c)
	if err != nil {
		HandleError(c, err)
		return
	}

	report, err := h.reportService.GSTR1(c.Request.Context(), month, year)
	if err != nil {
		HandleError(c, err)
		return
	}

	filename := fmt.Sprintf("gstr1-b2b-%s.csv", report.Period)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Status(http.StatusOK)

	if err := csvexport.WriteGSTR1B2B(c.Writer, report.B2B); err != nil {
		// Headers are already sent; all we can do is log and drop the connection.
		requestID := c.GetString(middleware.ContextKeyRequestID)
		log.Printf("[%s] gstr1 csv export failed: %v", requestID, err)
		c.Abort()
	}
}

// GSTR3B handles GET /api/v1/reports/gstr3b
// @Summary      GSTR-3B report
// @Description  Summary return with aggregate totals and a rate-wise breakdown for a tax period
// @Tags         reports
// @Produce      json
// @Param        month query int true "Tax period month (1-12)"
// @Param        year query int true "Tax period year"
// @Success      200 {object} APIResponse{data=domain.GSTR3BReport}
// @Failure      400 {object} APIResponse
// @Failure      500 {object} APIResponse
// @Security     BearerAuth
// @Router       /reports/gstr3b [get]
func (h *ReportHandler) GSTR3B(c *gin.Context) {
	month, year, err := parsePeriod(c)
	if err != nil {
		HandleError(c, err)
		return
	}

	report, err := h.reportService.GSTR3B(c.Request.Context(), month, year)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, report)
}
