package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/roofworks/exterior-cleaners-api/internal/application/service"
	"github.com/roofworks/exterior-cleaners-api/internal/presentation/http/dto/response"
	"github.com/roofworks/exterior-cleaners-api/pkg/document"
)

// ReportHandler handles report HTTP requests
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Download handles GET /report/:customer_id/:job_id and streams the rendered
// PDF as an attachment.
func (h *ReportHandler) Download(c *gin.Context) {
	customerID, ok := ParseIDParam(c, "customer_id")
	if !ok {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	jobID, ok := ParseIDParam(c, "job_id")
	if !ok {
		response.BadRequest(c, "Invalid job ID")
		return
	}

	data, err := h.reportService.Generate(c.Request.Context(), customerID, jobID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="report.pdf"`)
	c.Data(http.StatusOK, document.MediaTypePDF, data)
}

// ListByCustomer handles GET /customers/:id/reports
func (h *ReportHandler) ListByCustomer(c *gin.Context) {
	customerID, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	reports, err := h.reportService.ListCustomerReports(c.Request.Context(), customerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Reports retrieved successfully", reports)
}
