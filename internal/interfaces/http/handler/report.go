package handler

import (
	"github.com/gin-gonic/gin"

	reportapp "github.com/bizmate/backend/internal/application/report"
)

// ReportHandler handles sales analytics API endpoints
type ReportHandler struct {
	BaseHandler
	salesService *reportapp.SalesAnalyticsService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(salesService *reportapp.SalesAnalyticsService) *ReportHandler {
	return &ReportHandler{
		salesService: salesService,
	}
}

// RegisterRoutes registers report routes
func (h *ReportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	reports := rg.Group("/reports")
	{
		reports.GET("/sales", h.Sales)
	}
}

// Sales runs the sales analytics aggregation over the invoice collection
func (h *ReportHandler) Sales(c *gin.Context) {
	var req reportapp.SalesQueryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	analytics, err := h.salesService.Query(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, analytics)
}
