package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/leadflow-api/internal/application/service"
	"github.com/sangkips/leadflow-api/internal/presentation/http/dto/response"
)

// DashboardHandler handles dashboard-related HTTP requests
type DashboardHandler struct {
	dashboardService *service.DashboardService
	loc              *time.Location
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService, loc *time.Location) *DashboardHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &DashboardHandler{dashboardService: dashboardService, loc: loc}
}

// GetSummary handles getting the headline metrics for a period
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	sel, err := parseSelector(c, h.loc)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Dashboard metrics retrieved successfully", h.dashboardService.GetSummary(sel))
}

// GetReport handles getting the full breakdown for a period
func (h *DashboardHandler) GetReport(c *gin.Context) {
	sel, err := parseSelector(c, h.loc)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Report retrieved successfully", h.dashboardService.GetReport(sel))
}
