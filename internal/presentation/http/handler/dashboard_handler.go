package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrmdan725-prog/kitchinz-erp-sub000/internal/application/service"
	"github.com/mrmdan725-prog/kitchinz-erp-sub000/internal/presentation/http/dto/response"
)

// DashboardHandler handles the overview screen HTTP requests
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Summary handles getting the dashboard summary
func (h *DashboardHandler) Summary(c *gin.Context) {
	summary := h.dashboardService.GetSummary(c.Request.Context(), time.Now())
	response.OK(c, "Dashboard summary retrieved successfully", summary)
}
