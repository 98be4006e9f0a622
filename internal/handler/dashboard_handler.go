package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"neuralpulse/internal/service"
)

// DashboardHandler serves the combined dashboard counters.
type DashboardHandler struct {
	dashboard service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboard service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// Stats handles GET /api/v1/dashboard/stats
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.dashboard.Stats(c.Request.Context())
	if err != nil {
		respondError(c, "dashboard stats", err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
