package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"neuralpulse/internal/repository"
)

// AnalyticsHandler serves the view-analytics read endpoints.
type AnalyticsHandler struct {
	analytics repository.AnalyticsRepository
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(analytics repository.AnalyticsRepository) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

// RecentViews handles GET /api/v1/analytics/views
func (h *AnalyticsHandler) RecentViews(c *gin.Context) {
	days, err := intQuery(c, "days")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	events, err := h.analytics.RecentViews(c.Request.Context(), days)
	if err != nil {
		respondError(c, "view analytics", err)
		return
	}

	c.JSON(http.StatusOK, events)
}

// TopArticles handles GET /api/v1/analytics/top
func (h *AnalyticsHandler) TopArticles(c *gin.Context) {
	limit, err := intQuery(c, "limit")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	articles, err := h.analytics.TopArticles(c.Request.Context(), limit)
	if err != nil {
		respondError(c, "top articles", err)
		return
	}

	c.JSON(http.StatusOK, articles)
}
