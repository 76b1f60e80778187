package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"komoralink.backend/internal/interfaces/http/middleware"
	"komoralink.backend/internal/usecases"
)

// AnalyticsHandler serves dashboard rollups and chart renders
type AnalyticsHandler struct {
	analyticsUsecase *usecases.AnalyticsUsecase
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsUsecase *usecases.AnalyticsUsecase) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsUsecase: analyticsUsecase}
}

// GetDashboard returns the combined order/wallet summary for a business
// GET /api/v1/businesses/:businessId/dashboard
func (h *AnalyticsHandler) GetDashboard(c *gin.Context) {
	businessID, err := uuid.Parse(c.Param("businessId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid business ID"})
		return
	}

	summary, err := h.analyticsUsecase.GetDashboard(c.Request.Context(), middleware.GetUpstreamToken(c), businessID)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GetRevenueChart renders the recent deposit series as a PNG
// GET /api/v1/analytics/revenue-chart?days=30
func (h *AnalyticsHandler) GetRevenueChart(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "30"))

	png, err := h.analyticsUsecase.RevenueChart(c.Request.Context(), middleware.GetUpstreamToken(c), days)
	if err != nil {
		handleError(c, err)
		return
	}
	if len(png) == 0 {
		c.JSON(http.StatusNoContent, nil)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}
