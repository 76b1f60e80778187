package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"komoralink.backend/internal/domain/entities"
	"komoralink.backend/internal/interfaces/http/middleware"
	"komoralink.backend/internal/usecases"
)

// OrderHandler handles order endpoints
type OrderHandler struct {
	orderUsecase *usecases.OrderUsecase
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderUsecase *usecases.OrderUsecase) *OrderHandler {
	return &OrderHandler{orderUsecase: orderUsecase}
}

// ListOrders lists one order page for a business
// GET /api/v1/businesses/:businessId/orders
func (h *OrderHandler) ListOrders(c *gin.Context) {
	businessID, err := uuid.Parse(c.Param("businessId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid business ID"})
		return
	}

	var filter entities.OrderFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.orderUsecase.ListOrders(c.Request.Context(), middleware.GetUpstreamToken(c), businessID, filter)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetOrder fetches a single order
// GET /api/v1/orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return
	}

	order, err := h.orderUsecase.GetOrder(c.Request.Context(), middleware.GetUpstreamToken(c), orderID)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}
