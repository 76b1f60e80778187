package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"komoralink.backend/internal/interfaces/http/middleware"
	"komoralink.backend/internal/usecases"
)

// CatalogHandler handles product catalog endpoints
type CatalogHandler struct {
	catalogUsecase *usecases.CatalogUsecase
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogUsecase *usecases.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{catalogUsecase: catalogUsecase}
}

// ListProducts lists one catalog page for a business
// GET /api/v1/businesses/:businessId/products
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	businessID, err := uuid.Parse(c.Param("businessId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid business ID"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	result, err := h.catalogUsecase.ListProducts(c.Request.Context(), middleware.GetUpstreamToken(c), businessID, page, limit)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetProduct fetches a single product
// GET /api/v1/products/:id
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	product, err := h.catalogUsecase.GetProduct(c.Request.Context(), middleware.GetUpstreamToken(c), productID)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}
