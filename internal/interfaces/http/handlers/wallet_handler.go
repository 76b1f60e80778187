package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"komoralink.backend/internal/domain/entities"
	"komoralink.backend/internal/interfaces/http/middleware"
	"komoralink.backend/internal/usecases"
	"komoralink.backend/pkg/logger"
)

// WalletHandler handles wallet dashboard endpoints
type WalletHandler struct {
	walletUsecase *usecases.WalletUsecase
}

// NewWalletHandler creates a new wallet handler
func NewWalletHandler(walletUsecase *usecases.WalletUsecase) *WalletHandler {
	return &WalletHandler{walletUsecase: walletUsecase}
}

// GetTotals returns the rolled-up inflow/outflow for the dashboard
// GET /api/v1/wallet/totals
func (h *WalletHandler) GetTotals(c *gin.Context) {
	token := middleware.GetUpstreamToken(c)

	totals, err := h.walletUsecase.FetchTotals(c.Request.Context(), token)
	if err != nil {
		// One log line per failed aggregation; the client keeps its
		// previous totals and retries by re-requesting.
		logger.Error(c.Request.Context(), "Wallet totals aggregation failed", zap.Error(err))
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, totals)
}

// ListTransactions returns one page of wallet transactions
// GET /api/v1/wallet/transactions
func (h *WalletHandler) ListTransactions(c *gin.Context) {
	token := middleware.GetUpstreamToken(c)

	var filter entities.TransactionFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	page, err := h.walletUsecase.ListTransactions(c.Request.Context(), token, filter)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}
