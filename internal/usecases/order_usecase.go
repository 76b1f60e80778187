package usecases

import (
	"context"

	"github.com/google/uuid"
	"komoralink.backend/internal/domain/entities"
	"komoralink.backend/internal/domain/repositories"
	"komoralink.backend/pkg/utils"
)

// OrderUsecase serves order reads for a business
type OrderUsecase struct {
	gateway repositories.MarketplaceGateway
}

// NewOrderUsecase creates a new order usecase
func NewOrderUsecase(gateway repositories.MarketplaceGateway) *OrderUsecase {
	return &OrderUsecase{gateway: gateway}
}

// ListOrders lists one order page for a business
func (u *OrderUsecase) ListOrders(ctx context.Context, token string, businessID uuid.UUID, filter entities.OrderFilter) (*entities.OrderPage, error) {
	params := utils.GetPaginationParams(filter.Page, filter.Limit)
	filter.Page = params.Page
	filter.Limit = params.Limit
	return u.gateway.ListOrders(ctx, token, businessID, filter)
}

// GetOrder fetches a single order
func (u *OrderUsecase) GetOrder(ctx context.Context, token string, orderID uuid.UUID) (*entities.Order, error) {
	return u.gateway.GetOrder(ctx, token, orderID)
}
