package usecases

import (
	"context"

	"github.com/google/uuid"
	"komoralink.backend/internal/domain/entities"
	"komoralink.backend/internal/domain/repositories"
	"komoralink.backend/pkg/utils"
)

// CatalogUsecase serves product catalog reads for a business
type CatalogUsecase struct {
	gateway repositories.MarketplaceGateway
}

// NewCatalogUsecase creates a new catalog usecase
func NewCatalogUsecase(gateway repositories.MarketplaceGateway) *CatalogUsecase {
	return &CatalogUsecase{gateway: gateway}
}

// ListProducts lists one catalog page for a business
func (u *CatalogUsecase) ListProducts(ctx context.Context, token string, businessID uuid.UUID, page, limit int) (*entities.ProductPage, error) {
	params := utils.GetPaginationParams(page, limit)
	return u.gateway.ListProducts(ctx, token, businessID, params.Page, params.Limit)
}

// GetProduct fetches a single product
func (u *CatalogUsecase) GetProduct(ctx context.Context, token string, productID uuid.UUID) (*entities.Product, error) {
	return u.gateway.GetProduct(ctx, token, productID)
}
