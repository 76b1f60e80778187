package repositories

import (
	"context"

	"github.com/google/uuid"
	"komoralink.backend/internal/domain/entities"
)

// MarketplaceGateway is the port to the upstream marketplace REST API.
// The upstream owns authentication, persistence and business-rule
// enforcement; the edge only reads and forwards.
type MarketplaceGateway interface {
	// Auth
	Login(ctx context.Context, input *entities.LoginInput) (*entities.UpstreamSession, error)
	GetProfile(ctx context.Context, token string) (*entities.UserProfile, error)
	UpdateProfile(ctx context.Context, token string, patch *entities.ProfilePatch) (*entities.UserProfile, error)

	// Onboarding
	RegisterBusiness(ctx context.Context, reg *entities.BusinessRegistration) (*entities.Business, error)
	SendVerificationCode(ctx context.Context, email, code string) error

	// Wallet
	ListWalletTransactions(ctx context.Context, token string, filter entities.TransactionFilter) (*entities.TransactionPage, error)

	// Catalog
	ListProducts(ctx context.Context, token string, businessID uuid.UUID, page, limit int) (*entities.ProductPage, error)
	GetProduct(ctx context.Context, token string, productID uuid.UUID) (*entities.Product, error)

	// Orders
	ListOrders(ctx context.Context, token string, businessID uuid.UUID, filter entities.OrderFilter) (*entities.OrderPage, error)
	GetOrder(ctx context.Context, token string, orderID uuid.UUID) (*entities.Order, error)
}
