package usecases_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"komoralink.backend/internal/domain/entities"
)

// Mock MarketplaceGateway
type MockMarketplaceGateway struct {
	mock.Mock
}

func (m *MockMarketplaceGateway) Login(ctx context.Context, input *entities.LoginInput) (*entities.UpstreamSession, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.UpstreamSession), args.Error(1)
}

func (m *MockMarketplaceGateway) GetProfile(ctx context.Context, token string) (*entities.UserProfile, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.UserProfile), args.Error(1)
}

func (m *MockMarketplaceGateway) UpdateProfile(ctx context.Context, token string, patch *entities.ProfilePatch) (*entities.UserProfile, error) {
	args := m.Called(ctx, token, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.UserProfile), args.Error(1)
}

func (m *MockMarketplaceGateway) RegisterBusiness(ctx context.Context, reg *entities.BusinessRegistration) (*entities.Business, error) {
	args := m.Called(ctx, reg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Business), args.Error(1)
}

func (m *MockMarketplaceGateway) SendVerificationCode(ctx context.Context, email, code string) error {
	args := m.Called(ctx, email, code)
	return args.Error(0)
}

func (m *MockMarketplaceGateway) ListWalletTransactions(ctx context.Context, token string, filter entities.TransactionFilter) (*entities.TransactionPage, error) {
	args := m.Called(ctx, token, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.TransactionPage), args.Error(1)
}

func (m *MockMarketplaceGateway) ListProducts(ctx context.Context, token string, businessID uuid.UUID, page, limit int) (*entities.ProductPage, error) {
	args := m.Called(ctx, token, businessID, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.ProductPage), args.Error(1)
}

func (m *MockMarketplaceGateway) GetProduct(ctx context.Context, token string, productID uuid.UUID) (*entities.Product, error) {
	args := m.Called(ctx, token, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Product), args.Error(1)
}

func (m *MockMarketplaceGateway) ListOrders(ctx context.Context, token string, businessID uuid.UUID, filter entities.OrderFilter) (*entities.OrderPage, error) {
	args := m.Called(ctx, token, businessID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.OrderPage), args.Error(1)
}

func (m *MockMarketplaceGateway) GetOrder(ctx context.Context, token string, orderID uuid.UUID) (*entities.Order, error) {
	args := m.Called(ctx, token, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Order), args.Error(1)
}

// Mock OnboardingSessionRepository
type MockOnboardingSessionRepository struct {
	mock.Mock
}

func (m *MockOnboardingSessionRepository) Save(ctx context.Context, state *entities.OnboardingState) error {
	args := m.Called(ctx, state)
	return args.Error(0)
}

func (m *MockOnboardingSessionRepository) Get(ctx context.Context, sessionID uuid.UUID) (*entities.OnboardingState, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.OnboardingState), args.Error(1)
}

func (m *MockOnboardingSessionRepository) Delete(ctx context.Context, sessionID uuid.UUID) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

// Mock SubmissionRepository
type MockSubmissionRepository struct {
	mock.Mock
}

func (m *MockSubmissionRepository) Create(ctx context.Context, submission *entities.Submission) error {
	args := m.Called(ctx, submission)
	return args.Error(0)
}

func (m *MockSubmissionRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Submission, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Submission), args.Error(1)
}

func (m *MockSubmissionRepository) ListRecent(ctx context.Context, limit, offset int) ([]*entities.Submission, int, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*entities.Submission), args.Int(1), args.Error(2)
}

// Mock OTPRepository
type MockOTPRepository struct {
	mock.Mock
}

func (m *MockOTPRepository) Create(ctx context.Context, code *entities.OTPCode) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}

func (m *MockOTPRepository) GetLatestActive(ctx context.Context, email string, now time.Time) (*entities.OTPCode, error) {
	args := m.Called(ctx, email, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.OTPCode), args.Error(1)
}

func (m *MockOTPRepository) MarkConsumed(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOTPRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	args := m.Called(ctx, before)
	return args.Get(0).(int64), args.Error(1)
}

// Mock ChartRenderer
type MockChartRenderer struct {
	mock.Mock
}

func (m *MockChartRenderer) RenderRevenueChart(points []entities.RevenuePoint, currencyCode string) ([]byte, error) {
	args := m.Called(points, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
