package usecases

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"komoralink.backend/internal/domain/entities"
	domainerrors "komoralink.backend/internal/domain/errors"
	"komoralink.backend/internal/domain/repositories"
)

// ChartRenderer renders analytics charts as PNG bytes
type ChartRenderer interface {
	RenderRevenueChart(points []entities.RevenuePoint, currencyCode string) ([]byte, error)
}

// AnalyticsUsecase produces the dashboard rollups for the consoles.
// Everything is recomputed per request from upstream reads.
type AnalyticsUsecase struct {
	gateway  repositories.MarketplaceGateway
	wallet   *WalletUsecase
	renderer ChartRenderer
}

// NewAnalyticsUsecase creates a new analytics usecase
func NewAnalyticsUsecase(gateway repositories.MarketplaceGateway, wallet *WalletUsecase, renderer ChartRenderer) *AnalyticsUsecase {
	return &AnalyticsUsecase{
		gateway:  gateway,
		wallet:   wallet,
		renderer: renderer,
	}
}

// GetDashboard fans out over orders and wallet totals and combines them
// into one summary
func (u *AnalyticsUsecase) GetDashboard(ctx context.Context, token string, businessID uuid.UUID) (*entities.DashboardSummary, error) {
	var (
		orders *entities.OrderPage
		totals *entities.WalletTotals
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		orders, err = u.gateway.ListOrders(gctx, token, businessID, entities.OrderFilter{
			Page:  1,
			Limit: aggregationPageLimit,
		})
		return err
	})
	g.Go(func() error {
		var err error
		totals, err = u.wallet.FetchTotals(gctx, token)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := &entities.DashboardSummary{
		OrderCounts:  make(map[entities.OrderStatus]int),
		Revenue:      totals.TotalIn,
		Expenses:     totals.TotalOut,
		CurrencyCode: totals.CurrencyCode,
	}
	for _, order := range orders.Data {
		summary.OrderCounts[order.Status]++
	}
	return summary, nil
}

// RevenueChart renders the last `days` days of successful deposits as a
// PNG time series. Returns nil bytes when there is not enough data.
func (u *AnalyticsUsecase) RevenueChart(ctx context.Context, token string, days int) ([]byte, error) {
	if days <= 0 {
		days = 30
	}

	page, err := u.gateway.ListWalletTransactions(ctx, token, entities.TransactionFilter{
		Type:   entities.TransactionTypeDeposit,
		Status: entities.TransactionStatusSuccess,
		Page:   1,
		Limit:  aggregationPageLimit,
	})
	if err != nil {
		if domainerrors.IsDecodeError(err) {
			return nil, nil
		}
		return nil, err
	}

	cutoff := time.Now().AddDate(0, 0, -days)
	currency := ""
	buckets := make(map[time.Time]float64)
	for _, tx := range page.Data {
		if tx.CreatedAt.Before(cutoff) {
			continue
		}
		day := tx.CreatedAt.UTC().Truncate(24 * time.Hour)
		buckets[day] += tx.Amount
		if currency == "" {
			currency = tx.CurrencyCode
		}
	}

	points := make([]entities.RevenuePoint, 0, len(buckets))
	for day, amount := range buckets {
		points = append(points, entities.RevenuePoint{Day: day, Amount: amount})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Day.Before(points[j].Day) })

	return u.renderer.RenderRevenueChart(points, currency)
}
