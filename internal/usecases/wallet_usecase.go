package usecases

import (
	"context"

	"golang.org/x/sync/errgroup"
	"komoralink.backend/internal/domain/entities"
	domainerrors "komoralink.backend/internal/domain/errors"
	"komoralink.backend/internal/domain/repositories"
)

// aggregationPageLimit caps the page size used when rolling up totals.
// The wallet holds a single-currency ledger; totals are plain sums.
const aggregationPageLimit = 500

// WalletUsecase aggregates wallet transactions read from the upstream
// API. Nothing is cached: every call re-fetches.
type WalletUsecase struct {
	gateway repositories.MarketplaceGateway
}

// NewWalletUsecase creates a new wallet usecase
func NewWalletUsecase(gateway repositories.MarketplaceGateway) *WalletUsecase {
	return &WalletUsecase{gateway: gateway}
}

// FetchTotals issues two concurrent upstream list calls (successful
// deposits, successful withdrawals) and sums the amounts of each. If
// either call fails neither total is produced; the caller keeps its
// previous values.
func (u *WalletUsecase) FetchTotals(ctx context.Context, token string) (*entities.WalletTotals, error) {
	var deposits, withdrawals []entities.WalletTransaction

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		deposits, err = u.fetchSuccessful(gctx, token, entities.TransactionTypeDeposit)
		return err
	})
	g.Go(func() error {
		var err error
		withdrawals, err = u.fetchSuccessful(gctx, token, entities.TransactionTypeWithdrawal)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	totals := &entities.WalletTotals{}
	for _, tx := range deposits {
		totals.TotalIn += tx.Amount
		if totals.CurrencyCode == "" {
			totals.CurrencyCode = tx.CurrencyCode
		}
	}
	for _, tx := range withdrawals {
		totals.TotalOut += tx.Amount
		if totals.CurrencyCode == "" {
			totals.CurrencyCode = tx.CurrencyCode
		}
	}
	return totals, nil
}

// ListTransactions is the paginated passthrough for the wallet screen.
// A malformed upstream page degrades to an empty one instead of
// breaking the render path.
func (u *WalletUsecase) ListTransactions(ctx context.Context, token string, filter entities.TransactionFilter) (*entities.TransactionPage, error) {
	page, err := u.gateway.ListWalletTransactions(ctx, token, filter)
	if err != nil {
		if domainerrors.IsDecodeError(err) {
			return &entities.TransactionPage{Data: []entities.WalletTransaction{}, Page: filter.Page, Limit: filter.Limit}, nil
		}
		return nil, err
	}
	return page, nil
}

// fetchSuccessful lists one aggregation page of successful transactions
// of the given direction, applying the documented fallback-to-empty
// policy for malformed pages.
func (u *WalletUsecase) fetchSuccessful(ctx context.Context, token string, txType entities.TransactionType) ([]entities.WalletTransaction, error) {
	page, err := u.gateway.ListWalletTransactions(ctx, token, entities.TransactionFilter{
		Type:   txType,
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
	return page.Data, nil
}
