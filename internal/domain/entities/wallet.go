package entities

import (
	"time"

	"github.com/google/uuid"
)

// TransactionType represents wallet transaction directions
type TransactionType string

const (
	TransactionTypeDeposit    TransactionType = "DEPOSIT"
	TransactionTypeWithdrawal TransactionType = "WITHDRAWAL"
)

// TransactionStatus represents wallet transaction states
type TransactionStatus string

const (
	TransactionStatusPending TransactionStatus = "PENDING"
	TransactionStatusSuccess TransactionStatus = "SUCCESS"
	TransactionStatusFailed  TransactionStatus = "FAILED"
)

// WalletTransaction is a read-only view of a transaction owned by the
// marketplace API. The edge never mutates transactions.
type WalletTransaction struct {
	ID                    uuid.UUID         `json:"id"`
	Amount                float64           `json:"amount"`
	CurrencyCode          string            `json:"currencyCode"`
	Type                  TransactionType   `json:"type"`
	Status                TransactionStatus `json:"status"`
	Provider              string            `json:"provider"`
	ProviderTransactionID string            `json:"providerTransactionId"`
	CreatedAt             time.Time         `json:"createdAt"`
}

// TransactionPage is one page of the upstream transaction list envelope
type TransactionPage struct {
	Data       []WalletTransaction `json:"data"`
	Total      int64               `json:"total"`
	Page       int                 `json:"page"`
	Limit      int                 `json:"limit"`
	TotalPages int                 `json:"totalPages"`
}

// TransactionFilter narrows an upstream transaction list request
type TransactionFilter struct {
	Type   TransactionType   `form:"type"`
	Status TransactionStatus `form:"status"`
	Page   int               `form:"page"`
	Limit  int               `form:"limit"`
}

// WalletTotals holds the rolled-up inflow/outflow for the dashboard.
// Amounts are plain sums in the wallet's single currency.
type WalletTotals struct {
	TotalIn      float64 `json:"totalIn"`
	TotalOut     float64 `json:"totalOut"`
	CurrencyCode string  `json:"currencyCode,omitempty"`
}
