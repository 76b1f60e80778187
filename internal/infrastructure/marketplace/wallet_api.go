package marketplace

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"komoralink.backend/internal/domain/entities"
	domainerrors "komoralink.backend/internal/domain/errors"
)

type transactionPageWire struct {
	Data       json.RawMessage `json:"data"`
	Total      int64           `json:"total"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"totalPages"`
}

// ListWalletTransactions fetches one page of the authenticated wallet's
// transactions. A response whose data field is missing, null or not an
// array yields a DecodeError; callers decide whether that is fatal.
func (c *Client) ListWalletTransactions(ctx context.Context, token string, filter entities.TransactionFilter) (*entities.TransactionPage, error) {
	query := url.Values{}
	if filter.Type != "" {
		query.Set("type", string(filter.Type))
	}
	if filter.Status != "" {
		query.Set("status", string(filter.Status))
	}
	if filter.Page > 0 {
		query.Set("page", strconv.Itoa(filter.Page))
	}
	if filter.Limit > 0 {
		query.Set("limit", strconv.Itoa(filter.Limit))
	}

	var wire transactionPageWire
	if err := c.do(ctx, http.MethodGet, "/wallet/transactions", token, query, nil, &wire); err != nil {
		return nil, err
	}

	data, err := decodeTransactionData(wire.Data)
	if err != nil {
		return nil, err
	}

	return &entities.TransactionPage{
		Data:       data,
		Total:      wire.Total,
		Page:       wire.Page,
		Limit:      wire.Limit,
		TotalPages: wire.TotalPages,
	}, nil
}

func decodeTransactionData(raw json.RawMessage) ([]entities.WalletTransaction, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, &domainerrors.DecodeError{Field: "data", Reason: "is missing or null"}
	}

	var data []entities.WalletTransaction
	if err := json.Unmarshal(trimmed, &data); err != nil {
		return nil, &domainerrors.DecodeError{Field: "data", Reason: "is not a transaction array"}
	}
	return data, nil
}
