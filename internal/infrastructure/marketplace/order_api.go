package marketplace

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"
	"komoralink.backend/internal/domain/entities"
)

// ListOrders fetches one page of a business's orders
func (c *Client) ListOrders(ctx context.Context, token string, businessID uuid.UUID, filter entities.OrderFilter) (*entities.OrderPage, error) {
	query := url.Values{}
	if filter.Status != "" {
		query.Set("status", string(filter.Status))
	}
	if filter.Page > 0 {
		query.Set("page", strconv.Itoa(filter.Page))
	}
	if filter.Limit > 0 {
		query.Set("limit", strconv.Itoa(filter.Limit))
	}

	var result entities.OrderPage
	path := "/businesses/" + businessID.String() + "/orders"
	if err := c.do(ctx, http.MethodGet, path, token, query, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetOrder fetches a single order
func (c *Client) GetOrder(ctx context.Context, token string, orderID uuid.UUID) (*entities.Order, error) {
	var order entities.Order
	if err := c.do(ctx, http.MethodGet, "/orders/"+orderID.String(), token, nil, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}
