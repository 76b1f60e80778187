package marketplace

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"
	"komoralink.backend/internal/domain/entities"
)

// ListProducts fetches one page of a business's catalog
func (c *Client) ListProducts(ctx context.Context, token string, businessID uuid.UUID, page, limit int) (*entities.ProductPage, error) {
	query := url.Values{}
	if page > 0 {
		query.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	var result entities.ProductPage
	path := "/businesses/" + businessID.String() + "/products"
	if err := c.do(ctx, http.MethodGet, path, token, query, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetProduct fetches a single product
func (c *Client) GetProduct(ctx context.Context, token string, productID uuid.UUID) (*entities.Product, error) {
	var product entities.Product
	if err := c.do(ctx, http.MethodGet, "/products/"+productID.String(), token, nil, nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}
