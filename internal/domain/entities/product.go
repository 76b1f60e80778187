package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Product is a catalog item owned by a business
type Product struct {
	ID           uuid.UUID   `json:"id"`
	BusinessID   uuid.UUID   `json:"businessId"`
	Name         string      `json:"name"`
	Description  null.String `json:"description,omitempty"`
	Price        float64     `json:"price"`
	CurrencyCode string      `json:"currencyCode"`
	Stock        int         `json:"stock"`
	ImageURL     null.String `json:"imageUrl,omitempty"`
	IsAvailable  bool        `json:"isAvailable"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// ProductPage is one page of the upstream product list envelope
type ProductPage struct {
	Data       []Product `json:"data"`
	Total      int64     `json:"total"`
	Page       int       `json:"page"`
	Limit      int       `json:"limit"`
	TotalPages int       `json:"totalPages"`
}
