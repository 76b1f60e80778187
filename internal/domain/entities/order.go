package entities

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus represents order states on the marketplace
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// OrderItem is one line of an order
type OrderItem struct {
	ProductID uuid.UUID `json:"productId"`
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity"`
	UnitPrice float64   `json:"unitPrice"`
}

// Order is a marketplace order as returned by the upstream API
type Order struct {
	ID           uuid.UUID   `json:"id"`
	BusinessID   uuid.UUID   `json:"businessId"`
	CustomerID   uuid.UUID   `json:"customerId"`
	Status       OrderStatus `json:"status"`
	Items        []OrderItem `json:"items"`
	TotalAmount  float64     `json:"totalAmount"`
	CurrencyCode string      `json:"currencyCode"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// OrderPage is one page of the upstream order list envelope
type OrderPage struct {
	Data       []Order `json:"data"`
	Total      int64   `json:"total"`
	Page       int     `json:"page"`
	Limit      int     `json:"limit"`
	TotalPages int     `json:"totalPages"`
}

// OrderFilter narrows an upstream order list request
type OrderFilter struct {
	Status OrderStatus `form:"status"`
	Page   int         `form:"page"`
	Limit  int         `form:"limit"`
}

// DashboardSummary is the analytics rollup served to the consoles
type DashboardSummary struct {
	OrderCounts  map[OrderStatus]int `json:"orderCounts"`
	Revenue      float64             `json:"revenue"`
	Expenses     float64             `json:"expenses"`
	CurrencyCode string              `json:"currencyCode,omitempty"`
}

// RevenuePoint is one day of aggregated successful deposits, used by
// the chart renderer
type RevenuePoint struct {
	Day    time.Time `json:"day"`
	Amount float64   `json:"amount"`
}
