package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// BusinessStatus represents the upstream activation state of a business
type BusinessStatus string

const (
	BusinessStatusPending   BusinessStatus = "PENDING"
	BusinessStatusActive    BusinessStatus = "ACTIVE"
	BusinessStatusSuspended BusinessStatus = "SUSPENDED"
)

// Business is a registered commercial entity as returned by the
// marketplace API
type Business struct {
	ID           uuid.UUID      `json:"id"`
	OwnerID      uuid.UUID      `json:"ownerId"`
	Name         string         `json:"name"`
	Description  null.String    `json:"description,omitempty"`
	Type         string         `json:"type"`
	Status       BusinessStatus `json:"status"`
	Address      string         `json:"address"`
	Latitude     float64        `json:"latitude"`
	Longitude    float64        `json:"longitude"`
	CurrencyCode string         `json:"currencyCode"`
	Sector       null.String    `json:"sector,omitempty"`
	LogoURL      null.String    `json:"logoUrl,omitempty"`
	CoverURL     null.String    `json:"coverUrl,omitempty"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}
