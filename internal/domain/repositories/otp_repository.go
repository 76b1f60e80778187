package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"komoralink.backend/internal/domain/entities"
)

// OTPRepository journals verification code deliveries. Codes are stored
// hashed and swept once expired.
type OTPRepository interface {
	Create(ctx context.Context, code *entities.OTPCode) error
	GetLatestActive(ctx context.Context, email string, now time.Time) (*entities.OTPCode, error)
	MarkConsumed(ctx context.Context, id uuid.UUID) error
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}
