package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"komoralink.backend/internal/domain/entities"
	domainerrors "komoralink.backend/internal/domain/errors"
	"komoralink.backend/internal/infrastructure/models"
)

// OTPRepositoryImpl implements OTPRepository on GORM
type OTPRepositoryImpl struct {
	db *gorm.DB
}

// NewOTPRepository creates a new OTP repository
func NewOTPRepository(db *gorm.DB) *OTPRepositoryImpl {
	return &OTPRepositoryImpl{db: db}
}

// Create journals a delivered verification code
func (r *OTPRepositoryImpl) Create(ctx context.Context, code *entities.OTPCode) error {
	if code.ID == uuid.Nil {
		code.ID = uuid.New()
	}
	if code.CreatedAt.IsZero() {
		code.CreatedAt = time.Now()
	}

	m := &models.OTPCode{
		ID:        code.ID,
		Email:     code.Email,
		CodeHash:  code.CodeHash,
		ExpiresAt: code.ExpiresAt,
		CreatedAt: code.CreatedAt,
	}
	return r.db.WithContext(ctx).Create(m).Error
}

// GetLatestActive returns the newest unconsumed, unexpired code for the
// address
func (r *OTPRepositoryImpl) GetLatestActive(ctx context.Context, email string, now time.Time) (*entities.OTPCode, error) {
	var m models.OTPCode
	err := r.db.WithContext(ctx).
		Where("email = ? AND consumed_at IS NULL AND expires_at > ?", email, now).
		Order("created_at DESC").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}

	code := &entities.OTPCode{
		ID:        m.ID,
		Email:     m.Email,
		CodeHash:  m.CodeHash,
		ExpiresAt: m.ExpiresAt,
		CreatedAt: m.CreatedAt,
	}
	if m.ConsumedAt != nil {
		code.ConsumedAt = null.TimeFrom(*m.ConsumedAt)
	}
	return code, nil
}

// MarkConsumed stamps a code as used
func (r *OTPRepositoryImpl) MarkConsumed(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&models.OTPCode{}).
		Where("id = ? AND consumed_at IS NULL", id).
		Update("consumed_at", time.Now())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// DeleteExpired removes codes past their expiry
func (r *OTPRepositoryImpl) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("expires_at <= ?", before).
		Delete(&models.OTPCode{})
	return result.RowsAffected, result.Error
}
