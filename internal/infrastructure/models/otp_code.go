package models

import (
	"time"

	"github.com/google/uuid"
)

// OTPCode is the journal row for one verification code delivery. The
// plaintext code is never persisted.
type OTPCode struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email      string    `gorm:"type:varchar(255);not null;index"`
	CodeHash   string    `gorm:"type:varchar(255);not null"`
	ExpiresAt  time.Time `gorm:"not null;index"`
	ConsumedAt *time.Time
	CreatedAt  time.Time
}

// TableName overrides the table name
func (OTPCode) TableName() string {
	return "otp_codes"
}
