package models

import (
	"time"

	"github.com/google/uuid"
)

// Submission is the journal row for one onboarding submit attempt
type Submission struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	SessionID    uuid.UUID `gorm:"type:uuid;not null;index"`
	AccountType  string    `gorm:"type:varchar(50);not null"`
	BusinessName string    `gorm:"type:varchar(255);not null"`
	Email        string    `gorm:"type:varchar(255);not null;index"`
	Status       string    `gorm:"type:varchar(20);not null"`
	ErrorMessage string    `gorm:"type:text"`
	CreatedAt    time.Time
}

// TableName overrides the table name
func (Submission) TableName() string {
	return "onboarding_submissions"
}
