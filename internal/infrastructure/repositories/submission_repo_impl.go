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

// SubmissionRepositoryImpl implements SubmissionRepository on GORM
type SubmissionRepositoryImpl struct {
	db *gorm.DB
}

// NewSubmissionRepository creates a new submission repository
func NewSubmissionRepository(db *gorm.DB) *SubmissionRepositoryImpl {
	return &SubmissionRepositoryImpl{db: db}
}

// Create journals a submit attempt
func (r *SubmissionRepositoryImpl) Create(ctx context.Context, submission *entities.Submission) error {
	if submission.ID == uuid.Nil {
		submission.ID = uuid.New()
	}
	if submission.CreatedAt.IsZero() {
		submission.CreatedAt = time.Now()
	}

	m := &models.Submission{
		ID:           submission.ID,
		SessionID:    submission.SessionID,
		AccountType:  string(submission.AccountType),
		BusinessName: submission.BusinessName,
		Email:        submission.Email,
		Status:       string(submission.Status),
		ErrorMessage: submission.ErrorMessage.String,
		CreatedAt:    submission.CreatedAt,
	}
	return r.db.WithContext(ctx).Create(m).Error
}

// GetByID gets a journaled submission
func (r *SubmissionRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*entities.Submission, error) {
	var m models.Submission
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toSubmissionEntity(&m), nil
}

// ListRecent lists submissions newest first
func (r *SubmissionRepositoryImpl) ListRecent(ctx context.Context, limit, offset int) ([]*entities.Submission, int, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Submission{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []models.Submission
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	submissions := make([]*entities.Submission, 0, len(ms))
	for i := range ms {
		submissions = append(submissions, toSubmissionEntity(&ms[i]))
	}
	return submissions, int(total), nil
}

func toSubmissionEntity(m *models.Submission) *entities.Submission {
	s := &entities.Submission{
		ID:           m.ID,
		SessionID:    m.SessionID,
		AccountType:  entities.AccountType(m.AccountType),
		BusinessName: m.BusinessName,
		Email:        m.Email,
		Status:       entities.SubmissionStatus(m.Status),
		CreatedAt:    m.CreatedAt,
	}
	if m.ErrorMessage != "" {
		s.ErrorMessage = null.StringFrom(m.ErrorMessage)
	}
	return s
}
