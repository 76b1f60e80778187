package repositories

import (
	"context"

	"github.com/google/uuid"
	"komoralink.backend/internal/domain/entities"
)

// SubmissionRepository journals onboarding submit attempts
type SubmissionRepository interface {
	Create(ctx context.Context, submission *entities.Submission) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Submission, error)
	ListRecent(ctx context.Context, limit, offset int) ([]*entities.Submission, int, error)
}
