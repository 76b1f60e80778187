package repositories

import (
	"context"

	"github.com/google/uuid"
	"komoralink.backend/internal/domain/entities"
)

// OnboardingSessionRepository stores the accumulating wizard state per
// session. States are ephemeral: they expire on their TTL and are
// deleted on successful submission.
type OnboardingSessionRepository interface {
	Save(ctx context.Context, state *entities.OnboardingState) error
	Get(ctx context.Context, sessionID uuid.UUID) (*entities.OnboardingState, error)
	Delete(ctx context.Context, sessionID uuid.UUID) error
}
