package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"komoralink.backend/internal/domain/entities"
	domainerrors "komoralink.backend/internal/domain/errors"
	"komoralink.backend/pkg/redis"
)

const onboardingKeyPrefix = "onboarding:"

// OnboardingSessionRepositoryImpl stores encrypted wizard states in
// Redis with a TTL. Expiry is the "app restart" analog: an abandoned
// session simply disappears.
type OnboardingSessionRepositoryImpl struct {
	store *redis.SessionStore
	ttl   time.Duration
}

// NewOnboardingSessionRepository creates a new onboarding session repository
func NewOnboardingSessionRepository(store *redis.SessionStore, ttl time.Duration) *OnboardingSessionRepositoryImpl {
	return &OnboardingSessionRepositoryImpl{store: store, ttl: ttl}
}

// Save stores the full state under the session key, replacing any
// previous value in one write
func (r *OnboardingSessionRepositoryImpl) Save(ctx context.Context, state *entities.OnboardingState) error {
	state.UpdatedAt = time.Now()
	return r.store.PutJSON(ctx, onboardingKeyPrefix+state.SessionID.String(), state, r.ttl)
}

// Get loads the state for a session
func (r *OnboardingSessionRepositoryImpl) Get(ctx context.Context, sessionID uuid.UUID) (*entities.OnboardingState, error) {
	var state entities.OnboardingState
	err := r.store.GetJSON(ctx, onboardingKeyPrefix+sessionID.String(), &state)
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, domainerrors.ErrSessionNotFound
		}
		return nil, err
	}
	return &state, nil
}

// Delete removes the state for a session
func (r *OnboardingSessionRepositoryImpl) Delete(ctx context.Context, sessionID uuid.UUID) error {
	return r.store.Delete(ctx, onboardingKeyPrefix+sessionID.String())
}
