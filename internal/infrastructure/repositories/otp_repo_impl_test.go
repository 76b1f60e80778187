package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"komoralink.backend/internal/domain/entities"
	domainerrors "komoralink.backend/internal/domain/errors"
)

func TestOTPRepository_CreateAndGetLatestActive(t *testing.T) {
	db := newTestDB(t)
	createOTPCodeTable(t, db)
	repo := NewOTPRepository(db)
	ctx := context.Background()

	older := &entities.OTPCode{
		Email:     "awa@example.com",
		CodeHash:  "hash-old",
		ExpiresAt: time.Now().Add(10 * time.Minute),
		CreatedAt: time.Now().Add(-2 * time.Minute),
	}
	newer := &entities.OTPCode{
		Email:     "awa@example.com",
		CodeHash:  "hash-new",
		ExpiresAt: time.Now().Add(10 * time.Minute),
		CreatedAt: time.Now(),
	}
	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))

	got, err := repo.GetLatestActive(ctx, "awa@example.com", time.Now())
	require.NoError(t, err)
	require.Equal(t, "hash-new", got.CodeHash)
}

func TestOTPRepository_ExpiredCodesAreNotActive(t *testing.T) {
	db := newTestDB(t)
	createOTPCodeTable(t, db)
	repo := NewOTPRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entities.OTPCode{
		Email:     "awa@example.com",
		CodeHash:  "hash-expired",
		ExpiresAt: time.Now().Add(-time.Minute),
	}))

	_, err := repo.GetLatestActive(ctx, "awa@example.com", time.Now())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestOTPRepository_MarkConsumedIsOneShot(t *testing.T) {
	db := newTestDB(t)
	createOTPCodeTable(t, db)
	repo := NewOTPRepository(db)
	ctx := context.Background()

	code := &entities.OTPCode{
		Email:     "awa@example.com",
		CodeHash:  "hash",
		ExpiresAt: time.Now().Add(10 * time.Minute),
	}
	require.NoError(t, repo.Create(ctx, code))

	require.NoError(t, repo.MarkConsumed(ctx, code.ID))

	// consumed codes are no longer active
	_, err := repo.GetLatestActive(ctx, "awa@example.com", time.Now())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	// a second consume finds nothing to stamp
	require.ErrorIs(t, repo.MarkConsumed(ctx, code.ID), domainerrors.ErrNotFound)
}

func TestOTPRepository_MarkConsumedUnknownID(t *testing.T) {
	db := newTestDB(t)
	createOTPCodeTable(t, db)
	repo := NewOTPRepository(db)

	require.ErrorIs(t, repo.MarkConsumed(context.Background(), uuid.New()), domainerrors.ErrNotFound)
}

func TestOTPRepository_DeleteExpiredSweepsOnlyExpired(t *testing.T) {
	db := newTestDB(t)
	createOTPCodeTable(t, db)
	repo := NewOTPRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entities.OTPCode{
		Email:     "a@example.com",
		CodeHash:  "h1",
		ExpiresAt: time.Now().Add(-time.Hour),
	}))
	require.NoError(t, repo.Create(ctx, &entities.OTPCode{
		Email:     "b@example.com",
		CodeHash:  "h2",
		ExpiresAt: time.Now().Add(time.Hour),
	}))

	deleted, err := repo.DeleteExpired(ctx, time.Now())
	require.NoError(t, err)
	require.Equal(t, int64(1), deleted)

	got, err := repo.GetLatestActive(ctx, "b@example.com", time.Now())
	require.NoError(t, err)
	require.Equal(t, "h2", got.CodeHash)
}
