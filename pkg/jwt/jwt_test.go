package jwt

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateTokenPair(t *testing.T) {
	svc := NewJWTService("test-secret", 15*time.Minute, 24*time.Hour)
	userID := uuid.New()

	pair, err := svc.GenerateTokenPair(userID, "awa@example.com", "OWNER", "sess-1")
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)

	claims, err := svc.ValidateToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "awa@example.com", claims.Email)
	assert.Equal(t, "OWNER", claims.Role)
	assert.Equal(t, "sess-1", claims.SessionID)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	svc := NewJWTService("secret-a", time.Minute, time.Hour)
	other := NewJWTService("secret-b", time.Minute, time.Hour)

	pair, err := svc.GenerateTokenPair(uuid.New(), "x@example.com", "USER", "")
	require.NoError(t, err)

	_, err = other.ValidateToken(pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_Expired(t *testing.T) {
	svc := NewJWTService("test-secret", -time.Minute, time.Hour)

	pair, err := svc.GenerateTokenPair(uuid.New(), "x@example.com", "USER", "")
	require.NoError(t, err)

	_, err = svc.ValidateToken(pair.AccessToken)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateToken_Garbage(t *testing.T) {
	svc := NewJWTService("test-secret", time.Minute, time.Hour)

	_, err := svc.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
