package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"komoralink.backend/internal/domain/entities"
	domainerrors "komoralink.backend/internal/domain/errors"
	"komoralink.backend/internal/domain/repositories"
	"komoralink.backend/pkg/jwt"
	"komoralink.backend/pkg/redis"
)

// AuthUsecase authenticates users against the upstream API and manages
// the edge's own sessions. The upstream bearer token is held encrypted
// in Redis, never handed to clients.
type AuthUsecase struct {
	gateway      repositories.MarketplaceGateway
	jwtService   *jwt.JWTService
	sessionStore *redis.SessionStore
	sessionTTL   time.Duration
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(
	gateway repositories.MarketplaceGateway,
	jwtService *jwt.JWTService,
	sessionStore *redis.SessionStore,
	sessionTTL time.Duration,
) *AuthUsecase {
	return &AuthUsecase{
		gateway:      gateway,
		jwtService:   jwtService,
		sessionStore: sessionStore,
		sessionTTL:   sessionTTL,
	}
}

// Login authenticates upstream and opens an edge session
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	upstream, err := u.gateway.Login(ctx, input)
	if err != nil {
		return nil, err
	}
	if upstream.User == nil {
		return nil, domainerrors.BadGateway("login response missing user", domainerrors.ErrUpstreamFailure)
	}

	sessionID := uuid.New().String()
	tokens, err := u.jwtService.GenerateTokenPair(upstream.User.ID, upstream.User.Email, string(upstream.User.Role), sessionID)
	if err != nil {
		return nil, err
	}

	data := &redis.SessionData{
		AccessToken:   tokens.AccessToken,
		RefreshToken:  tokens.RefreshToken,
		UpstreamToken: upstream.Token,
	}
	if err := u.sessionStore.CreateSession(ctx, sessionID, data, u.sessionTTL); err != nil {
		return nil, err
	}

	return &entities.AuthResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		SessionID:    sessionID,
		User:         upstream.User,
	}, nil
}

// Refresh rotates the token pair for a live session
func (u *AuthUsecase) Refresh(ctx context.Context, refreshToken string) (*entities.AuthResponse, error) {
	claims, err := u.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, domainerrors.Unauthorized("invalid refresh token")
	}

	session, err := u.sessionStore.GetSession(ctx, claims.SessionID)
	if err != nil {
		return nil, domainerrors.Unauthorized("session expired")
	}
	if session.RefreshToken != refreshToken {
		return nil, domainerrors.Unauthorized("refresh token superseded")
	}

	tokens, err := u.jwtService.GenerateTokenPair(claims.UserID, claims.Email, claims.Role, claims.SessionID)
	if err != nil {
		return nil, err
	}

	session.AccessToken = tokens.AccessToken
	session.RefreshToken = tokens.RefreshToken
	if err := u.sessionStore.CreateSession(ctx, claims.SessionID, session, u.sessionTTL); err != nil {
		return nil, err
	}

	return &entities.AuthResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		SessionID:    claims.SessionID,
	}, nil
}

// Logout closes the edge session
func (u *AuthUsecase) Logout(ctx context.Context, sessionID string) error {
	return u.sessionStore.DeleteSession(ctx, sessionID)
}

// GetMe fetches the authenticated user's profile from upstream
func (u *AuthUsecase) GetMe(ctx context.Context, upstreamToken string) (*entities.UserProfile, error) {
	return u.gateway.GetProfile(ctx, upstreamToken)
}

// UpdateMe forwards a partial profile update upstream
func (u *AuthUsecase) UpdateMe(ctx context.Context, upstreamToken string, patch *entities.ProfilePatch) (*entities.UserProfile, error) {
	return u.gateway.UpdateProfile(ctx, upstreamToken, patch)
}
