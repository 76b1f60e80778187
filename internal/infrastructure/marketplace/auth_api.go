package marketplace

import (
	"context"
	"net/http"

	"komoralink.backend/internal/domain/entities"
)

type loginWire struct {
	Token string                `json:"token"`
	User  *entities.UserProfile `json:"user"`
}

// Login authenticates against the marketplace API and returns its
// bearer token with the resolved user profile
func (c *Client) Login(ctx context.Context, input *entities.LoginInput) (*entities.UpstreamSession, error) {
	var wire loginWire
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", nil, input, &wire); err != nil {
		return nil, err
	}
	return &entities.UpstreamSession{Token: wire.Token, User: wire.User}, nil
}

// GetProfile fetches the authenticated user's profile
func (c *Client) GetProfile(ctx context.Context, token string) (*entities.UserProfile, error) {
	var profile entities.UserProfile
	if err := c.do(ctx, http.MethodGet, "/users/me", token, nil, nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateProfile forwards a partial profile update upstream
func (c *Client) UpdateProfile(ctx context.Context, token string, patch *entities.ProfilePatch) (*entities.UserProfile, error) {
	var profile entities.UserProfile
	if err := c.do(ctx, http.MethodPatch, "/users/me", token, nil, patch, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}
