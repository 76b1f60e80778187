package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// UserRole represents user roles on the platform
type UserRole string

const (
	UserRoleAdmin UserRole = "ADMIN"
	UserRoleOwner UserRole = "OWNER"
	UserRoleUser  UserRole = "USER"
)

// UserProfile is the marketplace user as returned by the upstream API
type UserProfile struct {
	ID        uuid.UUID   `json:"id"`
	Email     string      `json:"email"`
	Name      string      `json:"name"`
	Phone     null.String `json:"phone,omitempty"`
	Country   null.String `json:"country,omitempty"`
	City      null.String `json:"city,omitempty"`
	Role      UserRole    `json:"role"`
	AvatarURL null.String `json:"avatarUrl,omitempty"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// ProfilePatch is a partial profile update forwarded upstream
type ProfilePatch struct {
	Name    *string `json:"name,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Country *string `json:"country,omitempty"`
	City    *string `json:"city,omitempty"`
}

// LoginInput represents input for user login
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpstreamSession is the result of authenticating against the
// marketplace API: its bearer token plus the resolved profile
type UpstreamSession struct {
	Token string       `json:"token"`
	User  *UserProfile `json:"user"`
}

// AuthResponse represents the edge authentication response
type AuthResponse struct {
	AccessToken  string       `json:"accessToken,omitempty"`
	RefreshToken string       `json:"refreshToken,omitempty"`
	SessionID    string       `json:"sessionId,omitempty"`
	User         *UserProfile `json:"user"`
}
