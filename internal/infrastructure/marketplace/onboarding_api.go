package marketplace

import (
	"context"
	"net/http"

	"komoralink.backend/internal/domain/entities"
)

// RegisterBusiness submits a completed onboarding registration. Called
// once at the end of the wizard; account activation is enforced
// upstream.
func (c *Client) RegisterBusiness(ctx context.Context, reg *entities.BusinessRegistration) (*entities.Business, error) {
	var business entities.Business
	if err := c.do(ctx, http.MethodPost, "/businesses", "", nil, reg, &business); err != nil {
		return nil, err
	}
	return &business, nil
}

type verificationCodeWire struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

// SendVerificationCode asks the upstream notification pipeline to
// deliver a verification code to the given address
func (c *Client) SendVerificationCode(ctx context.Context, email, code string) error {
	payload := verificationCodeWire{Email: email, Code: code}
	return c.do(ctx, http.MethodPost, "/notifications/verification-code", "", nil, payload, nil)
}
