package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// AccountType represents the business account types selectable in the
// onboarding wizard
type AccountType string

const (
	AccountTypeCommercant   AccountType = "COMMERCANT"
	AccountTypeFournisseur  AccountType = "FOURNISSEUR"
	AccountTypeRestaurateur AccountType = "RESTAURATEUR"
)

// Valid reports whether t is one of the selectable account types
func (t AccountType) Valid() bool {
	switch t {
	case AccountTypeCommercant, AccountTypeFournisseur, AccountTypeRestaurateur:
		return true
	}
	return false
}

// OTPLength is the number of digit slots in the verification step
const OTPLength = 6

// PersonalInfo holds the personal data collected by the wizard
type PersonalInfo struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Country         string `json:"country"`
	City            string `json:"city"`
	Gender          string `json:"gender"`
	Birthdate       string `json:"birthdate"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// PersonalPatch is a partial update of PersonalInfo. Nil fields are left
// untouched by Apply.
type PersonalPatch struct {
	Name            *string `json:"name,omitempty"`
	Email           *string `json:"email,omitempty"`
	Phone           *string `json:"phone,omitempty"`
	Country         *string `json:"country,omitempty"`
	City            *string `json:"city,omitempty"`
	Gender          *string `json:"gender,omitempty"`
	Birthdate       *string `json:"birthdate,omitempty"`
	Password        *string `json:"password,omitempty"`
	ConfirmPassword *string `json:"confirmPassword,omitempty"`
}

// Apply returns a copy of info with the non-nil patch fields replaced
func (p PersonalPatch) Apply(info PersonalInfo) PersonalInfo {
	if p.Name != nil {
		info.Name = *p.Name
	}
	if p.Email != nil {
		info.Email = *p.Email
	}
	if p.Phone != nil {
		info.Phone = *p.Phone
	}
	if p.Country != nil {
		info.Country = *p.Country
	}
	if p.City != nil {
		info.City = *p.City
	}
	if p.Gender != nil {
		info.Gender = *p.Gender
	}
	if p.Birthdate != nil {
		info.Birthdate = *p.Birthdate
	}
	if p.Password != nil {
		info.Password = *p.Password
	}
	if p.ConfirmPassword != nil {
		info.ConfirmPassword = *p.ConfirmPassword
	}
	return info
}

// BusinessInfo holds the business data collected by the wizard. The
// trailing fields are optional and only apply to some account types.
type BusinessInfo struct {
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Type         string  `json:"type"`
	Address      string  `json:"address"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	CurrencyCode string  `json:"currencyCode"`
	Sector       string  `json:"sector"`
	CommerceType string  `json:"commerceType"`

	PriceRange       null.String `json:"priceRange,omitempty"`
	ProductionVolume null.String `json:"productionVolume,omitempty"`
	DeliveryZones    []string    `json:"deliveryZones,omitempty"`
}

// BusinessPatch is a partial update of BusinessInfo. Nil fields are left
// untouched by Apply.
type BusinessPatch struct {
	Name         *string  `json:"name,omitempty"`
	Description  *string  `json:"description,omitempty"`
	Type         *string  `json:"type,omitempty"`
	Address      *string  `json:"address,omitempty"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
	CurrencyCode *string  `json:"currencyCode,omitempty"`
	Sector       *string  `json:"sector,omitempty"`
	CommerceType *string  `json:"commerceType,omitempty"`

	PriceRange       *string   `json:"priceRange,omitempty"`
	ProductionVolume *string   `json:"productionVolume,omitempty"`
	DeliveryZones    *[]string `json:"deliveryZones,omitempty"`
}

// Apply returns a copy of info with the non-nil patch fields replaced
func (p BusinessPatch) Apply(info BusinessInfo) BusinessInfo {
	if p.Name != nil {
		info.Name = *p.Name
	}
	if p.Description != nil {
		info.Description = *p.Description
	}
	if p.Type != nil {
		info.Type = *p.Type
	}
	if p.Address != nil {
		info.Address = *p.Address
	}
	if p.Latitude != nil {
		info.Latitude = *p.Latitude
	}
	if p.Longitude != nil {
		info.Longitude = *p.Longitude
	}
	if p.CurrencyCode != nil {
		info.CurrencyCode = *p.CurrencyCode
	}
	if p.Sector != nil {
		info.Sector = *p.Sector
	}
	if p.CommerceType != nil {
		info.CommerceType = *p.CommerceType
	}
	if p.PriceRange != nil {
		info.PriceRange = null.StringFrom(*p.PriceRange)
	}
	if p.ProductionVolume != nil {
		info.ProductionVolume = null.StringFrom(*p.ProductionVolume)
	}
	if p.DeliveryZones != nil {
		info.DeliveryZones = append([]string(nil), (*p.DeliveryZones)...)
	}
	return info
}

// OnboardingState is the accumulating registration record for one wizard
// session. It lives in the session store until submission or expiry.
type OnboardingState struct {
	SessionID   uuid.UUID        `json:"sessionId"`
	Step        int              `json:"step"`
	AccountType AccountType      `json:"accountType"`
	Personal    PersonalInfo     `json:"personal"`
	Business    BusinessInfo     `json:"business"`
	LogoImage   null.String      `json:"logoImage,omitempty"`
	CoverImage  null.String      `json:"coverImage,omitempty"`
	OTP         [OTPLength]string `json:"otp"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

// NewOnboardingState returns a fresh wizard state positioned on step 1
func NewOnboardingState(sessionID uuid.UUID) *OnboardingState {
	now := time.Now()
	return &OnboardingState{
		SessionID: sessionID,
		Step:      1,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Reset restores every field to its initial default in a single
// replacement, keeping only the session identity
func (s *OnboardingState) Reset() {
	*s = *NewOnboardingState(s.SessionID)
}

// SetAccountType selects the account type and keeps Business.Type in
// sync whenever the selection is one of the enumerated types.
// Re-selecting the same value is idempotent.
func (s *OnboardingState) SetAccountType(t AccountType) {
	s.AccountType = t
	if t.Valid() {
		s.Business.Type = string(t)
	}
}

// OTPCode joins the entered digit slots into the code string
func (s *OnboardingState) OTPCode() string {
	return strings.Join(s.OTP[:], "")
}

// OTPComplete reports whether all digit slots are filled with a single
// character each
func (s *OnboardingState) OTPComplete() bool {
	for _, d := range s.OTP {
		if len(d) != 1 {
			return false
		}
	}
	return true
}

// SetStepInput is the request body for moving the wizard position
type SetStepInput struct {
	Step int `json:"step" binding:"required"`
}

// SetAccountTypeInput is the request body for selecting an account type
type SetAccountTypeInput struct {
	AccountType AccountType `json:"accountType" binding:"required"`
}

// SetImagesInput is the request body for attaching upload references
type SetImagesInput struct {
	LogoImage  *string `json:"logoImage,omitempty"`
	CoverImage *string `json:"coverImage,omitempty"`
}

// SetOTPInput is the request body for filling the verification digits
type SetOTPInput struct {
	Digits []string `json:"digits" binding:"required"`
}

// BusinessRegistration is the payload submitted upstream once the wizard
// completes
type BusinessRegistration struct {
	AccountType AccountType  `json:"accountType"`
	Personal    PersonalInfo `json:"personal"`
	Business    BusinessInfo `json:"business"`
	LogoImage   null.String  `json:"logoImage,omitempty"`
	CoverImage  null.String  `json:"coverImage,omitempty"`
}

// SubmissionStatus tracks the outcome of a submit attempt
type SubmissionStatus string

const (
	SubmissionStatusSubmitted SubmissionStatus = "SUBMITTED"
	SubmissionStatusFailed    SubmissionStatus = "FAILED"
)

// Submission is one journaled submit attempt of a wizard session
type Submission struct {
	ID           uuid.UUID        `json:"id"`
	SessionID    uuid.UUID        `json:"sessionId"`
	AccountType  AccountType      `json:"accountType"`
	BusinessName string           `json:"businessName"`
	Email        string           `json:"email"`
	Status       SubmissionStatus `json:"status"`
	ErrorMessage null.String      `json:"errorMessage,omitempty"`
	CreatedAt    time.Time        `json:"createdAt"`
}

// OTPCode is a journaled verification code delivery. Only the bcrypt
// hash of the code is stored.
type OTPCode struct {
	ID         uuid.UUID `json:"id"`
	Email      string    `json:"email"`
	CodeHash   string    `json:"-"`
	ExpiresAt  time.Time `json:"expiresAt"`
	ConsumedAt null.Time `json:"consumedAt,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}
