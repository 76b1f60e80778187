package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"
	"komoralink.backend/internal/domain/entities"
	domainerrors "komoralink.backend/internal/domain/errors"
	"komoralink.backend/internal/domain/repositories"
	"komoralink.backend/pkg/crypto"
	"komoralink.backend/pkg/logger"
)

// OnboardingUsecase drives the multi-step business registration wizard.
// All wizard state lives in the session repository; nothing here
// validates across steps until Submit.
type OnboardingUsecase struct {
	sessionRepo    repositories.OnboardingSessionRepository
	submissionRepo repositories.SubmissionRepository
	otpRepo        repositories.OTPRepository
	gateway        repositories.MarketplaceGateway
	otpTTL         time.Duration
}

// NewOnboardingUsecase creates a new onboarding usecase
func NewOnboardingUsecase(
	sessionRepo repositories.OnboardingSessionRepository,
	submissionRepo repositories.SubmissionRepository,
	otpRepo repositories.OTPRepository,
	gateway repositories.MarketplaceGateway,
	otpTTL time.Duration,
) *OnboardingUsecase {
	return &OnboardingUsecase{
		sessionRepo:    sessionRepo,
		submissionRepo: submissionRepo,
		otpRepo:        otpRepo,
		gateway:        gateway,
		otpTTL:         otpTTL,
	}
}

// StartSession opens a fresh wizard session on step 1
func (u *OnboardingUsecase) StartSession(ctx context.Context) (*entities.OnboardingState, error) {
	state := entities.NewOnboardingState(uuid.New())
	if err := u.sessionRepo.Save(ctx, state); err != nil {
		return nil, err
	}
	return state, nil
}

// GetState returns the current wizard state
func (u *OnboardingUsecase) GetState(ctx context.Context, sessionID uuid.UUID) (*entities.OnboardingState, error) {
	return u.sessionRepo.Get(ctx, sessionID)
}

// SetStep moves the wizard position. The step is accepted as-is with no
// bounds check, matching the existing client behavior where screens
// jump freely between positions.
// TODO: product to confirm whether out-of-range steps should be rejected.
func (u *OnboardingUsecase) SetStep(ctx context.Context, sessionID uuid.UUID, step int) (*entities.OnboardingState, error) {
	state, err := u.sessionRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	state.Step = step
	if err := u.sessionRepo.Save(ctx, state); err != nil {
		return nil, err
	}
	return state, nil
}

// SetAccountType selects the account type. Re-selection is idempotent;
// Business.Type is kept in sync for the enumerated types.
func (u *OnboardingUsecase) SetAccountType(ctx context.Context, sessionID uuid.UUID, accountType entities.AccountType) (*entities.OnboardingState, error) {
	state, err := u.sessionRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	state.SetAccountType(accountType)
	if err := u.sessionRepo.Save(ctx, state); err != nil {
		return nil, err
	}
	return state, nil
}

// UpdatePersonal shallow-merges a personal data patch into the state
func (u *OnboardingUsecase) UpdatePersonal(ctx context.Context, sessionID uuid.UUID, patch entities.PersonalPatch) (*entities.OnboardingState, error) {
	state, err := u.sessionRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	state.Personal = patch.Apply(state.Personal)
	if err := u.sessionRepo.Save(ctx, state); err != nil {
		return nil, err
	}
	return state, nil
}

// UpdateBusiness shallow-merges a business data patch into the state
func (u *OnboardingUsecase) UpdateBusiness(ctx context.Context, sessionID uuid.UUID, patch entities.BusinessPatch) (*entities.OnboardingState, error) {
	state, err := u.sessionRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	state.Business = patch.Apply(state.Business)
	if err := u.sessionRepo.Save(ctx, state); err != nil {
		return nil, err
	}
	return state, nil
}

// SetImages attaches logo/cover upload references
func (u *OnboardingUsecase) SetImages(ctx context.Context, sessionID uuid.UUID, input *entities.SetImagesInput) (*entities.OnboardingState, error) {
	state, err := u.sessionRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if input.LogoImage != nil {
		state.LogoImage = null.StringFrom(*input.LogoImage)
	}
	if input.CoverImage != nil {
		state.CoverImage = null.StringFrom(*input.CoverImage)
	}
	if err := u.sessionRepo.Save(ctx, state); err != nil {
		return nil, err
	}
	return state, nil
}

// SetOTP fills the verification digit slots
func (u *OnboardingUsecase) SetOTP(ctx context.Context, sessionID uuid.UUID, digits []string) (*entities.OnboardingState, error) {
	if len(digits) != entities.OTPLength {
		return nil, domainerrors.BadRequest("verification code must have 6 digits")
	}
	for _, d := range digits {
		if len(d) > 1 {
			return nil, domainerrors.BadRequest("each digit slot holds a single character")
		}
	}

	state, err := u.sessionRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	copy(state.OTP[:], digits)
	if err := u.sessionRepo.Save(ctx, state); err != nil {
		return nil, err
	}
	return state, nil
}

// Reset restores the session to its initial defaults in one replacement
func (u *OnboardingUsecase) Reset(ctx context.Context, sessionID uuid.UUID) (*entities.OnboardingState, error) {
	state, err := u.sessionRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	state.Reset()
	if err := u.sessionRepo.Save(ctx, state); err != nil {
		return nil, err
	}
	return state, nil
}

// RequestOTP generates a verification code, journals its hash and asks
// the upstream to deliver it to the entered email address
func (u *OnboardingUsecase) RequestOTP(ctx context.Context, sessionID uuid.UUID) error {
	state, err := u.sessionRepo.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	if state.Personal.Email == "" {
		return domainerrors.BadRequest("email is required before verification")
	}

	code, err := crypto.GenerateOTP()
	if err != nil {
		return err
	}
	hash, err := crypto.HashCode(code)
	if err != nil {
		return err
	}

	record := &entities.OTPCode{
		Email:     state.Personal.Email,
		CodeHash:  hash,
		ExpiresAt: time.Now().Add(u.otpTTL),
	}
	if err := u.otpRepo.Create(ctx, record); err != nil {
		return err
	}

	return u.gateway.SendVerificationCode(ctx, state.Personal.Email, code)
}

// Submit validates the accumulated state, verifies the entered code and
// registers the business upstream. A failed submission leaves the
// session untouched so the user can correct and retry; success deletes
// it. Every attempt is journaled.
func (u *OnboardingUsecase) Submit(ctx context.Context, sessionID uuid.UUID) (*entities.Business, error) {
	state, err := u.sessionRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err := validateForSubmission(state); err != nil {
		return nil, err
	}

	if err := u.verifyOTP(ctx, state); err != nil {
		return nil, err
	}

	registration := &entities.BusinessRegistration{
		AccountType: state.AccountType,
		Personal:    state.Personal,
		Business:    state.Business,
		LogoImage:   state.LogoImage,
		CoverImage:  state.CoverImage,
	}

	business, err := u.gateway.RegisterBusiness(ctx, registration)
	if err != nil {
		u.journal(ctx, state, entities.SubmissionStatusFailed, err.Error())
		return nil, err
	}

	u.journal(ctx, state, entities.SubmissionStatusSubmitted, "")

	if err := u.sessionRepo.Delete(ctx, sessionID); err != nil {
		logger.Warn(ctx, "Failed to delete onboarding session after submission",
			zap.String("session_id", sessionID.String()), zap.Error(err))
	}
	return business, nil
}

func (u *OnboardingUsecase) verifyOTP(ctx context.Context, state *entities.OnboardingState) error {
	record, err := u.otpRepo.GetLatestActive(ctx, state.Personal.Email, time.Now())
	if err != nil {
		if err == domainerrors.ErrNotFound {
			return domainerrors.ErrInvalidOTP
		}
		return err
	}

	if !crypto.CheckCode(state.OTPCode(), record.CodeHash) {
		return domainerrors.ErrInvalidOTP
	}
	return u.otpRepo.MarkConsumed(ctx, record.ID)
}

func (u *OnboardingUsecase) journal(ctx context.Context, state *entities.OnboardingState, status entities.SubmissionStatus, errMsg string) {
	submission := &entities.Submission{
		SessionID:    state.SessionID,
		AccountType:  state.AccountType,
		BusinessName: state.Business.Name,
		Email:        state.Personal.Email,
		Status:       status,
	}
	if errMsg != "" {
		submission.ErrorMessage = null.StringFrom(errMsg)
	}
	if err := u.submissionRepo.Create(ctx, submission); err != nil {
		logger.Warn(ctx, "Failed to journal onboarding submission",
			zap.String("session_id", state.SessionID.String()), zap.Error(err))
	}
}

func validateForSubmission(state *entities.OnboardingState) error {
	if !state.AccountType.Valid() {
		return domainerrors.BadRequest("account type is required")
	}
	if state.Personal.Name == "" || state.Personal.Email == "" || state.Personal.Phone == "" {
		return domainerrors.BadRequest("name, email and phone are required")
	}
	if state.Personal.Password == "" {
		return domainerrors.BadRequest("password is required")
	}
	if state.Personal.Password != state.Personal.ConfirmPassword {
		return domainerrors.ErrPasswordMismatch
	}
	if state.Business.Name == "" || state.Business.Address == "" {
		return domainerrors.BadRequest("business name and address are required")
	}
	if !state.OTPComplete() {
		return domainerrors.ErrIncompleteOTP
	}
	return nil
}
