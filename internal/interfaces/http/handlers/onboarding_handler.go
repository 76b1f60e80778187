package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"komoralink.backend/internal/domain/entities"
	"komoralink.backend/internal/usecases"
)

// OnboardingHandler handles the wizard session endpoints
type OnboardingHandler struct {
	onboardingUsecase *usecases.OnboardingUsecase
}

// NewOnboardingHandler creates a new onboarding handler
func NewOnboardingHandler(onboardingUsecase *usecases.OnboardingUsecase) *OnboardingHandler {
	return &OnboardingHandler{onboardingUsecase: onboardingUsecase}
}

// StartSession opens a new wizard session
// POST /api/v1/onboarding/sessions
func (h *OnboardingHandler) StartSession(c *gin.Context) {
	state, err := h.onboardingUsecase.StartSession(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, state)
}

// GetState returns the current wizard state
// GET /api/v1/onboarding/sessions/:sessionId
func (h *OnboardingHandler) GetState(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	state, err := h.onboardingUsecase.GetState(c.Request.Context(), sessionID)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// SetStep moves the wizard position
// PUT /api/v1/onboarding/sessions/:sessionId/step
func (h *OnboardingHandler) SetStep(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	var input entities.SetStepInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state, err := h.onboardingUsecase.SetStep(c.Request.Context(), sessionID, input.Step)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// SetAccountType selects the account type
// PUT /api/v1/onboarding/sessions/:sessionId/account-type
func (h *OnboardingHandler) SetAccountType(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	var input entities.SetAccountTypeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state, err := h.onboardingUsecase.SetAccountType(c.Request.Context(), sessionID, input.AccountType)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// UpdatePersonal merges a personal data patch
// PATCH /api/v1/onboarding/sessions/:sessionId/personal
func (h *OnboardingHandler) UpdatePersonal(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	var patch entities.PersonalPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state, err := h.onboardingUsecase.UpdatePersonal(c.Request.Context(), sessionID, patch)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// UpdateBusiness merges a business data patch
// PATCH /api/v1/onboarding/sessions/:sessionId/business
func (h *OnboardingHandler) UpdateBusiness(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	var patch entities.BusinessPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state, err := h.onboardingUsecase.UpdateBusiness(c.Request.Context(), sessionID, patch)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// SetImages attaches logo/cover upload references
// PUT /api/v1/onboarding/sessions/:sessionId/images
func (h *OnboardingHandler) SetImages(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	var input entities.SetImagesInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state, err := h.onboardingUsecase.SetImages(c.Request.Context(), sessionID, &input)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// SetOTP fills the verification digit slots
// PUT /api/v1/onboarding/sessions/:sessionId/otp
func (h *OnboardingHandler) SetOTP(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	var input entities.SetOTPInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state, err := h.onboardingUsecase.SetOTP(c.Request.Context(), sessionID, input.Digits)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// RequestOTP asks upstream to deliver a verification code
// POST /api/v1/onboarding/sessions/:sessionId/otp/request
func (h *OnboardingHandler) RequestOTP(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	if err := h.onboardingUsecase.RequestOTP(c.Request.Context(), sessionID); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"message": "Verification code sent"})
}

// Reset restores the session to its initial defaults
// POST /api/v1/onboarding/sessions/:sessionId/reset
func (h *OnboardingHandler) Reset(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	state, err := h.onboardingUsecase.Reset(c.Request.Context(), sessionID)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// Submit registers the business upstream
// POST /api/v1/onboarding/sessions/:sessionId/submit
func (h *OnboardingHandler) Submit(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	business, err := h.onboardingUsecase.Submit(c.Request.Context(), sessionID)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, business)
}

func (h *OnboardingHandler) sessionID(c *gin.Context) (uuid.UUID, bool) {
	sessionID, err := uuid.Parse(c.Param("sessionId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid session ID"})
		return uuid.Nil, false
	}
	return sessionID, true
}
