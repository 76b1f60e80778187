package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "komoralink.backend/internal/domain/errors"
	"komoralink.backend/internal/interfaces/http/response"
)

// handleError maps domain sentinel errors onto HTTP responses. AppError
// values carry their own status.
func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainerrors.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Onboarding session not found or expired"})
	case errors.Is(err, domainerrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
	case errors.Is(err, domainerrors.ErrPasswordMismatch):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Passwords do not match"})
	case errors.Is(err, domainerrors.ErrIncompleteOTP):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Verification code is incomplete"})
	case errors.Is(err, domainerrors.ErrInvalidOTP):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid verification code"})
	default:
		response.Error(c, err)
	}
}
