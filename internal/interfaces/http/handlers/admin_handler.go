package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"komoralink.backend/internal/domain/repositories"
	"komoralink.backend/pkg/utils"
)

// AdminHandler serves the back-office views over the local journals
type AdminHandler struct {
	submissionRepo repositories.SubmissionRepository
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(submissionRepo repositories.SubmissionRepository) *AdminHandler {
	return &AdminHandler{submissionRepo: submissionRepo}
}

// ListSubmissions lists recent onboarding submission attempts
// GET /api/v1/admin/onboarding/submissions
func (h *AdminHandler) ListSubmissions(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	params := utils.GetPaginationParams(page, limit)

	submissions, total, err := h.submissionRepo.ListRecent(c.Request.Context(), params.Limit, params.CalculateOffset())
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": submissions,
		"meta": utils.CalculateMeta(int64(total), params.Page, params.Limit),
	})
}

// GetSubmission fetches a single journaled submission
// GET /api/v1/admin/onboarding/submissions/:id
func (h *AdminHandler) GetSubmission(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid submission ID"})
		return
	}

	submission, err := h.submissionRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, submission)
}
