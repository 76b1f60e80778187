package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"komoralink.backend/internal/domain/entities"
	domainerrors "komoralink.backend/internal/domain/errors"
)

type adminSubmissionRepoStub struct {
	submissions []*entities.Submission
	total       int

	lastLimit  int
	lastOffset int
}

func (s *adminSubmissionRepoStub) Create(context.Context, *entities.Submission) error { return nil }

func (s *adminSubmissionRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.Submission, error) {
	for _, sub := range s.submissions {
		if sub.ID == id {
			return sub, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (s *adminSubmissionRepoStub) ListRecent(_ context.Context, limit, offset int) ([]*entities.Submission, int, error) {
	s.lastLimit = limit
	s.lastOffset = offset
	return s.submissions, s.total, nil
}

func newAdminRouter(repo *adminSubmissionRepoStub) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAdminHandler(repo)
	r := gin.New()
	r.GET("/admin/onboarding/submissions", h.ListSubmissions)
	r.GET("/admin/onboarding/submissions/:id", h.GetSubmission)
	return r
}

func TestAdminListSubmissions_PagesThroughJournal(t *testing.T) {
	repo := &adminSubmissionRepoStub{
		submissions: []*entities.Submission{
			{ID: uuid.New(), BusinessName: "Boutique Awa", Status: entities.SubmissionStatusSubmitted},
			{ID: uuid.New(), BusinessName: "Chez Mama", Status: entities.SubmissionStatusFailed},
		},
		total: 12,
	}
	r := newAdminRouter(repo)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/onboarding/submissions?page=2&limit=5", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 5, repo.lastLimit)
	assert.Equal(t, 5, repo.lastOffset)

	var body struct {
		Data []entities.Submission `json:"data"`
		Meta struct {
			Page       int   `json:"page"`
			TotalCount int64 `json:"totalCount"`
			TotalPages int   `json:"totalPages"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Data, 2)
	assert.Equal(t, 2, body.Meta.Page)
	assert.Equal(t, int64(12), body.Meta.TotalCount)
	assert.Equal(t, 3, body.Meta.TotalPages)
}

func TestAdminGetSubmission(t *testing.T) {
	sub := &entities.Submission{ID: uuid.New(), BusinessName: "Boutique Awa"}
	r := newAdminRouter(&adminSubmissionRepoStub{submissions: []*entities.Submission{sub}})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/onboarding/submissions/"+sub.ID.String(), nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Boutique Awa")

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/onboarding/submissions/"+uuid.NewString(), nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/onboarding/submissions/not-a-uuid", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
