package httpx

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/resumelab/resumelab/internal/data"
	domainauth "github.com/resumelab/resumelab/internal/domain/auth"
	"github.com/resumelab/resumelab/internal/domain/model"
	"github.com/resumelab/resumelab/internal/mocks"
	"github.com/resumelab/resumelab/internal/service"
)

const testResumeID = "resume-123"

func newResumeHandlers(t *testing.T) (*ResumeHandlers, *mocks.MockResumeRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMockResumeRepository(ctrl)
	svc := service.NewResumeService(service.ResumeServiceOptions{Resumes: repo})
	return &ResumeHandlers{Svc: svc}, repo
}

// withSession stamps an authenticated session onto the request, the way
// RequireAuth would for a valid token.
func withSession(r *http.Request) *http.Request {
	session := &domainauth.Session{
		ID:        "sess-1",
		UserID:    testUserID,
		Email:     testUserEmail,
		IssuedAt:  time.Now(),
		ExpiresAt: time.Now().Add(time.Hour),
	}
	return r.WithContext(SetSessionInContext(r.Context(), session))
}

func testResume() *model.Resume {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	return &model.Resume{
		ID:        testResumeID,
		UserID:    testUserID,
		Title:     "Backend Engineer",
		Content:   "Ten years of Go.",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestCreateResume_Success(t *testing.T) {
	h, repo := newResumeHandlers(t)

	repo.EXPECT().
		Create(gomock.Any(), testUserID, gomock.Any()).
		Return(testResume(), nil)

	r := withSession(postJSON(t, "/api/v1/resume", map[string]string{
		"title":   "Backend Engineer",
		"content": "Ten years of Go.",
	}))
	w := httptest.NewRecorder()

	h.Create(w, r)

	resp := w.Result()
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var got model.Resume
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, testResumeID, got.ID)
}

func TestCreateResume_WithoutSession(t *testing.T) {
	h, _ := newResumeHandlers(t)

	r := postJSON(t, "/api/v1/resume", map[string]string{
		"title":   "Backend Engineer",
		"content": "Ten years of Go.",
	})
	w := httptest.NewRecorder()

	h.Create(w, r)

	require.Equal(t, http.StatusUnauthorized, w.Result().StatusCode)
}

func TestCreateResume_ValidationError(t *testing.T) {
	h, _ := newResumeHandlers(t)

	r := withSession(postJSON(t, "/api/v1/resume", map[string]string{
		"title":   "",
		"content": "Ten years of Go.",
	}))
	w := httptest.NewRecorder()

	h.Create(w, r)

	resp := w.Result()
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "title", body["field"])
}

func TestListResumes_PassesPagination(t *testing.T) {
	h, repo := newResumeHandlers(t)

	repo.EXPECT().
		List(gomock.Any(), testUserID, 5, 10).
		Return(&model.ResumePage{Items: []model.Resume{*testResume()}, Total: 1, Limit: 5, Offset: 10}, nil)

	r := withSession(httptest.NewRequest(http.MethodGet, "/api/v1/resume?limit=5&offset=10", nil))
	w := httptest.NewRecorder()

	h.List(w, r)

	resp := w.Result()
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got model.ResumePage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, 1, got.Total)
	assert.Len(t, got.Items, 1)
}

func TestListResumes_LimitDefaultsAndClamps(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantLimit int
	}{
		{name: "absent limit uses default", query: "", wantLimit: 20},
		{name: "explicit zero clamps to smallest page", query: "?limit=0", wantLimit: 1},
		{name: "negative limit clamps to smallest page", query: "?limit=-5", wantLimit: 1},
		{name: "oversized limit capped", query: "?limit=5000", wantLimit: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, repo := newResumeHandlers(t)

			repo.EXPECT().
				List(gomock.Any(), testUserID, tt.wantLimit, 0).
				Return(&model.ResumePage{Items: []model.Resume{}, Limit: tt.wantLimit}, nil)

			r := withSession(httptest.NewRequest(http.MethodGet, "/api/v1/resume"+tt.query, nil))
			w := httptest.NewRecorder()

			h.List(w, r)

			resp := w.Result()
			defer resp.Body.Close()
			require.Equal(t, http.StatusOK, resp.StatusCode)
		})
	}
}

func TestGetResume_NotFound(t *testing.T) {
	h, repo := newResumeHandlers(t)

	repo.EXPECT().
		GetOwned(gomock.Any(), testResumeID, testUserID).
		Return(nil, data.ErrResumeNotFound)

	r := withSession(httptest.NewRequest(http.MethodGet, "/api/v1/resume/"+testResumeID, nil))
	r.SetPathValue("id", testResumeID)
	w := httptest.NewRecorder()

	h.Get(w, r)

	require.Equal(t, http.StatusNotFound, w.Result().StatusCode)
}

func TestUpdateResume_Success(t *testing.T) {
	h, repo := newResumeHandlers(t)

	updated := testResume()
	updated.Title = "Staff Engineer"

	repo.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		Return(updated, nil)

	r := withSession(postJSON(t, "/api/v1/resume/"+testResumeID, map[string]string{
		"title": "Staff Engineer",
	}))
	r.Method = http.MethodPut
	r.SetPathValue("id", testResumeID)
	w := httptest.NewRecorder()

	h.Update(w, r)

	resp := w.Result()
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got model.Resume
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "Staff Engineer", got.Title)
}

func TestUpdateResume_EmptyBody(t *testing.T) {
	h, _ := newResumeHandlers(t)

	r := withSession(httptest.NewRequest(http.MethodPut, "/api/v1/resume/"+testResumeID, bytes.NewBufferString("{}")))
	r.SetPathValue("id", testResumeID)
	w := httptest.NewRecorder()

	h.Update(w, r)

	require.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestDeleteResume_Success(t *testing.T) {
	h, repo := newResumeHandlers(t)

	repo.EXPECT().
		Delete(gomock.Any(), testResumeID, testUserID).
		Return(true, nil)

	r := withSession(httptest.NewRequest(http.MethodDelete, "/api/v1/resume/"+testResumeID, nil))
	r.SetPathValue("id", testResumeID)
	w := httptest.NewRecorder()

	h.Delete(w, r)

	require.Equal(t, http.StatusNoContent, w.Result().StatusCode)
}

func TestDeleteResume_NotFound(t *testing.T) {
	h, repo := newResumeHandlers(t)

	repo.EXPECT().
		Delete(gomock.Any(), testResumeID, testUserID).
		Return(false, nil)

	r := withSession(httptest.NewRequest(http.MethodDelete, "/api/v1/resume/"+testResumeID, nil))
	r.SetPathValue("id", testResumeID)
	w := httptest.NewRecorder()

	h.Delete(w, r)

	require.Equal(t, http.StatusNotFound, w.Result().StatusCode)
}
