package httpx

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/resumelab/resumelab/internal/core"
	"github.com/resumelab/resumelab/internal/domain/model"
	"github.com/resumelab/resumelab/internal/service"
)

// ResumeHandlers provides HTTP handlers for resume CRUD.
type ResumeHandlers struct {
	Svc *service.ResumeService
}

// Create handles POST /api/v1/resume.
func (h *ResumeHandlers) Create(w http.ResponseWriter, r *http.Request) {
	session, ok := GetSessionFromContext(r.Context())
	if !ok {
		writeMissingSession(w)
		return
	}

	var req model.CreateResumeRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	resume, err := h.Svc.Create(r.Context(), session.UserID, &req)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, resume)
}

// List handles GET /api/v1/resume?limit=&offset=.
func (h *ResumeHandlers) List(w http.ResponseWriter, r *http.Request) {
	session, ok := GetSessionFromContext(r.Context())
	if !ok {
		writeMissingSession(w)
		return
	}

	limit := parseIntQuery(r, "limit", service.DefaultPageLimit)
	offset := parseIntQuery(r, "offset", 0)

	page, err := h.Svc.List(r.Context(), session.UserID, limit, offset)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, page)
}

// Get handles GET /api/v1/resume/{id}.
func (h *ResumeHandlers) Get(w http.ResponseWriter, r *http.Request) {
	session, ok := GetSessionFromContext(r.Context())
	if !ok {
		writeMissingSession(w)
		return
	}

	resume, err := h.Svc.Get(r.Context(), r.PathValue("id"), session.UserID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, resume)
}

// Update handles PUT /api/v1/resume/{id}.
func (h *ResumeHandlers) Update(w http.ResponseWriter, r *http.Request) {
	session, ok := GetSessionFromContext(r.Context())
	if !ok {
		writeMissingSession(w)
		return
	}

	var req model.UpdateResumeRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	resume, err := h.Svc.Update(r.Context(), core.UpdateResumeParams{
		ID:      r.PathValue("id"),
		OwnerID: session.UserID,
		Req:     &req,
	})
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, resume)
}

// Delete handles DELETE /api/v1/resume/{id}.
func (h *ResumeHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	session, ok := GetSessionFromContext(r.Context())
	if !ok {
		writeMissingSession(w)
		return
	}

	if err := h.Svc.Delete(r.Context(), r.PathValue("id"), session.UserID); err != nil {
		WriteServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeMissingSession(w http.ResponseWriter) {
	WriteError(w, ErrorParams{
		Code:    http.StatusUnauthorized,
		ErrCode: "authentication_required",
		Err:     errors.New("authentication required"),
	})
}

// parseIntQuery reads an integer query parameter, falling back to def on
// absence or garbage.
func parseIntQuery(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}
