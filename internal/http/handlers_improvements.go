package httpx

import (
	"net/http"

	"github.com/resumelab/resumelab/internal/domain/model"
	"github.com/resumelab/resumelab/internal/service"
)

// ImprovementHandlers provides HTTP handlers for the improvement pipeline's
// enqueue and status-query surface.
type ImprovementHandlers struct {
	Svc *service.ImprovementService
}

// ImprovementQueuedResponse acknowledges an accepted improvement job.
type ImprovementQueuedResponse struct {
	ImprovementID string                  `json:"improvement_id"`
	Status        model.ImprovementStatus `json:"status"`
}

// Enqueue handles POST /api/v1/resume/{id}/improve. The job runs
// asynchronously; the 202 only promises it was durably queued and confirmed
// by the broker.
func (h *ImprovementHandlers) Enqueue(w http.ResponseWriter, r *http.Request) {
	session, ok := GetSessionFromContext(r.Context())
	if !ok {
		writeMissingSession(w)
		return
	}

	improvement, err := h.Svc.Enqueue(r.Context(), r.PathValue("id"), session.UserID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusAccepted, ImprovementQueuedResponse{
		ImprovementID: improvement.ID,
		Status:        improvement.Status,
	})
}

// Get handles GET /api/v1/improvements/{id}.
func (h *ImprovementHandlers) Get(w http.ResponseWriter, r *http.Request) {
	session, ok := GetSessionFromContext(r.Context())
	if !ok {
		writeMissingSession(w)
		return
	}

	improvement, err := h.Svc.Get(r.Context(), r.PathValue("id"), session.UserID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, improvement)
}

// ListForResume handles GET /api/v1/resume/{id}/improvements?limit=&offset=.
func (h *ImprovementHandlers) ListForResume(w http.ResponseWriter, r *http.Request) {
	session, ok := GetSessionFromContext(r.Context())
	if !ok {
		writeMissingSession(w)
		return
	}

	limit := parseIntQuery(r, "limit", service.DefaultPageLimit)
	offset := parseIntQuery(r, "offset", 0)

	page, err := h.Svc.ListForResume(r.Context(), r.PathValue("id"), session.UserID, limit, offset)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, page)
}
