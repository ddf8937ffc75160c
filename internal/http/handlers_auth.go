// Package httpx provides the JSON API surface for the resumelab service.
package httpx

import (
	"errors"
	"net/http"

	"github.com/resumelab/resumelab/internal/domain/model"
	"github.com/resumelab/resumelab/internal/service"
)

// AuthHandlers provides HTTP handlers for registration, login, and logout.
type AuthHandlers struct {
	Svc *service.AuthService
}

// TokenResponse is the login payload: a bearer token and its lifetime.
type TokenResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	ExpiresIn   int64       `json:"expires_in"`
	User        *model.User `json:"user"`
}

// Register handles POST /api/v1/auth/register.
func (h *AuthHandlers) Register(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	user, err := h.Svc.Register(r.Context(), &req)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, user)
}

// Login handles POST /api/v1/auth/login.
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	result, err := h.Svc.Login(r.Context(), &req)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, TokenResponse{
		AccessToken: result.Token,
		TokenType:   "bearer",
		ExpiresIn:   int64(result.Session.ExpiresAt.Sub(result.Session.IssuedAt).Seconds()),
		User:        result.User,
	})
}

// Logout handles POST /api/v1/auth/logout. It revokes the current session so
// the token stops working before its natural expiry.
func (h *AuthHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	session, ok := GetSessionFromContext(r.Context())
	if !ok {
		WriteError(w, ErrorParams{
			Code:    http.StatusUnauthorized,
			ErrCode: "authentication_required",
			Err:     errors.New("authentication required"),
		})
		return
	}

	if err := h.Svc.Logout(r.Context(), session.ID); err != nil {
		WriteServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
