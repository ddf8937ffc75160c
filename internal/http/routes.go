package httpx

import (
	"log/slog"
	"net/http"

	"github.com/resumelab/resumelab/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Auth         *service.AuthService
	Resumes      *service.ResumeService
	Improvements *service.ImprovementService
	Logger       *slog.Logger
}

// NewRouter creates and configures the API router with logging and panic
// recovery applied to every route.
func NewRouter(services RouterServices) http.Handler {
	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}

	mux := http.NewServeMux()

	authHandlers := &AuthHandlers{Svc: services.Auth}
	resumeHandlers := &ResumeHandlers{Svc: services.Resumes}
	improvementHandlers := &ImprovementHandlers{Svc: services.Improvements}

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	mux.Handle("POST /api/v1/auth/register", http.HandlerFunc(authHandlers.Register))
	mux.Handle("POST /api/v1/auth/login", http.HandlerFunc(authHandlers.Login))

	authed := RequireAuth(services.Auth)
	mux.Handle("POST /api/v1/auth/logout", authed(http.HandlerFunc(authHandlers.Logout)))

	mux.Handle("POST /api/v1/resume", authed(http.HandlerFunc(resumeHandlers.Create)))
	mux.Handle("GET /api/v1/resume", authed(http.HandlerFunc(resumeHandlers.List)))
	mux.Handle("GET /api/v1/resume/{id}", authed(http.HandlerFunc(resumeHandlers.Get)))
	mux.Handle("PUT /api/v1/resume/{id}", authed(http.HandlerFunc(resumeHandlers.Update)))
	mux.Handle("DELETE /api/v1/resume/{id}", authed(http.HandlerFunc(resumeHandlers.Delete)))

	mux.Handle("POST /api/v1/resume/{id}/improve", authed(http.HandlerFunc(improvementHandlers.Enqueue)))
	mux.Handle("GET /api/v1/resume/{id}/improvements", authed(http.HandlerFunc(improvementHandlers.ListForResume)))
	mux.Handle("GET /api/v1/improvements/{id}", authed(http.HandlerFunc(improvementHandlers.Get)))

	handler := Logging(logger)(mux)
	return Recover(logger)(handler)
}
