package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/resumelab/resumelab/internal/core"
	"github.com/resumelab/resumelab/internal/data"
	domainauth "github.com/resumelab/resumelab/internal/domain/auth"
	"github.com/resumelab/resumelab/internal/domain/model"
	apperrors "github.com/resumelab/resumelab/internal/errors"
	"github.com/resumelab/resumelab/internal/ports"
)

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Users    core.UserRepository
	Sessions ports.SessionStore
	Tokens   ports.TokenIssuer
	Hasher   ports.PasswordHasher
	// SessionTTL bounds how long an issued token stays valid.
	SessionTTL time.Duration
}

const defaultSessionTTL = 24 * time.Hour

// AuthService handles registration, credential login, and token-backed
// session verification. Tokens are only as alive as their backing session, so
// logout takes effect immediately.
type AuthService struct {
	users      core.UserRepository
	sessions   ports.SessionStore
	tokens     ports.TokenIssuer
	hasher     ports.PasswordHasher
	sessionTTL time.Duration
	now        func() time.Time
}

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	ttl := opts.SessionTTL
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &AuthService{
		users:      opts.Users,
		sessions:   opts.Sessions,
		tokens:     opts.Tokens,
		hasher:     opts.Hasher,
		sessionTTL: ttl,
		now:        time.Now,
	}
}

// Register creates a new account with a hashed password.
func (s *AuthService) Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error) {
	if req == nil {
		return nil, errors.New("register request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	return s.users.Create(ctx, req.Email, hash)
}

// LoginResult contains the issued token and the session behind it.
type LoginResult struct {
	Token   string
	Session domainauth.Session
	User    *model.User
}

// errInvalidCredentials is shared between the unknown-email and wrong-password
// paths so responses cannot reveal which one failed.
func errInvalidCredentials() error {
	return apperrors.Unauthorized("invalid email or password")
}

// Login verifies credentials, persists a fresh session, and issues a token
// bound to it.
func (s *AuthService) Login(ctx context.Context, req *model.LoginRequest) (*LoginResult, error) {
	if req == nil {
		return nil, errors.New("login request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, data.ErrUserNotFound) {
			return nil, errInvalidCredentials()
		}
		return nil, fmt.Errorf("look up user: %w", err)
	}

	if compareErr := s.hasher.Compare(user.PasswordHash, req.Password); compareErr != nil {
		return nil, errInvalidCredentials()
	}

	now := s.now()
	session := domainauth.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Email:     user.Email,
		IssuedAt:  now,
		ExpiresAt: now.Add(s.sessionTTL),
	}
	if saveErr := s.sessions.Save(ctx, session); saveErr != nil {
		return nil, fmt.Errorf("save session: %w", saveErr)
	}

	token, err := s.tokens.Issue(session)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &LoginResult{Token: token, Session: session, User: user}, nil
}

// Authenticate validates a bearer token and confirms its session is still
// alive. Every failure mode comes back as the same unauthorized error.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domainauth.Session, error) {
	if token == "" {
		return nil, apperrors.Unauthorized("missing bearer token")
	}

	sessionID, userID, err := s.tokens.Verify(token)
	if err != nil {
		return nil, apperrors.Unauthorized("invalid or expired token")
	}

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, apperrors.Unauthorized("session is no longer valid")
	}
	if session.UserID != userID || session.Expired(s.now()) {
		return nil, apperrors.Unauthorized("session is no longer valid")
	}

	return &session, nil
}

// Logout revokes the session, invalidating its token before natural expiry.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
