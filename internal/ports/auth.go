package ports

// Package ports defines interfaces (hexagonal ports) for auth-related behavior.
// Implementations live in internal/adapters; orchestration in internal/service.

import (
	"context"

	domainauth "github.com/resumelab/resumelab/internal/domain/auth"
)

// SessionStore persists and retrieves user sessions. Deleting a session
// revokes any token whose jti references it.
type SessionStore interface {
	Save(ctx context.Context, sess domainauth.Session) error
	Get(ctx context.Context, id string) (domainauth.Session, error)
	Delete(ctx context.Context, id string) error
}

// TokenIssuer mints and verifies bearer tokens bound to a session.
type TokenIssuer interface {
	// Issue returns a signed token whose jti is sess.ID.
	Issue(sess domainauth.Session) (string, error)
	// Verify checks the signature and expiry and returns the embedded
	// session id and user id.
	Verify(token string) (sessionID, userID string, err error)
}

// PasswordHasher hashes and compares passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}
