package auth

// Package auth contains simple hand-written test doubles for auth ports.
// These are lightweight and suitable for unit tests without codegen.

import (
	"context"
	"errors"
	"strings"
	"sync"

	domainauth "github.com/resumelab/resumelab/internal/domain/auth"
	"github.com/resumelab/resumelab/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.SessionStore   = (*MemorySessionStore)(nil)
	_ ports.TokenIssuer    = (*FakeTokenIssuer)(nil)
	_ ports.PasswordHasher = (*FakePasswordHasher)(nil)
)

// ErrSessionNotFound is returned by MemorySessionStore for missing sessions.
var ErrSessionNotFound = errors.New("session not found")

// MemorySessionStore is an in-memory SessionStore safe for concurrent use.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]domainauth.Session

	// SaveErr, GetErr, DeleteErr force errors when set.
	SaveErr   error
	GetErr    error
	DeleteErr error
}

// NewMemorySessionStore creates an empty in-memory session store.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]domainauth.Session)}
}

func (s *MemorySessionStore) Save(_ context.Context, sess domainauth.Session) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	if sess.ID == "" {
		return errors.New("session ID cannot be empty")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = sess
	return nil
}

func (s *MemorySessionStore) Get(_ context.Context, id string) (domainauth.Session, error) {
	if s.GetErr != nil {
		return domainauth.Session{}, s.GetErr
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return domainauth.Session{}, ErrSessionNotFound
	}
	return sess, nil
}

func (s *MemorySessionStore) Delete(_ context.Context, id string) error {
	if s.DeleteErr != nil {
		return s.DeleteErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

// Len returns the number of stored sessions.
func (s *MemorySessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// FakeTokenIssuer issues transparent tokens of the form
// "token|<session-id>|<user-id>" so tests can assert on them directly.
type FakeTokenIssuer struct {
	IssueErr  error
	VerifyErr error
}

func (f *FakeTokenIssuer) Issue(sess domainauth.Session) (string, error) {
	if f.IssueErr != nil {
		return "", f.IssueErr
	}
	return "token|" + sess.ID + "|" + sess.UserID, nil
}

func (f *FakeTokenIssuer) Verify(token string) (string, string, error) {
	if f.VerifyErr != nil {
		return "", "", f.VerifyErr
	}
	parts := strings.Split(token, "|")
	if len(parts) != 3 || parts[0] != "token" {
		return "", "", errors.New("malformed fake token")
	}
	return parts[1], parts[2], nil
}

// FakePasswordHasher prefixes instead of hashing so tests stay fast and
// hashes stay readable in failure output.
type FakePasswordHasher struct {
	HashErr error
}

func (f *FakePasswordHasher) Hash(password string) (string, error) {
	if f.HashErr != nil {
		return "", f.HashErr
	}
	return "hashed:" + password, nil
}

func (f *FakePasswordHasher) Compare(hash, password string) error {
	if hash != "hashed:"+password {
		return errors.New("password mismatch")
	}
	return nil
}
