package model

import (
	"net/mail"
	"strings"
	"time"

	apperrors "github.com/resumelab/resumelab/internal/errors"
)

// User is a registered account. PasswordHash is a bcrypt hash and is never
// serialized to clients.
type User struct {
	ID           string    `json:"id"         db:"id"`
	Email        string    `json:"email"      db:"email"`
	PasswordHash string    `json:"-"          db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

const (
	maxEmailLength    = 254
	minPasswordLength = 8
	maxPasswordLength = 72 // bcrypt input limit
)

// RegisterRequest carries the fields for creating a new account.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate normalizes and checks the registration fields.
func (r *RegisterRequest) Validate() error {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	if r.Email == "" {
		return apperrors.ValidationField("email", "email is required")
	}
	if len(r.Email) > maxEmailLength {
		return apperrors.ValidationField("email", "email is too long")
	}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return apperrors.ValidationField("email", "email is not a valid address")
	}
	if len(r.Password) < minPasswordLength {
		return apperrors.ValidationField("password", "password must be at least 8 characters")
	}
	if len(r.Password) > maxPasswordLength {
		return apperrors.ValidationField("password", "password must be at most 72 characters")
	}
	return nil
}

// LoginRequest carries credential fields for authentication.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate normalizes and checks the login fields. It is deliberately looser
// than registration: password policy only applies when setting a password.
func (r *LoginRequest) Validate() error {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	if r.Email == "" {
		return apperrors.ValidationField("email", "email is required")
	}
	if r.Password == "" {
		return apperrors.ValidationField("password", "password is required")
	}
	return nil
}
