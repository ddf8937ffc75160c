// Package jwtauth implements token issuing and verification with HS256 JWTs.
package jwtauth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	domainauth "github.com/resumelab/resumelab/internal/domain/auth"
)

// IssuerOptions configures an Issuer.
type IssuerOptions struct {
	// Secret signs tokens with HMAC-SHA256.
	Secret []byte
	// Issuer is the iss claim stamped on and required of every token.
	Issuer string
}

// Issuer mints and verifies HS256 bearer tokens. The token's jti carries the
// session id, so verification alone never suffices: callers must also find
// the session alive in the store.
type Issuer struct {
	secret []byte
	issuer string
	now    func() time.Time
}

const minSecretLength = 32

// NewIssuer creates an Issuer, validating options.
func NewIssuer(opts IssuerOptions) (*Issuer, error) {
	if len(opts.Secret) < minSecretLength {
		return nil, fmt.Errorf("signing secret must be at least %d bytes, got %d", minSecretLength, len(opts.Secret))
	}
	if opts.Issuer == "" {
		return nil, errors.New("issuer is required")
	}
	return &Issuer{
		secret: opts.Secret,
		issuer: opts.Issuer,
		now:    time.Now,
	}, nil
}

// MustNewIssuer creates an Issuer and panics on invalid options.
func MustNewIssuer(opts IssuerOptions) *Issuer {
	i, err := NewIssuer(opts)
	if err != nil {
		panic(fmt.Sprintf("invalid IssuerOptions: %v", err))
	}
	return i
}

type sessionClaims struct {
	jwt.RegisteredClaims
}

// Issue returns a signed token bound to the session: sub is the user id, jti
// the session id, exp the session expiry.
func (i *Issuer) Issue(sess domainauth.Session) (string, error) {
	if sess.ID == "" {
		return "", errors.New("session ID cannot be empty")
	}
	if sess.UserID == "" {
		return "", errors.New("session user ID cannot be empty")
	}

	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    i.issuer,
			Subject:   sess.UserID,
			ID:        sess.ID,
			IssuedAt:  jwt.NewNumericDate(sess.IssuedAt),
			ExpiresAt: jwt.NewNumericDate(sess.ExpiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature, expiry, and issuer, and returns the session and
// user ids embedded in the token.
func (i *Issuer) Verify(token string) (sessionID, userID string, err error) {
	var claims sessionClaims
	parsed, err := jwt.ParseWithClaims(token, &claims,
		func(t *jwt.Token) (interface{}, error) {
			return i.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(i.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		return "", "", fmt.Errorf("parse token: %w", err)
	}
	if !parsed.Valid {
		return "", "", errors.New("token is invalid")
	}
	if claims.ID == "" || claims.Subject == "" {
		return "", "", errors.New("token is missing session claims")
	}
	return claims.ID, claims.Subject, nil
}
