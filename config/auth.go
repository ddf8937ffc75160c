package config

import "time"

// AuthConfig groups token and session configuration.
type AuthConfig struct {
	// JWTSecret signs access tokens. Must be at least 32 bytes.
	JWTSecret string `env:"JWT_SECRET,required"`

	// Issuer is the iss claim stamped on access tokens.
	Issuer string `env:"JWT_ISSUER" envDefault:"resumelab"`

	// SessionTTL bounds how long an issued token and its backing session
	// stay valid.
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"24h"`

	// BcryptCost is the password hashing cost; zero or negative falls back
	// to the bcrypt default.
	BcryptCost int `env:"BCRYPT_COST" envDefault:"0"`
}

// Sanitize applies guardrails to auth configuration values.
func (a *AuthConfig) Sanitize() {
	if a.SessionTTL <= 0 {
		a.SessionTTL = 24 * time.Hour
	}
}
