package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/resumelab/resumelab/config"
	"github.com/resumelab/resumelab/internal/adapters/jwtauth"
	"github.com/resumelab/resumelab/internal/adapters/password"
	redisadapter "github.com/resumelab/resumelab/internal/adapters/redis"
	"github.com/resumelab/resumelab/internal/core"
	"github.com/resumelab/resumelab/internal/service"
)

// AuthConfig contains configuration for the auth service.
type AuthConfig struct {
	Auth        config.AuthConfig
	Users       core.UserRepository
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// BuildAuthService wires the token issuer, session store, and password
// hasher into an auth service. The JWT secret is validated here so a
// misconfigured process fails at startup rather than at first login.
func BuildAuthService(cfg AuthConfig) (*service.AuthService, error) {
	if cfg.RedisClient == nil {
		return nil, fmt.Errorf("auth service requires a redis client for the session store")
	}

	issuer, err := jwtauth.NewIssuer(jwtauth.IssuerOptions{
		Secret: []byte(cfg.Auth.JWTSecret),
		Issuer: cfg.Auth.Issuer,
	})
	if err != nil {
		return nil, fmt.Errorf("create token issuer: %w", err)
	}

	sessionStore := redisadapter.NewSessionStoreWithPrefix(cfg.RedisClient, "session:")
	hasher := password.NewBcryptHasher(cfg.Auth.BcryptCost)

	return service.NewAuthService(service.AuthServiceOptions{
		Users:      cfg.Users,
		Sessions:   sessionStore,
		Tokens:     issuer,
		Hasher:     hasher,
		SessionTTL: cfg.Auth.SessionTTL,
	}), nil
}
