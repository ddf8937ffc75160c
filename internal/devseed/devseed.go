// Package devseed seeds a local database with a demo account and sample
// resumes so the API is usable immediately after a reset.
package devseed

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/resumelab/resumelab/internal/adapters/password"
	"github.com/resumelab/resumelab/internal/data"
	"github.com/resumelab/resumelab/internal/domain/model"
)

// DemoEmail is the seeded account's login.
const DemoEmail = "demo@resumelab.local"

// DemoPassword is the seeded account's password. Local development only.
const DemoPassword = "demo-password-123"

// Services groups the repositories used by seeding.
type Services struct {
	Users   *data.UserRepo
	Resumes *data.ResumeRepo
}

// NewServices builds seeding repositories from a database handle.
func NewServices(db *sql.DB) Services {
	return Services{
		Users:   data.NewUserRepo(db),
		Resumes: data.NewResumeRepo(db),
	}
}

// Run seeds the demo user and sample resumes. Seeding is idempotent: an
// existing demo user is reused and resumes whose titles already exist are
// left alone.
func Run(ctx context.Context, svcs Services, logger *slog.Logger) error {
	user, err := ensureDemoUser(ctx, svcs.Users)
	if err != nil {
		return err
	}

	created, err := seedResumes(ctx, svcs.Resumes, user.ID)
	if err != nil {
		return err
	}

	logger.InfoContext(ctx, "seeding complete",
		"user", user.Email,
		"resumes_created", created,
	)
	return nil
}

func ensureDemoUser(ctx context.Context, users *data.UserRepo) (*model.User, error) {
	existing, err := users.GetByEmail(ctx, DemoEmail)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, data.ErrUserNotFound) {
		return nil, fmt.Errorf("look up demo user: %w", err)
	}

	hash, err := password.NewBcryptHasher(0).Hash(DemoPassword)
	if err != nil {
		return nil, fmt.Errorf("hash demo password: %w", err)
	}

	user, err := users.Create(ctx, DemoEmail, hash)
	if err != nil {
		return nil, fmt.Errorf("create demo user: %w", err)
	}
	return user, nil
}

func seedResumes(ctx context.Context, resumes *data.ResumeRepo, userID string) (int, error) {
	existing, err := resumes.List(ctx, userID, 100, 0)
	if err != nil {
		return 0, fmt.Errorf("list existing resumes: %w", err)
	}
	existingTitles := make(map[string]bool, len(existing.Items))
	for _, r := range existing.Items {
		existingTitles[r.Title] = true
	}

	created := 0
	for _, req := range defaultResumes() {
		if existingTitles[req.Title] {
			continue
		}
		if _, err := resumes.Create(ctx, userID, req); err != nil {
			return created, fmt.Errorf("create resume %q: %w", req.Title, err)
		}
		created++
	}
	return created, nil
}

func defaultResumes() []*model.CreateResumeRequest {
	return []*model.CreateResumeRequest{
		{
			Title: "Backend Engineer",
			Content: "Experienced backend engineer with a focus on distributed systems.\n" +
				"Built and operated message-driven pipelines in production.\n" +
				"Comfortable with PostgreSQL, RabbitMQ, and Redis.",
		},
		{
			Title: "Platform Engineer",
			Content: "Platform engineer maintaining CI/CD and developer tooling.\n" +
				"Led a migration to containerized deployments.\n" +
				"Strong background in observability and incident response.",
		},
	}
}
