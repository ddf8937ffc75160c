package testutil

import (
	"context"
	"database/sql"
	"time"
)

// SeedUser inserts a user directly and returns its id. The password hash is a
// placeholder; tests that exercise login should hash for real.
func SeedUser(t TestingTB, db *sql.DB, email string) string {
	t.Helper()

	var id string
	err := db.QueryRowContext(context.Background(), `
		INSERT INTO users (email, password_hash)
		VALUES ($1, 'x')
		RETURNING id
	`, email).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to seed user %s: %v", email, err)
	}
	return id
}

// SeedResume inserts a resume for the given user and returns its id.
func SeedResume(t TestingTB, db *sql.DB, userID, title, content string) string {
	t.Helper()

	var id string
	err := db.QueryRowContext(context.Background(), `
		INSERT INTO resumes (user_id, title, content)
		VALUES ($1, $2, $3)
		RETURNING id
	`, userID, title, content).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to seed resume %q: %v", title, err)
	}
	return id
}

// SeedImprovementOptions controls the non-default fields of a seeded improvement.
type SeedImprovementOptions struct {
	Status     string
	NewContent *string
	Error      *string
	Applied    bool
	CreatedAt  *time.Time
}

// SeedImprovement inserts an improvement row and returns its id.
func SeedImprovement(t TestingTB, db *sql.DB, resumeID, oldContent string, opts SeedImprovementOptions) string {
	t.Helper()

	status := opts.Status
	if status == "" {
		status = "queued"
	}
	createdAt := time.Now().UTC()
	if opts.CreatedAt != nil {
		createdAt = opts.CreatedAt.UTC()
	}

	var id string
	err := db.QueryRowContext(context.Background(), `
		INSERT INTO improvements (resume_id, status, old_content, new_content, error, applied, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`, resumeID, status, oldContent, opts.NewContent, opts.Error, opts.Applied, createdAt).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to seed improvement: %v", err)
	}
	return id
}
