package data

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/resumelab/resumelab/internal/errors"
	"github.com/resumelab/resumelab/internal/testutil"
)

func uniqueEmail(prefix string) string {
	return fmt.Sprintf("%s-%d@example.com", prefix, time.Now().UnixNano())
}

func TestUserRepo_Create_Get(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewUserRepo(db)

		email := uniqueEmail("alice")
		user, err := repo.Create(ctx, email, "hashed-password")
		require.NoError(t, err)
		require.NotEmpty(t, user.ID)
		assert.Equal(t, email, user.Email)
		assert.Equal(t, "hashed-password", user.PasswordHash)
		assert.NotZero(t, user.CreatedAt)

		byID, err := repo.GetByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, user.Email, byID.Email)

		byEmail, err := repo.GetByEmail(ctx, email)
		require.NoError(t, err)
		assert.Equal(t, user.ID, byEmail.ID)
	})
}

func TestUserRepo_Create_DuplicateEmail(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewUserRepo(db)

		email := uniqueEmail("dup")
		_, err := repo.Create(ctx, email, "hash-one")
		require.NoError(t, err)

		_, err = repo.Create(ctx, email, "hash-two")
		require.Error(t, err)
		assert.True(t, apperrors.IsConflict(err), "expected conflict, got %v", err)
	})
}

func TestUserRepo_Get_NotFound(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewUserRepo(db)

		_, err := repo.GetByEmail(ctx, "nobody@example.com")
		require.ErrorIs(t, err, ErrUserNotFound)

		_, err = repo.GetByID(ctx, "00000000-0000-0000-0000-000000000000")
		require.ErrorIs(t, err, ErrUserNotFound)
	})
}
