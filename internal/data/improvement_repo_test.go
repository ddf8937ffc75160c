package data

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resumelab/resumelab/internal/core"
	"github.com/resumelab/resumelab/internal/domain/model"
	"github.com/resumelab/resumelab/internal/testutil"
)

func seedOwnedResume(t *testing.T, db *sql.DB) (userID, resumeID string) {
	t.Helper()
	userID = testutil.SeedUser(t, db, uniqueEmail("owner"))
	resumeID = testutil.SeedResume(t, db, userID, "Backend Engineer", "original content")
	return userID, resumeID
}

func TestImprovementRepo_CreateQueued(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewImprovementRepo(db)
		_, resumeID := seedOwnedResume(t, db)

		imp, err := repo.CreateQueued(ctx, resumeID, "original content")
		require.NoError(t, err)
		require.NotEmpty(t, imp.ID)
		assert.Equal(t, model.ImprovementStatusQueued, imp.Status)
		assert.Equal(t, "original content", imp.OldContent)
		assert.Nil(t, imp.BrokerMessageID)
		assert.Nil(t, imp.NewContent)
		assert.False(t, imp.Applied)
		assert.Nil(t, imp.StartedAt)
		assert.Nil(t, imp.FinishedAt)
	})
}

func TestImprovementRepo_SetBrokerMessageID(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewImprovementRepo(db)
		_, resumeID := seedOwnedResume(t, db)

		imp, err := repo.CreateQueued(ctx, resumeID, "original content")
		require.NoError(t, err)

		require.NoError(t, repo.SetBrokerMessageID(ctx, imp.ID, "msg-123"))

		got, err := repo.GetByID(ctx, imp.ID)
		require.NoError(t, err)
		require.NotNil(t, got.BrokerMessageID)
		assert.Equal(t, "msg-123", *got.BrokerMessageID)

		// A row that already left queued keeps its original id.
		require.NoError(t, repo.MarkProcessing(ctx, imp.ID))
		require.NoError(t, repo.SetBrokerMessageID(ctx, imp.ID, "msg-456"))

		got, err = repo.GetByID(ctx, imp.ID)
		require.NoError(t, err)
		require.NotNil(t, got.BrokerMessageID)
		assert.Equal(t, "msg-123", *got.BrokerMessageID)
	})
}

func TestImprovementRepo_FindActiveDuplicate(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewImprovementRepo(db)
		_, resumeID := seedOwnedResume(t, db)

		none, err := repo.FindActiveDuplicate(ctx, resumeID, "original content")
		require.NoError(t, err)
		assert.Nil(t, none)

		first, err := repo.CreateQueued(ctx, resumeID, "original content")
		require.NoError(t, err)

		dup, err := repo.FindActiveDuplicate(ctx, resumeID, "original content")
		require.NoError(t, err)
		require.NotNil(t, dup)
		assert.Equal(t, first.ID, dup.ID)

		// Different snapshot content is not a duplicate.
		other, err := repo.FindActiveDuplicate(ctx, resumeID, "changed content")
		require.NoError(t, err)
		assert.Nil(t, other)

		// A finished job leaves the dedup window.
		require.NoError(t, repo.MarkProcessing(ctx, first.ID))
		require.NoError(t, repo.MarkDone(ctx, first.ID, "improved content"))

		gone, err := repo.FindActiveDuplicate(ctx, resumeID, "original content")
		require.NoError(t, err)
		assert.Nil(t, gone)
	})
}

func TestImprovementRepo_StatusTransitions(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		tp := NewFixedTimeProvider(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))
		repo := NewImprovementRepoWithTimeProvider(db, tp)
		_, resumeID := seedOwnedResume(t, db)

		imp, err := repo.CreateQueued(ctx, resumeID, "original content")
		require.NoError(t, err)

		require.NoError(t, repo.MarkProcessing(ctx, imp.ID))

		got, err := repo.GetByID(ctx, imp.ID)
		require.NoError(t, err)
		assert.Equal(t, model.ImprovementStatusProcessing, got.Status)
		require.NotNil(t, got.StartedAt)
		firstClaim := *got.StartedAt

		// A processing row can be claimed again after a crashed worker's
		// redelivery; started_at reflects the new claim.
		tp.AddTime(time.Minute)
		require.NoError(t, repo.MarkProcessing(ctx, imp.ID))

		got, err = repo.GetByID(ctx, imp.ID)
		require.NoError(t, err)
		assert.Equal(t, model.ImprovementStatusProcessing, got.Status)
		require.NotNil(t, got.StartedAt)
		assert.True(t, got.StartedAt.After(firstClaim), "started_at should refresh on re-claim")

		require.NoError(t, repo.MarkFailed(ctx, imp.ID, "transform exploded"))

		got, err = repo.GetByID(ctx, imp.ID)
		require.NoError(t, err)
		assert.Equal(t, model.ImprovementStatusFailed, got.Status)
		require.NotNil(t, got.Error)
		assert.Equal(t, "transform exploded", *got.Error)
		require.NotNil(t, got.FinishedAt)
		assert.False(t, got.Applied)

		// Terminal rows reject further transitions and claims.
		err = repo.MarkDone(ctx, imp.ID, "too late")
		require.ErrorIs(t, err, model.ErrNotTransitionable)
		err = repo.MarkProcessing(ctx, imp.ID)
		require.ErrorIs(t, err, model.ErrNotTransitionable)
	})
}

func TestImprovementRepo_Transition_MissingRow(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewImprovementRepo(db)

		const missing = "00000000-0000-0000-0000-000000000000"
		require.ErrorIs(t, repo.MarkProcessing(ctx, missing), ErrImprovementNotFound)
		require.ErrorIs(t, repo.MarkDone(ctx, missing, "x"), ErrImprovementNotFound)
		require.ErrorIs(t, repo.MarkFailed(ctx, missing, "x"), ErrImprovementNotFound)
	})
}

func TestImprovementRepo_MarkDone_AppliesToResume(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewImprovementRepo(db)
		resumes := NewResumeRepo(db)
		userID, resumeID := seedOwnedResume(t, db)

		imp, err := repo.CreateQueued(ctx, resumeID, "original content")
		require.NoError(t, err)
		require.NoError(t, repo.MarkProcessing(ctx, imp.ID))

		require.NoError(t, repo.MarkDone(ctx, imp.ID, "improved content"))

		got, err := repo.GetByID(ctx, imp.ID)
		require.NoError(t, err)
		assert.Equal(t, model.ImprovementStatusDone, got.Status)
		require.NotNil(t, got.NewContent)
		assert.Equal(t, "improved content", *got.NewContent)
		assert.True(t, got.Applied)
		require.NotNil(t, got.FinishedAt)
		assert.Nil(t, got.Error)

		// The output landed in the owning resume in the same transaction.
		resume, err := resumes.GetOwned(ctx, resumeID, userID)
		require.NoError(t, err)
		assert.Equal(t, "improved content", resume.Content)
	})
}

func TestImprovementRepo_GetOwned(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewImprovementRepo(db)
		userID, resumeID := seedOwnedResume(t, db)
		otherID := testutil.SeedUser(t, db, uniqueEmail("other"))

		imp, err := repo.CreateQueued(ctx, resumeID, "original content")
		require.NoError(t, err)

		got, err := repo.GetOwned(ctx, imp.ID, userID)
		require.NoError(t, err)
		assert.Equal(t, imp.ID, got.ID)

		_, err = repo.GetOwned(ctx, imp.ID, otherID)
		require.ErrorIs(t, err, ErrImprovementNotFound)
	})
}

func TestImprovementRepo_ListForResume(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewImprovementRepo(db)
		userID, resumeID := seedOwnedResume(t, db)
		otherID := testutil.SeedUser(t, db, uniqueEmail("other"))

		base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
		ids := make([]string, 0, 3)
		for i := range 3 {
			created := base.Add(time.Duration(i) * time.Minute)
			ids = append(ids, testutil.SeedImprovement(t, db, resumeID, "original content",
				testutil.SeedImprovementOptions{CreatedAt: &created}))
		}

		page, err := repo.ListForResume(ctx, core.ListImprovementsParams{
			ResumeID: resumeID,
			OwnerID:  userID,
			Limit:    2,
			Offset:   0,
		})
		require.NoError(t, err)
		assert.Equal(t, 3, page.Total)
		require.Len(t, page.Items, 2)
		assert.Equal(t, ids[2], page.Items[0].ID, "newest first")
		assert.Equal(t, ids[1], page.Items[1].ID)

		// Ownership is checked before pagination.
		_, err = repo.ListForResume(ctx, core.ListImprovementsParams{
			ResumeID: resumeID,
			OwnerID:  otherID,
			Limit:    10,
			Offset:   0,
		})
		require.ErrorIs(t, err, ErrResumeNotFound)
	})
}

func TestImprovementRepo_Stats(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewImprovementRepo(db)
		_, resumeID := seedOwnedResume(t, db)

		testutil.SeedImprovement(t, db, resumeID, "a", testutil.SeedImprovementOptions{Status: "queued"})
		testutil.SeedImprovement(t, db, resumeID, "b", testutil.SeedImprovementOptions{Status: "processing"})
		testutil.SeedImprovement(t, db, resumeID, "c", testutil.SeedImprovementOptions{
			Status:     "done",
			NewContent: testutil.StringPtr("improved"),
			Applied:    true,
		})
		testutil.SeedImprovement(t, db, resumeID, "d", testutil.SeedImprovementOptions{
			Status: "failed",
			Error:  testutil.StringPtr("boom"),
		})

		stats, err := repo.Stats(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, stats.Queued)
		assert.Equal(t, 1, stats.Processing)
		assert.Equal(t, 1, stats.Done)
		assert.Equal(t, 1, stats.Failed)
	})
}

func TestImprovementRepo_ResumeDeleteCascades(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewImprovementRepo(db)
		resumes := NewResumeRepo(db)
		userID, resumeID := seedOwnedResume(t, db)

		imp, err := repo.CreateQueued(ctx, resumeID, "original content")
		require.NoError(t, err)

		deleted, err := resumes.Delete(ctx, resumeID, userID)
		require.NoError(t, err)
		require.True(t, deleted)

		// The worker sees a vanished row, not a stuck job.
		_, err = repo.GetByID(ctx, imp.ID)
		require.ErrorIs(t, err, ErrImprovementNotFound)
		require.ErrorIs(t, repo.MarkProcessing(ctx, imp.ID), ErrImprovementNotFound)
	})
}
