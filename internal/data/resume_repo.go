package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/resumelab/resumelab/internal/core"
	"github.com/resumelab/resumelab/internal/data/pgxutil"
	"github.com/resumelab/resumelab/internal/domain/model"
	apperrors "github.com/resumelab/resumelab/internal/errors"
)

const resumeColumns = `id, user_id, title, content, created_at, updated_at`

// ResumeRepo provides database operations for resumes. All reads and writes
// are owner-scoped: a resume belonging to another user behaves exactly like a
// missing one, so ownership can never be probed through error differences.
type ResumeRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewResumeRepo creates a new ResumeRepo with real time provider.
func NewResumeRepo(db *sql.DB) *ResumeRepo {
	return &ResumeRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewResumeRepoWithTimeProvider creates a new ResumeRepo with a custom time provider (useful for tests).
func NewResumeRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *ResumeRepo {
	return &ResumeRepo{DB: db, timeProvider: tp}
}

// Create inserts a new resume owned by userID.
func (r *ResumeRepo) Create(
	ctx context.Context,
	userID string,
	req *model.CreateResumeRequest,
) (*model.Resume, error) {
	if req == nil {
		return nil, errors.New("create resume request is required")
	}

	now := r.timeProvider.Now().UTC()
	var out model.Resume
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO resumes (user_id, title, content, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $4)
			RETURNING `+resumeColumns,
			userID,
			req.Title,
			req.Content,
			now,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Resume])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// GetOwned retrieves a resume by ID, scoped to its owner.
func (r *ResumeRepo) GetOwned(ctx context.Context, id, ownerID string) (*model.Resume, error) {
	var out model.Resume
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT `+resumeColumns+`
			FROM resumes
			WHERE id = $1 AND user_id = $2
		`, id, ownerID)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Resume])
		return err
	}); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrResumeNotFound
		}
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// List retrieves a page of the user's resumes, newest first, with the total count.
func (r *ResumeRepo) List(
	ctx context.Context,
	userID string,
	limit, offset int,
) (*model.ResumePage, error) {
	page := &model.ResumePage{
		Items:  []model.Resume{},
		Limit:  limit,
		Offset: offset,
	}
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		if err := conn.QueryRow(ctx,
			`SELECT count(*) FROM resumes WHERE user_id = $1`, userID,
		).Scan(&page.Total); err != nil {
			return fmt.Errorf("count resumes: %w", err)
		}

		rows, err := conn.Query(ctx, `
			SELECT `+resumeColumns+`
			FROM resumes
			WHERE user_id = $1
			ORDER BY created_at DESC, id DESC
			LIMIT $2 OFFSET $3
		`, userID, limit, offset)
		if err != nil {
			return err
		}
		defer rows.Close()
		page.Items, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Resume])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return page, nil
}

// Update applies a partial update to an owned resume.
func (r *ResumeRepo) Update(ctx context.Context, params core.UpdateResumeParams) (*model.Resume, error) {
	if params.Req == nil {
		return nil, errors.New("update resume request is required")
	}

	setClause, args := r.buildUpdateClause(params.Req)
	args = append(args, params.ID, params.OwnerID)
	query := "UPDATE resumes SET " + setClause +
		" WHERE id = $" + strconv.Itoa(len(args)-1) +
		" AND user_id = $" + strconv.Itoa(len(args)) +
		" RETURNING " + resumeColumns

	var out model.Resume
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Resume])
		return err
	}); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrResumeNotFound
		}
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

func (r *ResumeRepo) buildUpdateClause(req *model.UpdateResumeRequest) (string, []any) {
	setParts := make([]string, 0, 3)
	args := make([]any, 0, 3)
	nextIdx := func() int { return len(args) + 1 }

	if req.Title != nil {
		setParts = append(setParts, fmt.Sprintf("title = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*req.Title))
	}
	if req.Content != nil {
		setParts = append(setParts, fmt.Sprintf("content = $%d", nextIdx()))
		args = append(args, *req.Content)
	}
	setParts = append(setParts, fmt.Sprintf("updated_at = $%d", nextIdx()))
	args = append(args, r.timeProvider.Now().UTC())

	return strings.Join(setParts, ", "), args
}

// Delete removes an owned resume. Improvement rows cascade at the database
// level; in-flight deliveries for them are handled by the worker's
// vanished-row path. Returns false when nothing matched.
func (r *ResumeRepo) Delete(ctx context.Context, id, ownerID string) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `
		DELETE FROM resumes
		WHERE id = $1 AND user_id = $2
	`, id, ownerID)
	if err != nil {
		return false, apperrors.MapDBError(err)
	}
	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete resume rows affected: %w", err)
	}
	return rowsAffected > 0, nil
}

