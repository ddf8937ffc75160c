package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/resumelab/resumelab/internal/core"
	"github.com/resumelab/resumelab/internal/data/pgxutil"
	"github.com/resumelab/resumelab/internal/domain/model"
	apperrors "github.com/resumelab/resumelab/internal/errors"
)

const improvementColumns = `
  id,
  resume_id,
  broker_message_id,
  status,
  old_content,
  new_content,
  error,
  applied,
  created_at,
  started_at,
  finished_at
`

// ImprovementRepo provides database operations for improvement jobs.
//
// Status changes go through guarded UPDATEs: the WHERE clause pins the
// expected prior status, so a transition that lost a race (or whose row was
// cascade-deleted) matches zero rows instead of clobbering later state.
type ImprovementRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewImprovementRepo creates a new ImprovementRepo with real time provider.
func NewImprovementRepo(db *sql.DB) *ImprovementRepo {
	return &ImprovementRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewImprovementRepoWithTimeProvider creates a new ImprovementRepo with a custom time provider (useful for tests).
func NewImprovementRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *ImprovementRepo {
	return &ImprovementRepo{DB: db, timeProvider: tp}
}

// CreateQueued inserts a new improvement in queued status, snapshotting the
// resume content at enqueue time.
func (r *ImprovementRepo) CreateQueued(
	ctx context.Context,
	resumeID, oldContent string,
) (*model.Improvement, error) {
	if resumeID == "" {
		return nil, errors.New("resume id is required")
	}

	var out model.Improvement
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO improvements (resume_id, status, old_content, created_at)
			VALUES ($1, 'queued', $2, $3)
			RETURNING `+improvementColumns,
			resumeID,
			oldContent,
			r.timeProvider.Now().UTC(),
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Improvement])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// SetBrokerMessageID records the broker-assigned message id after a confirmed
// publish. Only queued rows are touched; anything else means the worker
// already raced ahead and the id no longer matters.
func (r *ImprovementRepo) SetBrokerMessageID(ctx context.Context, id, messageID string) error {
	_, err := r.DB.ExecContext(ctx, `
		UPDATE improvements
		SET broker_message_id = $2
		WHERE id = $1 AND status = 'queued'
	`, id, messageID)
	if err != nil {
		return apperrors.MapDBError(err)
	}
	return nil
}

// GetByID retrieves an improvement by ID without ownership scoping. Used by
// the worker, which trusts broker deliveries rather than user identity.
func (r *ImprovementRepo) GetByID(ctx context.Context, id string) (*model.Improvement, error) {
	return r.getByQuery(ctx, `
		SELECT `+improvementColumns+`
		FROM improvements
		WHERE id = $1
	`, id)
}

// GetOwned retrieves an improvement by ID only when its resume belongs to ownerID.
func (r *ImprovementRepo) GetOwned(ctx context.Context, id, ownerID string) (*model.Improvement, error) {
	return r.getByQuery(ctx, `
		SELECT `+qualifiedImprovementColumns()+`
		FROM improvements i
		JOIN resumes r ON r.id = i.resume_id
		WHERE i.id = $1 AND r.user_id = $2
	`, id, ownerID)
}

func (r *ImprovementRepo) getByQuery(
	ctx context.Context,
	query string,
	args ...any,
) (*model.Improvement, error) {
	var out model.Improvement
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Improvement])
		return err
	}); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrImprovementNotFound
		}
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// ListForResume retrieves a page of an owned resume's improvements, newest
// first, with the total count. The resume must belong to the owner or the
// page comes back as not found.
func (r *ImprovementRepo) ListForResume(
	ctx context.Context,
	params core.ListImprovementsParams,
) (*model.ImprovementPage, error) {
	page := &model.ImprovementPage{
		Items:  []model.ImprovementListItem{},
		Limit:  params.Limit,
		Offset: params.Offset,
	}
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		var exists bool
		if err := conn.QueryRow(ctx, `
			SELECT EXISTS (SELECT 1 FROM resumes WHERE id = $1 AND user_id = $2)
		`, params.ResumeID, params.OwnerID).Scan(&exists); err != nil {
			return fmt.Errorf("check resume ownership: %w", err)
		}
		if !exists {
			return ErrResumeNotFound
		}

		if err := conn.QueryRow(ctx, `
			SELECT count(*) FROM improvements WHERE resume_id = $1
		`, params.ResumeID).Scan(&page.Total); err != nil {
			return fmt.Errorf("count improvements: %w", err)
		}

		rows, err := conn.Query(ctx, `
			SELECT id, status, applied, created_at
			FROM improvements
			WHERE resume_id = $1
			ORDER BY created_at DESC, id DESC
			LIMIT $2 OFFSET $3
		`, params.ResumeID, params.Limit, params.Offset)
		if err != nil {
			return err
		}
		defer rows.Close()
		page.Items, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.ImprovementListItem])
		return err
	}); err != nil {
		if errors.Is(err, ErrResumeNotFound) {
			return nil, ErrResumeNotFound
		}
		return nil, apperrors.MapDBError(err)
	}
	return page, nil
}

// FindActiveDuplicate returns a queued or processing improvement for the same
// resume with identical snapshot content, or nil when none exists. Oldest
// active row wins so repeated submissions always report the same duplicate.
func (r *ImprovementRepo) FindActiveDuplicate(
	ctx context.Context,
	resumeID, oldContent string,
) (*model.Improvement, error) {
	out, err := r.getByQuery(ctx, `
		SELECT `+improvementColumns+`
		FROM improvements
		WHERE resume_id = $1
		  AND old_content = $2
		  AND status IN ('queued', 'processing')
		ORDER BY created_at ASC, id ASC
		LIMIT 1
	`, resumeID, oldContent)
	if errors.Is(err, ErrImprovementNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

// MarkProcessing claims an improvement for a worker: a queued row transitions
// to processing, and a row already processing is re-claimed so the redelivery
// after a worker crash can finish the work. started_at reflects the latest
// claim. Only terminal rows refuse the claim.
func (r *ImprovementRepo) MarkProcessing(ctx context.Context, id string) error {
	return r.transition(ctx, transitionParams{
		ID: id,
		Query: `
			UPDATE improvements
			SET status = 'processing', started_at = $2
			WHERE id = $1 AND status IN ('queued', 'processing')
		`,
		Args: []any{id, r.timeProvider.Now().UTC()},
	})
}

// MarkDone transitions a processing improvement to done and applies its output
// to the owning resume in the same transaction. Either both rows change or
// neither does.
func (r *ImprovementRepo) MarkDone(ctx context.Context, id, newContent string) error {
	now := r.timeProvider.Now().UTC()
	err := pgxutil.WithSQLTx(ctx, r.DB, pgxutil.SQLTxConfig{
		Fn: func(tx *sql.Tx) error {
			res, err := tx.ExecContext(ctx, `
				UPDATE improvements
				SET status = 'done', new_content = $2, error = NULL, applied = TRUE, finished_at = $3
				WHERE id = $1 AND status = 'processing'
			`, id, newContent, now)
			if err != nil {
				return apperrors.MapDBError(err)
			}
			rowsAffected, err := res.RowsAffected()
			if err != nil {
				return fmt.Errorf("mark done rows affected: %w", err)
			}
			if rowsAffected == 0 {
				return errTransitionMissed
			}

			_, err = tx.ExecContext(ctx, `
				UPDATE resumes
				SET content = $2, updated_at = $3
				WHERE id = (SELECT resume_id FROM improvements WHERE id = $1)
			`, id, newContent, now)
			if err != nil {
				return apperrors.MapDBError(err)
			}
			return nil
		},
	})
	if errors.Is(err, errTransitionMissed) {
		return r.classifyMissedTransition(ctx, id)
	}
	return err
}

// MarkFailed transitions a processing improvement to failed with the last
// attempt's error message.
func (r *ImprovementRepo) MarkFailed(ctx context.Context, id, errMsg string) error {
	return r.transition(ctx, transitionParams{
		ID: id,
		Query: `
			UPDATE improvements
			SET status = 'failed', error = $2, finished_at = $3
			WHERE id = $1 AND status = 'processing'
		`,
		Args: []any{id, errMsg, r.timeProvider.Now().UTC()},
	})
}

type transitionParams struct {
	ID    string
	Query string
	Args  []any
}

// errTransitionMissed marks a guarded UPDATE that matched zero rows. The
// caller resolves it with a re-read outside the failed statement.
var errTransitionMissed = errors.New("transition matched zero rows")

// transition runs a guarded status UPDATE. Zero matched rows is resolved by a
// re-read: a vanished row is not found, an existing row in another status is
// not transitionable.
func (r *ImprovementRepo) transition(ctx context.Context, p transitionParams) error {
	res, err := r.DB.ExecContext(ctx, p.Query, p.Args...)
	if err != nil {
		return apperrors.MapDBError(err)
	}
	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("transition rows affected: %w", err)
	}
	if rowsAffected > 0 {
		return nil
	}
	return r.classifyMissedTransition(ctx, p.ID)
}

func (r *ImprovementRepo) classifyMissedTransition(ctx context.Context, id string) error {
	if _, err := r.GetByID(ctx, id); err != nil {
		if errors.Is(err, ErrImprovementNotFound) {
			return ErrImprovementNotFound
		}
		return fmt.Errorf("re-check improvement after transition: %w", err)
	}
	return model.ErrNotTransitionable
}

// Stats counts improvements per status.
func (r *ImprovementRepo) Stats(ctx context.Context) (*model.ImprovementStats, error) {
	var s model.ImprovementStats
	err := r.DB.QueryRowContext(ctx, `
	  SELECT
	    count(*) FILTER (WHERE status = 'queued')     AS queued,
	    count(*) FILTER (WHERE status = 'processing') AS processing,
	    count(*) FILTER (WHERE status = 'done')       AS done,
	    count(*) FILTER (WHERE status = 'failed')     AS failed
	  FROM improvements
	`).Scan(
		&s.Queued,
		&s.Processing,
		&s.Done,
		&s.Failed,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get improvement stats: %w", err)
	}
	return &s, nil
}

func qualifiedImprovementColumns() string {
	return `
	  i.id,
	  i.resume_id,
	  i.broker_message_id,
	  i.status,
	  i.old_content,
	  i.new_content,
	  i.error,
	  i.applied,
	  i.created_at,
	  i.started_at,
	  i.finished_at
	`
}
