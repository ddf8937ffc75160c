package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/resumelab/resumelab/internal/core"
	"github.com/resumelab/resumelab/internal/data"
	"github.com/resumelab/resumelab/internal/domain/model"
	apperrors "github.com/resumelab/resumelab/internal/errors"
)

// DuplicateImprovementError reports that an active improvement already covers
// the same resume content. It classifies as a conflict and carries the id of
// the existing job so the caller can point at it.
type DuplicateImprovementError struct {
	ExistingID string
}

func (e *DuplicateImprovementError) Error() string {
	return fmt.Sprintf("an active improvement already exists for this content: %s", e.ExistingID)
}

func (e *DuplicateImprovementError) Unwrap() error {
	return apperrors.Conflict("an active improvement already exists for this content")
}

// ImprovementServiceOptions groups dependencies for ImprovementService.
type ImprovementServiceOptions struct {
	Resumes      core.ResumeRepository
	Improvements core.ImprovementRepository
	Publisher    core.Publisher
	Logger       *slog.Logger
	// DedupEnabled gates the active-duplicate check on enqueue. When off,
	// duplicate submissions coexist and the last finished job wins.
	DedupEnabled bool
}

// ImprovementService owns the enqueue side of the improvement pipeline and
// the read surface over its jobs.
type ImprovementService struct {
	resumes      core.ResumeRepository
	improvements core.ImprovementRepository
	publisher    core.Publisher
	logger       *slog.Logger
	dedupEnabled bool
}

// NewImprovementService constructs a new ImprovementService.
func NewImprovementService(opts ImprovementServiceOptions) *ImprovementService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &ImprovementService{
		resumes:      opts.Resumes,
		improvements: opts.Improvements,
		publisher:    opts.Publisher,
		logger:       logger.With("component", "improvement_service"),
		dedupEnabled: opts.DedupEnabled,
	}
}

// Enqueue snapshots the resume content into a new queued improvement and
// publishes it to the broker. The publish is confirmed before the caller gets
// an answer; a broker failure surfaces as unavailable and leaves the queued
// row behind for later inspection rather than rolling it back.
func (s *ImprovementService) Enqueue(
	ctx context.Context,
	resumeID, ownerID string,
) (*model.Improvement, error) {
	resume, err := s.resumes.GetOwned(ctx, resumeID, ownerID)
	if err != nil {
		if errors.Is(err, data.ErrResumeNotFound) {
			return nil, apperrors.NotFound("resume not found")
		}
		return nil, err
	}

	if s.dedupEnabled {
		dup, err := s.improvements.FindActiveDuplicate(ctx, resume.ID, resume.Content)
		if err != nil {
			return nil, err
		}
		if dup != nil {
			return nil, &DuplicateImprovementError{ExistingID: dup.ID}
		}
	}

	improvement, err := s.improvements.CreateQueued(ctx, resume.ID, resume.Content)
	if err != nil {
		return nil, err
	}

	messageID, err := s.publisher.Publish(ctx, improvement.ID)
	if err != nil {
		s.logger.ErrorContext(ctx, "publish failed, queued row left orphaned",
			"improvement_id", improvement.ID,
			"error", err)
		return nil, err
	}

	// Best effort: the worker may already have raced past queued, and the
	// job is in flight either way.
	if err := s.improvements.SetBrokerMessageID(ctx, improvement.ID, messageID); err != nil {
		s.logger.WarnContext(ctx, "failed to record broker message id",
			"improvement_id", improvement.ID,
			"message_id", messageID,
			"error", err)
	} else {
		improvement.BrokerMessageID = &messageID
	}

	s.logger.InfoContext(ctx, "improvement enqueued",
		"improvement_id", improvement.ID,
		"resume_id", resume.ID,
		"message_id", messageID)
	return improvement, nil
}

// Get retrieves an improvement whose resume belongs to ownerID.
func (s *ImprovementService) Get(ctx context.Context, id, ownerID string) (*model.Improvement, error) {
	improvement, err := s.improvements.GetOwned(ctx, id, ownerID)
	if err != nil {
		if errors.Is(err, data.ErrImprovementNotFound) {
			return nil, apperrors.NotFound("improvement not found")
		}
		return nil, err
	}
	return improvement, nil
}

// ListForResume returns a page of an owned resume's improvements with
// pagination clamped.
func (s *ImprovementService) ListForResume(
	ctx context.Context,
	resumeID, ownerID string,
	limit, offset int,
) (*model.ImprovementPage, error) {
	p := normalizePagination(limit, offset)
	page, err := s.improvements.ListForResume(ctx, core.ListImprovementsParams{
		ResumeID: resumeID,
		OwnerID:  ownerID,
		Limit:    p.Limit,
		Offset:   p.Offset,
	})
	if err != nil {
		if errors.Is(err, data.ErrResumeNotFound) {
			return nil, apperrors.NotFound("resume not found")
		}
		return nil, err
	}
	return page, nil
}

// Stats counts improvements per status across all users.
func (s *ImprovementService) Stats(ctx context.Context) (*model.ImprovementStats, error) {
	return s.improvements.Stats(ctx)
}
