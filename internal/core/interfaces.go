package core

import (
	"context"

	"github.com/resumelab/resumelab/internal/domain/model"
)

// This file contains repository interface definitions (ports in hexagonal architecture).
// These interfaces define the contracts between the service layer and data layer.
// Service implementations should depend on these interfaces, not concrete implementations.

// UserRepository defines the interface for user account data operations.
type UserRepository interface {
	Create(ctx context.Context, email, passwordHash string) (*model.User, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}

// ResumeRepository defines the interface for resume data operations.
type ResumeRepository interface {
	Create(ctx context.Context, userID string, req *model.CreateResumeRequest) (*model.Resume, error)
	// GetOwned returns the resume only if it belongs to ownerID; a resume that
	// exists but belongs to someone else is reported as not found.
	GetOwned(ctx context.Context, id, ownerID string) (*model.Resume, error)
	List(ctx context.Context, userID string, limit, offset int) (*model.ResumePage, error)
	Update(ctx context.Context, params UpdateResumeParams) (*model.Resume, error)
	Delete(ctx context.Context, id, ownerID string) (bool, error)
}

// UpdateResumeParams groups parameters for ResumeRepository.Update.
type UpdateResumeParams struct {
	ID      string
	OwnerID string
	Req     *model.UpdateResumeRequest
}

// ImprovementRepository defines the interface for improvement job data operations.
//
// The Mark* methods are guarded transitions: each updates the row only when it
// is still in the expected prior status. A row that already moved on surfaces
// as model.ErrNotTransitionable; a row that vanished (cascade delete) surfaces
// as a not-found error.
type ImprovementRepository interface {
	// CreateQueued inserts a new queued improvement snapshotting the resume content.
	CreateQueued(ctx context.Context, resumeID, oldContent string) (*model.Improvement, error)
	// SetBrokerMessageID records the broker-assigned message id after a confirmed publish.
	SetBrokerMessageID(ctx context.Context, id, messageID string) error
	GetByID(ctx context.Context, id string) (*model.Improvement, error)
	// GetOwned returns the improvement only if its resume belongs to ownerID.
	GetOwned(ctx context.Context, id, ownerID string) (*model.Improvement, error)
	ListForResume(ctx context.Context, params ListImprovementsParams) (*model.ImprovementPage, error)
	// FindActiveDuplicate returns a queued or processing improvement for the
	// same resume with identical old content, or nil when none exists.
	FindActiveDuplicate(ctx context.Context, resumeID, oldContent string) (*model.Improvement, error)
	MarkProcessing(ctx context.Context, id string) error
	// MarkDone finishes a processing improvement and writes the output into
	// the owning resume in the same transaction, marking it applied.
	MarkDone(ctx context.Context, id, newContent string) error
	MarkFailed(ctx context.Context, id, errMsg string) error
	Stats(ctx context.Context) (*model.ImprovementStats, error)
}

// ListImprovementsParams groups parameters for ImprovementRepository.ListForResume.
type ListImprovementsParams struct {
	ResumeID string
	OwnerID  string
	Limit    int
	Offset   int
}
