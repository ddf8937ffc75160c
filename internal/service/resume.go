package service

import (
	"context"
	"errors"

	"github.com/resumelab/resumelab/internal/core"
	"github.com/resumelab/resumelab/internal/data"
	"github.com/resumelab/resumelab/internal/domain/model"
	apperrors "github.com/resumelab/resumelab/internal/errors"
)

// ResumeServiceOptions groups dependencies for ResumeService.
type ResumeServiceOptions struct {
	Resumes core.ResumeRepository
}

// ResumeService orchestrates resume CRUD. Everything is scoped to the calling
// user; cross-user access surfaces uniformly as not found.
type ResumeService struct {
	resumes core.ResumeRepository
}

// NewResumeService constructs a new ResumeService.
func NewResumeService(opts ResumeServiceOptions) *ResumeService {
	return &ResumeService{resumes: opts.Resumes}
}

// Create validates the request and creates a resume owned by userID.
func (s *ResumeService) Create(
	ctx context.Context,
	userID string,
	req *model.CreateResumeRequest,
) (*model.Resume, error) {
	if req == nil {
		return nil, apperrors.Validation("request body is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.resumes.Create(ctx, userID, req)
}

// Get retrieves an owned resume.
func (s *ResumeService) Get(ctx context.Context, id, ownerID string) (*model.Resume, error) {
	resume, err := s.resumes.GetOwned(ctx, id, ownerID)
	if err != nil {
		if errors.Is(err, data.ErrResumeNotFound) {
			return nil, apperrors.NotFound("resume not found")
		}
		return nil, err
	}
	return resume, nil
}

// List returns a page of the user's resumes with pagination clamped.
func (s *ResumeService) List(
	ctx context.Context,
	userID string,
	limit, offset int,
) (*model.ResumePage, error) {
	p := normalizePagination(limit, offset)
	return s.resumes.List(ctx, userID, p.Limit, p.Offset)
}

// Update validates and applies a partial update to an owned resume.
func (s *ResumeService) Update(
	ctx context.Context,
	params core.UpdateResumeParams,
) (*model.Resume, error) {
	if params.Req == nil {
		return nil, apperrors.Validation("request body is required")
	}
	if err := params.Req.Validate(); err != nil {
		return nil, err
	}
	resume, err := s.resumes.Update(ctx, params)
	if err != nil {
		if errors.Is(err, data.ErrResumeNotFound) {
			return nil, apperrors.NotFound("resume not found")
		}
		return nil, err
	}
	return resume, nil
}

// Delete removes an owned resume and, via cascade, its improvement history.
func (s *ResumeService) Delete(ctx context.Context, id, ownerID string) error {
	ok, err := s.resumes.Delete(ctx, id, ownerID)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.NotFound("resume not found")
	}
	return nil
}
