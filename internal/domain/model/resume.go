package model

import (
	"strings"
	"time"
	"unicode/utf8"

	apperrors "github.com/resumelab/resumelab/internal/errors"
)

// Resume is a user-owned document whose content the improvement pipeline
// rewrites. Content is opaque text; the system never parses it.
type Resume struct {
	ID        string    `json:"id"         db:"id"`
	UserID    string    `json:"user_id"    db:"user_id"`
	Title     string    `json:"title"      db:"title"`
	Content   string    `json:"content"    db:"content"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

const (
	maxResumeTitleLength   = 255
	maxResumeContentLength = 200_000
)

// CreateResumeRequest carries the fields for creating a resume.
type CreateResumeRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Validate checks the create fields and trims the title.
func (r *CreateResumeRequest) Validate() error {
	r.Title = strings.TrimSpace(r.Title)
	if r.Title == "" {
		return apperrors.ValidationField("title", "title is required")
	}
	if utf8.RuneCountInString(r.Title) > maxResumeTitleLength {
		return apperrors.ValidationField("title", "title is too long")
	}
	if r.Content == "" {
		return apperrors.ValidationField("content", "content is required")
	}
	if len(r.Content) > maxResumeContentLength {
		return apperrors.ValidationField("content", "content is too large")
	}
	return nil
}

// UpdateResumeRequest carries partial-update fields; nil means leave unchanged.
type UpdateResumeRequest struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
}

// Validate checks whichever fields are present. At least one must be set.
func (r *UpdateResumeRequest) Validate() error {
	if r.Title == nil && r.Content == nil {
		return apperrors.Validation("at least one of title or content is required")
	}
	if r.Title != nil {
		t := strings.TrimSpace(*r.Title)
		if t == "" {
			return apperrors.ValidationField("title", "title must not be empty")
		}
		if utf8.RuneCountInString(t) > maxResumeTitleLength {
			return apperrors.ValidationField("title", "title is too long")
		}
		r.Title = &t
	}
	if r.Content != nil {
		if *r.Content == "" {
			return apperrors.ValidationField("content", "content must not be empty")
		}
		if len(*r.Content) > maxResumeContentLength {
			return apperrors.ValidationField("content", "content is too large")
		}
	}
	return nil
}

// ResumePage is one page of resume listings plus the total count.
type ResumePage struct {
	Items  []Resume `json:"items"`
	Total  int      `json:"total"`
	Limit  int      `json:"limit"`
	Offset int      `json:"offset"`
}
