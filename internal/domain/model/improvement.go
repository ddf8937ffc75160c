// Package model defines the core data types used throughout the resumelab system.
package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ImprovementStatus represents the current state of an improvement job.
//
//nolint:recvcheck // UnmarshalText needs pointer receiver, Valid needs value receiver
type ImprovementStatus string

const (
	// ImprovementStatusQueued indicates the improvement is waiting to be picked up by a worker.
	ImprovementStatusQueued ImprovementStatus = "queued"
	// ImprovementStatusProcessing indicates a worker is executing the improvement.
	// The status stays processing across internal retries; retry counts are not
	// part of the externally observable state machine.
	ImprovementStatusProcessing ImprovementStatus = "processing"
	// ImprovementStatusDone indicates the improvement finished and its output was produced.
	ImprovementStatusDone ImprovementStatus = "done"
	// ImprovementStatusFailed indicates the improvement exhausted its retries.
	ImprovementStatusFailed ImprovementStatus = "failed"
)

// Valid returns true if the ImprovementStatus is valid.
func (s ImprovementStatus) Valid() bool {
	return s == ImprovementStatusQueued || s == ImprovementStatusProcessing ||
		s == ImprovementStatusDone || s == ImprovementStatusFailed
}

// Terminal returns true once the status can no longer change.
func (s ImprovementStatus) Terminal() bool {
	return s == ImprovementStatusDone || s == ImprovementStatusFailed
}

// Active returns true while the improvement still occupies the dedup window.
func (s ImprovementStatus) Active() bool {
	return s == ImprovementStatusQueued || s == ImprovementStatusProcessing
}

// CanTransitionTo reports whether moving from s to next respects the forward-only
// state machine queued → processing → {done|failed}.
func (s ImprovementStatus) CanTransitionTo(next ImprovementStatus) bool {
	switch s {
	case ImprovementStatusQueued:
		return next == ImprovementStatusProcessing
	case ImprovementStatusProcessing:
		return next == ImprovementStatusDone || next == ImprovementStatusFailed
	case ImprovementStatusDone, ImprovementStatusFailed:
		return false
	default:
		return false
	}
}

// UnmarshalText implements encoding.TextUnmarshaler to allow env/query parsing.
func (s *ImprovementStatus) UnmarshalText(text []byte) error {
	v := ImprovementStatus(strings.ToLower(strings.TrimSpace(string(text))))
	if !v.Valid() {
		return fmt.Errorf("invalid ImprovementStatus: %q", string(text))
	}
	*s = v
	return nil
}

// ErrNotTransitionable is returned when a guarded status update matched no row,
// either because the record vanished or because it already moved on.
var ErrNotTransitionable = errors.New("improvement not in a transitionable state")

// Improvement is the record of one asynchronous resume improvement job.
type Improvement struct {
	ID string `json:"id" db:"id"`
	// ResumeID references the owning resume; rows cascade on resume deletion.
	ResumeID string `json:"resume_id" db:"resume_id"`
	// BrokerMessageID is assigned after a confirmed publish; nil until then.
	// A queued row with a nil broker id is an orphan from a failed publish.
	BrokerMessageID *string           `json:"broker_message_id,omitempty" db:"broker_message_id"`
	Status          ImprovementStatus `json:"status"                      db:"status"`
	// OldContent is the immutable snapshot of the resume content at enqueue
	// time. It is both the work input and the dedup key.
	OldContent string  `json:"old_content"           db:"old_content"`
	NewContent *string `json:"new_content,omitempty" db:"new_content"`
	Error      *string `json:"error,omitempty"       db:"error"`
	// Applied is true only after the resume's live content was overwritten
	// with NewContent, which implies Status == done.
	Applied    bool       `json:"applied"               db:"applied"`
	CreatedAt  time.Time  `json:"created_at"            db:"created_at"`
	StartedAt  *time.Time `json:"started_at,omitempty"  db:"started_at"`
	FinishedAt *time.Time `json:"finished_at,omitempty" db:"finished_at"`
}

// ImprovementListItem is the lightweight projection used by paginated listings.
type ImprovementListItem struct {
	ID        string            `json:"id"         db:"id"`
	Status    ImprovementStatus `json:"status"     db:"status"`
	Applied   bool              `json:"applied"    db:"applied"`
	CreatedAt time.Time         `json:"created_at" db:"created_at"`
}

// ImprovementPage is one page of improvement listings plus the total count.
type ImprovementPage struct {
	Items  []ImprovementListItem `json:"items"`
	Total  int                   `json:"total"`
	Limit  int                   `json:"limit"`
	Offset int                   `json:"offset"`
}

// ImprovementStats counts improvements per status for operator inspection.
type ImprovementStats struct {
	Queued     int `json:"queued"`
	Processing int `json:"processing"`
	Done       int `json:"done"`
	Failed     int `json:"failed"`
}
