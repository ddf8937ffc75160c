// Package notify defines the payload and sink contract for improvement
// failure notifications, with concrete sinks in the slack and pagerduty
// subpackages.
package notify

import (
	"context"
	"errors"
	"time"
)

// Severity constants recognised by downstream sinks.
const (
	SeverityCritical = "critical"
	SeverityWarning  = "warning"
)

// ImprovementFailurePayload captures the canonical data emitted when an
// improvement exhausts its retries and is marked failed.
type ImprovementFailurePayload struct {
	ImprovementID string
	ResumeID      string
	UserID        string
	Attempts      int
	Error         string
	ErrorClass    string
	Severity      string
	OccurredAt    time.Time
	Metadata      map[string]string
}

// Sink describes a destination capable of consuming improvement failure
// notifications.
type Sink interface {
	SendImprovementFailure(ctx context.Context, payload ImprovementFailurePayload) error
}

// SinkFunc adapts a function to the Sink interface (useful for tests).
type SinkFunc func(ctx context.Context, payload ImprovementFailurePayload) error

// SendImprovementFailure implements the Sink interface.
func (f SinkFunc) SendImprovementFailure(ctx context.Context, payload ImprovementFailurePayload) error {
	if f == nil {
		return nil
	}
	return f(ctx, payload)
}

// Fanout delivers each notification to every configured sink and joins the
// failures. A nil or empty fanout drops notifications.
type Fanout []Sink

// SendImprovementFailure implements the Sink interface.
func (f Fanout) SendImprovementFailure(ctx context.Context, payload ImprovementFailurePayload) error {
	var errs []error
	for _, sink := range f {
		if sink == nil {
			continue
		}
		if err := sink.SendImprovementFailure(ctx, payload); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
