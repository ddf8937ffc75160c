package core

import (
	"context"
	"time"
)

// Transformer rewrites resume content. Implementations must respect ctx
// cancellation; the worker applies a per-attempt deadline.
type Transformer interface {
	Transform(ctx context.Context, content string) (string, error)
}

// Publisher hands an improvement job to the message broker. Publish returns
// only after the broker confirms the message, and returns the broker-assigned
// message id on success.
type Publisher interface {
	Publish(ctx context.Context, improvementID string) (messageID string, err error)
}

// DeadLetter is one message recovered from the dead-letter queue for
// operator inspection.
type DeadLetter struct {
	ImprovementID string    `json:"improvement_id"`
	MessageID     string    `json:"message_id"`
	Reason        string    `json:"reason,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}

// DeadLetterInspector reads from the dead-letter queue without consuming,
// used by the admin CLI.
type DeadLetterInspector interface {
	Peek(ctx context.Context, limit int) ([]DeadLetter, error)
}
