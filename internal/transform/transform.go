// Package transform provides resume content transformers.
package transform

import (
	"context"
	"errors"
	"time"
)

// DelayEcho simulates a language-model rewrite: it waits for a fixed delay,
// then returns the input with a marker suffix appended. It stands in for a
// real model backend behind the same Transformer port.
type DelayEcho struct {
	delay  time.Duration
	suffix string
}

const (
	// DefaultDelay mimics model inference latency.
	DefaultDelay = 3 * time.Second
	// DefaultSuffix marks transformed content.
	DefaultSuffix = " [Improved]"
)

// NewDelayEcho creates a DelayEcho transformer. Non-positive delay means the
// default; an empty suffix means the default.
func NewDelayEcho(delay time.Duration, suffix string) *DelayEcho {
	if delay <= 0 {
		delay = DefaultDelay
	}
	if suffix == "" {
		suffix = DefaultSuffix
	}
	return &DelayEcho{delay: delay, suffix: suffix}
}

// Transform waits the configured delay, honoring ctx, then returns the
// suffixed content.
func (t *DelayEcho) Transform(ctx context.Context, content string) (string, error) {
	if content == "" {
		return "", errors.New("content is empty")
	}

	timer := time.NewTimer(t.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-timer.C:
	}

	return content + t.suffix, nil
}
