// Package improvement holds the retry policy governing improvement execution.
package improvement

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"
)

// RetryPolicyOptions configures a RetryPolicy.
type RetryPolicyOptions struct {
	// MaxRetries is the number of retries after the first attempt, so an
	// improvement is executed at most MaxRetries+1 times per delivery.
	MaxRetries int
	// InitialDelay is the backoff base for the first retry.
	InitialDelay time.Duration
	// MaxDelay caps the backoff regardless of attempt number.
	MaxDelay time.Duration
	// AttemptTimeout is the soft time limit applied to a single transform call.
	AttemptTimeout time.Duration
}

// RetryPolicy decides how often and how quickly a failed transform attempt is
// retried within one delivery. Delays use exponential backoff with full
// jitter so concurrent workers do not retry in lockstep.
type RetryPolicy struct {
	maxRetries     int
	initialDelay   time.Duration
	maxDelay       time.Duration
	attemptTimeout time.Duration
}

// NewRetryPolicy creates a RetryPolicy, validating options.
func NewRetryPolicy(opts RetryPolicyOptions) (*RetryPolicy, error) {
	if opts.MaxRetries < 0 {
		return nil, fmt.Errorf("MaxRetries must not be negative, got %d", opts.MaxRetries)
	}
	if opts.InitialDelay <= 0 {
		return nil, fmt.Errorf("InitialDelay must be positive, got %s", opts.InitialDelay)
	}
	if opts.MaxDelay < opts.InitialDelay {
		return nil, fmt.Errorf("MaxDelay %s must be at least InitialDelay %s", opts.MaxDelay, opts.InitialDelay)
	}
	if opts.AttemptTimeout <= 0 {
		return nil, fmt.Errorf("AttemptTimeout must be positive, got %s", opts.AttemptTimeout)
	}
	return &RetryPolicy{
		maxRetries:     opts.MaxRetries,
		initialDelay:   opts.InitialDelay,
		maxDelay:       opts.MaxDelay,
		attemptTimeout: opts.AttemptTimeout,
	}, nil
}

// MustNewRetryPolicy creates a RetryPolicy and panics on invalid options.
func MustNewRetryPolicy(opts RetryPolicyOptions) *RetryPolicy {
	p, err := NewRetryPolicy(opts)
	if err != nil {
		panic(fmt.Sprintf("invalid RetryPolicyOptions: %v", err))
	}
	return p
}

// DefaultRetryPolicy mirrors the pipeline defaults: three retries, one second
// initial backoff capped at thirty seconds, fifty second attempt timeout.
func DefaultRetryPolicy() *RetryPolicy {
	return MustNewRetryPolicy(RetryPolicyOptions{
		MaxRetries:     3,
		InitialDelay:   time.Second,
		MaxDelay:       30 * time.Second,
		AttemptTimeout: 50 * time.Second,
	})
}

// MaxAttempts returns the total number of transform executions allowed.
func (p *RetryPolicy) MaxAttempts() int {
	return p.maxRetries + 1
}

// AttemptTimeout returns the per-attempt soft time limit.
func (p *RetryPolicy) AttemptTimeout() time.Duration {
	return p.attemptTimeout
}

// ShouldRetry reports whether another attempt is allowed after attempt n
// (1-indexed) failed.
func (p *RetryPolicy) ShouldRetry(attempt int) bool {
	return attempt < p.MaxAttempts()
}

// Delay returns a jittered backoff before retrying after attempt n failed:
// a random duration in [0, min(InitialDelay * 2^(n-1), MaxDelay)].
func (p *RetryPolicy) Delay(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	base := float64(p.initialDelay) * math.Pow(2, float64(attempt-1))
	if base > float64(p.maxDelay) {
		base = float64(p.maxDelay)
	}
	return time.Duration(rand.Float64() * base) //nolint:gosec // jitter does not need crypto rand
}
