// Package improver runs the background workers that consume improvement jobs
// from the broker, transform resume content, and persist the outcome.
package improver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"golang.org/x/sync/errgroup"

	"github.com/resumelab/resumelab/internal/core"
	"github.com/resumelab/resumelab/internal/data"
	"github.com/resumelab/resumelab/internal/domain/improvement"
	"github.com/resumelab/resumelab/internal/domain/model"
	obserrors "github.com/resumelab/resumelab/internal/observability/errors"
	"github.com/resumelab/resumelab/internal/observability/metrics"
	"github.com/resumelab/resumelab/internal/observability/notify"
	"github.com/resumelab/resumelab/internal/observability/statsd"
)

// DeliverySource produces the stream of broker deliveries the runner works
// through. Satisfied by amqp.Consumer.
type DeliverySource interface {
	Consume(ctx context.Context) (<-chan amqp.Delivery, error)
}

// RunnerOptions configures the improvement worker runner.
type RunnerOptions struct {
	Source       DeliverySource
	Improvements core.ImprovementRepository
	Transformer  core.Transformer
	Retry        *improvement.RetryPolicy
	Logger       *slog.Logger

	// Concurrency is the number of worker goroutines; defaults to 1.
	Concurrency int

	// Metrics receives per-delivery outcome metrics; nil disables emission.
	Metrics statsd.Sink

	// Failures receives a notification when an improvement is marked
	// failed; nil disables notifications.
	Failures notify.Sink
}

// Runner consumes improvement deliveries and drives each job through the
// queued -> processing -> done|failed state machine. Acks are late: a message
// is settled only after its outcome is durably committed, so a crash mid-job
// means redelivery. Redelivery of a finished job is a no-op; redelivery of a
// job stranded in processing re-claims it and runs the transform again.
type Runner struct {
	source       DeliverySource
	improvements core.ImprovementRepository
	transformer  core.Transformer
	retry        *improvement.RetryPolicy
	logger       *slog.Logger
	workers      int
	metrics      statsd.Sink
	failures     notify.Sink
}

// NewRunner validates options and constructs a Runner.
func NewRunner(opts RunnerOptions) (*Runner, error) {
	if opts.Source == nil {
		return nil, errors.New("delivery source is required")
	}
	if opts.Improvements == nil {
		return nil, errors.New("improvement repository is required")
	}
	if opts.Transformer == nil {
		return nil, errors.New("transformer is required")
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	retry := opts.Retry
	if retry == nil {
		retry = improvement.DefaultRetryPolicy()
	}
	workers := opts.Concurrency
	if workers <= 0 {
		workers = 1
	}

	return &Runner{
		source:       opts.Source,
		improvements: opts.Improvements,
		transformer:  opts.Transformer,
		retry:        retry,
		logger:       logger.With("component", "improver"),
		workers:      workers,
		metrics:      opts.Metrics,
		failures:     opts.Failures,
	}, nil
}

// MustNewRunner constructs a Runner and panics on invalid options.
func MustNewRunner(opts RunnerOptions) *Runner {
	r, err := NewRunner(opts)
	if err != nil {
		panic(fmt.Sprintf("improver.MustNewRunner: %v", err))
	}
	return r
}

// Run consumes deliveries until the context is canceled or the delivery
// stream closes (broker connection loss).
func (r *Runner) Run(ctx context.Context) error {
	deliveries, err := r.source.Consume(ctx)
	if err != nil {
		return fmt.Errorf("open delivery stream: %w", err)
	}

	r.logger.InfoContext(ctx, "starting improvement workers", "workers", r.workers)

	g, ctx := errgroup.WithContext(ctx)
	for range r.workers {
		g.Go(func() error {
			return r.workerLoop(ctx, deliveries)
		})
	}
	return g.Wait()
}

func (r *Runner) workerLoop(ctx context.Context, deliveries <-chan amqp.Delivery) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-deliveries:
			if !ok {
				return errors.New("delivery stream closed")
			}
			r.handleDelivery(ctx, d)
		}
	}
}

// disposition is how a processed delivery gets settled with the broker.
type disposition int

const (
	// ackMessage settles the delivery as handled; nothing more to do.
	ackMessage disposition = iota
	// deadLetterMessage rejects without requeue, routing to the DLQ.
	deadLetterMessage
	// requeueMessage returns the delivery for a later redelivery.
	requeueMessage
)

func (r *Runner) handleDelivery(ctx context.Context, d amqp.Delivery) {
	improvementID := string(d.Body)

	var dsp disposition
	if improvementID == "" {
		r.logger.WarnContext(ctx, "delivery with empty body, dead-lettering",
			"message_id", d.MessageId)
		dsp = deadLetterMessage
	} else {
		dsp = r.process(ctx, improvementID)
	}

	var err error
	switch dsp {
	case ackMessage:
		err = d.Ack(false)
	case deadLetterMessage:
		err = d.Nack(false, false)
	case requeueMessage:
		err = d.Nack(false, true)
	}
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to settle delivery",
			"improvement_id", improvementID,
			"error", err)
	}
}

// process drives one improvement through the state machine and reports how
// the delivery should be settled.
func (r *Runner) process(ctx context.Context, improvementID string) disposition {
	start := time.Now()
	logger := r.logger.With("improvement_id", improvementID)

	imp, err := r.improvements.GetByID(ctx, improvementID)
	if err != nil {
		if errors.Is(err, data.ErrImprovementNotFound) {
			logger.InfoContext(ctx, "improvement gone before processing")
			return r.settle(ackMessage, metrics.ResultSkipped, 0, start, nil)
		}
		logger.ErrorContext(ctx, "load improvement", "error", err)
		return r.settle(requeueMessage, metrics.ResultRequeued, 0, start, err)
	}

	// Redelivery of a finished job: the outcome is already durable.
	if imp.Status.Terminal() {
		logger.InfoContext(ctx, "improvement already finished", "status", imp.Status)
		return r.settle(ackMessage, metrics.ResultSkipped, 0, start, nil)
	}

	if err := r.improvements.MarkProcessing(ctx, improvementID); err != nil {
		switch {
		case errors.Is(err, data.ErrImprovementNotFound),
			errors.Is(err, model.ErrNotTransitionable):
			logger.InfoContext(ctx, "improvement not claimable", "error", err)
			return r.settle(ackMessage, metrics.ResultSkipped, 0, start, nil)
		default:
			logger.ErrorContext(ctx, "mark processing", "error", err)
			return r.settle(requeueMessage, metrics.ResultRequeued, 0, start, err)
		}
	}

	output, attempts, err := r.transformWithRetry(ctx, logger, imp.OldContent)
	if err != nil {
		// Worker shutdown mid-transform: hand the job back instead of
		// recording a spurious failure.
		if ctx.Err() != nil {
			logger.WarnContext(ctx, "shutdown during transform, requeueing")
			return r.settle(requeueMessage, metrics.ResultRequeued, attempts, start, nil)
		}
		logger.WarnContext(ctx, "improvement failed after retries",
			"attempts", attempts,
			"error", err)
		dsp, committed := r.finish(ctx, logger, improvementID, func() error {
			return r.improvements.MarkFailed(ctx, improvementID, err.Error())
		})
		if committed {
			r.notifyFailure(ctx, logger, imp, attempts, err)
		}
		return r.settle(dsp, metrics.ResultFailed, attempts, start, err)
	}

	dsp, _ := r.finish(ctx, logger, improvementID, func() error {
		return r.improvements.MarkDone(ctx, improvementID, output)
	})
	return r.settle(dsp, metrics.ResultDone, attempts, start, nil)
}

// settle emits the outcome metric for a processed delivery and passes the
// disposition through.
func (r *Runner) settle(dsp disposition, result string, attempts int, start time.Time, err error) disposition {
	metrics.EmitImprovementOutcome(r.metrics, metrics.ImprovementMetric{
		Result:   result,
		Attempts: attempts,
		Duration: time.Since(start),
		Err:      err,
	})
	return dsp
}

// notifyFailure pushes a failure notification to the configured sink.
// Delivery is best effort; a sink error never changes the job outcome.
func (r *Runner) notifyFailure(ctx context.Context, logger *slog.Logger, imp *model.Improvement, attempts int, cause error) {
	if r.failures == nil {
		return
	}
	payload := notify.ImprovementFailurePayload{
		ImprovementID: imp.ID,
		ResumeID:      imp.ResumeID,
		Attempts:      attempts,
		Error:         cause.Error(),
		ErrorClass:    obserrors.Classify(cause),
		Severity:      notify.SeverityCritical,
		OccurredAt:    time.Now().UTC(),
	}
	if err := r.failures.SendImprovementFailure(ctx, payload); err != nil {
		logger.WarnContext(ctx, "failure notification not delivered", "error", err)
	}
}

// finish applies a terminal transition. A row that vanished or was finished
// by someone else is settled quietly; an infrastructure error requeues. The
// second return reports whether this worker committed the transition.
func (r *Runner) finish(ctx context.Context, logger *slog.Logger, improvementID string, transition func() error) (disposition, bool) {
	err := transition()
	switch {
	case err == nil:
		logger.InfoContext(ctx, "improvement finished")
		return ackMessage, true
	case errors.Is(err, data.ErrImprovementNotFound):
		logger.InfoContext(ctx, "improvement gone before finalize")
		return ackMessage, false
	case errors.Is(err, model.ErrNotTransitionable):
		logger.InfoContext(ctx, "improvement moved on before finalize")
		return ackMessage, false
	default:
		logger.ErrorContext(ctx, "finalize improvement", "error", err)
		return requeueMessage, false
	}
}

// transformWithRetry runs the transformer with a per-attempt deadline,
// retrying transient failures with backoff until the policy is exhausted.
// It reports the number of attempts consumed alongside the result.
func (r *Runner) transformWithRetry(ctx context.Context, logger *slog.Logger, content string) (string, int, error) {
	var lastErr error
	attempts := 0
	for attempt := 1; attempt <= r.retry.MaxAttempts(); attempt++ {
		attempts = attempt
		attemptCtx, cancel := context.WithTimeout(ctx, r.retry.AttemptTimeout())
		output, err := r.transformer.Transform(attemptCtx, content)
		cancel()
		if err == nil {
			return output, attempts, nil
		}
		lastErr = err

		if ctx.Err() != nil {
			return "", attempts, lastErr
		}
		if !r.retry.ShouldRetry(attempt) {
			break
		}

		delay := r.retry.Delay(attempt)
		logger.WarnContext(ctx, "transform attempt failed, retrying",
			"attempt", attempt,
			"max_attempts", r.retry.MaxAttempts(),
			"delay", delay,
			"error", err)
		select {
		case <-ctx.Done():
			return "", attempts, lastErr
		case <-time.After(delay):
		}
	}
	return "", attempts, lastErr
}
