package amqp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	apperrors "github.com/resumelab/resumelab/internal/errors"
)

// PublisherOptions configures a Publisher.
type PublisherOptions struct {
	// Channel must be in confirm mode before it is handed over.
	Channel *amqp.Channel
	Logger  *slog.Logger
	// ConfirmTimeout bounds the wait for a broker confirm when the caller's
	// context has no earlier deadline.
	ConfirmTimeout time.Duration
}

const defaultConfirmTimeout = 5 * time.Second

// Publisher publishes improvement jobs with publisher confirms. A Publish
// that returns nil means the broker has taken responsibility for the message;
// anything less is an error and the improvement stays unqueued.
type Publisher struct {
	ch             *amqp.Channel
	logger         *slog.Logger
	confirmTimeout time.Duration
}

// NewPublisher creates a Publisher, validating options. The channel is put
// into confirm mode here so a misconfigured caller cannot skip it.
func NewPublisher(opts PublisherOptions) (*Publisher, error) {
	if opts.Channel == nil {
		return nil, errors.New("channel is required")
	}
	if opts.Logger == nil {
		return nil, errors.New("logger is required")
	}
	if err := opts.Channel.Confirm(false); err != nil {
		return nil, fmt.Errorf("enable confirm mode: %w", err)
	}

	timeout := opts.ConfirmTimeout
	if timeout <= 0 {
		timeout = defaultConfirmTimeout
	}
	return &Publisher{
		ch:             opts.Channel,
		logger:         opts.Logger.With("component", "amqp_publisher"),
		confirmTimeout: timeout,
	}, nil
}

// Publish sends the improvement id as a persistent message and waits for the
// broker confirm. The returned message id is generated here, not by the
// broker, so it is known even if the confirm never arrives.
func (p *Publisher) Publish(ctx context.Context, improvementID string) (string, error) {
	if improvementID == "" {
		return "", errors.New("improvement id is required")
	}

	ctx, cancel := context.WithTimeout(ctx, p.confirmTimeout)
	defer cancel()

	messageID := uuid.NewString()
	confirmation, err := p.ch.PublishWithDeferredConfirmWithContext(
		ctx,
		ExchangeName,
		RoutingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "text/plain",
			DeliveryMode: amqp.Persistent,
			MessageId:    messageID,
			Timestamp:    time.Now().UTC(),
			Body:         []byte(improvementID),
		},
	)
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.ErrCodeUnavailable, "queue publish failed")
	}

	acked, err := confirmation.WaitContext(ctx)
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.ErrCodeUnavailable, "queue confirm failed")
	}
	if !acked {
		return "", apperrors.Unavailable("queue rejected the message")
	}

	p.logger.DebugContext(ctx, "published improvement",
		"improvement_id", improvementID,
		"message_id", messageID,
	)
	return messageID, nil
}
