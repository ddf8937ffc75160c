package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/resumelab/resumelab/config"
	amqpadapter "github.com/resumelab/resumelab/internal/adapters/amqp"
	"github.com/resumelab/resumelab/internal/adapters/improver"
	"github.com/resumelab/resumelab/internal/core"
	"github.com/resumelab/resumelab/internal/domain/improvement"
	"github.com/resumelab/resumelab/internal/transform"
)

// Broker bundles an AMQP connection with a channel that has the improvement
// topology declared. Each process opens its own channels off the shared
// connection; publishing and consuming never share one.
type Broker struct {
	conn *amqp.Connection
}

// ConnectBroker dials the message broker and declares the improvement
// topology so publisher and worker can start in any order.
func ConnectBroker(cfg config.BrokerConfig, logger *slog.Logger) (*Broker, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("dial broker: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		closeErr := conn.Close()
		return nil, fmt.Errorf("open channel: %w", errors.Join(err, closeErr))
	}
	if err := amqpadapter.DeclareTopology(ch); err != nil {
		closeErr := conn.Close()
		return nil, fmt.Errorf("declare topology: %w", errors.Join(err, closeErr))
	}
	if err := ch.Close(); err != nil {
		closeErr := conn.Close()
		return nil, fmt.Errorf("close declare channel: %w", errors.Join(err, closeErr))
	}

	if logger != nil {
		logger.Info("broker connected",
			"exchange", amqpadapter.ExchangeName,
			"queue", amqpadapter.QueueName,
		)
	}

	return &Broker{conn: conn}, nil
}

// Close closes the underlying connection and all channels opened from it.
func (b *Broker) Close() error {
	if b == nil || b.conn == nil {
		return nil
	}
	return b.conn.Close()
}

// NewPublisher opens a confirm-mode channel and wraps it in a publisher.
func (b *Broker) NewPublisher(cfg config.BrokerConfig, logger *slog.Logger) (*amqpadapter.Publisher, error) {
	ch, err := b.conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("open publisher channel: %w", err)
	}

	pub, err := amqpadapter.NewPublisher(amqpadapter.PublisherOptions{
		Channel:        ch,
		Logger:         logger,
		ConfirmTimeout: cfg.ConfirmTimeout,
	})
	if err != nil {
		closeErr := ch.Close()
		return nil, errors.Join(fmt.Errorf("create publisher: %w", err), closeErr)
	}
	return pub, nil
}

// NewConsumer opens a channel with prefetch sized to the worker count and
// wraps it in a consumer.
func (b *Broker) NewConsumer(logger *slog.Logger, prefetch int) (*amqpadapter.Consumer, error) {
	ch, err := b.conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("open consumer channel: %w", err)
	}

	consumer, err := amqpadapter.NewConsumer(amqpadapter.ConsumerOptions{
		Channel:  ch,
		Logger:   logger,
		Prefetch: prefetch,
	})
	if err != nil {
		closeErr := ch.Close()
		return nil, errors.Join(fmt.Errorf("create consumer: %w", err), closeErr)
	}
	return consumer, nil
}

// NewInspector opens a channel for read-only dead-letter inspection.
func (b *Broker) NewInspector() (*amqpadapter.Inspector, error) {
	ch, err := b.conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("open inspector channel: %w", err)
	}

	inspector, err := amqpadapter.NewInspector(ch)
	if err != nil {
		closeErr := ch.Close()
		return nil, errors.Join(fmt.Errorf("create inspector: %w", err), closeErr)
	}
	return inspector, nil
}

// ImproverConfig contains configuration for the improvement worker.
type ImproverConfig struct {
	Broker       *Broker
	Improvements core.ImprovementRepository
	Config       config.ImproverConfig
	Statsd       config.StatsdConfig
	Notify       config.NotifyConfig
	Logger       *slog.Logger
}

// RunImprover starts the improvement worker and blocks until ctx is canceled
// or the delivery stream closes.
func RunImprover(ctx context.Context, cfg ImproverConfig) error {
	if cfg.Broker == nil {
		return errors.New("broker is required")
	}

	consumer, err := cfg.Broker.NewConsumer(cfg.Logger, cfg.Config.Concurrency)
	if err != nil {
		return err
	}

	metricsSink, err := BuildMetricsSink(cfg.Statsd, cfg.Logger)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := metricsSink.Close(); closeErr != nil && cfg.Logger != nil {
			cfg.Logger.Warn("close statsd client", "error", closeErr)
		}
	}()

	failureSink, err := BuildFailureSink(cfg.Notify, cfg.Logger)
	if err != nil {
		return err
	}

	retry, err := improvement.NewRetryPolicy(improvement.RetryPolicyOptions{
		MaxRetries:     cfg.Config.MaxRetries,
		InitialDelay:   cfg.Config.InitialDelay,
		MaxDelay:       cfg.Config.MaxDelay,
		AttemptTimeout: cfg.Config.AttemptTimeout,
	})
	if err != nil {
		return fmt.Errorf("create retry policy: %w", err)
	}

	runner, err := improver.NewRunner(improver.RunnerOptions{
		Source:       consumer,
		Improvements: cfg.Improvements,
		Transformer:  transform.NewDelayEcho(cfg.Config.TransformDelay, cfg.Config.TransformSuffix),
		Retry:        retry,
		Logger:       cfg.Logger,
		Concurrency:  cfg.Config.Concurrency,
		Metrics:      metricsSink,
		Failures:     failureSink,
	})
	if err != nil {
		return fmt.Errorf("create improver runner: %w", err)
	}

	return runner.Run(ctx)
}
