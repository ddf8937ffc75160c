package amqp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ConsumerOptions configures a Consumer.
type ConsumerOptions struct {
	Channel *amqp.Channel
	Logger  *slog.Logger
	// Tag identifies this consumer on the channel; empty lets the broker
	// generate one.
	Tag string
	// Prefetch caps unacknowledged deliveries on the channel; values below
	// 1 become 1. Set it to the worker count so every worker slot can hold
	// one delivery.
	Prefetch int
}

// Consumer reads improvement deliveries from the work queue, one unacked
// delivery per worker slot. Acknowledgement is always manual: a worker acks
// only after the outcome is committed.
type Consumer struct {
	ch     *amqp.Channel
	logger *slog.Logger
	tag    string
}

// NewConsumer creates a Consumer, validating options and setting prefetch.
func NewConsumer(opts ConsumerOptions) (*Consumer, error) {
	if opts.Channel == nil {
		return nil, errors.New("channel is required")
	}
	if opts.Logger == nil {
		return nil, errors.New("logger is required")
	}
	if err := opts.Channel.Qos(normalizePrefetch(opts.Prefetch), 0, false); err != nil {
		return nil, fmt.Errorf("set prefetch: %w", err)
	}
	return &Consumer{
		ch:     opts.Channel,
		logger: opts.Logger.With("component", "amqp_consumer"),
		tag:    opts.Tag,
	}, nil
}

func normalizePrefetch(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

// Consume opens the delivery stream from the work queue. The channel closes
// when ctx is canceled or the connection drops.
func (c *Consumer) Consume(ctx context.Context) (<-chan amqp.Delivery, error) {
	deliveries, err := c.ch.ConsumeWithContext(
		ctx,
		QueueName,
		c.tag,
		false, // autoAck: acks are the worker's responsibility
		false, // exclusive
		false, // noLocal
		false, // noWait
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("consume %s: %w", QueueName, err)
	}
	c.logger.InfoContext(ctx, "consuming", "queue", QueueName, "tag", c.tag)
	return deliveries, nil
}
