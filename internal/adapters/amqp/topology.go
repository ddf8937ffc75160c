// Package amqp implements the RabbitMQ transport for improvement jobs:
// topology declaration, confirmed publishing, and prefetch-1 consuming.
package amqp

import (
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Broker topology. The work queue dead-letters into the DLX, so rejected or
// expired deliveries land in the DLQ instead of disappearing.
const (
	// ExchangeName is the direct exchange work is published to.
	ExchangeName = "resumelab.direct"
	// DLXName receives dead-lettered deliveries.
	DLXName = "resumelab.dlx"
	// QueueName is the work queue consumed by improver workers.
	QueueName = "improve.q"
	// DLQName holds dead-lettered deliveries for operator inspection.
	DLQName = "improve.dlq"
	// RoutingKey routes improvement jobs on both exchanges.
	RoutingKey = "improve"

	// QueueMessageTTLMillis expires deliveries that sit unconsumed for 15
	// minutes, dead-lettering them.
	QueueMessageTTLMillis = 900_000
)

// DeclareTopology declares the exchanges, queues, and bindings. All entities
// are durable; declaration is idempotent so every process declares on startup
// and ordering between publisher and worker does not matter.
func DeclareTopology(ch *amqp.Channel) error {
	if err := ch.ExchangeDeclare(
		ExchangeName,
		"direct",
		true,  // durable
		false, // autoDelete
		false, // internal
		false, // noWait
		nil,
	); err != nil {
		return fmt.Errorf("declare exchange %s: %w", ExchangeName, err)
	}

	if err := ch.ExchangeDeclare(
		DLXName,
		"direct",
		true,
		false,
		false,
		false,
		nil,
	); err != nil {
		return fmt.Errorf("declare exchange %s: %w", DLXName, err)
	}

	if _, err := ch.QueueDeclare(
		DLQName,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	); err != nil {
		return fmt.Errorf("declare queue %s: %w", DLQName, err)
	}
	if err := ch.QueueBind(DLQName, RoutingKey, DLXName, false, nil); err != nil {
		return fmt.Errorf("bind queue %s: %w", DLQName, err)
	}

	if _, err := ch.QueueDeclare(
		QueueName,
		true,
		false,
		false,
		false,
		amqp.Table{
			"x-dead-letter-exchange": DLXName,
			"x-message-ttl":          int32(QueueMessageTTLMillis),
		},
	); err != nil {
		return fmt.Errorf("declare queue %s: %w", QueueName, err)
	}
	if err := ch.QueueBind(QueueName, RoutingKey, ExchangeName, false, nil); err != nil {
		return fmt.Errorf("bind queue %s: %w", QueueName, err)
	}

	return nil
}
