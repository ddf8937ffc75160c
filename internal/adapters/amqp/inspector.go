package amqp

import (
	"context"
	"errors"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/resumelab/resumelab/internal/core"
)

// Inspector reads dead-lettered deliveries for the admin CLI.
type Inspector struct {
	ch *amqp.Channel
}

// NewInspector creates an Inspector on the given channel.
func NewInspector(ch *amqp.Channel) (*Inspector, error) {
	if ch == nil {
		return nil, errors.New("channel is required")
	}
	return &Inspector{ch: ch}, nil
}

// Peek fetches up to limit messages from the DLQ without consuming them: each
// message is read unacked and nacked back with requeue once collected. The
// messages reorder behind any the broker handed out meanwhile, which is
// acceptable for inspection.
func (i *Inspector) Peek(ctx context.Context, limit int) ([]core.DeadLetter, error) {
	if limit <= 0 {
		limit = 10
	}

	letters := make([]core.DeadLetter, 0, limit)
	var deliveries []amqp.Delivery
	defer func() {
		for n := len(deliveries) - 1; n >= 0; n-- {
			_ = deliveries[n].Nack(false, true)
		}
	}()

	for len(letters) < limit {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		d, ok, err := i.ch.Get(DLQName, false)
		if err != nil {
			return nil, fmt.Errorf("get from %s: %w", DLQName, err)
		}
		if !ok {
			break
		}
		deliveries = append(deliveries, d)
		letters = append(letters, core.DeadLetter{
			ImprovementID: string(d.Body),
			MessageID:     d.MessageId,
			Reason:        deathReason(d.Headers),
			Timestamp:     d.Timestamp,
		})
	}

	return letters, nil
}

// deathReason pulls the newest x-death reason stamped by the broker.
func deathReason(headers amqp.Table) string {
	deaths, ok := headers["x-death"].([]interface{})
	if !ok || len(deaths) == 0 {
		return ""
	}
	death, ok := deaths[0].(amqp.Table)
	if !ok {
		return ""
	}
	reason, _ := death["reason"].(string)
	return reason
}
