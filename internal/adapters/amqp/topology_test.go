package amqp

import (
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
)

func TestTopologyNames(t *testing.T) {
	t.Parallel()

	// Queue arguments and names are part of the broker contract; changing any
	// of them breaks redeclaration against an existing broker.
	assert.Equal(t, "resumelab.direct", ExchangeName)
	assert.Equal(t, "resumelab.dlx", DLXName)
	assert.Equal(t, "improve.q", QueueName)
	assert.Equal(t, "improve.dlq", DLQName)
	assert.Equal(t, "improve", RoutingKey)
	assert.Equal(t, 900_000, QueueMessageTTLMillis)
}

func TestDeathReason(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		headers amqp.Table
		want    string
	}{
		{
			name: "rejected",
			headers: amqp.Table{
				"x-death": []interface{}{
					amqp.Table{"reason": "rejected", "queue": "improve.q"},
				},
			},
			want: "rejected",
		},
		{
			name: "expired",
			headers: amqp.Table{
				"x-death": []interface{}{
					amqp.Table{"reason": "expired"},
				},
			},
			want: "expired",
		},
		{
			name:    "no headers",
			headers: amqp.Table{},
			want:    "",
		},
		{
			name: "malformed x-death",
			headers: amqp.Table{
				"x-death": "not a list",
			},
			want: "",
		},
		{
			name: "entry without reason",
			headers: amqp.Table{
				"x-death": []interface{}{amqp.Table{"queue": "improve.q"}},
			},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, deathReason(tt.headers))
		})
	}
}
