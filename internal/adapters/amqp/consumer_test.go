package amqp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePrefetch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   int
		want int
	}{
		{name: "zero falls back to one", in: 0, want: 1},
		{name: "negative falls back to one", in: -4, want: 1},
		{name: "single worker", in: 1, want: 1},
		// One unacked delivery per worker slot, so a concurrent runner
		// actually gets parallel deliveries.
		{name: "worker pool", in: 8, want: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, normalizePrefetch(tt.in))
		})
	}
}
