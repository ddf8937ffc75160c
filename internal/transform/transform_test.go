package transform

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDelayEchoAppendsSuffix(t *testing.T) {
	t.Parallel()

	tr := NewDelayEcho(time.Millisecond, "")
	out, err := tr.Transform(context.Background(), "my resume")
	require.NoError(t, err)
	assert.Equal(t, "my resume [Improved]", out)
}

func TestDelayEchoCustomSuffix(t *testing.T) {
	t.Parallel()

	tr := NewDelayEcho(time.Millisecond, " (better)")
	out, err := tr.Transform(context.Background(), "text")
	require.NoError(t, err)
	assert.Equal(t, "text (better)", out)
}

func TestDelayEchoRejectsEmptyContent(t *testing.T) {
	t.Parallel()

	tr := NewDelayEcho(time.Millisecond, "")
	_, err := tr.Transform(context.Background(), "")
	require.Error(t, err)
}

func TestDelayEchoHonorsContext(t *testing.T) {
	t.Parallel()

	tr := NewDelayEcho(time.Minute, "")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := tr.Transform(ctx, "text")
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 10*time.Second)
}

func TestDelayEchoDefaults(t *testing.T) {
	t.Parallel()

	tr := NewDelayEcho(0, "")
	assert.Equal(t, DefaultDelay, tr.delay)
	assert.Equal(t, DefaultSuffix, tr.suffix)
}
