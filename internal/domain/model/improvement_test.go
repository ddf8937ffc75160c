package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImprovementStatusValid(t *testing.T) {
	t.Parallel()

	for _, s := range []ImprovementStatus{
		ImprovementStatusQueued,
		ImprovementStatusProcessing,
		ImprovementStatusDone,
		ImprovementStatusFailed,
	} {
		assert.True(t, s.Valid(), "status %q should be valid", s)
	}

	assert.False(t, ImprovementStatus("").Valid())
	assert.False(t, ImprovementStatus("pending").Valid())
	assert.False(t, ImprovementStatus("Queued").Valid())
}

func TestImprovementStatusTerminal(t *testing.T) {
	t.Parallel()

	assert.False(t, ImprovementStatusQueued.Terminal())
	assert.False(t, ImprovementStatusProcessing.Terminal())
	assert.True(t, ImprovementStatusDone.Terminal())
	assert.True(t, ImprovementStatusFailed.Terminal())
}

func TestImprovementStatusActive(t *testing.T) {
	t.Parallel()

	assert.True(t, ImprovementStatusQueued.Active())
	assert.True(t, ImprovementStatusProcessing.Active())
	assert.False(t, ImprovementStatusDone.Active())
	assert.False(t, ImprovementStatusFailed.Active())
}

func TestImprovementStatusCanTransitionTo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		from    ImprovementStatus
		to      ImprovementStatus
		allowed bool
	}{
		{ImprovementStatusQueued, ImprovementStatusProcessing, true},
		{ImprovementStatusQueued, ImprovementStatusDone, false},
		{ImprovementStatusQueued, ImprovementStatusFailed, false},
		{ImprovementStatusQueued, ImprovementStatusQueued, false},
		{ImprovementStatusProcessing, ImprovementStatusDone, true},
		{ImprovementStatusProcessing, ImprovementStatusFailed, true},
		{ImprovementStatusProcessing, ImprovementStatusQueued, false},
		{ImprovementStatusDone, ImprovementStatusProcessing, false},
		{ImprovementStatusDone, ImprovementStatusFailed, false},
		{ImprovementStatusFailed, ImprovementStatusDone, false},
		{ImprovementStatus("bogus"), ImprovementStatusProcessing, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to),
			"%s -> %s", tt.from, tt.to)
	}
}

func TestImprovementStatusUnmarshalText(t *testing.T) {
	t.Parallel()

	var s ImprovementStatus
	require.NoError(t, s.UnmarshalText([]byte(" Processing ")))
	assert.Equal(t, ImprovementStatusProcessing, s)

	var bad ImprovementStatus
	err := bad.UnmarshalText([]byte("retrying"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid ImprovementStatus")
}
