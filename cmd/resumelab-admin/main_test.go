package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/resumelab/resumelab/internal/core"
	"github.com/resumelab/resumelab/internal/domain/model"
)

func TestPrintImprovementStats(t *testing.T) {
	var buf bytes.Buffer

	err := printImprovementStats(&buf, &model.ImprovementStats{
		Queued:     3,
		Processing: 1,
		Done:       10,
		Failed:     2,
	})
	require.NoError(t, err)

	out := buf.String()
	require.Contains(t, out, "queued")
	require.Contains(t, out, "processing")
	require.Contains(t, out, "done")
	require.Contains(t, out, "failed")
	require.Contains(t, out, "16")
}

func TestPrintDeadLettersEmpty(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, printDeadLetters(&buf, nil))
	require.Contains(t, buf.String(), "dead-letter queue is empty")
}

func TestPrintDeadLetters(t *testing.T) {
	var buf bytes.Buffer

	letters := []core.DeadLetter{
		{
			ImprovementID: "imp-1",
			MessageID:     "msg-1",
			Reason:        "rejected",
			Timestamp:     time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
		},
		{
			ImprovementID: "imp-2",
			MessageID:     "msg-2",
			Reason:        "expired",
		},
	}
	require.NoError(t, printDeadLetters(&buf, letters))

	out := buf.String()
	require.Contains(t, out, "imp-1")
	require.Contains(t, out, "rejected")
	require.Contains(t, out, "2026-03-14T09:30:00Z")
	require.Contains(t, out, "Total messages shown: 2")
}

func TestIsLikelyRemoteHost(t *testing.T) {
	tests := []struct {
		host string
		want bool
	}{
		{"localhost", false},
		{"127.0.0.1", false},
		{"::1", false},
		{"db.internal.local", false},
		{"", false},
		{"10.1.2.3", true},
		{"db.prod.example.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.host, func(t *testing.T) {
			require.Equal(t, tt.want, isLikelyRemoteHost(tt.host))
		})
	}
}
