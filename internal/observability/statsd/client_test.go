package statsd

import (
	"io"
	"log/slog"
	"net"
	"strings"
	"testing"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSanitizeName(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		" improvement/outcome ":  "improvement_outcome",
		"improvement..duration":  "improvement.duration",
		"with space":             "with_space",
		"proto:reserved|chars":   "proto_reserved_chars",
		".improvement.attempts.": "improvement.attempts",
		"   ":                    "",
	}

	for input, want := range tests {
		if got := sanitizeName(input); got != want {
			t.Fatalf("sanitizeName(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestTagSuffix(t *testing.T) {
	t.Parallel()

	got := tagSuffix(map[string]string{
		"result":      " failed ",
		"":            "dropped",
		"error_class": "timeout",
	})
	want := "|#error_class:timeout,result:failed"

	if got != want {
		t.Fatalf("tagSuffix mismatch\n got: %q\nwant: %q", got, want)
	}

	if got := tagSuffix(nil); got != "" {
		t.Fatalf("tagSuffix(nil) = %q, want empty string", got)
	}
}

func TestClientEmitsPrefixedLines(t *testing.T) {
	t.Parallel()

	serverConn, clientConn := net.Pipe()
	defer serverConn.Close()

	client := &Client{
		enabled: true,
		prefix:  "resumelab",
		logger:  discardLogger(),
		conn:    clientConn,
	}

	lines := make(chan string, 1)
	go func() {
		buf := make([]byte, 256)
		n, _ := serverConn.Read(buf)
		lines <- string(buf[:n])
	}()

	client.Count("improvement.outcome", 1, map[string]string{"result": "done"})

	if got, want := <-lines, "resumelab.improvement.outcome:1|c|#result:done"; got != want {
		t.Fatalf("emitted line mismatch\n got: %q\nwant: %q", got, want)
	}
}

func TestClientEnabledAndClose(t *testing.T) {
	t.Parallel()

	clientConn, peerConn := net.Pipe()
	defer peerConn.Close()

	client := &Client{
		enabled: true,
		logger:  discardLogger(),
		conn:    clientConn,
	}

	if !client.Enabled() {
		t.Fatal("expected client.Enabled to report true with active connection")
	}

	if err := client.Close(); err != nil {
		t.Fatalf("Close error: %v", err)
	}
	if client.Enabled() {
		t.Fatal("expected client.Enabled to report false after Close")
	}
	if err := client.Close(); err != nil {
		t.Fatalf("Close (second call) error: %v", err)
	}

	var nilClient *Client
	if nilClient.Enabled() {
		t.Fatal("nil client should report disabled")
	}
	if err := nilClient.Close(); err != nil {
		t.Fatalf("nil client Close error: %v", err)
	}
	// Emitting through a nil client must not panic.
	nilClient.Count("improvement.outcome", 1, nil)
}

func TestNewClientDisabledWithoutAddress(t *testing.T) {
	t.Parallel()

	client, err := NewClient(Config{
		Enabled: true,
		Address: "   ",
	})
	if err != nil {
		t.Fatalf("NewClient error: %v", err)
	}
	if client.Enabled() {
		t.Fatal("expected client to stay disabled when address is empty")
	}
}

func TestNewClientDialError(t *testing.T) {
	t.Parallel()

	_, err := NewClient(Config{
		Enabled: true,
		Address: "bad address",
	})
	if err == nil {
		t.Fatal("expected NewClient to error for invalid address")
	}
	if !strings.Contains(err.Error(), "statsd dial") {
		t.Fatalf("unexpected error: %v", err)
	}
}
