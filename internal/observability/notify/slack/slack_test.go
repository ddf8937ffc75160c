package slack

import (
	"strings"
	"testing"
	"time"

	"github.com/resumelab/resumelab/internal/observability/notify"
)

func TestNewClientValidation(t *testing.T) {
	if _, err := NewClient(Config{}); err == nil {
		t.Fatal("expected error when webhook url missing")
	}
}

func TestFormatMessageIncludesFields(t *testing.T) {
	client, err := NewClient(Config{
		WebhookURL: "https://hooks.slack.com/services/test",
		Channel:    "#alerts",
		Username:   "bot",
		Timeout:    time.Second,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	msg := client.formatMessage(notify.ImprovementFailurePayload{
		ImprovementID: "imp-123",
		ResumeID:      "res-1",
		UserID:        "user-9",
		Attempts:      3,
		Error:         "boom",
		ErrorClass:    "test_error",
	})

	if msg["username"] != "bot" {
		t.Fatalf("expected username to be preserved, got %v", msg["username"])
	}
	if msg["channel"] != "#alerts" {
		t.Fatalf("expected channel to be set, got %v", msg["channel"])
	}

	text, ok := msg["text"].(string)
	if !ok {
		t.Fatalf("expected text field")
	}
	if !containsAll(
		text,
		[]string{"Improvement failure alert", "imp-123", "res-1", "user-9", "Attempts: 3", "boom", "test_error"},
	) {
		t.Fatalf("message text missing fields: %s", text)
	}
}

func TestFormatMessageResumeLink(t *testing.T) {
	client, err := NewClient(Config{
		WebhookURL:      "https://hooks.slack.com/services/test",
		ResumeURLPrefix: "https://app.resumelab.local/resumes",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	msg := client.formatMessage(notify.ImprovementFailurePayload{
		ResumeID: "res-123",
	})

	text, ok := msg["text"].(string)
	if !ok {
		t.Fatalf("expected text field")
	}

	expected := "<https://app.resumelab.local/resumes/res-123|res-123>"
	if !strings.Contains(text, expected) {
		t.Fatalf("expected resume link %q in text: %s", expected, text)
	}
}

func TestFormatMessageEscapesIDs(t *testing.T) {
	client, err := NewClient(Config{
		WebhookURL: "https://hooks.slack.com/services/test",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	msg := client.formatMessage(notify.ImprovementFailurePayload{
		ResumeID: "res-123",
		UserID:   "user & <admin>",
	})

	text, ok := msg["text"].(string)
	if !ok {
		t.Fatalf("expected text field")
	}

	if !strings.Contains(text, "user &amp; &lt;admin&gt;") {
		t.Fatalf("expected escaped user id, got: %s", text)
	}
}

func TestFormatResumeValuePermutations(t *testing.T) {
	tcs := []struct {
		name     string
		resumeID string
		prefix   string
		want     string
	}{
		{
			name:     "id with link",
			resumeID: "res-1",
			prefix:   "https://app.example/resumes",
			want:     "<https://app.example/resumes/res-1|res-1>",
		},
		{
			name:     "id without link",
			resumeID: "res-2",
			prefix:   "not a url",
			want:     "res-2",
		},
		{
			name:     "no prefix",
			resumeID: "res-3",
			want:     "res-3",
		},
		{
			name:   "empty input",
			prefix: "https://app.example/resumes",
			want:   "",
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			client, err := NewClient(Config{
				WebhookURL:      "https://hooks.slack.com/services/test",
				ResumeURLPrefix: tc.prefix,
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			got := client.formatResumeValue(tc.resumeID)
			if got != tc.want {
				t.Fatalf("formatResumeValue(%q) = %q, want %q", tc.resumeID, got, tc.want)
			}
		})
	}
}

func containsAll(text string, substrs []string) bool {
	for _, s := range substrs {
		if !strings.Contains(text, s) {
			return false
		}
	}
	return true
}
