package auth

import (
	"testing"
	"time"
)

func TestSession_Expired(t *testing.T) {
	now := time.Now()
	s := Session{ExpiresAt: now.Add(time.Hour)}
	if s.Expired(now) {
		t.Fatal("session expiring in an hour should not be expired")
	}
	if !s.Expired(now.Add(time.Hour)) {
		t.Fatal("session should be expired exactly at ExpiresAt")
	}
	if !s.Expired(now.Add(2 * time.Hour)) {
		t.Fatal("session past expiry should be expired")
	}
}
