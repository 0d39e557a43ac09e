package session

import (
	"testing"
	"time"
)

func TestHub(t *testing.T) {
	t.Run("subscriber receives current identity immediately", func(t *testing.T) {
		hub := NewHub()
		hub.SignedIn("alice@example.com")

		var got []string
		cancel := hub.Subscribe(func(identity string) {
			got = append(got, identity)
		})
		defer cancel()

		if len(got) != 1 || got[0] != "alice@example.com" {
			t.Errorf("initial events = %v, want [alice@example.com]", got)
		}
	})

	t.Run("sign-in and sign-out publish identity-or-none events", func(t *testing.T) {
		hub := NewHub()

		var got []string
		cancel := hub.Subscribe(func(identity string) {
			got = append(got, identity)
		})
		defer cancel()

		hub.SignedIn("bob@example.com")
		hub.SignedOut()

		want := []string{"", "bob@example.com", ""}
		if len(got) != len(want) {
			t.Fatalf("events = %v, want %v", got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("events[%d] = %q, want %q", i, got[i], want[i])
			}
		}
		if hub.Current() != "" {
			t.Errorf("Current() = %q after sign-out, want empty", hub.Current())
		}
	})

	t.Run("cancelled subscription receives no further events", func(t *testing.T) {
		hub := NewHub()

		count := 0
		cancel := hub.Subscribe(func(string) { count++ })
		cancel()

		hub.SignedIn("alice@example.com")
		if count != 1 {
			t.Errorf("callback ran %d times, want 1 (initial only)", count)
		}
	})

	t.Run("subscriber may unsubscribe from within its callback", func(t *testing.T) {
		hub := NewHub()

		count := 0
		var cancel func()
		cancel = hub.Subscribe(func(identity string) {
			count++
			if identity != "" {
				cancel()
			}
		})

		hub.SignedIn("alice@example.com")
		hub.SignedIn("bob@example.com")
		if count != 2 {
			t.Errorf("callback ran %d times, want 2", count)
		}
	})
}

func TestRevocations(t *testing.T) {
	rev := NewRevocations()

	if rev.IsRevoked("unknown") {
		t.Error("unknown jti reported revoked")
	}

	rev.Revoke("session-1", time.Now().Add(time.Hour))
	if !rev.IsRevoked("session-1") {
		t.Error("revoked jti not reported revoked")
	}

	// An already-expired entry is pruned on the next check.
	rev.Revoke("session-2", time.Now().Add(-time.Minute))
	if rev.IsRevoked("session-2") {
		t.Error("expired revocation should have been pruned")
	}
	if !rev.IsRevoked("session-1") {
		t.Error("live revocation lost during prune")
	}
}
