package notify

import (
	"testing"
	"time"
)

func TestSetAndExpire(t *testing.T) {
	n := New(20 * time.Millisecond)

	n.Set("boom")
	if got := n.Message(); got != "boom" {
		t.Fatalf("expected message set, got %q", got)
	}

	time.Sleep(60 * time.Millisecond)
	if got := n.Message(); got != "" {
		t.Errorf("expected message to expire, got %q", got)
	}
}

func TestSetReplacesPendingExpiry(t *testing.T) {
	n := New(50 * time.Millisecond)

	n.Set("first")
	time.Sleep(30 * time.Millisecond)
	n.Set("second")

	// The first timer would have fired by now; the second message must
	// survive it.
	time.Sleep(30 * time.Millisecond)
	if got := n.Message(); got != "second" {
		t.Errorf("expected %q, got %q", "second", got)
	}

	time.Sleep(40 * time.Millisecond)
	if got := n.Message(); got != "" {
		t.Errorf("expected message to expire, got %q", got)
	}
}

func TestClearCancelsExpiry(t *testing.T) {
	n := New(20 * time.Millisecond)

	n.Set("boom")
	n.Clear()
	if got := n.Message(); got != "" {
		t.Fatalf("expected cleared message, got %q", got)
	}

	n.Set("again")
	time.Sleep(5 * time.Millisecond)
	if got := n.Message(); got != "again" {
		t.Errorf("expected %q, got %q", "again", got)
	}
}

func TestDefaultTTLFallback(t *testing.T) {
	n := New(0)
	if n.ttl != DefaultTTL {
		t.Errorf("expected default ttl %v, got %v", DefaultTTL, n.ttl)
	}
}
