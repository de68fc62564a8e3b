package state

import (
	"testing"
	"time"
)

func newTestManager(ttl time.Duration) (*memoryManager, *time.Time) {
	now := time.Unix(1700000000, 0)
	m := NewMemoryManager(ttl).(*memoryManager)
	m.now = func() time.Time { return now }
	return m, &now
}

func TestStateTransitions(t *testing.T) {
	m, _ := newTestManager(time.Minute)

	if got := m.GetState(1); got != StateIdle {
		t.Fatalf("initial state = %q, want idle", got)
	}
	if m.InProgress(1) {
		t.Fatal("fresh user should not be in progress")
	}

	m.SetState(1, State("register:name"))
	if got := m.GetState(1); got != State("register:name") {
		t.Fatalf("state = %q, want register:name", got)
	}
	if !m.InProgress(1) {
		t.Fatal("expected in-progress conversation")
	}

	// other users are unaffected
	if m.InProgress(2) {
		t.Fatal("user 2 should be idle")
	}

	m.ClearState(1)
	if got := m.GetState(1); got != StateIdle {
		t.Fatalf("state after clear = %q, want idle", got)
	}
}

func TestTempData(t *testing.T) {
	m, _ := newTestManager(time.Minute)

	m.SetTemp(1, "name", "Alice")
	got, ok := m.GetTempString(1, "name")
	if !ok || got != "Alice" {
		t.Fatalf("GetTempString = %q, %v", got, ok)
	}

	if _, ok := m.GetTemp(1, "missing"); ok {
		t.Fatal("missing key should not be found")
	}

	m.ClearTemp(1, "name")
	if _, ok := m.GetTemp(1, "name"); ok {
		t.Fatal("cleared key should not be found")
	}
}

func TestClearDropsSession(t *testing.T) {
	m, _ := newTestManager(time.Minute)

	m.SetState(1, State("task:title"))
	m.SetTemp(1, "title", "Buy milk")
	m.Clear(1)

	if m.InProgress(1) {
		t.Fatal("cleared session should be idle")
	}
	if _, ok := m.GetTemp(1, "title"); ok {
		t.Fatal("cleared session should drop temp data")
	}
}

func TestSessionExpiry(t *testing.T) {
	m, now := newTestManager(time.Minute)

	m.SetState(1, State("register:login"))
	m.SetTemp(1, "name", "Alice")

	*now = now.Add(30 * time.Second)
	if !m.InProgress(1) {
		t.Fatal("session should survive within the ttl")
	}

	// touching extends the deadline
	m.SetTemp(1, "name", "Alice")
	*now = now.Add(45 * time.Second)
	if !m.InProgress(1) {
		t.Fatal("touched session should survive past the original deadline")
	}

	*now = now.Add(61 * time.Second)
	if m.InProgress(1) {
		t.Fatal("session should expire after the ttl")
	}
	if got := m.GetState(1); got != StateIdle {
		t.Fatalf("expired state = %q, want idle", got)
	}
	if _, ok := m.GetTemp(1, "name"); ok {
		t.Fatal("expired session should drop temp data")
	}
}

func TestZeroTTLFallsBackToDefault(t *testing.T) {
	m := NewMemoryManager(0).(*memoryManager)
	if m.ttl != DefaultTTL {
		t.Fatalf("ttl = %v, want %v", m.ttl, DefaultTTL)
	}
}
