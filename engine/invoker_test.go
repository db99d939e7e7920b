package engine

import (
	"testing"
	"time"
)

func TestInvoke_ReturnsValueWithinDeadline(t *testing.T) {
	v, cbErr := invoke(time.Second, "p1", "OnTurn", func() int { return 7 })
	if cbErr != nil {
		t.Fatalf("unexpected error: %v", cbErr)
	}
	if v != 7 {
		t.Fatalf("expected 7, got %d", v)
	}
}

func TestInvoke_TimesOutOnSlowCallback(t *testing.T) {
	_, cbErr := invoke(10*time.Millisecond, "p1", "OnTurn", func() int {
		time.Sleep(100 * time.Millisecond)
		return 1
	})
	if cbErr == nil || cbErr.Kind != ErrKindCallbackTimeout {
		t.Fatalf("expected a callback timeout, got %v", cbErr)
	}
}

func TestInvoke_RecoversFromPanic(t *testing.T) {
	_, cbErr := invoke(time.Second, "p1", "OnTurn", func() int {
		panic("boom")
	})
	if cbErr == nil || cbErr.Kind != ErrKindCallbackFailure {
		t.Fatalf("expected a callback failure, got %v", cbErr)
	}
}

func TestInvoke_NoDeadlineWaitsForCompletion(t *testing.T) {
	v, cbErr := invoke(0, "p1", "OnTurn", func() int {
		time.Sleep(5 * time.Millisecond)
		return 42
	})
	if cbErr != nil {
		t.Fatalf("unexpected error: %v", cbErr)
	}
	if v != 42 {
		t.Fatalf("expected 42, got %d", v)
	}
}
