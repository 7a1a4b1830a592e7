package booking

import (
	"testing"
	"time"
)

func TestCanTransitionAndApply(t *testing.T) {
	if !CanTransition(StatusPending, StatusConfirmed) {
		t.Fatalf("expected pending -> confirmed allowed")
	}
	if !CanTransition(StatusPending, StatusCancelled) {
		t.Fatalf("expected pending -> cancelled allowed")
	}
	if !CanTransition(StatusConfirmed, StatusCompleted) {
		t.Fatalf("expected confirmed -> completed allowed")
	}
	if CanTransition(StatusCompleted, StatusPending) {
		t.Fatalf("expected completed -> pending not allowed")
	}
	if CanTransition(StatusCancelled, StatusConfirmed) {
		t.Fatalf("expected cancelled -> confirmed not allowed")
	}

	b := &Booking{Status: StatusPending}
	now := time.Now()
	if err := ApplyTransition(b, StatusConfirmed, now); err != nil {
		t.Fatalf("ApplyTransition: %v", err)
	}
	if b.Status != StatusConfirmed {
		t.Fatalf("expected status confirmed, got %s", b.Status)
	}
	if b.ConfirmedAt == nil {
		t.Fatalf("expected confirmed_at set")
	}

	if err := ApplyTransition(b, StatusCompleted, now); err != nil {
		t.Fatalf("ApplyTransition complete: %v", err)
	}
	if b.CompletedAt == nil {
		t.Fatalf("expected completed_at set")
	}
}

// A same-state transition is an idempotent no-op for every status, including
// the terminal ones.
func TestSameStateTransitionIsNoOp(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled} {
		if !CanTransition(s, s) {
			t.Fatalf("%s -> %s must be allowed", s, s)
		}
	}
}

// Confirmed bookings cannot be cancelled, only completed. This is a business
// rule to discourage late cancellation, not a missing case.
func TestConfirmedCannotBeCancelled(t *testing.T) {
	if CanTransition(StatusConfirmed, StatusCancelled) {
		t.Fatalf("confirmed -> cancelled must not be allowed")
	}

	b := &Booking{Status: StatusConfirmed}
	if err := ApplyTransition(b, StatusCancelled, time.Now()); err == nil {
		t.Fatalf("expected ApplyTransition to reject cancelling a confirmed booking")
	}
	if b.Status != StatusConfirmed {
		t.Fatalf("status must be unchanged after a rejected transition, got %s", b.Status)
	}
}
