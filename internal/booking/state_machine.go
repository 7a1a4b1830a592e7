package booking

import (
	"fmt"
	"time"
)

// AllowTransition is the booking state machine as a directed graph.
// confirmed -> cancelled is deliberately absent: a confirmed booking cannot
// be unilaterally cancelled, only completed.
var AllowTransition = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted},
	// terminal states
	StatusCompleted: {},
	StatusCancelled: {},
}

// CanTransition reports whether from -> to is an allowed status change.
// A same-state transition is an idempotent no-op, so a retried request does
// not read as an invalid transition.
func CanTransition(from, to Status) bool {
	if from == to {
		return true
	}
	allowed, ok := AllowTransition[from]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

// ApplyTransition moves a booking to the target status and maintains the
// bookkeeping timestamps. Call only after CanTransition says yes.
func ApplyTransition(b *Booking, to Status, now time.Time) error {
	if b == nil {
		return fmt.Errorf("booking is nil")
	}
	from := b.Status
	if !CanTransition(from, to) {
		return fmt.Errorf("invalid booking status transition: %s -> %s", from, to)
	}

	b.Status = to

	switch to {
	case StatusConfirmed:
		if b.ConfirmedAt == nil {
			t := now
			b.ConfirmedAt = &t
		}
	case StatusCompleted:
		if b.CompletedAt == nil {
			t := now
			b.CompletedAt = &t
		}
	case StatusCancelled:
		if b.CancelledAt == nil {
			t := now
			b.CancelledAt = &t
		}
	}
	return nil
}
