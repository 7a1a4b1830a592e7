package booking

import (
	"testing"

	"github.com/VehicleShare/VehicleShare/internal/common/apperr"
)

const (
	ownerID    = "owner-1"
	renterID   = "renter-1"
	strangerID = "stranger-1"
)

func pendingBooking() *Booking {
	return &Booking{ID: "b-1", RenterID: renterID, Status: StatusPending}
}

func TestAuthorizeOwnerOnPending(t *testing.T) {
	b := pendingBooking()
	if err := Authorize(ownerID, b, ownerID, ActionConfirm); err != nil {
		t.Fatalf("owner confirm on pending: %v", err)
	}
	if err := Authorize(ownerID, b, ownerID, ActionCancel); err != nil {
		t.Fatalf("owner cancel(=reject) on pending: %v", err)
	}
	if err := Authorize(ownerID, b, ownerID, ActionComplete); err == nil {
		t.Fatalf("owner complete on pending must be denied")
	}
}

func TestAuthorizeRenterOnPending(t *testing.T) {
	b := pendingBooking()
	if err := Authorize(renterID, b, ownerID, ActionCancel); err != nil {
		t.Fatalf("renter cancel on pending: %v", err)
	}
	if err := Authorize(renterID, b, ownerID, ActionConfirm); err == nil {
		t.Fatalf("renter confirm must be denied")
	}
	if err := Authorize(renterID, b, ownerID, ActionComplete); err == nil {
		t.Fatalf("renter complete must be denied")
	}
}

func TestAuthorizeConfirmedBooking(t *testing.T) {
	b := pendingBooking()
	b.Status = StatusConfirmed

	if err := Authorize(ownerID, b, ownerID, ActionComplete); err != nil {
		t.Fatalf("owner complete on confirmed: %v", err)
	}
	// neither party may cancel once confirmed
	if err := Authorize(ownerID, b, ownerID, ActionCancel); err == nil {
		t.Fatalf("owner cancel on confirmed must be denied")
	}
	if err := Authorize(renterID, b, ownerID, ActionCancel); err == nil {
		t.Fatalf("renter cancel on confirmed must be denied")
	}
}

func TestAuthorizeTerminalStates(t *testing.T) {
	for _, status := range []Status{StatusCompleted, StatusCancelled} {
		b := pendingBooking()
		b.Status = status
		for _, action := range []Action{ActionConfirm, ActionCancel, ActionComplete} {
			if err := Authorize(ownerID, b, ownerID, action); err == nil {
				t.Fatalf("%s on %s must be denied", action, status)
			}
		}
	}
}

func TestAuthorizeStrangersAndAnonymous(t *testing.T) {
	b := pendingBooking()

	if err := Authorize(strangerID, b, ownerID, ActionCancel); err == nil {
		t.Fatalf("stranger action must be denied")
	}
	if kind := apperr.KindOf(Authorize(strangerID, b, ownerID, ActionConfirm)); kind != apperr.KindPermissionDenied {
		t.Fatalf("expected permission denied kind, got %v", kind)
	}

	err := Authorize("", b, ownerID, ActionCancel)
	if err == nil {
		t.Fatalf("anonymous action must be denied")
	}
	if apperr.KindOf(err) != apperr.KindUnauthenticated {
		t.Fatalf("expected unauthenticated kind, got %v", apperr.KindOf(err))
	}
}

// Denials must not explain themselves: every denied actor/action pair gets
// the same message.
func TestAuthorizeDenialsAreGeneric(t *testing.T) {
	b := pendingBooking()
	errStranger := Authorize(strangerID, b, ownerID, ActionConfirm)
	bConfirmed := pendingBooking()
	bConfirmed.Status = StatusConfirmed
	errLateCancel := Authorize(renterID, bConfirmed, ownerID, ActionCancel)

	if errStranger == nil || errLateCancel == nil {
		t.Fatalf("expected both denials")
	}
	if apperr.Message(errStranger) != apperr.Message(errLateCancel) {
		t.Fatalf("denial messages differ: %q vs %q", apperr.Message(errStranger), apperr.Message(errLateCancel))
	}
}
