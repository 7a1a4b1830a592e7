package booking

import "github.com/VehicleShare/VehicleShare/internal/common/apperr"

// Action is a status mutation requested against a booking.
type Action string

const (
	ActionConfirm  Action = "confirm"
	ActionCancel   Action = "cancel"
	ActionComplete Action = "complete"
)

func (a Action) Valid() bool {
	switch a {
	case ActionConfirm, ActionCancel, ActionComplete:
		return true
	}
	return false
}

// Target is the status an action moves a booking to.
func (a Action) Target() Status {
	switch a {
	case ActionConfirm:
		return StatusConfirmed
	case ActionCancel:
		return StatusCancelled
	case ActionComplete:
		return StatusCompleted
	}
	return ""
}

// Authorize decides whether actorID may apply action to the booking, given
// the vehicle's owner. It is evaluated against the freshly loaded row, never
// against what a client believes the status is.
//
// Grants:
//   - owner:  confirm and cancel(=reject) while pending, complete while confirmed
//   - renter: cancel while pending
//
// Everything else is denied, including any cancel of a confirmed booking.
// Denials are a single generic error so callers cannot probe which rule fired.
func Authorize(actorID string, b *Booking, ownerID string, action Action) error {
	if actorID == "" {
		return apperr.Unauthenticated("authentication required")
	}
	if b == nil || !action.Valid() {
		return apperr.PermissionDenied()
	}

	isOwner := actorID == ownerID
	isRenter := actorID == b.RenterID

	switch action {
	case ActionConfirm:
		if isOwner && b.Status == StatusPending {
			return nil
		}
	case ActionCancel:
		if (isOwner || isRenter) && b.Status == StatusPending {
			return nil
		}
	case ActionComplete:
		if isOwner && b.Status == StatusConfirmed {
			return nil
		}
	}
	return apperr.PermissionDenied()
}
