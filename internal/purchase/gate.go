package purchase

import "github.com/VehicleShare/VehicleShare/internal/common/apperr"

// Action is a response the seller may apply to a purchase request.
type Action string

const (
	ActionAccept  Action = "accept"
	ActionDecline Action = "decline"
)

func (a Action) Valid() bool {
	switch a {
	case ActionAccept, ActionDecline:
		return true
	}
	return false
}

// Target is the status an action moves a request to.
func (a Action) Target() Status {
	switch a {
	case ActionAccept:
		return StatusAccepted
	case ActionDecline:
		return StatusDeclined
	}
	return ""
}

// Authorize decides whether actorID may respond to the request, given the
// vehicle's owner. Only the owner may respond, and only while the request is
// still open. The buyer has no rights over a request once submitted; a
// declined offer is renegotiated with a new request, not edited in place.
// Denials are a single generic error so callers cannot probe which rule fired.
func Authorize(actorID string, pr *PurchaseRequest, ownerID string, action Action) error {
	if actorID == "" {
		return apperr.Unauthenticated("authentication required")
	}
	if pr == nil || !action.Valid() {
		return apperr.PermissionDenied()
	}
	if actorID == ownerID && pr.Status == StatusRequested {
		return nil
	}
	return apperr.PermissionDenied()
}
