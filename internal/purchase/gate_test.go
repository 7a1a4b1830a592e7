package purchase

import (
	"testing"

	"github.com/VehicleShare/VehicleShare/internal/common/apperr"
)

const (
	sellerID   = "seller-1"
	buyerID    = "buyer-1"
	strangerID = "stranger-1"
)

func openRequest() *PurchaseRequest {
	return &PurchaseRequest{ID: "pr-1", BuyerID: buyerID, Status: StatusRequested}
}

func TestAuthorizeSellerOnOpenRequest(t *testing.T) {
	pr := openRequest()
	if err := Authorize(sellerID, pr, sellerID, ActionAccept); err != nil {
		t.Fatalf("seller accept: %v", err)
	}
	if err := Authorize(sellerID, pr, sellerID, ActionDecline); err != nil {
		t.Fatalf("seller decline: %v", err)
	}
}

// The buyer's rights end at submission; withdrawing or amending an offer is
// done by letting it be declined and filing a new one.
func TestAuthorizeBuyerHasNoRights(t *testing.T) {
	pr := openRequest()
	for _, action := range []Action{ActionAccept, ActionDecline} {
		if err := Authorize(buyerID, pr, sellerID, action); err == nil {
			t.Fatalf("buyer %s must be denied", action)
		}
	}
}

func TestAuthorizeAnsweredRequest(t *testing.T) {
	for _, status := range []Status{StatusAccepted, StatusDeclined, StatusCompleted} {
		pr := openRequest()
		pr.Status = status
		for _, action := range []Action{ActionAccept, ActionDecline} {
			if err := Authorize(sellerID, pr, sellerID, action); err == nil {
				t.Fatalf("%s on %s must be denied", action, status)
			}
		}
	}
}

func TestAuthorizeStrangersAndAnonymous(t *testing.T) {
	pr := openRequest()

	err := Authorize(strangerID, pr, sellerID, ActionAccept)
	if err == nil {
		t.Fatalf("stranger accept must be denied")
	}
	if apperr.KindOf(err) != apperr.KindPermissionDenied {
		t.Fatalf("expected permission denied kind, got %v", apperr.KindOf(err))
	}

	err = Authorize("", pr, sellerID, ActionAccept)
	if err == nil {
		t.Fatalf("anonymous accept must be denied")
	}
	if apperr.KindOf(err) != apperr.KindUnauthenticated {
		t.Fatalf("expected unauthenticated kind, got %v", apperr.KindOf(err))
	}
}
