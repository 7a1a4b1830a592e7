package vehicle

import "testing"

func TestEnumsAreClosed(t *testing.T) {
	if !CategoryBoat.Valid() || !CategoryBicycle.Valid() {
		t.Fatalf("expected known categories valid")
	}
	if Category("spaceship").Valid() {
		t.Fatalf("expected unknown category invalid")
	}
	if !ListingRent.Valid() || !ListingShare.Valid() || !ListingSale.Valid() {
		t.Fatalf("expected known listing types valid")
	}
	if ListingType("lease").Valid() {
		t.Fatalf("expected unknown listing type invalid")
	}
}

func TestRentable(t *testing.T) {
	if !ListingRent.Rentable() || !ListingShare.Rentable() {
		t.Fatalf("rent/share must accept bookings")
	}
	if ListingSale.Rentable() {
		t.Fatalf("sale listings must not accept bookings")
	}
}

func TestVisibleTo(t *testing.T) {
	v := &Vehicle{OwnerID: "owner-1", IsPublished: false}

	if v.VisibleTo("someone-else") {
		t.Fatalf("unpublished vehicle must be hidden from non-owners")
	}
	if v.VisibleTo("") {
		t.Fatalf("unpublished vehicle must be hidden from anonymous users")
	}
	if !v.VisibleTo("owner-1") {
		t.Fatalf("owner must always see their own listing")
	}

	v.IsPublished = true
	if !v.VisibleTo("someone-else") || !v.VisibleTo("") {
		t.Fatalf("published vehicle must be visible to everyone")
	}
}
