package vehicle

import (
	"context"
	"testing"

	"github.com/VehicleShare/VehicleShare/internal/common/apperr"
)

func validInput() ListingInput {
	day := int64(10000)
	return ListingInput{
		Category:    CategoryBoat,
		ListingType: ListingRent,
		Title:       "Cruiser 27ft",
		Description: "Well maintained cruiser",
		Location:    "Yokohama",
		PricePerDay: &day,
	}
}

func TestCreateValidation(t *testing.T) {
	svc := NewService(NewRepo(nil))
	ctx := context.Background()

	mutations := []struct {
		name   string
		mutate func(*ListingInput)
	}{
		{"bad category", func(in *ListingInput) { in.Category = "spaceship" }},
		{"bad listing type", func(in *ListingInput) { in.ListingType = "lease" }},
		{"missing title", func(in *ListingInput) { in.Title = "  " }},
		{"missing description", func(in *ListingInput) { in.Description = "" }},
		{"missing location", func(in *ListingInput) { in.Location = "" }},
		{"negative price", func(in *ListingInput) { neg := int64(-1); in.PricePerDay = &neg }},
		{"absurd year", func(in *ListingInput) { y := 1492; in.Year = &y }},
	}

	for _, tc := range mutations {
		in := validInput()
		tc.mutate(&in)
		if _, err := svc.Create(ctx, "owner-1", in); err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		} else if apperr.KindOf(err) != apperr.KindValidation {
			t.Fatalf("%s: expected validation kind, got %v", tc.name, apperr.KindOf(err))
		}
	}
}

func TestParseSearchFilter(t *testing.T) {
	f, err := ParseSearchFilter("boat", "rent,share", 2, 10)
	if err != nil {
		t.Fatalf("ParseSearchFilter: %v", err)
	}
	if f.Category != CategoryBoat {
		t.Fatalf("category mismatch: %s", f.Category)
	}
	if len(f.ListingTypes) != 2 || f.ListingTypes[0] != ListingRent || f.ListingTypes[1] != ListingShare {
		t.Fatalf("listing types mismatch: %#v", f.ListingTypes)
	}
	if f.Offset != 10 || f.Limit != 10 {
		t.Fatalf("pagination mismatch: offset=%d limit=%d", f.Offset, f.Limit)
	}

	// "all" clears the category filter, mirroring the search UI
	f, err = ParseSearchFilter("all", "", 0, 0)
	if err != nil {
		t.Fatalf("ParseSearchFilter all: %v", err)
	}
	if f.Category != "" {
		t.Fatalf("expected empty category for all")
	}
	if f.Offset != 0 || f.Limit != 20 {
		t.Fatalf("expected default pagination, got offset=%d limit=%d", f.Offset, f.Limit)
	}

	if _, err := ParseSearchFilter("spaceship", "", 1, 20); err == nil {
		t.Fatalf("expected invalid category rejected")
	}
	if _, err := ParseSearchFilter("", "rent,lease", 1, 20); err == nil {
		t.Fatalf("expected invalid listing type rejected")
	}
}
