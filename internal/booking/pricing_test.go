package booking

import (
	"testing"
	"time"

	"github.com/VehicleShare/VehicleShare/internal/vehicle"
)

func int64Ptr(v int64) *int64 { return &v }

func TestQuoteDailyRate(t *testing.T) {
	v := &vehicle.Vehicle{PricePerDay: int64Ptr(10000)}
	start := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)

	// exactly two days
	total, err := Quote(v, start, start.Add(48*time.Hour))
	if err != nil {
		t.Fatalf("Quote: %v", err)
	}
	if total != 20000 {
		t.Fatalf("expected 20000 for two days at 10000/day, got %d", total)
	}

	// partial days round up
	total, err = Quote(v, start, start.Add(25*time.Hour))
	if err != nil {
		t.Fatalf("Quote: %v", err)
	}
	if total != 20000 {
		t.Fatalf("expected 25h to bill as 2 days, got %d", total)
	}

	// a same-instant booking still bills one day
	total, err = Quote(v, start, start)
	if err != nil {
		t.Fatalf("Quote: %v", err)
	}
	if total != 10000 {
		t.Fatalf("expected minimum one day, got %d", total)
	}
}

func TestQuoteHourlyFallback(t *testing.T) {
	v := &vehicle.Vehicle{PricePerHour: int64Ptr(1500)}
	start := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)

	total, err := Quote(v, start, start.Add(3*time.Hour))
	if err != nil {
		t.Fatalf("Quote: %v", err)
	}
	if total != 4500 {
		t.Fatalf("expected 4500 for 3h at 1500/h, got %d", total)
	}

	// partial hours round up
	total, err = Quote(v, start, start.Add(90*time.Minute))
	if err != nil {
		t.Fatalf("Quote: %v", err)
	}
	if total != 3000 {
		t.Fatalf("expected 90min to bill as 2 hours, got %d", total)
	}
}

func TestQuoteDailyRateWinsOverHourly(t *testing.T) {
	v := &vehicle.Vehicle{PricePerDay: int64Ptr(10000), PricePerHour: int64Ptr(1500)}
	start := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)

	total, err := Quote(v, start, start.Add(2*time.Hour))
	if err != nil {
		t.Fatalf("Quote: %v", err)
	}
	if total != 10000 {
		t.Fatalf("expected the day rate to apply, got %d", total)
	}
}

func TestQuoteUnpricedVehicle(t *testing.T) {
	v := &vehicle.Vehicle{}
	start := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	if _, err := Quote(v, start, start.Add(24*time.Hour)); err == nil {
		t.Fatalf("expected an error for a vehicle with no rental pricing")
	}
}
