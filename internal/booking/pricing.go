package booking

import (
	"time"

	"github.com/VehicleShare/VehicleShare/internal/common/apperr"
	"github.com/VehicleShare/VehicleShare/internal/vehicle"
)

// Quote computes the total price for renting v from start to end.
//
// The per-day rate is preferred: days are the date span rounded up, minimum
// one. Without a per-day rate the per-hour rate applies to the span rounded
// up to whole hours. A rent/share listing with neither rate cannot be booked
// until the owner prices it.
func Quote(v *vehicle.Vehicle, start, end time.Time) (int64, error) {
	if v == nil {
		return 0, apperr.Validation("vehicle required")
	}
	if !end.After(start) && !end.Equal(start) {
		return 0, apperr.Validation("end_date must not be before start_date")
	}

	span := end.Sub(start)

	if v.PricePerDay != nil && *v.PricePerDay > 0 {
		days := int64(span / (24 * time.Hour))
		if span%(24*time.Hour) != 0 || days == 0 {
			days++
		}
		return days * *v.PricePerDay, nil
	}

	if v.PricePerHour != nil && *v.PricePerHour > 0 {
		hours := int64(span / time.Hour)
		if span%time.Hour != 0 || hours == 0 {
			hours++
		}
		return hours * *v.PricePerHour, nil
	}

	return 0, apperr.Validation("vehicle has no rental pricing")
}
