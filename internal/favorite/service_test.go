package favorite

import (
	"context"
	"testing"

	"github.com/VehicleShare/VehicleShare/internal/common/apperr"
	"github.com/VehicleShare/VehicleShare/internal/vehicle"
)

// Validation runs before any repository access, so a service over nil repos
// is enough to exercise it.
func TestAddValidation(t *testing.T) {
	svc := NewService(NewRepo(nil), vehicle.NewRepo(nil))
	err := svc.Add(context.Background(), "user-1", "  ")
	if apperr.KindOf(err) != apperr.KindValidation {
		t.Fatalf("expected validation error for missing vehicle id, got %v", err)
	}
}

func TestRemoveValidation(t *testing.T) {
	svc := NewService(NewRepo(nil), vehicle.NewRepo(nil))
	err := svc.Remove(context.Background(), "user-1", "")
	if apperr.KindOf(err) != apperr.KindValidation {
		t.Fatalf("expected validation error for missing vehicle id, got %v", err)
	}
}
