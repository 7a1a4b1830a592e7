package booking

import (
	"context"
	"testing"
	"time"

	"github.com/VehicleShare/VehicleShare/internal/common/apperr"
	"github.com/VehicleShare/VehicleShare/internal/vehicle"
	"gorm.io/gorm"
)

// stubStore serves the service tests that need to reach past validation
// without a database.
type stubStore struct {
	booking   *Booking
	updateErr error
	created   *Booking
}

func (s *stubStore) Create(ctx context.Context, b *Booking) error {
	s.created = b
	return nil
}

func (s *stubStore) GetByID(ctx context.Context, id string) (*Booking, error) {
	if s.booking == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return s.booking, nil
}

func (s *stubStore) UpdateStatus(ctx context.Context, b *Booking, from Status) error {
	return s.updateErr
}

func (s *stubStore) ListByRenter(ctx context.Context, renterID string) ([]Booking, error) {
	return nil, nil
}

func (s *stubStore) ListByOwner(ctx context.Context, ownerID string) ([]Booking, error) {
	return nil, nil
}

type stubVehicles struct {
	v     *vehicle.Vehicle
	owner string
}

func (s *stubVehicles) FindByID(ctx context.Context, id string) (*vehicle.Vehicle, error) {
	if s.v == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return s.v, nil
}

func (s *stubVehicles) OwnerID(ctx context.Context, vehicleID string) (string, error) {
	return s.owner, nil
}

// Validation runs before any repository access, so a service over nil repos
// is enough to exercise it.
func TestCreateValidation(t *testing.T) {
	svc := NewService(NewRepo(nil), vehicle.NewRepo(nil))
	now := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
	future := now.Add(24 * time.Hour)

	cases := []struct {
		name string
		in   CreateInput
	}{
		{"missing vehicle", CreateInput{StartDate: future, EndDate: future.Add(24 * time.Hour)}},
		{"missing dates", CreateInput{VehicleID: "v-1"}},
		{"start in the past", CreateInput{VehicleID: "v-1", StartDate: now.Add(-time.Hour), EndDate: future}},
		{"end before start", CreateInput{VehicleID: "v-1", StartDate: future.Add(48 * time.Hour), EndDate: future}},
	}
	for _, tc := range cases {
		_, err := svc.Create(context.Background(), "renter-1", tc.in, now)
		if err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
		if apperr.KindOf(err) != apperr.KindValidation {
			t.Fatalf("%s: expected validation kind, got %v", tc.name, apperr.KindOf(err))
		}
	}
}

func TestUpdateStatusRejectsUnknownAction(t *testing.T) {
	svc := NewService(NewRepo(nil), vehicle.NewRepo(nil))
	_, err := svc.UpdateStatus(context.Background(), "user-1", "b-1", Action("archive"), time.Now())
	if err == nil {
		t.Fatalf("expected error for unknown action")
	}
	if apperr.KindOf(err) != apperr.KindValidation {
		t.Fatalf("expected validation kind, got %v", apperr.KindOf(err))
	}
}

// A status write that loses the compare-and-swap must surface as a conflict,
// never as a silent last-write-wins.
func TestUpdateStatusStaleWriteIsConflict(t *testing.T) {
	store := &stubStore{
		booking:   &Booking{ID: "b-1", VehicleID: "v-1", RenterID: renterID, Status: StatusPending},
		updateErr: ErrStaleStatus,
	}
	svc := NewService(store, &stubVehicles{owner: ownerID})

	_, err := svc.UpdateStatus(context.Background(), ownerID, "b-1", ActionConfirm, time.Now())
	if err == nil {
		t.Fatalf("expected error when the status row changed underneath")
	}
	if apperr.KindOf(err) != apperr.KindConflict {
		t.Fatalf("expected conflict kind, got %v", apperr.KindOf(err))
	}
}

func TestUpdateStatusHappyPath(t *testing.T) {
	store := &stubStore{
		booking: &Booking{ID: "b-1", VehicleID: "v-1", RenterID: renterID, Status: StatusPending},
	}
	svc := NewService(store, &stubVehicles{owner: ownerID})

	b, err := svc.UpdateStatus(context.Background(), ownerID, "b-1", ActionConfirm, time.Now())
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if b.Status != StatusConfirmed {
		t.Fatalf("expected confirmed, got %s", b.Status)
	}
	if b.ConfirmedAt == nil {
		t.Fatalf("expected confirmed_at set")
	}
}

func TestListRejectsUnknownRole(t *testing.T) {
	svc := NewService(NewRepo(nil), vehicle.NewRepo(nil))
	_, err := svc.List(context.Background(), "user-1", Role("admin"))
	if err == nil {
		t.Fatalf("expected error for unknown role")
	}
	if apperr.KindOf(err) != apperr.KindValidation {
		t.Fatalf("expected validation kind, got %v", apperr.KindOf(err))
	}
}
