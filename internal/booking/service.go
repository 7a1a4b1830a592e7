package booking

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/VehicleShare/VehicleShare/internal/common/apperr"
	"github.com/VehicleShare/VehicleShare/internal/vehicle"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Store is the booking persistence the service needs.
type Store interface {
	Create(ctx context.Context, b *Booking) error
	GetByID(ctx context.Context, id string) (*Booking, error)
	UpdateStatus(ctx context.Context, b *Booking, from Status) error
	ListByRenter(ctx context.Context, renterID string) ([]Booking, error)
	ListByOwner(ctx context.Context, ownerID string) ([]Booking, error)
}

// VehicleStore resolves vehicles and their owners.
type VehicleStore interface {
	FindByID(ctx context.Context, id string) (*vehicle.Vehicle, error)
	OwnerID(ctx context.Context, vehicleID string) (string, error)
}

// Service holds the booking use cases. It resolves vehicles through the
// vehicle store because every authorization decision needs the owner.
type Service struct {
	repo     Store
	vehicles VehicleStore
}

func NewService(repo Store, vehicles VehicleStore) *Service {
	return &Service{repo: repo, vehicles: vehicles}
}

type CreateInput struct {
	VehicleID string    `json:"vehicle_id"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Notes     string    `json:"notes"`
}

// Create validates the request, prices it from the vehicle's rates, and
// inserts a pending booking. The price is always computed here, before the
// write; it is never taken from the client.
func (s *Service) Create(ctx context.Context, renterID string, in CreateInput, now time.Time) (*Booking, error) {
	if s == nil || s.repo == nil || s.vehicles == nil {
		return nil, apperr.Internal(errors.New("service not initialized"))
	}
	if strings.TrimSpace(in.VehicleID) == "" {
		return nil, apperr.Validation("vehicle_id required")
	}
	if in.StartDate.IsZero() || in.EndDate.IsZero() {
		return nil, apperr.Validation("start_date and end_date required")
	}
	if in.StartDate.Before(now) {
		return nil, apperr.Validation("start_date must be in the future")
	}
	if in.EndDate.Before(in.StartDate) {
		return nil, apperr.Validation("end_date must not be before start_date")
	}

	v, err := s.vehicles.FindByID(ctx, in.VehicleID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("vehicle")
	}
	if err != nil {
		return nil, apperr.Internal(err)
	}

	if !v.IsPublished || !v.IsAvailable {
		return nil, apperr.NotFound("vehicle")
	}
	if !v.ListingType.Rentable() {
		return nil, apperr.Validation("vehicle is not offered for rent")
	}
	if v.OwnerID == renterID {
		// owners cannot book their own listings
		return nil, apperr.PermissionDenied()
	}

	total, err := Quote(v, in.StartDate, in.EndDate)
	if err != nil {
		return nil, err
	}

	b := &Booking{
		ID:         uuid.NewString(),
		VehicleID:  v.ID,
		RenterID:   renterID,
		StartDate:  in.StartDate,
		EndDate:    in.EndDate,
		TotalPrice: total,
		Status:     StatusPending,
		Notes:      strings.TrimSpace(in.Notes),
	}
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, apperr.Internal(err)
	}
	return b, nil
}

// UpdateStatus applies a gate-checked state machine transition. The status is
// re-read from the database and the final write is compare-and-swapped on it,
// so a stale client loses cleanly instead of overwriting a concurrent change.
func (s *Service) UpdateStatus(ctx context.Context, actorID, bookingID string, action Action, now time.Time) (*Booking, error) {
	if s == nil || s.repo == nil || s.vehicles == nil {
		return nil, apperr.Internal(errors.New("service not initialized"))
	}
	bookingID = strings.TrimSpace(bookingID)
	if bookingID == "" {
		return nil, apperr.Validation("booking id required")
	}
	if !action.Valid() {
		return nil, apperr.Validation("unknown action")
	}

	b, err := s.repo.GetByID(ctx, bookingID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("booking")
	}
	if err != nil {
		return nil, apperr.Internal(err)
	}

	ownerID, err := s.vehicles.OwnerID(ctx, b.VehicleID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("booking")
	}
	if err != nil {
		return nil, apperr.Internal(err)
	}

	if err := Authorize(actorID, b, ownerID, action); err != nil {
		return nil, err
	}

	from := b.Status
	if err := ApplyTransition(b, action.Target(), now); err != nil {
		return nil, apperr.PermissionDenied()
	}
	if err := s.repo.UpdateStatus(ctx, b, from); err != nil {
		if errors.Is(err, ErrStaleStatus) {
			return nil, apperr.Conflict("booking was updated by someone else, reload and retry")
		}
		return nil, apperr.Internal(err)
	}
	return b, nil
}

func (s *Service) Get(ctx context.Context, actorID, bookingID string) (*Booking, error) {
	if s == nil || s.repo == nil || s.vehicles == nil {
		return nil, apperr.Internal(errors.New("service not initialized"))
	}
	b, err := s.repo.GetByID(ctx, bookingID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("booking")
	}
	if err != nil {
		return nil, apperr.Internal(err)
	}

	ownerID, err := s.vehicles.OwnerID(ctx, b.VehicleID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Internal(err)
	}
	// only the two parties may read a booking; everyone else gets a 404
	if actorID != b.RenterID && actorID != ownerID {
		return nil, apperr.NotFound("booking")
	}
	return b, nil
}

// Role selects which side of the booking ledger to list.
type Role string

const (
	RoleRenter Role = "renter"
	RoleOwner  Role = "owner"
)

func (s *Service) List(ctx context.Context, userID string, role Role) ([]Booking, error) {
	if s == nil || s.repo == nil {
		return nil, apperr.Internal(errors.New("service not initialized"))
	}
	switch role {
	case RoleOwner:
		bookings, err := s.repo.ListByOwner(ctx, userID)
		if err != nil {
			return nil, apperr.Internal(err)
		}
		return bookings, nil
	case RoleRenter, "":
		bookings, err := s.repo.ListByRenter(ctx, userID)
		if err != nil {
			return nil, apperr.Internal(err)
		}
		return bookings, nil
	default:
		return nil, apperr.Validation("role must be renter or owner")
	}
}
