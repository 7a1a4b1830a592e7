package favorite

import (
	"context"
	"errors"
	"strings"

	"github.com/VehicleShare/VehicleShare/internal/common/apperr"
	"github.com/VehicleShare/VehicleShare/internal/vehicle"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service holds the favorite use cases.
type Service struct {
	repo     *Repo
	vehicles *vehicle.Repo
}

func NewService(repo *Repo, vehicles *vehicle.Repo) *Service {
	return &Service{repo: repo, vehicles: vehicles}
}

// Add favorites a visible vehicle for the user. Favoriting twice is idempotent.
func (s *Service) Add(ctx context.Context, userID, vehicleID string) error {
	if s == nil || s.repo == nil || s.vehicles == nil {
		return apperr.Internal(errors.New("service not initialized"))
	}
	if strings.TrimSpace(vehicleID) == "" {
		return apperr.Validation("vehicle id required")
	}

	v, err := s.vehicles.FindByID(ctx, vehicleID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound("vehicle")
	}
	if err != nil {
		return apperr.Internal(err)
	}
	if !v.VisibleTo(userID) {
		return apperr.NotFound("vehicle")
	}

	f := &Favorite{ID: uuid.NewString(), UserID: userID, VehicleID: v.ID}
	if err := s.repo.Add(ctx, f); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

// Remove unfavorites the vehicle. Removing an absent favorite succeeds.
func (s *Service) Remove(ctx context.Context, userID, vehicleID string) error {
	if s == nil || s.repo == nil {
		return apperr.Internal(errors.New("service not initialized"))
	}
	if strings.TrimSpace(vehicleID) == "" {
		return apperr.Validation("vehicle id required")
	}
	if err := s.repo.Remove(ctx, userID, vehicleID); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

// ListVehicles returns the user's favorited vehicles, still-published only.
func (s *Service) ListVehicles(ctx context.Context, userID string) ([]vehicle.Vehicle, error) {
	if s == nil || s.repo == nil {
		return nil, apperr.Internal(errors.New("service not initialized"))
	}
	vehicles, err := s.repo.ListVehicles(ctx, userID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return vehicles, nil
}
