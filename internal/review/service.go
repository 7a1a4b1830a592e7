package review

import (
	"context"
	"errors"
	"strings"

	"github.com/VehicleShare/VehicleShare/internal/common/apperr"
	"github.com/VehicleShare/VehicleShare/internal/vehicle"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service holds the review use cases.
type Service struct {
	repo     *Repo
	vehicles *vehicle.Repo
}

func NewService(repo *Repo, vehicles *vehicle.Repo) *Service {
	return &Service{repo: repo, vehicles: vehicles}
}

type CreateInput struct {
	Rating    int     `json:"rating"`
	Comment   string  `json:"comment"`
	BookingID *string `json:"booking_id,omitempty"`
}

// Create validates and inserts a review against a visible vehicle. Owners
// cannot review their own listings.
func (s *Service) Create(ctx context.Context, reviewerID, vehicleID string, in CreateInput) (*Review, error) {
	if s == nil || s.repo == nil || s.vehicles == nil {
		return nil, apperr.Internal(errors.New("service not initialized"))
	}
	if strings.TrimSpace(vehicleID) == "" {
		return nil, apperr.Validation("vehicle id required")
	}
	if !ValidRating(in.Rating) {
		return nil, apperr.Validation("rating must be between 1 and 5")
	}

	v, err := s.vehicles.FindByID(ctx, vehicleID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("vehicle")
	}
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if !v.VisibleTo(reviewerID) {
		return nil, apperr.NotFound("vehicle")
	}
	if v.OwnerID == reviewerID {
		return nil, apperr.PermissionDenied()
	}

	rv := &Review{
		ID:         uuid.NewString(),
		VehicleID:  v.ID,
		ReviewerID: reviewerID,
		BookingID:  in.BookingID,
		Rating:     in.Rating,
		Comment:    strings.TrimSpace(in.Comment),
	}
	if err := s.repo.Create(ctx, rv); err != nil {
		return nil, apperr.Internal(err)
	}
	return rv, nil
}

// VehicleReviews is the public review page for one vehicle.
type VehicleReviews struct {
	Reviews       []Review `json:"reviews"`
	AverageRating float64  `json:"average_rating"`
	Count         int64    `json:"count"`
}

// ListByVehicle returns a visible vehicle's reviews with the aggregate rating.
func (s *Service) ListByVehicle(ctx context.Context, actorID, vehicleID string) (*VehicleReviews, error) {
	if s == nil || s.repo == nil || s.vehicles == nil {
		return nil, apperr.Internal(errors.New("service not initialized"))
	}
	v, err := s.vehicles.FindByID(ctx, vehicleID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("vehicle")
	}
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if !v.VisibleTo(actorID) {
		return nil, apperr.NotFound("vehicle")
	}

	reviews, err := s.repo.ListByVehicle(ctx, v.ID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	avg, count, err := s.repo.AverageRating(ctx, v.ID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return &VehicleReviews{Reviews: reviews, AverageRating: avg, Count: count}, nil
}
