package purchase

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

// Store is the purchase request persistence the service needs.
type Store interface {
	Create(ctx context.Context, pr *PurchaseRequest) error
	GetByID(ctx context.Context, id string) (*PurchaseRequest, error)
	Respond(ctx context.Context, pr *PurchaseRequest) error
	ListByBuyer(ctx context.Context, buyerID string) ([]PurchaseRequest, error)
	ListBySeller(ctx context.Context, ownerID string) ([]PurchaseRequest, error)
}

// VehicleStore resolves vehicles and their owners.
type VehicleStore interface {
	FindByID(ctx context.Context, id string) (*vehicle.Vehicle, error)
	OwnerID(ctx context.Context, vehicleID string) (string, error)
}

// Service holds the purchase request use cases.
type Service struct {
	repo     Store
	vehicles VehicleStore
}

func NewService(repo Store, vehicles VehicleStore) *Service {
	return &Service{repo: repo, vehicles: vehicles}
}

type CreateInput struct {
	VehicleID  string `json:"vehicle_id"`
	OfferPrice *int64 `json:"offer_price,omitempty"`
	Message    string `json:"message"`
}

// Create validates and inserts an open purchase request. An absent offer
// price defaults to the listing's asking price; a named one must be positive.
func (s *Service) Create(ctx context.Context, buyerID string, in CreateInput) (*PurchaseRequest, error) {
	if s == nil || s.repo == nil || s.vehicles == nil {
		return nil, apperr.Internal(errors.New("service not initialized"))
	}
	if strings.TrimSpace(in.VehicleID) == "" {
		return nil, apperr.Validation("vehicle_id required")
	}
	if in.OfferPrice != nil && *in.OfferPrice <= 0 {
		return nil, apperr.Validation("offer_price must be positive")
	}

	v, err := s.vehicles.FindByID(ctx, in.VehicleID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("vehicle")
	}
	if err != nil {
		return nil, apperr.Internal(err)
	}

	if !v.IsPublished {
		return nil, apperr.NotFound("vehicle")
	}
	// a listing accepts offers when it is sale-type or carries an asking
	// price; availability only gates bookings, not offers
	if v.ListingType != vehicle.ListingSale && (v.SalePrice == nil || *v.SalePrice <= 0) {
		return nil, apperr.Validation("vehicle is not offered for sale")
	}
	if v.OwnerID == buyerID {
		// owners cannot bid on their own listings
		return nil, apperr.PermissionDenied()
	}

	offer := int64(0)
	if in.OfferPrice != nil {
		offer = *in.OfferPrice
	} else if v.SalePrice != nil {
		offer = *v.SalePrice
	}
	if offer <= 0 {
		return nil, apperr.Validation("offer_price required for an unpriced listing")
	}

	pr := &PurchaseRequest{
		ID:         uuid.NewString(),
		VehicleID:  v.ID,
		BuyerID:    buyerID,
		OfferPrice: offer,
		Message:    strings.TrimSpace(in.Message),
		Status:     StatusRequested,
	}
	if err := s.repo.Create(ctx, pr); err != nil {
		return nil, apperr.Internal(err)
	}
	return pr, nil
}

// Respond applies the seller's decision. The row is re-read and the write is
// compare-and-swapped on the open status, so a second response loses cleanly.
func (s *Service) Respond(ctx context.Context, actorID, requestID string, action Action, responseMessage string, now time.Time) (*PurchaseRequest, error) {
	if s == nil || s.repo == nil || s.vehicles == nil {
		return nil, apperr.Internal(errors.New("service not initialized"))
	}
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return nil, apperr.Validation("purchase request id required")
	}
	if !action.Valid() {
		return nil, apperr.Validation("unknown action")
	}

	pr, err := s.repo.GetByID(ctx, requestID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("purchase request")
	}
	if err != nil {
		return nil, apperr.Internal(err)
	}

	ownerID, err := s.vehicles.OwnerID(ctx, pr.VehicleID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("purchase request")
	}
	if err != nil {
		return nil, apperr.Internal(err)
	}

	if err := Authorize(actorID, pr, ownerID, action); err != nil {
		return nil, err
	}

	pr.Status = action.Target()
	pr.ResponseMessage = strings.TrimSpace(responseMessage)
	pr.RespondedAt = &now
	if err := s.repo.Respond(ctx, pr); err != nil {
		if errors.Is(err, ErrStaleStatus) {
			return nil, apperr.Conflict("purchase request was already answered, reload and retry")
		}
		return nil, apperr.Internal(err)
	}
	return pr, nil
}

func (s *Service) Get(ctx context.Context, actorID, requestID string) (*PurchaseRequest, error) {
	if s == nil || s.repo == nil || s.vehicles == nil {
		return nil, apperr.Internal(errors.New("service not initialized"))
	}
	pr, err := s.repo.GetByID(ctx, requestID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("purchase request")
	}
	if err != nil {
		return nil, apperr.Internal(err)
	}

	ownerID, err := s.vehicles.OwnerID(ctx, pr.VehicleID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Internal(err)
	}
	// only the two parties may read a request; everyone else gets a 404
	if actorID != pr.BuyerID && actorID != ownerID {
		return nil, apperr.NotFound("purchase request")
	}
	return pr, nil
}

// Role selects which side of the purchase ledger to list.
type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleSeller Role = "seller"
)

func (s *Service) List(ctx context.Context, userID string, role Role) ([]PurchaseRequest, error) {
	if s == nil || s.repo == nil {
		return nil, apperr.Internal(errors.New("service not initialized"))
	}
	switch role {
	case RoleSeller:
		prs, err := s.repo.ListBySeller(ctx, userID)
		if err != nil {
			return nil, apperr.Internal(err)
		}
		return prs, nil
	case RoleBuyer, "":
		prs, err := s.repo.ListByBuyer(ctx, userID)
		if err != nil {
			return nil, apperr.Internal(err)
		}
		return prs, nil
	default:
		return nil, apperr.Validation("role must be buyer or seller")
	}
}
