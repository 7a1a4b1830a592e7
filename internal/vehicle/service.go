package vehicle

import (
	"context"
	"errors"
	"strings"

	"github.com/VehicleShare/VehicleShare/internal/common/apperr"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service holds the listing use cases.
type Service struct {
	repo *Repo
}

func NewService(repo *Repo) *Service {
	return &Service{repo: repo}
}

// ListingInput is the create/update payload for a vehicle listing.
type ListingInput struct {
	Category    Category    `json:"category"`
	ListingType ListingType `json:"listing_type"`
	Title       string      `json:"title"`
	Description string      `json:"description"`

	Manufacturer string `json:"manufacturer"`
	Model        string `json:"model"`
	Year         *int   `json:"year"`
	Capacity     *int   `json:"capacity"`

	PricePerDay  *int64 `json:"price_per_day"`
	PricePerHour *int64 `json:"price_per_hour"`
	SalePrice    *int64 `json:"sale_price"`

	Location  string   `json:"location"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`

	Specifications map[string]string `json:"specifications"`
	Images         []string          `json:"images"`

	IsAvailable *bool `json:"is_available"`
	IsPublished *bool `json:"is_published"`
}

func (in *ListingInput) validate() error {
	if !in.Category.Valid() {
		return apperr.Validation("invalid category")
	}
	if !in.ListingType.Valid() {
		return apperr.Validation("invalid listing_type")
	}
	if strings.TrimSpace(in.Title) == "" {
		return apperr.Validation("title required")
	}
	if strings.TrimSpace(in.Description) == "" {
		return apperr.Validation("description required")
	}
	if strings.TrimSpace(in.Location) == "" {
		return apperr.Validation("location required")
	}
	for _, price := range []*int64{in.PricePerDay, in.PricePerHour, in.SalePrice} {
		if price != nil && *price < 0 {
			return apperr.Validation("prices must not be negative")
		}
	}
	if in.Year != nil && (*in.Year < 1900 || *in.Year > 2100) {
		return apperr.Validation("invalid year")
	}
	if in.Capacity != nil && *in.Capacity < 0 {
		return apperr.Validation("capacity must not be negative")
	}
	return nil
}

func (in *ListingInput) apply(v *Vehicle) {
	v.Category = in.Category
	v.ListingType = in.ListingType
	v.Title = strings.TrimSpace(in.Title)
	v.Description = strings.TrimSpace(in.Description)
	v.Manufacturer = strings.TrimSpace(in.Manufacturer)
	v.Model = strings.TrimSpace(in.Model)
	v.Year = in.Year
	v.Capacity = in.Capacity
	v.PricePerDay = in.PricePerDay
	v.PricePerHour = in.PricePerHour
	v.SalePrice = in.SalePrice
	v.Location = strings.TrimSpace(in.Location)
	v.Latitude = in.Latitude
	v.Longitude = in.Longitude
	v.Specifications = in.Specifications
	v.Images = in.Images
	if v.Images == nil {
		v.Images = []string{}
	}
	if in.IsAvailable != nil {
		v.IsAvailable = *in.IsAvailable
	}
	if in.IsPublished != nil {
		v.IsPublished = *in.IsPublished
	}
}

func (s *Service) Create(ctx context.Context, ownerID string, in ListingInput) (*Vehicle, error) {
	if s == nil || s.repo == nil {
		return nil, apperr.Internal(errors.New("service not initialized"))
	}
	if err := in.validate(); err != nil {
		return nil, err
	}

	v := &Vehicle{
		ID:          uuid.NewString(),
		OwnerID:     ownerID,
		IsAvailable: true,
		IsPublished: true,
	}
	in.apply(v)

	if err := s.repo.Create(ctx, v); err != nil {
		return nil, apperr.Internal(err)
	}
	return v, nil
}

// Get returns a vehicle for the public detail page. An unpublished listing is
// a 404 to anyone but its owner, so its existence never leaks.
func (s *Service) Get(ctx context.Context, actorID, id string) (*Vehicle, error) {
	if s == nil || s.repo == nil {
		return nil, apperr.Internal(errors.New("service not initialized"))
	}
	v, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("vehicle")
	}
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if !v.VisibleTo(actorID) {
		return nil, apperr.NotFound("vehicle")
	}
	return v, nil
}

// loadOwned fetches a vehicle for an owner mutation. Both "no such row" and
// "not your row" come back as the same NotFound.
func (s *Service) loadOwned(ctx context.Context, ownerID, id string) (*Vehicle, error) {
	v, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("vehicle")
	}
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if v.OwnerID != ownerID {
		return nil, apperr.NotFound("vehicle")
	}
	return v, nil
}

func (s *Service) Update(ctx context.Context, ownerID, id string, in ListingInput) (*Vehicle, error) {
	if s == nil || s.repo == nil {
		return nil, apperr.Internal(errors.New("service not initialized"))
	}
	if err := in.validate(); err != nil {
		return nil, err
	}

	v, err := s.loadOwned(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	in.apply(v)

	if err := s.repo.Update(ctx, v); err != nil {
		return nil, apperr.Internal(err)
	}
	return v, nil
}

func (s *Service) Delete(ctx context.Context, ownerID, id string) error {
	if s == nil || s.repo == nil {
		return apperr.Internal(errors.New("service not initialized"))
	}
	if _, err := s.loadOwned(ctx, ownerID, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

// ParseSearchFilter builds a SearchFilter from raw query values. Unknown
// categories or listing types are rejected rather than silently ignored.
func ParseSearchFilter(category, types string, page, pageSize int) (SearchFilter, error) {
	f := SearchFilter{}

	category = strings.TrimSpace(category)
	if category != "" && category != "all" {
		c := Category(category)
		if !c.Valid() {
			return f, apperr.Validation("invalid category")
		}
		f.Category = c
	}

	if types = strings.TrimSpace(types); types != "" {
		for _, raw := range strings.Split(types, ",") {
			raw = strings.TrimSpace(raw)
			if raw == "" {
				continue
			}
			lt := ListingType(raw)
			if !lt.Valid() {
				return f, apperr.Validation("invalid listing type: " + raw)
			}
			f.ListingTypes = append(f.ListingTypes, lt)
		}
	}

	if page < 1 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 200 {
		pageSize = 20
	}
	f.Offset = (page - 1) * pageSize
	f.Limit = pageSize
	return f, nil
}

func (s *Service) Search(ctx context.Context, f SearchFilter) ([]Vehicle, int64, error) {
	if s == nil || s.repo == nil {
		return nil, 0, apperr.Internal(errors.New("service not initialized"))
	}
	vehicles, total, err := s.repo.Search(ctx, f)
	if err != nil {
		return nil, 0, apperr.Internal(err)
	}
	return vehicles, total, nil
}

func (s *Service) ListByOwner(ctx context.Context, ownerID string) ([]Vehicle, error) {
	if s == nil || s.repo == nil {
		return nil, apperr.Internal(errors.New("service not initialized"))
	}
	vehicles, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return vehicles, nil
}
