package vehicle

import "time"

// Category is the vehicle category enum (persisted as string).
type Category string

const (
	CategoryBoat         Category = "boat"
	CategoryCar          Category = "car"
	CategoryPlane        Category = "plane"
	CategoryMotorcycle   Category = "motorcycle"
	CategoryConstruction Category = "construction"
	CategoryBicycle      Category = "bicycle"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryBoat, CategoryCar, CategoryPlane, CategoryMotorcycle, CategoryConstruction, CategoryBicycle:
		return true
	}
	return false
}

// ListingType says how a vehicle is offered. It decides which pricing fields
// apply and which request flows are open.
type ListingType string

const (
	ListingRent  ListingType = "rent"
	ListingShare ListingType = "share"
	ListingSale  ListingType = "sale"
)

func (t ListingType) Valid() bool {
	switch t {
	case ListingRent, ListingShare, ListingSale:
		return true
	}
	return false
}

// Rentable reports whether the listing accepts bookings.
func (t ListingType) Rentable() bool {
	return t == ListingRent || t == ListingShare
}

// Vehicle is the vehicles table GORM model. Prices are yen amounts.
type Vehicle struct {
	ID          string      `gorm:"primaryKey;size:36" json:"id"`
	OwnerID     string      `gorm:"index;size:36;not null" json:"owner_id"`
	Category    Category    `gorm:"type:varchar(16);index;not null" json:"category"`
	ListingType ListingType `gorm:"type:varchar(8);index;not null" json:"listing_type"`
	Title       string      `gorm:"size:128;not null" json:"title"`
	Description string      `gorm:"type:text;not null" json:"description"`

	Manufacturer string `gorm:"size:64" json:"manufacturer,omitempty"`
	Model        string `gorm:"size:64" json:"model,omitempty"`
	Year         *int   `json:"year,omitempty"`
	Capacity     *int   `json:"capacity,omitempty"`

	PricePerDay  *int64 `json:"price_per_day,omitempty"`
	PricePerHour *int64 `json:"price_per_hour,omitempty"`
	SalePrice    *int64 `json:"sale_price,omitempty"`

	Location  string   `gorm:"size:255;not null" json:"location"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`

	Specifications map[string]string `gorm:"serializer:json" json:"specifications,omitempty"`
	Images         []string          `gorm:"serializer:json" json:"images"`

	// is_available: currently bookable. is_published: visible in public search.
	// Both owner-controlled, independent toggles.
	IsAvailable bool `gorm:"not null;default:true" json:"is_available"`
	IsPublished bool `gorm:"not null;default:true" json:"is_published"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// VisibleTo reports whether the vehicle may be shown to actorID outside the
// owner's management views: owners always see their own listings, everyone
// else only published ones.
func (v *Vehicle) VisibleTo(actorID string) bool {
	if v == nil {
		return false
	}
	if actorID != "" && actorID == v.OwnerID {
		return true
	}
	return v.IsPublished
}
