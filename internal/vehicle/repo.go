package vehicle

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

type Repo struct {
	db *gorm.DB
}

func NewRepo(db *gorm.DB) *Repo {
	return &Repo{db: db}
}

func (r *Repo) withCtx(ctx context.Context) *gorm.DB {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.WithContext(ctx)
}

func (r *Repo) Create(ctx context.Context, v *Vehicle) error {
	db := r.withCtx(ctx)
	if db == nil {
		return fmt.Errorf("repo db is nil")
	}
	return db.Create(v).Error
}

func (r *Repo) Update(ctx context.Context, v *Vehicle) error {
	db := r.withCtx(ctx)
	if db == nil {
		return fmt.Errorf("repo db is nil")
	}
	return db.Save(v).Error
}

func (r *Repo) Delete(ctx context.Context, id string) error {
	db := r.withCtx(ctx)
	if db == nil {
		return fmt.Errorf("repo db is nil")
	}
	return db.Where("id = ?", id).Delete(&Vehicle{}).Error
}

func (r *Repo) FindByID(ctx context.Context, id string) (*Vehicle, error) {
	db := r.withCtx(ctx)
	if db == nil {
		return nil, fmt.Errorf("repo db is nil")
	}
	var v Vehicle
	if err := db.Where("id = ?", id).First(&v).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

// SearchFilter narrows the public listing search.
type SearchFilter struct {
	Category     Category
	ListingTypes []ListingType
	Offset       int
	Limit        int
}

// Search returns public listings: is_published AND is_available, newest first,
// plus the requested category/listing-type filters.
func (r *Repo) Search(ctx context.Context, f SearchFilter) ([]Vehicle, int64, error) {
	db := r.withCtx(ctx)
	if db == nil {
		return nil, 0, fmt.Errorf("repo db is nil")
	}
	if f.Limit <= 0 {
		f.Limit = 20
	}
	if f.Offset < 0 {
		f.Offset = 0
	}

	q := db.Model(&Vehicle{}).
		Where("is_published = ?", true).
		Where("is_available = ?", true)
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if len(f.ListingTypes) > 0 {
		q = q.Where("listing_type IN ?", f.ListingTypes)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var vehicles []Vehicle
	if err := q.Order("created_at DESC").Offset(f.Offset).Limit(f.Limit).Find(&vehicles).Error; err != nil {
		return nil, 0, err
	}
	return vehicles, total, nil
}

// ListByOwner is the owner's management view: every listing regardless of the
// published/available flags.
func (r *Repo) ListByOwner(ctx context.Context, ownerID string) ([]Vehicle, error) {
	db := r.withCtx(ctx)
	if db == nil {
		return nil, fmt.Errorf("repo db is nil")
	}
	var vehicles []Vehicle
	if err := db.Where("owner_id = ?", ownerID).Order("created_at DESC").Find(&vehicles).Error; err != nil {
		return nil, err
	}
	return vehicles, nil
}

// OwnerID resolves just the owner of a vehicle; callers in other packages use
// it for authorization checks without loading the whole row.
func (r *Repo) OwnerID(ctx context.Context, vehicleID string) (string, error) {
	v, err := r.FindByID(ctx, vehicleID)
	if err != nil {
		return "", err
	}
	return v.OwnerID, nil
}
