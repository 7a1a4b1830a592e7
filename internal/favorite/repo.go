package favorite

import (
	"context"
	"fmt"

	"github.com/VehicleShare/VehicleShare/internal/vehicle"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
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

// Add inserts a favorite. A repeat add is a no-op thanks to the unique index.
func (r *Repo) Add(ctx context.Context, f *Favorite) error {
	db := r.withCtx(ctx)
	if db == nil {
		return fmt.Errorf("repo db is nil")
	}
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(f).Error
}

// Remove deletes the favorite if present. Removing an absent favorite is not
// an error.
func (r *Repo) Remove(ctx context.Context, userID, vehicleID string) error {
	db := r.withCtx(ctx)
	if db == nil {
		return fmt.Errorf("repo db is nil")
	}
	return db.Where("user_id = ? AND vehicle_id = ?", userID, vehicleID).Delete(&Favorite{}).Error
}

// ListVehicles returns the published vehicles the user has favorited, most
// recently saved first. Unpublished listings drop out of the list rather
// than deleting the favorite row.
func (r *Repo) ListVehicles(ctx context.Context, userID string) ([]vehicle.Vehicle, error) {
	db := r.withCtx(ctx)
	if db == nil {
		return nil, fmt.Errorf("repo db is nil")
	}
	var vehicles []vehicle.Vehicle
	err := db.Model(&vehicle.Vehicle{}).
		Joins("JOIN favorites ON favorites.vehicle_id = vehicles.id").
		Where("favorites.user_id = ? AND vehicles.is_published = ?", userID, true).
		Order("favorites.created_at DESC").
		Find(&vehicles).Error
	if err != nil {
		return nil, err
	}
	return vehicles, nil
}
