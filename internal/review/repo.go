package review

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

func (r *Repo) Create(ctx context.Context, rv *Review) error {
	db := r.withCtx(ctx)
	if db == nil {
		return fmt.Errorf("repo db is nil")
	}
	return db.Create(rv).Error
}

// ListByVehicle returns a vehicle's reviews, newest first.
func (r *Repo) ListByVehicle(ctx context.Context, vehicleID string) ([]Review, error) {
	db := r.withCtx(ctx)
	if db == nil {
		return nil, fmt.Errorf("repo db is nil")
	}
	var reviews []Review
	err := db.Where("vehicle_id = ?", vehicleID).Order("created_at DESC").Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

// AverageRating returns the mean rating and review count for a vehicle.
// A vehicle with no reviews averages zero.
func (r *Repo) AverageRating(ctx context.Context, vehicleID string) (float64, int64, error) {
	db := r.withCtx(ctx)
	if db == nil {
		return 0, 0, fmt.Errorf("repo db is nil")
	}
	var agg struct {
		Avg   float64
		Count int64
	}
	err := db.Model(&Review{}).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS count").
		Where("vehicle_id = ?", vehicleID).
		Scan(&agg).Error
	if err != nil {
		return 0, 0, err
	}
	return agg.Avg, agg.Count, nil
}
