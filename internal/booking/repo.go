package booking

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

func (r *Repo) Create(ctx context.Context, b *Booking) error {
	db := r.withCtx(ctx)
	if db == nil {
		return fmt.Errorf("repo db is nil")
	}
	return db.Create(b).Error
}

func (r *Repo) GetByID(ctx context.Context, id string) (*Booking, error) {
	db := r.withCtx(ctx)
	if db == nil {
		return nil, fmt.Errorf("repo db is nil")
	}
	var b Booking
	if err := db.Where("id = ?", id).First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

// ErrStaleStatus means the row's status changed between read and write; the
// caller raced another actor and must re-read before retrying.
var ErrStaleStatus = fmt.Errorf("booking status changed concurrently")

// UpdateStatus writes the transitioned booking guarded by a compare-and-swap
// on the previous status, so two actors racing on the same row cannot both
// win.
func (r *Repo) UpdateStatus(ctx context.Context, b *Booking, from Status) error {
	db := r.withCtx(ctx)
	if db == nil {
		return fmt.Errorf("repo db is nil")
	}
	res := db.Model(&Booking{}).
		Where("id = ? AND status = ?", b.ID, from).
		Updates(map[string]interface{}{
			"status":       b.Status,
			"confirmed_at": b.ConfirmedAt,
			"completed_at": b.CompletedAt,
			"cancelled_at": b.CancelledAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStaleStatus
	}
	return nil
}

// ListByRenter returns the renter's side of the ledger, newest first.
func (r *Repo) ListByRenter(ctx context.Context, renterID string) ([]Booking, error) {
	db := r.withCtx(ctx)
	if db == nil {
		return nil, fmt.Errorf("repo db is nil")
	}
	var bookings []Booking
	err := db.Where("renter_id = ?", renterID).Order("created_at DESC").Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

// ListByOwner returns bookings against any vehicle owned by ownerID.
func (r *Repo) ListByOwner(ctx context.Context, ownerID string) ([]Booking, error) {
	db := r.withCtx(ctx)
	if db == nil {
		return nil, fmt.Errorf("repo db is nil")
	}
	var bookings []Booking
	err := db.
		Joins("JOIN vehicles ON vehicles.id = bookings.vehicle_id").
		Where("vehicles.owner_id = ?", ownerID).
		Order("bookings.created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}
