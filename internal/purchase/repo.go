package purchase

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

func (r *Repo) Create(ctx context.Context, pr *PurchaseRequest) error {
	db := r.withCtx(ctx)
	if db == nil {
		return fmt.Errorf("repo db is nil")
	}
	return db.Create(pr).Error
}

func (r *Repo) GetByID(ctx context.Context, id string) (*PurchaseRequest, error) {
	db := r.withCtx(ctx)
	if db == nil {
		return nil, fmt.Errorf("repo db is nil")
	}
	var pr PurchaseRequest
	if err := db.Where("id = ?", id).First(&pr).Error; err != nil {
		return nil, err
	}
	return &pr, nil
}

// ErrStaleStatus means the row's status changed between read and write; the
// caller raced another response and must re-read before retrying.
var ErrStaleStatus = fmt.Errorf("purchase request status changed concurrently")

// Respond writes the seller's decision guarded by a compare-and-swap on the
// open status, so two responses racing on the same row cannot both win.
func (r *Repo) Respond(ctx context.Context, pr *PurchaseRequest) error {
	db := r.withCtx(ctx)
	if db == nil {
		return fmt.Errorf("repo db is nil")
	}
	res := db.Model(&PurchaseRequest{}).
		Where("id = ? AND status = ?", pr.ID, StatusRequested).
		Updates(map[string]interface{}{
			"status":           pr.Status,
			"response_message": pr.ResponseMessage,
			"responded_at":     pr.RespondedAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStaleStatus
	}
	return nil
}

// ListByBuyer returns the buyer's side of the ledger, newest first.
func (r *Repo) ListByBuyer(ctx context.Context, buyerID string) ([]PurchaseRequest, error) {
	db := r.withCtx(ctx)
	if db == nil {
		return nil, fmt.Errorf("repo db is nil")
	}
	var prs []PurchaseRequest
	err := db.Where("buyer_id = ?", buyerID).Order("created_at DESC").Find(&prs).Error
	if err != nil {
		return nil, err
	}
	return prs, nil
}

// ListBySeller returns requests against any vehicle owned by ownerID.
func (r *Repo) ListBySeller(ctx context.Context, ownerID string) ([]PurchaseRequest, error) {
	db := r.withCtx(ctx)
	if db == nil {
		return nil, fmt.Errorf("repo db is nil")
	}
	var prs []PurchaseRequest
	err := db.
		Joins("JOIN vehicles ON vehicles.id = purchase_requests.vehicle_id").
		Where("vehicles.owner_id = ?", ownerID).
		Order("purchase_requests.created_at DESC").
		Find(&prs).Error
	if err != nil {
		return nil, err
	}
	return prs, nil
}
