package purchase

import "time"

// Status is the purchase request status enum (persisted as string).
type Status string

const (
	StatusRequested Status = "requested" // submitted, waiting for the seller
	StatusAccepted  Status = "accepted"  // seller agreed to sell
	StatusDeclined  Status = "declined"  // seller refused, terminal
	StatusCompleted Status = "completed" // sale settled off-platform, terminal
)

func (s Status) Valid() bool {
	switch s {
	case StatusRequested, StatusAccepted, StatusDeclined, StatusCompleted:
		return true
	}
	return false
}

// PurchaseRequest is the purchase_requests table GORM model. OfferPrice is
// the yen amount the buyer offers; it defaults to the listing's sale price
// when the buyer does not name one.
type PurchaseRequest struct {
	ID        string `gorm:"primaryKey;size:36" json:"id"`
	VehicleID string `gorm:"index;size:36;not null" json:"vehicle_id"`
	BuyerID   string `gorm:"index;size:36;not null" json:"buyer_id"`

	OfferPrice int64  `gorm:"not null" json:"offer_price"`
	Message    string `gorm:"size:1024" json:"message,omitempty"`
	Status     Status `gorm:"type:varchar(16);index;not null" json:"status"`

	// ResponseMessage is the seller's note attached when responding.
	ResponseMessage string     `gorm:"size:1024" json:"response_message,omitempty"`
	RespondedAt     *time.Time `json:"responded_at,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
