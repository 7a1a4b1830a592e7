package review

import "time"

// Review is the reviews table GORM model. Reviews are insert-only; there is
// no edit or delete flow.
type Review struct {
	ID         string  `gorm:"primaryKey;size:36" json:"id"`
	VehicleID  string  `gorm:"index;size:36;not null" json:"vehicle_id"`
	ReviewerID string  `gorm:"index;size:36;not null" json:"reviewer_id"`
	BookingID  *string `gorm:"size:36" json:"booking_id,omitempty"`

	Rating  int    `gorm:"not null" json:"rating"`
	Comment string `gorm:"size:2048" json:"comment,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// ValidRating reports whether r is on the one-to-five scale.
func ValidRating(r int) bool {
	return r >= 1 && r <= 5
}
