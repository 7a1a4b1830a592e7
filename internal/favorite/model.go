package favorite

import "time"

// Favorite marks a vehicle a user wants to find again. One row per user and
// vehicle, enforced by a unique index.
type Favorite struct {
	ID        string `gorm:"primaryKey;size:36" json:"id"`
	UserID    string `gorm:"size:36;not null;uniqueIndex:idx_fav_user_vehicle" json:"user_id"`
	VehicleID string `gorm:"size:36;not null;uniqueIndex:idx_fav_user_vehicle" json:"vehicle_id"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
