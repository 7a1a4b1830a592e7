package booking

import "time"

// Status is the booking status enum (persisted as string).
type Status string

const (
	StatusPending   Status = "pending"   // created, waiting for the owner
	StatusConfirmed Status = "confirmed" // owner approved
	StatusCompleted Status = "completed" // finished, terminal
	StatusCancelled Status = "cancelled" // rejected or withdrawn, terminal
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Booking is the bookings table GORM model. TotalPrice is the yen amount
// computed at creation from the vehicle's rates and the date span.
type Booking struct {
	ID        string `gorm:"primaryKey;size:36" json:"id"`
	VehicleID string `gorm:"index;size:36;not null" json:"vehicle_id"`
	RenterID  string `gorm:"index;size:36;not null" json:"renter_id"`

	StartDate  time.Time `gorm:"not null" json:"start_date"`
	EndDate    time.Time `gorm:"not null" json:"end_date"`
	TotalPrice int64     `gorm:"not null" json:"total_price"`
	Status     Status    `gorm:"type:varchar(16);index;not null" json:"status"`
	Notes      string    `gorm:"size:1024" json:"notes,omitempty"`

	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	ConfirmedAt *time.Time `json:"confirmed_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
}
