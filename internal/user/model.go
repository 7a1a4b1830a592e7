package user

import "time"

// User holds the account credentials for the users table.
type User struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	Email        string    `gorm:"uniqueIndex;size:128;not null" json:"email"`
	PasswordHash string    `gorm:"size:128;not null" json:"-"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// Profile is the public face of an account. It shares its id with the User it
// mirrors and is created in the same transaction at sign-up. The application
// never deletes profiles; account removal is an operational concern.
type Profile struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	DisplayName string    `gorm:"size:64;not null" json:"display_name"`
	CompanyName string    `gorm:"size:128" json:"company_name,omitempty"`
	IsBusiness  bool      `gorm:"not null;default:false" json:"is_business"`
	Phone       string    `gorm:"size:32" json:"phone,omitempty"`
	Bio         string    `gorm:"size:1024" json:"bio,omitempty"`
	AvatarURL   string    `gorm:"size:512" json:"avatar_url,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Profile) TableName() string { return "profiles" }
