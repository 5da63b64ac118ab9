package model

import (
	"time"

	"github.com/google/uuid"
)

// User is the authenticated principal. The auth core owns the RefreshToken
// field; everything else is read-only for it.
//
// Identity-cache snapshots marshal through the JSON tags, so PasswordHash
// and RefreshToken never enter the cache: a cache-hit principal carries
// both fields empty, and credential checks always read the user store.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Username     string    `gorm:"size:64" json:"username"`
	Email        string    `gorm:"uniqueIndex;size:255" json:"email"`
	PasswordHash string    `json:"-"`
	Confirmed    bool      `json:"confirmed"`
	RefreshToken *string   `json:"-"`
	Avatar       string    `json:"avatar"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Contact struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerID          uuid.UUID `gorm:"type:uuid;index" json:"-"`
	FirstName        string    `gorm:"size:64" json:"first_name"`
	LastName         string    `gorm:"size:64" json:"last_name"`
	Email            string    `gorm:"size:255" json:"email"`
	PhoneNumbers     string    `gorm:"size:255" json:"phone_numbers"`
	BirthdayDate     time.Time `json:"birthday_date"`
	OtherDescription string    `json:"other_description"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
	AccessTTL    time.Duration
	RefreshTTL   time.Duration
}
