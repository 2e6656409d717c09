package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Account is the single credential record per user. Email uniqueness is a
// workflow rule enforced only among verified rows, so the column carries a
// plain index: several unverified registrations may share one email.
type Account struct {
	ID           string `gorm:"primaryKey;size:36" json:"id"`
	Name         string `gorm:"size:30;not null" json:"name"`
	Email        string `gorm:"index;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	IsVerified   bool   `gorm:"not null;default:false" json:"is_verified"`

	// Pending verification/reset state: both set or both null.
	Otp               *string `gorm:"size:6" json:"-"`
	VerificationToken *string `json:"-"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
