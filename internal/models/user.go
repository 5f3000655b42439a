package models

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrMissingExternalID = errors.New("external id is required")
	ErrInvalidEmail      = errors.New("invalid email format")

	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// User is the local record of an identity provider account. It is created
// on the first verified request and never updated afterwards.
type User struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ExternalID string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"external_id"`
	Email      string    `gorm:"type:varchar(255)" json:"email"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null" json:"updated_at"`

	Transactions []Transaction `gorm:"foreignKey:UserID" json:"-"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	if u.UpdatedAt.IsZero() {
		u.UpdatedAt = u.CreatedAt
	}
	return u.Validate()
}

// Validate accepts an empty email because providers may omit the claim
func (u *User) Validate() error {
	if strings.TrimSpace(u.ExternalID) == "" {
		return ErrMissingExternalID
	}
	if u.Email != "" && !IsValidEmail(u.Email) {
		return ErrInvalidEmail
	}
	return nil
}

func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}
