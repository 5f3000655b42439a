package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoryType tells whether a category holds money coming in or going out
type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "INCOME"
	CategoryTypeExpense CategoryType = "EXPENSE"

	// DefaultCategoryIcon is shown when a category has no icon of its own
	DefaultCategoryIcon = "📦"

	// MinSubCategoryNameLength is counted in runes, not bytes
	MinSubCategoryNameLength = 2
)

var (
	ErrInvalidCategoryType = errors.New("invalid category type")
	ErrCategoryNameEmpty   = errors.New("category name is required")
	ErrSubCategoryName     = errors.New("sub-category name must be at least 2 characters")
)

// IsValid reports whether t is INCOME or EXPENSE
func (t CategoryType) IsValid() bool {
	return t == CategoryTypeIncome || t == CategoryTypeExpense
}

// Category is a node of the category hierarchy. A nil UserID marks a global
// category shared by everyone; user-owned rows are reserved for overlays.
type Category struct {
	ID        uuid.UUID    `gorm:"type:uuid;primary_key" json:"id"`
	Name      string       `gorm:"type:varchar(100);not null" json:"name"`
	Icon      string       `gorm:"type:varchar(16)" json:"icon"`
	Type      CategoryType `gorm:"type:varchar(10);not null;index" json:"type"`
	UserID    *uuid.UUID   `gorm:"type:uuid;index" json:"user_id,omitempty"`
	CreatedAt time.Time    `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time    `gorm:"not null" json:"updated_at"`

	SubCategories []SubCategory `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"sub_categories"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}

	now := time.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = now
	}

	return c.Validate()
}

func (c *Category) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrCategoryNameEmpty
	}
	if !c.Type.IsValid() {
		return ErrInvalidCategoryType
	}
	return nil
}

// IsGlobal reports whether the category belongs to the shared reference table
func (c *Category) IsGlobal() bool {
	return c.UserID == nil
}

// DisplayIcon returns the icon or the default glyph when none is set
func (c *Category) DisplayIcon() string {
	if c.Icon == "" {
		return DefaultCategoryIcon
	}
	return c.Icon
}

// HasSubCategory reports whether id is one of the loaded sub-categories
func (c *Category) HasSubCategory(id uuid.UUID) bool {
	for _, sub := range c.SubCategories {
		if sub.ID == id {
			return true
		}
	}
	return false
}

func (Category) TableName() string {
	return "categories"
}

// SubCategory belongs to exactly one category and has no lifecycle of its own
type SubCategory struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name       string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_sub_categories_category_name" json:"name"`
	CategoryID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_sub_categories_category_name" json:"category_id"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null" json:"updated_at"`
}

func (s *SubCategory) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}

	now := time.Now()
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
	if s.UpdatedAt.IsZero() {
		s.UpdatedAt = now
	}

	return s.Validate()
}

func (s *SubCategory) Validate() error {
	if !IsValidSubCategoryName(s.Name) {
		return ErrSubCategoryName
	}
	return nil
}

func (SubCategory) TableName() string {
	return "sub_categories"
}

// IsValidSubCategoryName checks the trimmed name length in characters
func IsValidSubCategoryName(name string) bool {
	return len([]rune(strings.TrimSpace(name))) >= MinSubCategoryNameLength
}
