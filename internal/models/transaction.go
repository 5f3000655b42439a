package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrInvalidAmount          = errors.New("transaction amount must be positive")
	ErrTransactionDateMissing = errors.New("transaction date is required")
	ErrTransactionCategory    = errors.New("transaction category is required")
	ErrTransactionOwner       = errors.New("transaction owner is required")
)

// AmountScale is the number of decimal places stored for an amount
const AmountScale = 2

// Transaction is a single income or expense entry. Rows are never updated.
type Transaction struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Amount          decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Description     string          `gorm:"type:varchar(255)" json:"description"`
	Date            time.Time       `gorm:"not null;index" json:"date"`
	TransactionType CategoryType    `gorm:"type:varchar(10);not null" json:"type"`
	CategoryID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"category_id"`
	SubCategoryID   *uuid.UUID      `gorm:"type:uuid;index" json:"sub_category_id,omitempty"`
	UserID          uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	CreatedAt       time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"not null" json:"updated_at"`

	// Associations
	Category    *Category    `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	SubCategory *SubCategory `gorm:"foreignKey:SubCategoryID" json:"sub_category,omitempty"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	// Set timestamps if not already set (for tests)
	now := time.Now()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}

	return t.Validate()
}

// Validate checks the row-level invariants of a transaction
func (t *Transaction) Validate() error {
	if !t.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	if !t.TransactionType.IsValid() {
		return ErrInvalidTransactionType
	}
	if t.Date.IsZero() {
		return ErrTransactionDateMissing
	}
	if t.CategoryID == uuid.Nil {
		return ErrTransactionCategory
	}
	if t.UserID == uuid.Nil {
		return ErrTransactionOwner
	}
	return nil
}

// IsExpense reports whether the transaction takes money out
func (t *Transaction) IsExpense() bool {
	return t.TransactionType == CategoryTypeExpense
}

// IsIncome reports whether the transaction brings money in
func (t *Transaction) IsIncome() bool {
	return t.TransactionType == CategoryTypeIncome
}

func (Transaction) TableName() string {
	return "transactions"
}

// TransactionInput is the raw user submission for a new transaction.
// Amount accepts JSON numbers and strings.
type TransactionInput struct {
	Amount        decimal.Decimal `json:"amount" validate:"positive_decimal"`
	Description   string          `json:"description" validate:"max=255"`
	Date          string          `json:"date" validate:"required,calendar_date"`
	CategoryID    string          `json:"categoryId" validate:"required,uuid"`
	SubCategoryID string          `json:"subCategoryId" validate:"omitempty,uuid"`
	Type          string          `json:"type" validate:"required,transaction_type"`
}

// TypeTotal is one row of a SUM(amount) GROUP BY transaction_type query
type TypeTotal struct {
	TransactionType CategoryType
	Total           decimal.Decimal
}
