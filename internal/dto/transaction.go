package dto

import (
	"time"

	"budget-tracker/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DateLayout is the calendar date format used in transaction payloads
const DateLayout = "2006-01-02"

// CategoryRef carries the display data of a transaction's category
type CategoryRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Icon string    `json:"icon"`
}

// SubCategoryRef carries the display data of a transaction's sub-category
type SubCategoryRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// TransactionResponse is a transaction as rendered by the API
type TransactionResponse struct {
	ID          uuid.UUID           `json:"id"`
	Amount      decimal.Decimal     `json:"amount"`
	Description string              `json:"description"`
	Date        string              `json:"date"`
	Type        models.CategoryType `json:"type"`
	Category    *CategoryRef        `json:"category,omitempty"`
	SubCategory *SubCategoryRef     `json:"subCategory,omitempty"`
	CreatedAt   time.Time           `json:"createdAt"`
}

// NewTransactionResponse renders tx with its date as a calendar day in loc
func NewTransactionResponse(tx *models.Transaction, loc *time.Location) TransactionResponse {
	if loc == nil {
		loc = time.UTC
	}

	response := TransactionResponse{
		ID:          tx.ID,
		Amount:      tx.Amount.Round(2),
		Description: tx.Description,
		Date:        tx.Date.In(loc).Format(DateLayout),
		Type:        tx.TransactionType,
		CreatedAt:   tx.CreatedAt,
	}

	if tx.Category != nil {
		response.Category = &CategoryRef{
			ID:   tx.Category.ID,
			Name: tx.Category.Name,
			Icon: tx.Category.DisplayIcon(),
		}
	}
	if tx.SubCategory != nil {
		response.SubCategory = &SubCategoryRef{
			ID:   tx.SubCategory.ID,
			Name: tx.SubCategory.Name,
		}
	}

	return response
}

func NewTransactionResponses(transactions []models.Transaction, loc *time.Location) []TransactionResponse {
	responses := make([]TransactionResponse, 0, len(transactions))
	for i := range transactions {
		responses = append(responses, NewTransactionResponse(&transactions[i], loc))
	}
	return responses
}
