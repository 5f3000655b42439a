package dto

import (
	"budget-tracker/internal/models"

	"github.com/google/uuid"
)

// CreateSubCategoryRequest is the body of POST /categories/:categoryId/subcategories
type CreateSubCategoryRequest struct {
	Name string `json:"name" validate:"max=100"`
}

// SubCategoryResponse is a sub-category as rendered by the API
type SubCategoryResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	CategoryID uuid.UUID `json:"categoryId"`
}

// CategoryResponse is a category with its sub-categories
type CategoryResponse struct {
	ID            uuid.UUID             `json:"id"`
	Name          string                `json:"name"`
	Icon          string                `json:"icon"`
	Type          models.CategoryType   `json:"type"`
	SubCategories []SubCategoryResponse `json:"subCategories"`
}

func NewSubCategoryResponse(sub *models.SubCategory) SubCategoryResponse {
	return SubCategoryResponse{
		ID:         sub.ID,
		Name:       sub.Name,
		CategoryID: sub.CategoryID,
	}
}

func NewCategoryResponse(category *models.Category) CategoryResponse {
	subs := make([]SubCategoryResponse, 0, len(category.SubCategories))
	for i := range category.SubCategories {
		subs = append(subs, NewSubCategoryResponse(&category.SubCategories[i]))
	}

	return CategoryResponse{
		ID:            category.ID,
		Name:          category.Name,
		Icon:          category.DisplayIcon(),
		Type:          category.Type,
		SubCategories: subs,
	}
}

// NewCategoryResponses never returns nil, so empty lists render as []
func NewCategoryResponses(categories []models.Category) []CategoryResponse {
	responses := make([]CategoryResponse, 0, len(categories))
	for i := range categories {
		responses = append(responses, NewCategoryResponse(&categories[i]))
	}
	return responses
}
