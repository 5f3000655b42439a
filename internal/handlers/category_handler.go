package handlers

import (
	stderrors "errors"
	"net/http"

	"budget-tracker/internal/dto"
	"budget-tracker/internal/errors"
	"budget-tracker/internal/models"
	"budget-tracker/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// CategoryHandler serves the category hierarchy
type CategoryHandler struct {
	categoryService services.CategoryServiceInterface
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(categoryService services.CategoryServiceInterface) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// ListCategories returns every global category with its sub-categories
// @Summary List categories
// @Tags Categories
// @Produce json
// @Success 200 {object} SuccessResponse{data=[]dto.CategoryResponse} "Categories, meta.degraded when the store is unreachable"
// @Router /categories [get]
func (h *CategoryHandler) ListCategories(c echo.Context) error {
	categories, err := h.categoryService.ListCategories(c.Request().Context())
	if err != nil {
		if stderrors.Is(err, services.ErrCategoriesUnavailable) {
			return SendDegraded(c, dto.NewCategoryResponses(categories), models.DashboardPartCategories)
		}
		return sendServiceError(c, err)
	}

	return SendData(c, http.StatusOK, dto.NewCategoryResponses(categories), "")
}

// CreateSubCategory adds a sub-category under an existing category
// @Summary Create a sub-category
// @Tags Categories
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param categoryId path string true "Category ID (UUID)"
// @Param request body dto.CreateSubCategoryRequest true "Sub-category name"
// @Success 201 {object} SuccessResponse{data=dto.SubCategoryResponse} "Sub-category created"
// @Failure 400 {object} errors.ErrorResponse "SUBCATEGORY_001 - Name shorter than 2 characters"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - No resolved identity"
// @Failure 404 {object} errors.ErrorResponse "CATEGORY_001 - Category not found"
// @Failure 422 {object} errors.ErrorResponse "SUBCATEGORY_003 - Could not be created"
// @Router /categories/{categoryId}/subcategories [post]
func (h *CategoryHandler) CreateSubCategory(c echo.Context) error {
	if getUserIDFromContext(c) == nil {
		return SendError(c, errors.AuthMissingSession)
	}

	categoryID, err := uuid.Parse(c.Param("categoryId"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("categoryId: must be a valid identifier"))
	}

	var req dto.CreateSubCategoryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return SendError(c, errors.SubCategoryInvalidName, errors.WithDetails(err.Error()))
	}

	sub, err := h.categoryService.CreateSubCategory(c.Request().Context(), categoryID, req.Name)
	if err != nil {
		return sendServiceError(c, err)
	}

	return SendData(c, http.StatusCreated, dto.NewSubCategoryResponse(sub), "Sub-category created")
}
