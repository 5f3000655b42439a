package services

import (
	"errors"
	"strings"
)

var (
	ErrUnauthorized            = errors.New("identity required")
	ErrCategoryNotFound        = errors.New("category not found")
	ErrSubCategoryNotFound     = errors.New("sub-category not found")
	ErrInvalidSubCategoryName  = errors.New("sub-category name must be at least 2 characters")
	ErrSubCategoryCreateFailed = errors.New("sub-category could not be created")
	ErrTypeMismatch            = errors.New("transaction type does not match the category type")
	ErrSubCategoryMismatch     = errors.New("sub-category does not belong to the category")
	ErrStorage                 = errors.New("storage failure")
	ErrCategoriesUnavailable   = errors.New("categories unavailable")
	ErrStatsUnavailable        = errors.New("stats unavailable")
	ErrRecentUnavailable       = errors.New("recent transactions unavailable")
	ErrInvalidMonth            = errors.New("month must be between 1 and 12")
	ErrInvalidYear             = errors.New("year must be between 1970 and 9999")
)

// ValidationError carries field-level messages for an invalid submission
type ValidationError struct {
	Details []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Details, "; ")
}

func newValidationError(details ...string) *ValidationError {
	return &ValidationError{Details: details}
}
