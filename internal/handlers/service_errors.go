package handlers

import (
	stderrors "errors"
	"log/slog"
	"strings"

	"budget-tracker/internal/errors"
	"budget-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// fieldCodes picks a specific code when a submission fails on a single field
var fieldCodes = map[string]errors.ErrorCode{
	"amount": errors.TransactionInvalidAmount,
	"type":   errors.TransactionInvalidType,
	"date":   errors.ValidationInvalidDate,
}

// sendServiceError maps a service error onto the API error taxonomy
func sendServiceError(c echo.Context, err error) error {
	var validationErr *services.ValidationError
	if stderrors.As(err, &validationErr) {
		return SendError(c, validationCode(validationErr.Details), errors.WithDetails(validationErr.Details...))
	}

	switch {
	case stderrors.Is(err, services.ErrUnauthorized):
		return SendError(c, errors.AuthMissingSession)
	case stderrors.Is(err, services.ErrCategoryNotFound):
		return SendError(c, errors.CategoryNotFound)
	case stderrors.Is(err, services.ErrSubCategoryNotFound):
		return SendError(c, errors.SubCategoryNotFound)
	case stderrors.Is(err, services.ErrInvalidSubCategoryName):
		return SendError(c, errors.SubCategoryInvalidName)
	case stderrors.Is(err, services.ErrSubCategoryCreateFailed):
		return SendError(c, errors.SubCategoryCreateFailed)
	case stderrors.Is(err, services.ErrTypeMismatch):
		return SendError(c, errors.TransactionTypeMismatch)
	case stderrors.Is(err, services.ErrSubCategoryMismatch):
		return SendError(c, errors.TransactionSubCategoryOwner)
	case stderrors.Is(err, services.ErrInvalidMonth), stderrors.Is(err, services.ErrInvalidYear):
		return SendError(c, errors.ValidationOutOfRange, errors.WithDetails(err.Error()))
	case stderrors.Is(err, services.ErrStorage):
		slog.ErrorContext(c.Request().Context(), "Storage failure", "trace_id", getTraceID(c), "error", err)
		return SendDatabaseError(c, err)
	default:
		slog.ErrorContext(c.Request().Context(), "Unexpected service error", "trace_id", getTraceID(c), "error", err)
		return SendSystemError(c, err)
	}
}

func validationCode(details []string) errors.ErrorCode {
	if len(details) != 1 {
		return errors.ValidationGeneral
	}
	field, _, _ := strings.Cut(details[0], ":")
	if code, ok := fieldCodes[field]; ok {
		return code
	}
	return errors.ValidationGeneral
}
