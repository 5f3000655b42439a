package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"budget-tracker/internal/errors"
	"budget-tracker/internal/services"

	"github.com/stretchr/testify/assert"
)

func TestSendServiceError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   errors.ErrorCode
	}{
		{"unauthorized", services.ErrUnauthorized, http.StatusUnauthorized, errors.AuthMissingSession},
		{"wrapped category", fmt.Errorf("lookup: %w", services.ErrCategoryNotFound), http.StatusNotFound, errors.CategoryNotFound},
		{"invalid month", services.ErrInvalidMonth, http.StatusBadRequest, errors.ValidationOutOfRange},
		{"invalid year", services.ErrInvalidYear, http.StatusBadRequest, errors.ValidationOutOfRange},
		{"date field", &services.ValidationError{Details: []string{"date: must be a calendar date"}}, http.StatusBadRequest, errors.ValidationInvalidDate},
		{"type field", &services.ValidationError{Details: []string{"type: must be INCOME or EXPENSE"}}, http.StatusBadRequest, errors.TransactionInvalidType},
		{"other field", &services.ValidationError{Details: []string{"categoryId: must be a valid UUID"}}, http.StatusBadRequest, errors.ValidationGeneral},
		{"unknown", fmt.Errorf("something odd"), http.StatusInternalServerError, errors.SystemInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext(newTestEcho(), http.MethodGet, "/", nil, nil)

			assert.NoError(t, sendServiceError(c, tt.err))
			assert.Equal(t, tt.status, rec.Code)

			response := decodeError(rec)
			assert.Equal(t, string(tt.code), response.Error.Code)
			assert.Equal(t, "test-trace", response.Error.TraceID)
		})
	}
}

func TestValidationCode(t *testing.T) {
	assert.Equal(t, errors.ValidationGeneral, validationCode(nil))
	assert.Equal(t, errors.TransactionInvalidAmount, validationCode([]string{"amount: must be greater than 0"}))
	assert.Equal(t, errors.ValidationGeneral, validationCode([]string{"amount: bad", "type: bad"}))
}
