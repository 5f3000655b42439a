package repositories

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// uniqueViolationMarkers are the driver messages for a unique index
// violation: postgres SQLSTATE 23505 and its text, and sqlite's wording
var uniqueViolationMarkers = []string{"23505", "duplicate key", "UNIQUE constraint"}

func isDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	message := err.Error()
	for _, marker := range uniqueViolationMarkers {
		if strings.Contains(message, marker) {
			return true
		}
	}
	return false
}
