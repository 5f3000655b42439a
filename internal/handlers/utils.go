package handlers

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const userIDContextKey = "user_id"

// getUserIDFromContext returns the resolved user, or nil for a guest
func getUserIDFromContext(c echo.Context) *uuid.UUID {
	userID, ok := c.Get(userIDContextKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return nil
	}
	return &userID
}

// getIntParam reads an optional integer query parameter. A present but
// non-numeric value is reported so the caller can answer 400.
func getIntParam(c echo.Context, name string, defaultValue int) (int, error) {
	param := strings.TrimSpace(c.QueryParam(name))
	if param == "" {
		return defaultValue, nil
	}
	return strconv.Atoi(param)
}
