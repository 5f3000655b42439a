package handlers

import (
	"net/http"

	"budget-tracker/internal/dto"
	"budget-tracker/internal/errors"

	"github.com/labstack/echo/v4"
)

// Error responses go through SendError for anything the client can act on
// and SendSystemError for storage and internal failures, which never expose
// the underlying error. Handlers do not build error JSON themselves.

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// SuccessResponse represents a standard success response
type SuccessResponse struct {
	Data    interface{} `json:"data"`
	Message string      `json:"message,omitempty"`
	Meta    *dto.Meta   `json:"meta,omitempty"`
}

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	errorResponse := errors.NewErrorResponse(code, getTraceID(c), opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError answers with a generic SYSTEM_001 and keeps err server-side
func SendSystemError(c echo.Context, err error) error {
	errorResponse, _ := errors.WrapSystemError(err, getTraceID(c))
	return c.JSON(http.StatusInternalServerError, errorResponse)
}

// SendDatabaseError answers with a generic SYSTEM_002 for failed writes
func SendDatabaseError(c echo.Context, err error) error {
	errorResponse, _ := errors.WrapDatabaseError(err, getTraceID(c))
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendData wraps data in the success envelope
func SendData(c echo.Context, status int, data interface{}, message string) error {
	return c.JSON(status, SuccessResponse{Data: data, Message: message})
}

// SendDegraded renders the empty or partial state of a read together with
// meta.degraded, so clients can tell "no data" from "data unavailable"
func SendDegraded(c echo.Context, data interface{}, parts ...string) error {
	return c.JSON(http.StatusOK, SuccessResponse{
		Data: data,
		Meta: &dto.Meta{Degraded: true, DegradedParts: parts},
	})
}
