package handlers

import (
	"crypto/rsa"
	stderrors "errors"
	"net/http"
	"strings"
	"time"

	"budget-tracker/internal/errors"
	"budget-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

const devSessionTTL = 24 * time.Hour

// DevHandler serves development-only endpoints. It is only routed when the
// server runs in development with a locally generated identity keypair.
type DevHandler struct {
	sampleData services.SampleDataServiceInterface
	privateKey *rsa.PrivateKey
	issuer     string
}

// NewDevHandler creates a new development handler
func NewDevHandler(sampleData services.SampleDataServiceInterface, privateKey *rsa.PrivateKey, issuer string) *DevHandler {
	return &DevHandler{
		sampleData: sampleData,
		privateKey: privateKey,
		issuer:     issuer,
	}
}

// DevSessionRequest is the body of POST /dev/session
type DevSessionRequest struct {
	ExternalID string `json:"externalId" validate:"required,max=255"`
	Email      string `json:"email" validate:"omitempty,email"`
}

// IssueSession signs a session token the verifier accepts, standing in for
// the identity provider during local development.
//
// Method: POST /api/v1/dev/session
// Success Response: 200 OK with data.token and data.expiresAt
func (h *DevHandler) IssueSession(c echo.Context) error {
	var req DevSessionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	req.ExternalID = strings.TrimSpace(req.ExternalID)
	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	token, err := services.SignSessionToken(h.privateKey, h.issuer, req.ExternalID, req.Email, devSessionTTL)
	if err != nil {
		if stderrors.Is(err, services.ErrSigningKeyMissing) {
			return SendError(c, errors.SystemConfigurationError)
		}
		return SendSystemError(c, err)
	}

	return SendData(c, http.StatusOK, map[string]interface{}{
		"token":     token,
		"expiresAt": time.Now().Add(devSessionTTL).UTC().Format(time.RFC3339),
	}, "")
}

// GenerateTestData fills the caller's history with sample transactions.
//
// Method: POST /api/v1/dev/generate-test-data
// Query parameters:
//   - count: Number of transactions to generate (default: 200, max: 1000)
//   - days: Number of days of history to generate (default: 90, max: 365)
func (h *DevHandler) GenerateTestData(c echo.Context) error {
	userID := getUserIDFromContext(c)
	if userID == nil {
		return SendError(c, errors.AuthMissingSession)
	}

	count, err := getIntParam(c, "count", services.DefaultSampleLimit)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("count: must be an integer"))
	}
	days, err := getIntParam(c, "days", services.DefaultSampleDays)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("days: must be an integer"))
	}

	created, err := h.sampleData.GenerateHistory(c.Request().Context(), *userID, days, count)
	if err != nil {
		if stderrors.Is(err, services.ErrNoSampleCategories) {
			return SendError(c, errors.CategoryNotFound, errors.WithDetails("Run `budget seed` first"))
		}
		return SendSystemError(c, err)
	}

	return SendData(c, http.StatusOK, map[string]interface{}{
		"transactionsCreated": created,
	}, "test data generated successfully")
}
