package handlers

import (
	stderrors "errors"
	"net/http"
	"time"

	"budget-tracker/internal/dto"
	"budget-tracker/internal/errors"
	"budget-tracker/internal/models"
	"budget-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// TransactionHandler records and lists transactions
type TransactionHandler struct {
	transactionService services.TransactionServiceInterface
	location           *time.Location
}

// NewTransactionHandler creates a new transaction handler. Dates are rendered
// as calendar days in location.
func NewTransactionHandler(transactionService services.TransactionServiceInterface, location *time.Location) *TransactionHandler {
	if location == nil {
		location = time.UTC
	}
	return &TransactionHandler{
		transactionService: transactionService,
		location:           location,
	}
}

// CreateTransaction records one income or expense entry
// @Summary Create a transaction
// @Tags Transactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.TransactionInput true "Transaction"
// @Success 201 {object} SuccessResponse{data=dto.TransactionResponse} "Transaction created"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 / TRANSACTION_001 / TRANSACTION_004 - Invalid submission"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - No resolved identity"
// @Failure 404 {object} errors.ErrorResponse "CATEGORY_001 / SUBCATEGORY_002 - Unknown category"
// @Failure 422 {object} errors.ErrorResponse "TRANSACTION_002 / TRANSACTION_003 - Inconsistent category"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_002 - Could not be stored"
// @Router /transactions [post]
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	userID := getUserIDFromContext(c)
	if userID == nil {
		return SendError(c, errors.AuthMissingSession)
	}

	var input models.TransactionInput
	if err := c.Bind(&input); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	tx, err := h.transactionService.CreateTransaction(c.Request().Context(), userID, input)
	if err != nil {
		return sendServiceError(c, err)
	}

	return SendData(c, http.StatusCreated, dto.NewTransactionResponse(tx, h.location), "Transaction created")
}

// ListRecent returns the caller's newest transactions
// @Summary Recent transactions
// @Tags Transactions
// @Produce json
// @Param limit query int false "Max entries (default 10, max 100)"
// @Success 200 {object} SuccessResponse{data=[]dto.TransactionResponse} "Newest first, empty for guests"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - limit is not a number"
// @Router /transactions/recent [get]
func (h *TransactionHandler) ListRecent(c echo.Context) error {
	limit, err := getIntParam(c, "limit", 0)
	if err != nil || limit < 0 {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("limit: must be a non-negative integer"))
	}

	transactions, err := h.transactionService.ListRecent(c.Request().Context(), getUserIDFromContext(c), limit)
	if err != nil {
		if stderrors.Is(err, services.ErrRecentUnavailable) {
			return SendDegraded(c, dto.NewTransactionResponses(transactions, h.location), models.DashboardPartRecent)
		}
		return sendServiceError(c, err)
	}

	return SendData(c, http.StatusOK, dto.NewTransactionResponses(transactions, h.location), "")
}
