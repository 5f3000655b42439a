package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"budget-tracker/internal/dto"
	"budget-tracker/internal/errors"
	"budget-tracker/internal/models"
	"budget-tracker/internal/services"
	"budget-tracker/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type TransactionHandlerSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *service_mocks.MockTransactionServiceInterface
	handler     *TransactionHandler
	echo        *echo.Echo
	userID      uuid.UUID
	location    *time.Location
}

func TestTransactionHandlerSuite(t *testing.T) {
	suite.Run(t, new(TransactionHandlerSuite))
}

func (s *TransactionHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = service_mocks.NewMockTransactionServiceInterface(s.ctrl)
	s.location = time.FixedZone("Europe/Paris", 2*60*60)
	s.handler = NewTransactionHandler(s.mockService, s.location)
	s.echo = newTestEcho()
	s.userID = uuid.New()
}

func (s *TransactionHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *TransactionHandlerSuite) TestCreateTransaction_Success() {
	categoryID := uuid.New()
	body := fmt.Sprintf(`{"amount":"12.5","description":"Pain","date":"2025-03-14","categoryId":%q,"type":"EXPENSE"}`, categoryID)

	s.mockService.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, userID *uuid.UUID, input models.TransactionInput) (*models.Transaction, error) {
			s.Equal(s.userID, *userID)
			s.True(input.Amount.Equal(decimal.RequireFromString("12.5")))
			s.Equal(categoryID.String(), input.CategoryID)
			return &models.Transaction{
				ID:              uuid.New(),
				Amount:          input.Amount,
				Description:     input.Description,
				Date:            time.Date(2025, 3, 13, 22, 0, 0, 0, time.UTC),
				TransactionType: models.CategoryTypeExpense,
				CategoryID:      categoryID,
				UserID:          *userID,
				Category:        &models.Category{ID: categoryID, Name: "Course", Icon: "🛒"},
			}, nil
		})

	c, rec := newContext(s.echo, http.MethodPost, "/api/v1/transactions", body, &s.userID)
	s.Require().NoError(s.handler.CreateTransaction(c))
	s.Equal(http.StatusCreated, rec.Code)

	var tx dto.TransactionResponse
	s.Require().NoError(json.Unmarshal(decodeEnvelope(rec).Data, &tx))
	s.Equal("2025-03-14", tx.Date)
	s.Equal("12.5", tx.Amount.String())
	s.Require().NotNil(tx.Category)
	s.Equal("Course", tx.Category.Name)
	s.Nil(tx.SubCategory)
}

func (s *TransactionHandlerSuite) TestCreateTransaction_RequiresIdentity() {
	c, rec := newContext(s.echo, http.MethodPost, "/api/v1/transactions", `{}`, nil)
	s.Require().NoError(s.handler.CreateTransaction(c))

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal(string(errors.AuthMissingSession), decodeError(rec).Error.Code)
}

func (s *TransactionHandlerSuite) TestCreateTransaction_ErrorMapping() {
	tests := []struct {
		name   string
		err    error
		status int
		code   errors.ErrorCode
	}{
		{"amount", &services.ValidationError{Details: []string{"amount: must be greater than 0"}}, http.StatusBadRequest, errors.TransactionInvalidAmount},
		{"several fields", &services.ValidationError{Details: []string{"amount: required", "date: required"}}, http.StatusBadRequest, errors.ValidationGeneral},
		{"type mismatch", services.ErrTypeMismatch, http.StatusUnprocessableEntity, errors.TransactionTypeMismatch},
		{"foreign sub-category", services.ErrSubCategoryMismatch, http.StatusUnprocessableEntity, errors.TransactionSubCategoryOwner},
		{"unknown sub-category", services.ErrSubCategoryNotFound, http.StatusNotFound, errors.SubCategoryNotFound},
		{"storage", fmt.Errorf("%w: %w", services.ErrStorage, fmt.Errorf("connection reset")), http.StatusInternalServerError, errors.SystemDatabaseError},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.mockService.EXPECT().CreateTransaction(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tt.err)

			c, rec := newContext(s.echo, http.MethodPost, "/api/v1/transactions", `{"type":"EXPENSE"}`, &s.userID)
			s.Require().NoError(s.handler.CreateTransaction(c))

			s.Equal(tt.status, rec.Code)
			response := decodeError(rec)
			s.Equal(string(tt.code), response.Error.Code)
			s.NotContains(rec.Body.String(), "connection reset")
		})
	}
}

func (s *TransactionHandlerSuite) TestListRecent_Success() {
	s.mockService.EXPECT().ListRecent(gomock.Any(), gomock.Any(), 5).Return([]models.Transaction{
		{ID: uuid.New(), Amount: decimal.NewFromInt(20), TransactionType: models.CategoryTypeIncome, Date: time.Now()},
	}, nil)

	c, rec := newContext(s.echo, http.MethodGet, "/api/v1/transactions/recent?limit=5", nil, &s.userID)
	s.Require().NoError(s.handler.ListRecent(c))

	s.Equal(http.StatusOK, rec.Code)
	var list []dto.TransactionResponse
	s.Require().NoError(json.Unmarshal(decodeEnvelope(rec).Data, &list))
	s.Len(list, 1)
}

func (s *TransactionHandlerSuite) TestListRecent_Guest() {
	s.mockService.EXPECT().ListRecent(gomock.Any(), (*uuid.UUID)(nil), 0).Return([]models.Transaction{}, nil)

	c, rec := newContext(s.echo, http.MethodGet, "/api/v1/transactions/recent", nil, nil)
	s.Require().NoError(s.handler.ListRecent(c))

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`[]`, string(decodeEnvelope(rec).Data))
}

func (s *TransactionHandlerSuite) TestListRecent_InvalidLimit() {
	for _, limit := range []string{"abc", "-1"} {
		c, rec := newContext(s.echo, http.MethodGet, "/api/v1/transactions/recent?limit="+limit, nil, &s.userID)
		s.Require().NoError(s.handler.ListRecent(c))

		s.Equal(http.StatusBadRequest, rec.Code, limit)
		s.Equal(string(errors.ValidationInvalidFormat), decodeError(rec).Error.Code)
	}
}

func (s *TransactionHandlerSuite) TestListRecent_Degraded() {
	s.mockService.EXPECT().ListRecent(gomock.Any(), gomock.Any(), 0).Return([]models.Transaction{}, services.ErrRecentUnavailable)

	c, rec := newContext(s.echo, http.MethodGet, "/api/v1/transactions/recent", nil, &s.userID)
	s.Require().NoError(s.handler.ListRecent(c))

	s.Equal(http.StatusOK, rec.Code)
	env := decodeEnvelope(rec)
	s.Require().NotNil(env.Meta)
	s.Equal([]string{models.DashboardPartRecent}, env.Meta.DegradedParts)
}
