package middleware

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"budget-tracker/internal/errors"
	"budget-tracker/internal/validation"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"
)

type ErrorHandlerTestSuite struct {
	suite.Suite
	echo    *echo.Echo
	reg     *prometheus.Registry
	handler echo.HTTPErrorHandler
}

func (s *ErrorHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.reg = prometheus.NewRegistry()
	s.handler = NewHTTPErrorHandler(s.reg)
	s.echo.HTTPErrorHandler = s.handler
}

func TestErrorHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ErrorHandlerTestSuite))
}

func (s *ErrorHandlerTestSuite) handle(err error, traceID string) (*httptest.ResponseRecorder, errors.ErrorResponse) {
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	if traceID != "" {
		c.Set(TraceIDContextKey, traceID)
	}

	s.handler(err, c)

	var response errors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	return rec, response
}

func (s *ErrorHandlerTestSuite) TestEchoHTTPError_NotFound() {
	rec, response := s.handle(echo.ErrNotFound, "test-trace-id")

	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal(string(errors.SystemRouteNotFound), response.Error.Code)
	s.Equal("test-trace-id", response.Error.TraceID)
}

func (s *ErrorHandlerTestSuite) TestEchoHTTPError_BindFailure() {
	rec, response := s.handle(echo.NewHTTPError(http.StatusBadRequest, "Syntax error"), "t")

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(string(errors.ValidationGeneral), response.Error.Code)
	s.Equal("Syntax error", response.Error.Message)
}

func (s *ErrorHandlerTestSuite) TestGenericError_IsHidden() {
	rec, response := s.handle(stderrors.New("pq: relation \"transactions\" does not exist"), "t")

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal(string(errors.SystemInternalError), response.Error.Code)
	s.NotContains(rec.Body.String(), "relation")
}

func (s *ErrorHandlerTestSuite) TestValidationErrors() {
	type payload struct {
		Name string `json:"name" validate:"required"`
	}
	err := validation.GetValidator().Struct(payload{})
	s.Require().Error(err)

	rec, response := s.handle(err, "t")

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(string(errors.ValidationGeneral), response.Error.Code)
	s.Equal([]string{"name: is required"}, response.Error.Details)
}

func (s *ErrorHandlerTestSuite) TestNoTraceID() {
	_, response := s.handle(stderrors.New("boom"), "")
	s.Equal("unknown", response.Error.TraceID)
}

func (s *ErrorHandlerTestSuite) TestCountsErrors() {
	s.handle(echo.ErrNotFound, "t")
	s.handle(echo.ErrNotFound, "t")

	families, err := s.reg.Gather()
	s.Require().NoError(err)
	s.Require().Len(families, 1)
	s.Equal("api_errors_total", families[0].GetName())
	s.Equal(2.0, families[0].GetMetric()[0].GetCounter().GetValue())
}

func (s *ErrorHandlerTestSuite) TestCommittedResponseIsLeftAlone() {
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	s.Require().NoError(c.String(http.StatusOK, "done"))

	s.handler(stderrors.New("late"), c)

	s.Equal("done", rec.Body.String())
}

func (s *ErrorHandlerTestSuite) TestMapHTTPStatusToErrorCode() {
	s.Equal(errors.AuthMissingSession, mapHTTPStatusToErrorCode(http.StatusUnauthorized))
	s.Equal(errors.SystemRateLimitExceeded, mapHTTPStatusToErrorCode(http.StatusTooManyRequests))
	s.Equal(errors.SystemRouteNotFound, mapHTTPStatusToErrorCode(http.StatusMethodNotAllowed))
	s.Equal(errors.SystemUnexpectedError, mapHTTPStatusToErrorCode(http.StatusTeapot))
}
