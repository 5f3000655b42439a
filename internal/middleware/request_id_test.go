package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"budget-tracker/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

// RequestIDTestSuite defines the test suite for request ID middleware
type RequestIDTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

func (s *RequestIDTestSuite) SetupTest() {
	s.echo = echo.New()
}

func TestRequestIDTestSuite(t *testing.T) {
	suite.Run(t, new(RequestIDTestSuite))
}

func (s *RequestIDTestSuite) run(header string) (string, string, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(TraceIDHeader, header)
	}
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	var fromEcho, fromRequest string
	handler := RequestID()(func(c echo.Context) error {
		fromEcho = GetTraceID(c)
		fromRequest = services.TraceIDFromContext(c.Request().Context())
		return c.NoContent(http.StatusOK)
	})

	s.Require().NoError(handler(c))
	return fromEcho, fromRequest, rec
}

func (s *RequestIDTestSuite) TestRequestID_GeneratesTraceID() {
	fromEcho, fromRequest, rec := s.run("")

	s.NotEmpty(fromEcho)
	s.Equal(fromEcho, fromRequest, "services see the same trace id")
	s.Equal(fromEcho, rec.Header().Get(TraceIDHeader))
}

func (s *RequestIDTestSuite) TestRequestID_UsesInboundTraceID() {
	fromEcho, _, rec := s.run("existing-trace-id-12345")

	s.Equal("existing-trace-id-12345", fromEcho)
	s.Equal("existing-trace-id-12345", rec.Header().Get(TraceIDHeader))
}

func (s *RequestIDTestSuite) TestRequestID_ReplacesOversizedTraceID() {
	oversized := strings.Repeat("x", maxTraceIDLength+1)
	fromEcho, _, _ := s.run(oversized)

	s.NotEqual(oversized, fromEcho)
	s.Len(fromEcho, 36)
}

func (s *RequestIDTestSuite) TestRequestID_UniquePerRequest() {
	first, _, _ := s.run("")
	second, _, _ := s.run("")
	s.NotEqual(first, second)
}

func (s *RequestIDTestSuite) TestGetTraceID_Missing() {
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	s.Empty(GetTraceID(c))
}
