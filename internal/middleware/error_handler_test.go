package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	apierrors "fintrack/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type ErrorHandlerTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

func (s *ErrorHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.echo.HTTPErrorHandler = CustomHTTPErrorHandler
}

func TestErrorHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ErrorHandlerTestSuite))
}

func (s *ErrorHandlerTestSuite) handle(err error) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	CustomHTTPErrorHandler(err, c)
	return rec
}

func (s *ErrorHandlerTestSuite) decode(rec *httptest.ResponseRecorder) apierrors.ErrorResponse {
	var body apierrors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func (s *ErrorHandlerTestSuite) TestEchoHTTPError_NotFound() {
	rec := s.handle(echo.NewHTTPError(http.StatusNotFound, "route not found"))

	s.Equal(http.StatusNotFound, rec.Code)

	body := s.decode(rec)
	s.Equal(string(apierrors.TransactionNotFound), body.Error.Code)
	s.Equal("route not found", body.Error.Message)
}

func (s *ErrorHandlerTestSuite) TestEchoHTTPError_MethodNotAllowed() {
	rec := s.handle(echo.NewHTTPError(http.StatusMethodNotAllowed, "method not allowed"))

	s.Equal(http.StatusMethodNotAllowed, rec.Code)
	s.Equal(string(apierrors.ValidationGeneral), s.decode(rec).Error.Code)
}

func (s *ErrorHandlerTestSuite) TestEchoHTTPError_Unauthorized() {
	rec := s.handle(echo.NewHTTPError(http.StatusUnauthorized, "unauthorized"))

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal(string(apierrors.AuthMissingToken), s.decode(rec).Error.Code)
}

func (s *ErrorHandlerTestSuite) TestGenericError_WrappedAsSystemError() {
	rec := s.handle(errors.New("database exploded"))

	s.Equal(http.StatusInternalServerError, rec.Code)

	body := s.decode(rec)
	s.Equal(string(apierrors.SystemInternalError), body.Error.Code)
	s.NotContains(body.Error.Message, "database exploded")
}

func (s *ErrorHandlerTestSuite) TestCommittedResponse_NotOverwritten() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.NoError(c.String(http.StatusOK, "already sent"))
	CustomHTTPErrorHandler(errors.New("too late"), c)

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("already sent", rec.Body.String())
}

func (s *ErrorHandlerTestSuite) TestTraceID_IncludedInResponse() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set(TraceIDContextKey, "trace-abc-123")

	CustomHTTPErrorHandler(echo.NewHTTPError(http.StatusBadRequest, "bad input"), c)

	s.Equal("trace-abc-123", s.decode(rec).Error.TraceID)
}
