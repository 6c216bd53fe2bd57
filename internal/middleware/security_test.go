package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type SecurityHeadersTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

func (s *SecurityHeadersTestSuite) SetupTest() {
	s.echo = echo.New()
}

func TestSecurityHeadersTestSuite(t *testing.T) {
	suite.Run(t, new(SecurityHeadersTestSuite))
}

func (s *SecurityHeadersTestSuite) TestSecurityHeaders_SetsAllHeaders() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	handler := SecurityHeaders()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	s.NoError(handler(c))

	expected := map[string]string{
		"X-Content-Type-Options":    "nosniff",
		"X-Frame-Options":           "DENY",
		"X-XSS-Protection":          "1; mode=block",
		"Strict-Transport-Security": "max-age=31536000; includeSubDomains",
		"Content-Security-Policy":   "default-src 'self'",
		"Referrer-Policy":           "strict-origin-when-cross-origin",
		"Permissions-Policy":        "geolocation=(), microphone=(), camera=()",
		"Cache-Control":             "no-store, no-cache, must-revalidate, private",
		"Pragma":                    "no-cache",
		"Expires":                   "0",
	}

	for header, value := range expected {
		s.Equal(value, rec.Header().Get(header), "header %s", header)
	}
}

func (s *SecurityHeadersTestSuite) TestSecurityHeaders_CallsNextHandler() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	called := false
	handler := SecurityHeaders()(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	s.NoError(handler(c))
	s.True(called)
}
