package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

// SecurityHeadersTestSuite defines the test suite for security headers middleware
type SecurityHeadersTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

// SetupTest runs before each test
func (s *SecurityHeadersTestSuite) SetupTest() {
	s.echo = echo.New()
}

// TestSecurityHeadersTestSuite runs the test suite
func TestSecurityHeadersTestSuite(t *testing.T) {
	suite.Run(t, new(SecurityHeadersTestSuite))
}

// TestSecurityHeaders_AllHeadersSet tests that all security headers are present
func (s *SecurityHeadersTestSuite) TestSecurityHeaders_AllHeadersSet() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	handler := SecurityHeaders()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	err := handler(c)
	s.NoError(err)

	headers := rec.Header()
	s.Equal("nosniff", headers.Get("X-Content-Type-Options"))
	s.Equal("DENY", headers.Get("X-Frame-Options"))
	s.Equal("1; mode=block", headers.Get("X-XSS-Protection"))
	s.Contains(headers.Get("Strict-Transport-Security"), "max-age=31536000")
	s.Equal("default-src 'self'", headers.Get("Content-Security-Policy"))
	s.Equal("strict-origin-when-cross-origin", headers.Get("Referrer-Policy"))
	s.NotEmpty(headers.Get("Permissions-Policy"))
}

// TestSecurityHeaders_NoCaching tests that responses are marked uncacheable
func (s *SecurityHeadersTestSuite) TestSecurityHeaders_NoCaching() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	handler := SecurityHeaders()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	err := handler(c)
	s.NoError(err)

	s.Contains(rec.Header().Get("Cache-Control"), "no-store")
	s.Equal("no-cache", rec.Header().Get("Pragma"))
	s.Equal("0", rec.Header().Get("Expires"))
}

// TestSecurityHeaders_PassesThrough tests that the wrapped handler still runs
func (s *SecurityHeadersTestSuite) TestSecurityHeaders_PassesThrough() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	handler := SecurityHeaders()(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	err := handler(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "ok")
}
