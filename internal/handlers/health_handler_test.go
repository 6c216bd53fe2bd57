package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"fintrack/internal/database"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type HealthHandlerTestSuite struct {
	suite.Suite
	echo    *echo.Echo
	db      *database.DB
	handler *HealthCheckHandler
}

func TestHealthHandlerSuite(t *testing.T) {
	suite.Run(t, new(HealthHandlerTestSuite))
}

func (s *HealthHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.db = database.SetupTestDB(s.T())
	s.handler = NewHealthCheckHandler(s.db)
}

func (s *HealthHandlerTestSuite) TestHealthCheck_Healthy() {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.NoError(s.handler.HealthCheck(c))
	s.Equal(http.StatusOK, rec.Code)

	var response map[string]string
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("healthy", response["status"])
	s.NotEmpty(response["time"])
}
