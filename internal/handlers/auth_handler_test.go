package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"fintrack/internal/config"
	"fintrack/internal/dto"
	apierrors "fintrack/internal/errors"
	"fintrack/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

const testOwnerPassword = "correct horse battery staple"

type AuthHandlerTestSuite struct {
	suite.Suite
	echo    *echo.Echo
	handler *AuthHandler
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) SetupSuite() {
	hash, err := bcrypt.GenerateFromPassword([]byte(testOwnerPassword), bcrypt.MinCost)
	s.Require().NoError(err)

	tokenService := services.NewTokenService(&config.AuthConfig{
		Enabled:       true,
		PasswordHash:  string(hash),
		TokenSecret:   "test-secret-at-least-32-characters",
		TokenDuration: time.Hour,
		Issuer:        "fintrack",
	})
	s.handler = NewAuthHandler(tokenService, noopMetrics{})
}

func (s *AuthHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
}

func (s *AuthHandlerTestSuite) login(body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.NoError(s.handler.Login(c))
	return rec
}

func (s *AuthHandlerTestSuite) TestLogin_Success() {
	rec := s.login(`{"password":"` + testOwnerPassword + `"}`)

	s.Equal(http.StatusOK, rec.Code)

	var response dto.LoginResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.NotEmpty(response.Token)
	s.True(response.ExpiresAt.After(time.Now()))
}

func (s *AuthHandlerTestSuite) TestLogin_WrongPassword() {
	rec := s.login(`{"password":"wrong"}`)

	s.Equal(http.StatusUnauthorized, rec.Code)

	var body apierrors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal(string(apierrors.AuthInvalidCredentials), body.Error.Code)
}

func (s *AuthHandlerTestSuite) TestLogin_MissingPassword() {
	rec := s.login(`{}`)

	s.Equal(http.StatusBadRequest, rec.Code)

	var body apierrors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal(string(apierrors.ValidationGeneral), body.Error.Code)
}

func (s *AuthHandlerTestSuite) TestLogin_MalformedBody() {
	rec := s.login(`{nope`)

	s.Equal(http.StatusBadRequest, rec.Code)

	var body apierrors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal(string(apierrors.ValidationInvalidFormat), body.Error.Code)
}
