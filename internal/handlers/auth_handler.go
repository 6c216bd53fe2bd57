package handlers

import (
	"errors"
	"net/http"

	"fintrack/internal/dto"
	apierrors "fintrack/internal/errors"
	"fintrack/internal/services"

	"github.com/labstack/echo/v4"
)

// AuthHandler handles the single-owner login endpoint
type AuthHandler struct {
	tokenService services.TokenServiceInterface
	metrics      services.MetricsRecorderInterface
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(tokenService services.TokenServiceInterface, metrics services.MetricsRecorderInterface) *AuthHandler {
	return &AuthHandler{
		tokenService: tokenService,
		metrics:      metrics,
	}
}

// Login verifies the owner password and issues a session token
func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("Malformed request body"))
	}
	if err := c.Validate(&req); err != nil {
		return SendValidationError(c, fieldErrors(err))
	}

	token, expiresAt, err := h.tokenService.Login(req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidPassword) {
			h.metrics.IncrementCounter("login_attempt", map[string]string{"status": "rejected"})
			return SendError(c, apierrors.AuthInvalidCredentials)
		}
		return SendSystemError(c, err)
	}

	h.metrics.IncrementCounter("login_attempt", map[string]string{"status": "accepted"})

	return c.JSON(http.StatusOK, dto.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
	})
}
