package middleware

import (
	"errors"

	apierrors "fintrack/internal/errors"
	"fintrack/internal/handlers"
	"fintrack/internal/services"

	"github.com/labstack/echo/v4"
)

const (
	// OwnerClaimsContextKey is the context key for the validated owner claims
	OwnerClaimsContextKey = "owner_claims"
)

// OwnerAuth guards routes with the owner session token. When auth is
// disabled in the configuration the middleware is a pass-through; this is
// a single-user system and local deployments commonly run open.
func OwnerAuth(tokenService services.TokenServiceInterface, enabled bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !enabled {
				return next(c)
			}

			token, err := tokenService.ExtractTokenFromHeader(c.Request().Header.Get("Authorization"))
			if err != nil {
				return handlers.SendError(c, apierrors.AuthMissingToken)
			}

			claims, err := tokenService.ValidateToken(token)
			if err != nil {
				if errors.Is(err, services.ErrExpiredToken) {
					return handlers.SendError(c, apierrors.AuthExpiredToken)
				}
				return handlers.SendError(c, apierrors.AuthInvalidTokenFormat)
			}

			c.Set(OwnerClaimsContextKey, claims)
			return next(c)
		}
	}
}
