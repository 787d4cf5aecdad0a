// Package middleware holds the REST-specific echo middleware: error rendering and access control.
package middleware

import (
	"strings"

	deliverycontext "deliveryzone/internal/delivery/context"
	"deliveryzone/internal/delivery/http/response"
	domainerrors "deliveryzone/internal/domain/errors"
	"deliveryzone/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	verifier service.TokenVerifier
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(verifier service.TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

// Authenticate rejects requests without a valid access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, domainerrors.ErrUnauthenticated.ErrorCode(), "Authorization header is missing")
		}

		if !m.attachClaims(c, authHeader) {
			return response.Unauthorized(c, domainerrors.ErrUnauthenticated.ErrorCode(), "Invalid or expired token")
		}

		return next(c)
	}
}

// OptionalAuthenticate attaches claims when a valid token is present and lets
// anonymous requests through. Resolvers decide per field what needs a caller.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if authHeader := c.Request().Header.Get(echo.HeaderAuthorization); authHeader != "" {
			if !m.attachClaims(c, authHeader) {
				return response.Unauthorized(c, domainerrors.ErrUnauthenticated.ErrorCode(), "Invalid or expired token")
			}
		}

		return next(c)
	}
}

// RequireRole passes callers holding any of roles. It must run after Authenticate.
func (m *AuthMiddleware) RequireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims := GetClaims(c)
			if claims == nil {
				return response.Unauthorized(c, domainerrors.ErrUnauthenticated.ErrorCode(), domainerrors.ErrUnauthenticated.Message())
			}

			if !claims.HasAnyRole(roles...) {
				return response.Forbidden(c, domainerrors.ErrForbidden.ErrorCode(),
					"Permission denied: requires one of roles "+strings.Join(roles, ", "))
			}

			return next(c)
		}
	}
}

// GetClaims returns the claims attached by Authenticate, or nil.
func GetClaims(c echo.Context) *service.Claims {
	return deliverycontext.GetClaims(c.Request().Context())
}

func (m *AuthMiddleware) attachClaims(c echo.Context, authHeader string) bool {
	tokenString, ok := strings.CutPrefix(authHeader, bearerPrefix)
	if !ok || tokenString == "" {
		return false
	}

	claims, err := m.verifier.ValidateToken(tokenString)
	if err != nil {
		return false
	}

	ctx := deliverycontext.WithClaims(c.Request().Context(), claims)
	c.SetRequest(c.Request().WithContext(ctx))

	return true
}
