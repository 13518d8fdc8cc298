package middleware

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"

	"laptek/internal/infrastructure/firebase"
	"laptek/pkg/errors"
	"laptek/pkg/response"
)

// Context keys set for authenticated requests.
const (
	ContextUID   = "uid"
	ContextEmail = "email"
	ContextAdmin = "admin"
)

type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (*firebase.Identity, error)
}

type AuthMiddleware struct {
	verifier TokenVerifier
}

func NewAuthMiddleware(verifier TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
	}
}

// Authenticate rejects requests without a valid Firebase ID token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Error(c, errors.Unauthorized("Authorization header is required", nil))
		}

		token, ok := bearerToken(authHeader)
		if !ok {
			return response.Error(c, errors.Unauthorized("Invalid authorization format", nil))
		}

		identity, err := m.verifier.VerifyToken(c.Request().Context(), token)
		if err != nil {
			return response.Error(c, errors.Unauthorized("Invalid or expired token", err))
		}

		setIdentity(c, identity)
		return next(c)
	}
}

// OptionalAuth attaches the identity when a valid token is present and lets
// anonymous or badly authenticated requests through untouched.
func (m *AuthMiddleware) OptionalAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c.Request().Header.Get("Authorization"))
		if !ok {
			return next(c)
		}

		identity, err := m.verifier.VerifyToken(c.Request().Context(), token)
		if err != nil {
			return next(c)
		}

		setIdentity(c, identity)
		return next(c)
	}
}

func bearerToken(header string) (string, bool) {
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

func setIdentity(c echo.Context, identity *firebase.Identity) {
	c.Set(ContextUID, identity.UID)
	c.Set(ContextEmail, identity.Email)
	c.Set(ContextAdmin, identity.Admin)
}
