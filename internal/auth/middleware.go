package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/andrewserrazina/friendly-paws-backend/pkg/util"
)

const identityKey = "auth_identity"

// Middleware validates bearer tokens on protected routes and stores
// the resolved identity for downstream handlers. Every protected route
// requires some valid token; there is no per-route variation.
type Middleware struct {
	tokens *TokenManager
}

// NewMiddleware constructs the auth gateway.
func NewMiddleware(tokens *TokenManager) *Middleware {
	return &Middleware{tokens: tokens}
}

// Handle enforces authentication for protected routes.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewUnauthorized("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized("invalid authorization header")
	}

	claims, err := m.tokens.Parse(parts[1])
	if err != nil {
		if err == ErrTokenExpired {
			return apperrors.NewUnauthorized("token expired")
		}
		return apperrors.NewUnauthorized("invalid token")
	}

	c.Locals(identityKey, claims.Subject)
	return c.Next()
}

// IdentityFromContext retrieves the authenticated identity.
func IdentityFromContext(c *fiber.Ctx) (string, bool) {
	val := c.Locals(identityKey)
	if val == nil {
		return "", false
	}
	identity, ok := val.(string)
	return identity, ok && identity != ""
}
