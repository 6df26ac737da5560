package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/example/activ/internal/config"
	"github.com/example/activ/internal/utils"
)

const memberContextKey = "currentMemberID"
const emailContextKey = "currentMemberEmail"

// AuthMiddleware validates session tokens and loads the authenticated member
// identity into the request context. Token verification itself is the only
// auth this layer does; routes decide whether to mount it.
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing authorization header")
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid authorization header")
		}

		memberID, email, err := utils.ParseToken(cfg.JWTSecret, parts[1])
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
		}

		c.Locals(memberContextKey, memberID)
		c.Locals(emailContextKey, email)
		return c.Next()
	}
}

// GetCurrentMemberID extracts the authenticated member ID from context.
func GetCurrentMemberID(c *fiber.Ctx) (uuid.UUID, bool) {
	value := c.Locals(memberContextKey)
	if value == nil {
		return uuid.Nil, false
	}

	if id, ok := value.(uuid.UUID); ok {
		return id, true
	}

	return uuid.Nil, false
}

// GetCurrentMemberEmail extracts the authenticated member email from context.
func GetCurrentMemberEmail(c *fiber.Ctx) (string, bool) {
	value := c.Locals(emailContextKey)
	if value == nil {
		return "", false
	}

	if email, ok := value.(string); ok {
		return email, true
	}

	return "", false
}
