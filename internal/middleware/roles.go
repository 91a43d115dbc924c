package middleware

import (
	"github.com/costasuite/backend/internal/dto"
	"github.com/costasuite/backend/internal/models"
	"github.com/gofiber/fiber/v2"
)

// RequireRole allows the request through only when the token's role is
// one of the given roles. Runs after JWTProtected.
func RequireRole(roles ...models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, err := Actor(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Unauthorized"))
		}

		for _, role := range roles {
			if actor.Role == role {
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(dto.Fail("Insufficient permissions"))
	}
}
