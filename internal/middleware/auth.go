package middleware

import (
	"errors"

	"github.com/costasuite/backend/internal/config"
	"github.com/costasuite/backend/internal/credentials"
	"github.com/costasuite/backend/internal/dto"
	"github.com/costasuite/backend/internal/policy"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// JWTProtected rejects requests without a valid bearer token.
func JWTProtected(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).
				JSON(dto.Fail("Unauthorized: invalid or expired token"))
		},
	})
}

// Actor extracts the authenticated caller from the verified JWT that
// JWTProtected stored in the context.
func Actor(c *fiber.Ctx) (policy.Actor, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return policy.Actor{}, errors.New("no token in context")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return policy.Actor{}, errors.New("invalid claims")
	}

	claims, err := credentials.FromMapClaims(mapClaims)
	if err != nil {
		return policy.Actor{}, err
	}

	return policy.Actor{ID: claims.UserID, Email: claims.Email, Role: claims.Role}, nil
}
