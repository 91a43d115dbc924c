package routes

import (
	"time"

	"github.com/costasuite/backend/internal/config"
	"github.com/costasuite/backend/internal/dto"
	"github.com/costasuite/backend/internal/handlers"
	"github.com/costasuite/backend/internal/middleware"
	"github.com/costasuite/backend/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	propertyHandler *handlers.PropertyHandler,
	healthHandler *handlers.HealthHandler,
) {
	app.Get("/", healthHandler.Banner)
	app.Get("/health", healthHandler.Check)

	api := app.Group("/api")

	// General API rate limiter: 100 req/15min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               100,
		Expiration:        15 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	// Auth — public, with a stricter limit
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)

	// Properties — reads are public, writes need agent or admin
	properties := api.Group("/properties")
	properties.Get("/", propertyHandler.List)
	properties.Get("/:id", propertyHandler.Get)

	agentOrAdmin := []fiber.Handler{
		middleware.JWTProtected(cfg),
		middleware.RequireRole(models.RoleAgent, models.RoleAdmin),
	}
	properties.Post("/", append(agentOrAdmin, propertyHandler.Create)...)
	properties.Put("/:id", append(agentOrAdmin, propertyHandler.Update)...)
	properties.Delete("/:id", append(agentOrAdmin, propertyHandler.Delete)...)

	// Users — admin only, all of them
	users := api.Group("/users",
		middleware.JWTProtected(cfg),
		middleware.RequireRole(models.RoleAdmin),
	)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.Get)
	users.Post("/", userHandler.Create)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Unknown routes get the same envelope
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(dto.Fail("Route not found"))
	})
}
