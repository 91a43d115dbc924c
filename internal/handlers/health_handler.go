package handlers

import (
	"time"

	"github.com/costasuite/backend/internal/database"
	"github.com/costasuite/backend/internal/dto"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	now := time.Now().UTC().Format(time.RFC3339)

	if err := database.Ping(h.db); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.HealthResponse{
			Success:   false,
			Status:    "unhealthy",
			Database:  "disconnected",
			Timestamp: now,
		})
	}

	return c.JSON(dto.HealthResponse{
		Success:   true,
		Status:    "healthy",
		Database:  "connected",
		Timestamp: now,
	})
}

func (h *HealthHandler) Banner(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success":   true,
		"message":   "CostaSuite API is running",
		"version":   "1.0.0",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
