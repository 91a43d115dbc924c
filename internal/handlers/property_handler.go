package handlers

import (
	"errors"
	"log/slog"

	"github.com/costasuite/backend/internal/dto"
	"github.com/costasuite/backend/internal/middleware"
	"github.com/costasuite/backend/internal/services"
	"github.com/costasuite/backend/internal/validation"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type PropertyHandler struct {
	propertyService *services.PropertyService
}

func NewPropertyHandler(propertyService *services.PropertyService) *PropertyHandler {
	return &PropertyHandler{propertyService: propertyService}
}

func (h *PropertyHandler) List(c *fiber.Ctx) error {
	var q dto.PropertyQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid query parameters"))
	}
	if details := validation.Struct(&q); details != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.FailValidation(details))
	}

	resp, err := h.propertyService.List(&q)
	if err != nil {
		slog.Error("property list failed", "error", err, "path", c.Path())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("Internal server error"))
	}

	return c.JSON(dto.OK(resp))
}

func (h *PropertyHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid property ID"))
	}

	resp, err := h.propertyService.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrPropertyNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("Property not found"))
		}
		slog.Error("property get failed", "error", err, "id", id)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("Internal server error"))
	}

	return c.JSON(dto.OK(resp))
}

func (h *PropertyHandler) Create(c *fiber.Ctx) error {
	actor, err := middleware.Actor(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Unauthorized"))
	}

	var req dto.CreatePropertyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid request body"))
	}
	if details := validation.Struct(&req); details != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.FailValidation(details))
	}

	resp, err := h.propertyService.Create(actor, &req)
	if err != nil {
		slog.Error("property create failed", "error", err, "actor", actor.ID)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("Internal server error"))
	}

	return c.Status(fiber.StatusCreated).JSON(dto.OK(resp))
}

func (h *PropertyHandler) Update(c *fiber.Ctx) error {
	actor, err := middleware.Actor(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Unauthorized"))
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid property ID"))
	}

	var req dto.UpdatePropertyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid request body"))
	}
	if details := validation.Struct(&req); details != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.FailValidation(details))
	}

	resp, err := h.propertyService.Update(id, actor, &req)
	if err != nil {
		return h.mapModifyError(c, err, id)
	}

	return c.JSON(dto.OK(resp))
}

func (h *PropertyHandler) Delete(c *fiber.Ctx) error {
	actor, err := middleware.Actor(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Unauthorized"))
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid property ID"))
	}

	resp, err := h.propertyService.Delete(id, actor)
	if err != nil {
		return h.mapModifyError(c, err, id)
	}

	return c.JSON(dto.OK(resp))
}

func (h *PropertyHandler) mapModifyError(c *fiber.Ctx, err error, id uuid.UUID) error {
	switch {
	case errors.Is(err, services.ErrPropertyNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.Fail("Property not found"))
	case errors.Is(err, services.ErrNotPropertyOwner):
		return c.Status(fiber.StatusForbidden).JSON(dto.Fail("Not authorized to modify this property"))
	default:
		slog.Error("property modify failed", "error", err, "id", id)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("Internal server error"))
	}
}
