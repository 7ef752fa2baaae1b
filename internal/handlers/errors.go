package handlers

import (
	"errors"
	"log/slog"

	"github.com/Gathaus/WellnesAiApp-sub000/internal/dto"
	"github.com/Gathaus/WellnesAiApp-sub000/internal/engine"
	"github.com/gofiber/fiber/v2"
)

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: message})
}

func notFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: true, Message: message})
}

// respondError maps engine errors onto HTTP statuses. Only validation errors
// expose their message.
func respondError(c *fiber.Ctx, err error) error {
	if errors.Is(err, engine.ErrValidation) {
		return badRequest(c, err.Error())
	}
	slog.Error("bridge request failed", "component", "bridge", "method", c.Method(), "path", c.Path(), "error", err)
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: true, Message: "Internal server error"})
}
