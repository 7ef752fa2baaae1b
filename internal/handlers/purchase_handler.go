package handlers

import (
	"log/slog"

	"github.com/Gathaus/WellnesAiApp-sub000/internal/dto"
	"github.com/Gathaus/WellnesAiApp-sub000/internal/services"
	"github.com/gofiber/fiber/v2"
)

type PurchaseHandler struct {
	purchaseService *services.PurchaseService
}

func NewPurchaseHandler(purchaseService *services.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{purchaseService: purchaseService}
}

// HandleEvent applies a store purchase notification relayed by the shell.
func (h *PurchaseHandler) HandleEvent(c *fiber.Ctx) error {
	var webhook dto.PurchaseWebhook
	if err := c.BodyParser(&webhook); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid purchase event payload",
		})
	}

	status, applied, err := h.purchaseService.HandleEvent(&webhook.Event)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	slog.Info("purchase event processed", "component", "bridge", "event_type", webhook.Event.Type, "applied", applied)
	return c.JSON(dto.PurchaseResponse{Received: true, Applied: applied, Status: string(status)})
}
