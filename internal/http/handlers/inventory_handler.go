package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "luxemarket/internal/log"
	"luxemarket/internal/services"
	"luxemarket/internal/validate"
)

type InventoryHandler struct {
	Inv *services.InventoryService
}

func (h *InventoryHandler) Check(c *fiber.Ctx) error {
	productID, ok := validate.ID(c.Query("productId"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "missing productId",
		})
	}

	seller, ok := validate.Seller(c.Query("seller"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "enter a valid seller",
		})
	}

	avail, err := h.Inv.CheckAvailability(productID, seller)
	if err != nil {
		status := statusOf(err)
		if status == fiber.StatusInternalServerError {
			applog.Error(c, "availability.fail", err, map[string]any{"product": productID})
		}
		return c.Status(status).JSON(fiber.Map{
			"error": publicMessage(err),
		})
	}
	return c.JSON(avail)
}
