package guest

import (
	"github.com/gofiber/fiber/v2"
)

// Delete removes a guest, reversing any ledger credit it caused
func (g *Controller) Delete(c *fiber.Ctx) error {
	var payload idPayload
	if err := c.BodyParser(&payload); err != nil {
		return fiber.ErrBadRequest
	}

	if err := g.service.Delete(payload.ID); err != nil {
		return apiError(c, err)
	}

	return c.JSON(fiber.Map{"success": true})
}
