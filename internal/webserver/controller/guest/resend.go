package guest

import (
	"github.com/gofiber/fiber/v2"
)

// ResendQr sends the guest's QR pass to its email address again
func (g *Controller) ResendQr(c *fiber.Ctx) error {
	var payload idPayload
	if err := c.BodyParser(&payload); err != nil {
		return fiber.ErrBadRequest
	}

	if err := g.service.ResendQr(payload.ID); err != nil {
		return apiError(c, err)
	}

	return c.JSON(fiber.Map{"success": true})
}
