package guest

import (
	"github.com/gofiber/fiber/v2"
)

// ManualCheckIn is the door staff's override: it marks a guest as
// entered even if its status is not APPROVED.
func (g *Controller) ManualCheckIn(c *fiber.Ctx) error {
	var payload idPayload
	if err := c.BodyParser(&payload); err != nil {
		return fiber.ErrBadRequest
	}

	if err := g.service.ManualCheckIn(payload.ID); err != nil {
		return apiError(c, err)
	}

	return c.JSON(fiber.Map{"success": true})
}
