package guest

import (
	"github.com/gofiber/fiber/v2"
)

// Reject moves a guest to REJECTED whatever its prior status
func (g *Controller) Reject(c *fiber.Ctx) error {
	var payload idPayload
	if err := c.BodyParser(&payload); err != nil {
		return fiber.ErrBadRequest
	}

	if err := g.service.Reject(payload.ID); err != nil {
		return apiError(c, err)
	}

	return c.JSON(fiber.Map{"success": true})
}
