package guest

import (
	"github.com/gofiber/fiber/v2"
)

// Reset wipes the whole guest list to start a new event. Promoter
// invite totals survive the reset.
func (g *Controller) Reset(c *fiber.Ctx) error {
	if err := g.repository.DeleteAll(); err != nil {
		return fiber.ErrInternalServerError
	}

	return c.JSON(fiber.Map{"success": true})
}
