package guest

import (
	"github.com/doorlist/doorlist/internal/guestlist"
	"github.com/gofiber/fiber/v2"
)

// Register admits a new guest to the list in PENDING status
func (g *Controller) Register(c *fiber.Ctx) error {
	var form guestlist.GuestForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.ErrBadRequest
	}

	guest, err := g.service.Register(form)
	if err != nil {
		return apiError(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "id": guest.ID})
}
