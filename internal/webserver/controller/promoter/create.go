package promoter

import (
	"github.com/doorlist/doorlist/internal/guestlist"
	"github.com/gofiber/fiber/v2"
)

// Create registers a new promoter with an empty ledger
func (p *Controller) Create(c *fiber.Ctx) error {
	var form guestlist.PromoterForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.ErrBadRequest
	}

	promoter, err := p.service.Create(form)
	if err != nil {
		return apiError(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "id": promoter.ID})
}
