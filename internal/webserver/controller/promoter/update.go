package promoter

import (
	"github.com/doorlist/doorlist/internal/guestlist"
	"github.com/gofiber/fiber/v2"
)

type updatePayload struct {
	ID string `json:"id"`
	guestlist.PromoterForm
}

// Update edits a promoter; a code rename cascades to every guest that
// referenced the old code.
func (p *Controller) Update(c *fiber.Ctx) error {
	var payload updatePayload
	if err := c.BodyParser(&payload); err != nil {
		return fiber.ErrBadRequest
	}

	if err := p.service.Update(payload.ID, payload.PromoterForm); err != nil {
		return apiError(c, err)
	}

	return c.JSON(fiber.Map{"success": true})
}
