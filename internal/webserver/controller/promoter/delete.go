package promoter

import (
	"github.com/gofiber/fiber/v2"
)

type idPayload struct {
	ID string `json:"id"`
}

// Delete removes a promoter. Guests invited by it keep the now
// ownerless code in their invited_by field.
func (p *Controller) Delete(c *fiber.Ctx) error {
	var payload idPayload
	if err := c.BodyParser(&payload); err != nil {
		return fiber.ErrBadRequest
	}

	if err := p.service.Delete(payload.ID); err != nil {
		return apiError(c, err)
	}

	return c.JSON(fiber.Map{"success": true})
}
