package guest

import (
	"github.com/gofiber/fiber/v2"
)

type idPayload struct {
	ID string `json:"id"`
}

// Approve moves a guest to APPROVED, crediting its promoter. Calling
// it on an already approved guest succeeds without further effect, so
// it also serves as the restore action for rejected guests.
func (g *Controller) Approve(c *fiber.Ctx) error {
	var payload idPayload
	if err := c.BodyParser(&payload); err != nil {
		return fiber.ErrBadRequest
	}

	guest, err := g.service.Approve(payload.ID)
	if err != nil {
		return apiError(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "guest": guest})
}
