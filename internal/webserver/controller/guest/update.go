package guest

import (
	"github.com/doorlist/doorlist/internal/guestlist"
	"github.com/gofiber/fiber/v2"
)

type updatePayload struct {
	ID string `json:"id"`
	guestlist.GuestForm
}

// Update edits a guest's identity fields; status and check-in state
// are not reachable from here.
func (g *Controller) Update(c *fiber.Ctx) error {
	var payload updatePayload
	if err := c.BodyParser(&payload); err != nil {
		return fiber.ErrBadRequest
	}

	if err := g.service.UpdateProfile(payload.ID, payload.GuestForm); err != nil {
		return apiError(c, err)
	}

	return c.JSON(fiber.Map{"success": true})
}
