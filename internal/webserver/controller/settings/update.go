package settings

import (
	"github.com/gofiber/fiber/v2"
)

// Update upserts the posted key/value pairs in one transaction
func (s *Controller) Update(c *fiber.Ctx) error {
	values := map[string]string{}
	if err := c.BodyParser(&values); err != nil {
		return fiber.ErrBadRequest
	}

	if err := s.repository.SetAll(values); err != nil {
		return fiber.ErrInternalServerError
	}

	return c.JSON(fiber.Map{"success": true})
}
