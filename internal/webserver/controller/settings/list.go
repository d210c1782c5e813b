package settings

import (
	"github.com/gofiber/fiber/v2"
)

// List returns every setting as a flat key/value map
func (s *Controller) List(c *fiber.Ctx) error {
	values, err := s.repository.All()
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return c.JSON(values)
}
