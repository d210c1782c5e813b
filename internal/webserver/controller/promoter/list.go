package promoter

import (
	"github.com/gofiber/fiber/v2"
)

// List returns all promoters ordered by invite count, for the admin
// dashboard leaderboard.
func (p *Controller) List(c *fiber.Ctx) error {
	promoters, err := p.repository.List()
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return c.JSON(promoters)
}
