package promoter

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// Stats returns the logged-in promoter's current invite count and the
// next reward tier it has not reached yet.
func (p *Controller) Stats(c *fiber.Ctx) error {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return fiber.ErrUnauthorized
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return fiber.ErrUnauthorized
	}
	id, _ := claims["id"].(string)

	promoter, err := p.repository.FindByID(id)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if promoter == nil {
		return fiber.ErrUnauthorized
	}

	return c.JSON(fiber.Map{
		"promoter": promoter,
		"nextTier": promoter.NextTier(),
	})
}
