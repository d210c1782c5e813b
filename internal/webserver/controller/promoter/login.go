package promoter

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

type loginPayload struct {
	Code     string `json:"code"`
	Password string `json:"password"`
}

// Login authenticates a promoter by code and password and hands back
// a bearer token for the dashboard endpoints.
func (p *Controller) Login(c *fiber.Ctx) error {
	var payload loginPayload
	if err := c.BodyParser(&payload); err != nil {
		return fiber.ErrBadRequest
	}

	promoter, err := p.service.Login(payload.Code, payload.Password)
	if err != nil {
		return apiError(c, err)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  promoter.ID,
		"exp": jwt.NewNumericDate(time.Now().Add(p.config.SessionTimeout)),
	})
	signedToken, err := token.SignedString(p.config.Secret)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return c.JSON(fiber.Map{"promoter": promoter, "token": signedToken})
}
