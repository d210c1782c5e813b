package webserver

import (
	"crypto/subtle"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// SecurityHeaders sets the hardening headers the service sends on
// every response.
func SecurityHeaders(c *fiber.Ctx) error {
	c.Set("X-Content-Type-Options", "nosniff")
	c.Set("X-Frame-Options", "DENY")
	c.Set("X-XSS-Protection", "1; mode=block")
	return c.Next()
}

// RequireAdmin checks the X-Admin-Password header against the
// configured secret on every request; there is no server-side session.
func RequireAdmin(adminPassword string) func(*fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		if adminPassword == "" {
			return fiber.ErrInternalServerError
		}
		provided := c.Get("X-Admin-Password")
		if subtle.ConstantTimeCompare([]byte(provided), []byte(adminPassword)) != 1 {
			return fiber.ErrUnauthorized
		}
		return c.Next()
	}
}

// RateLimit caps requests per client IP over a fixed window. It guards
// the public registration and login endpoints only.
func RateLimit(max int, window time.Duration) func(*fiber.Ctx) error {
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: window,
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, try again later",
			})
		},
	})
}
