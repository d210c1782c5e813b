package webserver

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type Config struct {
	Version         string
	AdminPassword   string
	JwtSecret       []byte
	SessionTimeout  time.Duration
	RateLimitMax    int
	RateLimitWindow time.Duration
	StaticPath      string
}

// New builds a new Fiber application and sets up the required routes
func New(cfg Config, controllers Controllers) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               cfg.Version,
		DisableStartupMessage: false,
		BodyLimit:             10 * 1024,
	})

	app.Use(cors.New())
	app.Use(SecurityHeaders)

	routes(app, controllers, cfg)

	return app
}
