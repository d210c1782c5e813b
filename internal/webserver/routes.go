package webserver

import (
	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
)

func routes(app *fiber.App, controllers Controllers, cfg Config) {
	requireAdmin := RequireAdmin(cfg.AdminPassword)
	rateLimit := RateLimit(cfg.RateLimitMax, cfg.RateLimitWindow)

	promoterSession := jwtware.New(jwtware.Config{
		SigningKey:    cfg.JwtSecret,
		SigningMethod: "HS256",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
		},
	})

	app.Get("/api/settings", controllers.Settings.List)
	app.Post("/api/register", rateLimit, controllers.Guests.Register)

	app.Post("/api/promoter/login", rateLimit, controllers.Promoters.Login)
	app.Get("/api/promoter/stats", promoterSession, controllers.Promoters.Stats)

	app.Get("/api/guests", requireAdmin, controllers.Guests.List)
	app.Post("/api/approve", requireAdmin, controllers.Guests.Approve)
	app.Post("/api/reject", requireAdmin, controllers.Guests.Reject)
	app.Post("/api/update-guest", requireAdmin, controllers.Guests.Update)
	app.Post("/api/delete-guest", requireAdmin, controllers.Guests.Delete)
	app.Post("/api/manual-checkin", requireAdmin, controllers.Guests.ManualCheckIn)
	app.Post("/api/resend-qr", requireAdmin, controllers.Guests.ResendQr)
	app.Post("/api/reset", requireAdmin, controllers.Guests.Reset)

	app.Post("/api/scan", requireAdmin, controllers.Scanner.Scan)

	app.Post("/api/admin/settings", requireAdmin, controllers.Settings.Update)
	app.Get("/api/admin/promoters", requireAdmin, controllers.Promoters.List)
	app.Post("/api/admin/create-promoter", requireAdmin, controllers.Promoters.Create)
	app.Post("/api/admin/update-promoter", requireAdmin, controllers.Promoters.Update)
	app.Post("/api/admin/delete-promoter", requireAdmin, controllers.Promoters.Delete)

	if cfg.StaticPath != "" {
		app.Static("/", cfg.StaticPath)
	}
}
