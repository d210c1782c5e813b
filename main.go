package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"

	"github.com/doorlist/doorlist/internal/guestlist"
	"github.com/doorlist/doorlist/internal/infrastructure"
	"github.com/doorlist/doorlist/internal/webserver"
	"github.com/ilyakaznacheev/cleanenv"
)

var version string = "unknown"

func main() {
	var cfg Config

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatal(fmt.Errorf("Error parsing configuration from environment variables: %w", err))
	}
	if cfg.AdminPassword == "" {
		log.Fatal("ADMIN_PASSWORD is not set, refusing to start")
	}
	if cfg.JwtSecret == "" {
		secret := make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			log.Fatal(err)
		}
		cfg.JwtSecret = hex.EncodeToString(secret)
	}

	run(cfg)
}

func run(cfg Config) {
	var sender guestlist.Sender

	db := infrastructure.Connect(cfg.DbPath)

	sender = &infrastructure.NoEmail{}
	if cfg.SmtpServer != "" && cfg.SmtpUser != "" && cfg.SmtpPassword != "" {
		sender = &infrastructure.SMTP{
			Server:     cfg.SmtpServer,
			Port:       cfg.SmtpPort,
			User:       cfg.SmtpUser,
			Password:   cfg.SmtpPassword,
			SenderName: cfg.EventName,
		}
	}

	webserverConfig := webserver.Config{
		Version:         version,
		AdminPassword:   cfg.AdminPassword,
		JwtSecret:       []byte(cfg.JwtSecret),
		SessionTimeout:  cfg.SessionTimeout,
		RateLimitMax:    cfg.RateLimitMax,
		RateLimitWindow: cfg.RateLimitWindow,
		StaticPath:      cfg.StaticPath,
	}

	controllers := webserver.SetupControllers(webserverConfig, db, sender, cfg.EventName)
	app := webserver.New(webserverConfig, controllers)

	fmt.Printf("%s guest list version %s started listening on port %s\n\n", cfg.EventName, version, cfg.Port)
	if err := app.Listen(fmt.Sprintf(":%s", cfg.Port)); err != nil {
		log.Fatal(err)
	}
}
