package main

import "time"

type Config struct {
	// Port defines the port number on which the webserver listens for requests
	Port string `env:"PORT" env-default:"3000"`
	// DbPath points to the SQLite database file holding guests, promoters and settings
	DbPath string `env:"DB_PATH" env-default:"doorlist.db"`
	// EventName is used in outbound emails and startup output
	EventName string `env:"EVENT_NAME" env-default:"Doorlist"`
	// AdminPassword protects every admin endpoint; the server refuses to start without it
	AdminPassword string `env:"ADMIN_PASSWORD"`
	// JwtSecret signs promoter session tokens; a random one is
	// generated at startup when unset, invalidating sessions on restart
	JwtSecret string `env:"JWT_SECRET"`
	// SessionTimeout controls how long promoter sessions last
	SessionTimeout time.Duration `env:"SESSION_TIMEOUT" env-default:"24h"`
	// RateLimitMax is the number of requests per client allowed on the
	// public endpoints during one rate-limit window
	RateLimitMax    int           `env:"RATE_LIMIT_MAX" env-default:"100"`
	RateLimitWindow time.Duration `env:"RATE_LIMIT_WINDOW" env-default:"15m"`
	// StaticPath optionally points to a prebuilt UI bundle served at the root
	StaticPath string `env:"STATIC_PATH"`
	// SMTP settings for the outbound pass emails; dispatch is disabled when empty
	SmtpServer   string `env:"SMTP_SERVER"`
	SmtpPort     int    `env:"SMTP_PORT" env-default:"587"`
	SmtpUser     string `env:"SMTP_USER"`
	SmtpPassword string `env:"SMTP_PASSWORD"`
}
