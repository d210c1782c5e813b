package webserver

import (
	"github.com/doorlist/doorlist/internal/guestlist"
	"github.com/doorlist/doorlist/internal/model"
	"github.com/doorlist/doorlist/internal/webserver/controller/guest"
	"github.com/doorlist/doorlist/internal/webserver/controller/promoter"
	"github.com/doorlist/doorlist/internal/webserver/controller/scanner"
	"github.com/doorlist/doorlist/internal/webserver/controller/settings"
	"gorm.io/gorm"
)

type Controllers struct {
	Guests    *guest.Controller
	Promoters *promoter.Controller
	Scanner   *scanner.Controller
	Settings  *settings.Controller
}

func SetupControllers(cfg Config, db *gorm.DB, sender guestlist.Sender, eventName string) Controllers {
	guestsRepository := &model.GuestRepository{DB: db}
	promotersRepository := &model.PromoterRepository{DB: db}
	settingsRepository := &model.SettingsRepository{DB: db}

	guestService := guestlist.NewGuestService(db, sender, guestlist.Config{EventName: eventName})
	promoterService := guestlist.NewPromoterService(db)
	checkInService := guestlist.NewCheckInService(db)

	promoterCfg := promoter.Config{
		Secret:         cfg.JwtSecret,
		SessionTimeout: cfg.SessionTimeout,
	}

	return Controllers{
		Guests:    guest.NewController(guestService, guestsRepository),
		Promoters: promoter.NewController(promoterService, promotersRepository, promoterCfg),
		Scanner:   scanner.NewController(checkInService),
		Settings:  settings.NewController(settingsRepository),
	}
}
