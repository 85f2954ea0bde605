package main

import (
	"context"
	"log"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/river-cruise-booking/internal/booking"
	"github.com/iliyamo/river-cruise-booking/internal/calendar"
	"github.com/iliyamo/river-cruise-booking/internal/config"
	"github.com/iliyamo/river-cruise-booking/internal/database"
	"github.com/iliyamo/river-cruise-booking/internal/handler"
	"github.com/iliyamo/river-cruise-booking/internal/mailer"
	"github.com/iliyamo/river-cruise-booking/internal/queue"
	"github.com/iliyamo/river-cruise-booking/internal/repository"
	"github.com/iliyamo/river-cruise-booking/internal/router"
	queuepub "github.com/iliyamo/river-cruise-booking/internal/service"
)

func main() {
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()
	if err := database.Migrate(context.Background(), db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	// Redis is optional; with no server the slots endpoint just goes
	// uncached.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable, response cache disabled")
	}

	bookingRepo := repository.NewBookingRepo(db)
	tokenRepo := repository.NewCalendarTokenRepo(db, cfg.TokenSealKey)

	cal := calendar.New(calendar.Config{
		ClientID:      cfg.GoogleClientID,
		ClientSecret:  cfg.GoogleClientSecret,
		RedirectURL:   cfg.GoogleRedirectURL,
		CalendarID:    cfg.GoogleCalendarID,
		TimeZone:      cfg.BookingTimeZone,
		EventDuration: cfg.EventDuration,
	}, tokenRepo)

	pricing := booking.PricingPolicy{PricePerSeat: cfg.PricePerSeat, MinimumCharge: cfg.MinimumCharge}
	processor := booking.NewProcessor(pricing, bookingRepo, queuepub.QueueNotifier{}, cal, cal)

	// Confirmation consumer: emails the customer and writes the audit
	// log. Runs for the life of the process with its own reconnect loop.
	m := mailer.New(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.MailFrom)
	if m == nil {
		log.Println("no SMTP host configured, confirmation mail disabled")
	}
	go func() {
		if err := queue.StartBookingConsumer(m); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	e := echo.New()
	router.RegisterPublic(e,
		handler.NewFormHandler(cal, pricing),
		handler.NewSlotsHandler(cal),
		handler.NewBookingHandler(processor),
		config.LoadCacheConfig(), rdb)
	router.RegisterAdmin(e, handler.NewAdminHandler(cal, bookingRepo, cfg.StateSecret), cfg.AdminKeyHash)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
