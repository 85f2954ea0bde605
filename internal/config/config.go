// Package config loads application configuration from environment
// variables. A .env file in the working directory is honored when
// present so local development does not need exported variables.
package config

import (
	"encoding/hex"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration values. Each field corresponds
// to an environment variable. Pricing lives here rather than in code so
// the operator can change rates without a deploy; the processor receives
// the values at construction and never reads the environment itself.
type Config struct {
	Env  string // application environment (e.g. "dev", "prod")
	Port string // HTTP port to listen on

	DBUser string // database username
	DBPass string // database password (optional)
	DBHost string // database host address
	DBPort string // database port number
	DBName string // database name

	PricePerSeat  int64 // price per seat in rand
	MinimumCharge int64 // floor applied to the seat total

	SMTPHost string // outgoing mail host (empty disables the mailer)
	SMTPPort string // outgoing mail port
	SMTPUser string // SMTP auth username (optional)
	SMTPPass string // SMTP auth password (optional)
	MailFrom string // From address on confirmation mail

	GoogleClientID     string        // OAuth2 client id for the calendar account
	GoogleClientSecret string        // OAuth2 client secret
	GoogleRedirectURL  string        // redirect URL registered with Google
	GoogleCalendarID   string        // calendar holding cruise slots
	BookingTimeZone    string        // IANA zone for calendar events
	EventDuration      time.Duration // cruise length used when creating events

	AdminKeyHash string // bcrypt hash of the admin key (empty disables admin routes)
	StateSecret  string // secret signing the OAuth connect state token
	TokenSealKey []byte // 32-byte AES key sealing the stored refresh token
}

// Load reads configuration from the environment. Database settings and
// the port are required and missing values exit with a fatal log
// message, matching how the rest of the service treats unusable startup
// state. Everything else has a sensible default or is optional.
func Load() Config {
	// Missing .env is fine; real deployments export their variables.
	_ = godotenv.Load()

	return Config{
		Env:  getenv("APP_ENV", "dev"),
		Port: must("APP_PORT"),

		DBUser: must("DB_USER"),
		DBPass: os.Getenv("DB_PASS"),
		DBHost: must("DB_HOST"),
		DBPort: must("DB_PORT"),
		DBName: must("DB_NAME"),

		PricePerSeat:  getint64("PRICE_PER_SEAT", 200),
		MinimumCharge: getint64("MINIMUM_CHARGE", 1000),

		SMTPHost: os.Getenv("SMTP_HOST"),
		SMTPPort: getenv("SMTP_PORT", "587"),
		SMTPUser: os.Getenv("SMTP_USER"),
		SMTPPass: os.Getenv("SMTP_PASS"),
		MailFrom: getenv("MAIL_FROM", "bookings@inspirationcruises.example"),

		GoogleClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		GoogleRedirectURL:  os.Getenv("GOOGLE_REDIRECT_URL"),
		GoogleCalendarID:   getenv("GOOGLE_CALENDAR_ID", "primary"),
		BookingTimeZone:    getenv("BOOKING_TIMEZONE", "Africa/Johannesburg"),
		EventDuration:      parseDur(getenv("EVENT_DURATION", "2h")),

		AdminKeyHash: os.Getenv("ADMIN_KEY_HASH"),
		StateSecret:  getenv("STATE_SECRET", "river-cruise-state"),
		TokenSealKey: sealKey(os.Getenv("TOKEN_SEAL_KEY")),
	}
}

// must retrieves a required environment variable. If the variable is
// unset or empty the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getint64(key string, def int64) int64 {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < 0 {
		log.Fatalf("invalid value for %s: %q", key, s)
	}
	return n
}

func parseDur(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		log.Fatalf("invalid duration: %q", s)
	}
	return d
}

// sealKey decodes the hex-encoded token seal key. An empty variable is
// allowed (the refresh token is then stored unsealed, suitable only for
// dev); anything else must decode to exactly 32 bytes.
func sealKey(s string) []byte {
	if s == "" {
		return nil
	}
	b, err := hex.DecodeString(s)
	if err != nil || len(b) != 32 {
		log.Fatalf("TOKEN_SEAL_KEY must be 64 hex chars (32 bytes)")
	}
	return b
}
