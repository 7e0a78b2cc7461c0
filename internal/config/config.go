package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/albertobort/boda-api/internal/timeline"
)

// Fixed facts of the wedding. Everything else comes from the environment.
const (
	weddingDateISO = "2026-11-14T12:00:00+01:00"
	venueLatitude  = 38.4781 // Jumilla, Murcia
	venueLongitude = -1.3259
	venueTimezone  = "Europe/Madrid"

	// Guests can start uploading photos the day before the wedding.
	defaultGalleryEnabledFrom = "2026-11-13T00:00:00+01:00"
)

// Config holds everything the server needs to run.
type Config struct {
	DatabaseURL       string
	RedisURL          string
	Port              string
	AdminPassword     string
	OpenWeatherAPIKey string // empty disables the forecast widget
	GalleryBaseURL    string

	WeddingDate        time.Time
	Latitude           float64
	Longitude          float64
	Venue              *time.Location
	Schedule           []timeline.Event
	GalleryEnabledFrom time.Time
}

// Load reads configuration from the environment, with .env support.
// DATABASE_URL, REDIS_URL and ADMIN_PASSWORD are required; the
// OpenWeatherMap key is optional and its absence only disables the
// weather widget.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		RedisURL:          os.Getenv("REDIS_URL"),
		AdminPassword:     os.Getenv("ADMIN_PASSWORD"),
		OpenWeatherAPIKey: os.Getenv("OPENWEATHER_API_KEY"),
		GalleryBaseURL:    getenvDefault("GALLERY_BASE_URL", ""),
		Port:              getenvDefault("PORT", "8080"),
		Latitude:          venueLatitude,
		Longitude:         venueLongitude,
	}

	for key, v := range map[string]string{
		"DATABASE_URL":   cfg.DatabaseURL,
		"REDIS_URL":      cfg.RedisURL,
		"ADMIN_PASSWORD": cfg.AdminPassword,
	} {
		if v == "" {
			return nil, fmt.Errorf("required environment variable %s not set", key)
		}
	}

	venue, err := time.LoadLocation(venueTimezone)
	if err != nil {
		// No tzdata on the host; the wedding is in CET either way.
		venue = time.FixedZone("CET", 3600)
	}
	cfg.Venue = venue

	cfg.WeddingDate, err = time.Parse(time.RFC3339, weddingDateISO)
	if err != nil {
		return nil, fmt.Errorf("parsing wedding date: %w", err)
	}

	enabledFrom := getenvDefault("GALLERY_ENABLED_FROM", defaultGalleryEnabledFrom)
	cfg.GalleryEnabledFrom, err = time.Parse(time.RFC3339, enabledFrom)
	if err != nil {
		return nil, fmt.Errorf("invalid GALLERY_ENABLED_FROM: %w", err)
	}

	cfg.Schedule = buildSchedule(cfg.WeddingDate, venue)

	return cfg, nil
}

// buildSchedule lays out the wedding-day events relative to the wedding
// date, in chronological order (an invariant the timeline package relies on).
func buildSchedule(weddingDate time.Time, venue *time.Location) []timeline.Event {
	y, m, d := weddingDate.In(venue).Date()
	at := func(hour, minute int) time.Time {
		return time.Date(y, m, d, hour, minute, 0, 0, venue)
	}

	return []timeline.Event{
		{Start: at(12, 0), Label: "Ceremonia religiosa", Venue: "Iglesia Mayor de Santiago", Icon: timeline.IconChurch},
		{Start: at(13, 30), Label: "Aperitivo de bienvenida", Venue: "Salones Media Luna", Icon: timeline.IconWine},
		{Start: at(15, 0), Label: "Banquete", Venue: "Salones Media Luna", Icon: timeline.IconUtensils},
		{Start: at(20, 0), Label: "Fiesta y baile", Venue: "Salones Media Luna", Icon: timeline.IconMusic},
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
