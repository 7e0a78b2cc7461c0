package forecast

import (
	"context"
	"log/slog"
	"math"
	"sync"
	"time"
)

const (
	defaultTTL = time.Hour
	// OpenWeatherMap cannot forecast further ahead than this.
	defaultHorizonDays = 16

	errNotConfigured = "El servicio de clima no está configurado"
	errUnavailable   = "No se pudo obtener el pronóstico del tiempo"
)

// Config carries the fixed wedding facts the service needs.
type Config struct {
	WeddingDate time.Time
	Latitude    float64
	Longitude   float64
	// Venue is the time zone used to pick the forecast slot closest to
	// local noon on the wedding date.
	Venue *time.Location
	// Historical is served when the wedding is beyond the forecast
	// horizon. Nil selects the built-in November averages for Jumilla.
	Historical *Snapshot
	// TTL and HorizonDays default to 1h and 16 when zero.
	TTL         time.Duration
	HorizonDays int
	// Now is the clock; nil means time.Now. Injected by tests.
	Now func() time.Time
}

// historicalJumilla holds typical November conditions for Jumilla, used
// while the wedding date is out of forecast range.
func historicalJumilla(date string) Snapshot {
	return Snapshot{
		Date:        date,
		Temp:        13,
		TempMin:     7,
		TempMax:     18,
		FeelsLike:   12,
		Humidity:    65,
		Description: "Clima típico de noviembre",
		Icon:        "02d",
		WindSpeed:   10,
	}
}

// Service provides the wedding-date forecast behind a single-slot TTL
// cache. A fresh slot is served without touching the network; an expired
// slot is refreshed, and kept as a stale fallback when the refresh fails.
type Service struct {
	client *Client // nil when no API key is configured
	cfg    Config
	log    *slog.Logger

	now     func() time.Time
	ttl     time.Duration
	horizon int

	mu        sync.Mutex
	snapshot  *Snapshot
	fetchedAt time.Time
}

// NewService constructs the forecast service. A nil client marks the
// feature as not configured: Get reports that in-band and performs no I/O.
func NewService(client *Client, cfg Config, log *slog.Logger) *Service {
	s := &Service{
		client:  client,
		cfg:     cfg,
		log:     log,
		now:     cfg.Now,
		ttl:     cfg.TTL,
		horizon: cfg.HorizonDays,
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.ttl == 0 {
		s.ttl = defaultTTL
	}
	if s.horizon == 0 {
		s.horizon = defaultHorizonDays
	}
	if s.cfg.Venue == nil {
		s.cfg.Venue = time.UTC
	}
	if s.cfg.Historical == nil {
		h := historicalJumilla(s.dateString())
		s.cfg.Historical = &h
	}
	return s
}

func (s *Service) dateString() string {
	return s.cfg.WeddingDate.In(s.cfg.Venue).Format("2006-01-02")
}

// Get returns the forecast for the wedding date. All failure modes are
// reported through the Result; Get never returns an error value.
func (s *Service) Get(ctx context.Context) Result {
	if s.client == nil {
		return Result{Success: false, Error: errNotConfigured}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()

	if s.snapshot != nil && now.Sub(s.fetchedAt) < s.ttl {
		return s.resultFrom(s.snapshot, true, "")
	}

	daysUntil := int(math.Ceil(s.cfg.WeddingDate.Sub(now).Hours() / 24))
	if daysUntil > s.horizon {
		// Not a real fetch: the cache slot stays untouched so a later
		// in-range call still performs a live request.
		return s.resultFrom(s.cfg.Historical, false, "Basado en datos históricos: ")
	}

	entries, err := s.client.Forecast(ctx, s.cfg.Latitude, s.cfg.Longitude)
	if err != nil {
		return s.fallback(err)
	}

	picked, ok := s.pickEntry(entries)
	if !ok {
		return s.fallback(nil)
	}

	snap := s.transform(picked)
	s.snapshot = &snap
	s.fetchedAt = now

	return s.resultFrom(&snap, false, "")
}

// fallback serves the expired slot when one exists, otherwise reports the
// forecast as unavailable.
func (s *Service) fallback(err error) Result {
	if err != nil {
		s.log.Warn("forecast fetch failed", "err", err)
	} else {
		s.log.Warn("forecast response had no slot for the wedding date")
	}
	if s.snapshot != nil {
		return s.resultFrom(s.snapshot, true, "")
	}
	return Result{Success: false, Error: errUnavailable}
}

// pickEntry selects the slot on the wedding calendar date closest to noon
// venue-local time. The first of equidistant slots wins.
func (s *Service) pickEntry(entries []Entry) (Entry, bool) {
	wy, wm, wd := s.cfg.WeddingDate.In(s.cfg.Venue).Date()
	target := time.Date(wy, wm, wd, 12, 0, 0, 0, s.cfg.Venue)

	var best Entry
	found := false
	minDiff := time.Duration(math.MaxInt64)

	for _, e := range entries {
		t := time.Unix(e.Dt, 0).In(s.cfg.Venue)
		y, m, d := t.Date()
		if y != wy || m != wm || d != wd {
			continue
		}
		diff := t.Sub(target)
		if diff < 0 {
			diff = -diff
		}
		if diff < minDiff {
			minDiff = diff
			best = e
			found = true
		}
	}

	return best, found
}

// transform converts provider units to display units: whole degrees
// Celsius, wind m/s → km/h, condition text translated to Spanish.
func (s *Service) transform(e Entry) Snapshot {
	description := ""
	icon := ""
	if len(e.Weather) > 0 {
		description = e.Weather[0].Description
		icon = e.Weather[0].Icon
	}

	return Snapshot{
		Date:        s.dateString(),
		Temp:        int(math.Round(e.Main.Temp)),
		TempMin:     int(math.Round(e.Main.TempMin)),
		TempMax:     int(math.Round(e.Main.TempMax)),
		FeelsLike:   int(math.Round(e.Main.FeelsLike)),
		Humidity:    e.Main.Humidity,
		Description: translateDescription(description),
		Icon:        icon,
		WindSpeed:   int(math.Round(e.Wind.Speed * 3.6)),
	}
}

func (s *Service) resultFrom(snap *Snapshot, cached bool, advicePrefix string) Result {
	return Result{
		Success: true,
		Data:    snap,
		Cached:  cached,
		Advice:  advicePrefix + ClothingAdvice(snap.Temp, snap.Description),
	}
}
