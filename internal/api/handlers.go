package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/albertobort/boda-api/internal/config"
	"github.com/albertobort/boda-api/internal/timeline"
)

var validate = validator.New()

// Handlers holds the dependencies for all HTTP handlers.
type Handlers struct {
	repo    GuestRepo
	cache   ListCache
	weather WeatherService
	cfg     *config.Config
	log     *slog.Logger
	now     func() time.Time
}

// NewHandlers constructs Handlers with all required dependencies.
func NewHandlers(repo GuestRepo, cache ListCache, weather WeatherService, cfg *config.Config, log *slog.Logger) *Handlers {
	return NewHandlersWithClock(repo, cache, weather, cfg, log, time.Now)
}

// NewHandlersWithClock constructs Handlers with an injectable clock (for tests).
func NewHandlersWithClock(repo GuestRepo, cache ListCache, weather WeatherService, cfg *config.Config, log *slog.Logger, now func() time.Time) *Handlers {
	return &Handlers{
		repo:    repo,
		cache:   cache,
		weather: weather,
		cfg:     cfg,
		log:     log,
		now:     now,
	}
}

// writeJSON encodes v as JSON and writes it with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes a failed result in the shape the site consumes.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{"success": false, "error": msg})
}

// decodeValid decodes the request body into dst and runs struct validation.
func decodeValid(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return err
	}
	return validate.Struct(dst)
}

// GetWeather handles GET /api/v1/weather. The forecast service reports
// failures in-band, so the widget always receives a 200 with a Result.
func (h *Handlers) GetWeather(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.weather.Get(r.Context()))
}

// timelineEvent is one schedule entry with its computed status.
type timelineEvent struct {
	timeline.Event
	timeline.Status
}

// timelineResponse is the payload for GET /api/v1/timeline.
type timelineResponse struct {
	MacroState  timeline.MacroState `json:"macro_state"`
	Countdown   *timeline.Countdown `json:"countdown,omitempty"`
	Events      []timelineEvent     `json:"events"`
	NextEventIn string              `json:"next_event_in,omitempty"`
}

// GetTimeline handles GET /api/v1/timeline. Pure recomputation from the
// clock on every request; nothing is stored between calls.
func (h *Handlers) GetTimeline(w http.ResponseWriter, r *http.Request) {
	now := h.now()

	statuses := timeline.ComputeStatuses(h.cfg.Schedule, now)

	resp := timelineResponse{
		MacroState: timeline.ComputeMacroState(h.cfg.WeddingDate, now, h.cfg.Venue),
		Events:     make([]timelineEvent, 0, len(statuses)),
	}
	for i, st := range statuses {
		resp.Events = append(resp.Events, timelineEvent{Event: h.cfg.Schedule[i], Status: st})
	}

	if resp.MacroState == timeline.StateCountdown {
		cd := timeline.ComputeCountdown(h.cfg.WeddingDate, now)
		resp.Countdown = &cd
	}

	for _, st := range statuses {
		if st.TimeLeft != nil {
			resp.NextEventIn = timeline.FormatTimeLeft(*st.TimeLeft)
			break
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

// HealthHandlerFunc returns an http.HandlerFunc that checks db and redis connectivity.
type dbPinger interface {
	Ping(ctx context.Context) error
}

type redisPinger interface {
	Ping(ctx context.Context) error
}

func HealthHandlerFunc(db dbPinger, redis redisPinger, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()

		status := http.StatusOK
		dbStatus := "ok"
		redisStatus := "ok"

		if err := db.Ping(ctx); err != nil {
			log.Error("health check: db ping failed", "err", err)
			dbStatus = "error"
			status = http.StatusServiceUnavailable
		}

		if err := redis.Ping(ctx); err != nil {
			log.Error("health check: redis ping failed", "err", err)
			redisStatus = "error"
			status = http.StatusServiceUnavailable
		}

		overall := "ok"
		if status != http.StatusOK {
			overall = "degraded"
		}

		writeJSON(w, status, map[string]string{
			"status": overall,
			"db":     dbStatus,
			"redis":  redisStatus,
		})
	}
}
