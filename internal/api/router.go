package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
)

// NewRouter builds and returns the Chi router with all routes configured.
// Guest routes are open; admin routes require the admin password header.
// Rate limiting is applied globally: 60 requests per minute per IP.
func NewRouter(handlers *Handlers, adminPassword string, db dbPinger, redisClient redisPinger, log *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(httprate.LimitByIP(60, time.Minute))

	r.Get("/api/v1/health", HealthHandlerFunc(db, redisClient, log))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/weather", handlers.GetWeather)
		r.Get("/timeline", handlers.GetTimeline)

		r.Post("/rsvp", handlers.SubmitRSVP)

		r.Get("/music", handlers.ListMusicRequests)
		r.Post("/music", handlers.SubmitMusicRequest)

		r.Get("/gallery", handlers.ListPhotos)
		r.Post("/gallery", handlers.UploadPhoto)
		r.Post("/gallery/{id}/like", handlers.LikePhoto)
		r.Post("/gallery/{id}/unlike", handlers.UnlikePhoto)

		r.Route("/admin", func(r chi.Router) {
			r.Use(AdminAuth(adminPassword))
			r.Get("/rsvps", handlers.ListRSVPs)
			r.Get("/dashboard", handlers.Dashboard)
			r.Delete("/gallery/{id}", handlers.DeletePhoto)
		})
	})

	return r
}

// Ensure chi.Mux implements http.Handler.
var _ http.Handler = (*chi.Mux)(nil)
