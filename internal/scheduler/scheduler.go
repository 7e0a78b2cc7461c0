package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/albertobort/boda-api/internal/forecast"
)

// weatherService is the subset of forecast.Service the warm job needs.
type weatherService interface {
	Get(ctx context.Context) forecast.Result
}

// Scheduler keeps the forecast cache slot warm so the public widget
// rarely pays for a live upstream call.
type Scheduler struct {
	scheduler *gocron.Scheduler
	weather   weatherService
	log       *slog.Logger
}

// New creates a Scheduler around the given forecast service.
func New(weather weatherService, log *slog.Logger) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		weather:   weather,
		log:       log,
	}
}

// Start schedules the hourly refresh and runs the scheduler in the
// background. The first refresh fires immediately.
func (s *Scheduler) Start() error {
	job := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		res := s.weather.Get(ctx)
		if !res.Success {
			s.log.Warn("forecast warm refresh failed", "reason", res.Error)
			return
		}
		s.log.Info("forecast warm refresh completed", "cached", res.Cached)
	}

	if _, err := s.scheduler.Every(1).Hour().StartImmediately().Do(job); err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
