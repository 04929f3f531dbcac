package scheduler

import (
	"context"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/rs/zerolog"
)

// Refresher re-fetches whatever city is currently displayed.
type Refresher interface {
	Refresh(ctx context.Context) bool
}

// Scheduler periodically refreshes the displayed weather.
type Scheduler struct {
	scheduler *gocron.Scheduler
	target    Refresher
	interval  time.Duration
	timeout   time.Duration
	log       zerolog.Logger
}

// New creates a new Scheduler. timeout bounds each refresh.
func New(target Refresher, interval, timeout time.Duration, log zerolog.Logger) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	s.SingletonModeAll()
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Scheduler{
		scheduler: s,
		target:    target,
		interval:  interval,
		timeout:   timeout,
		log:       log,
	}
}

// Start schedules the refresh job. A non-positive interval leaves the
// scheduler idle.
func (s *Scheduler) Start() error {
	if s.interval <= 0 {
		s.log.Debug().Msg("scheduler: refresh interval not set; nothing to schedule")
		return nil
	}

	// The first run waits a full interval; startup has nothing displayed yet.
	_, err := s.scheduler.Every(s.interval).WaitForSchedule().Do(s.run)
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	s.log.Info().Dur("interval", s.interval).Msg("scheduler: started")
	return nil
}

func (s *Scheduler) run() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if !s.target.Refresh(ctx) {
		s.log.Debug().Msg("scheduler: nothing displayed; skipped refresh")
		return
	}
	s.log.Debug().Msg("scheduler: refreshed displayed weather")
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
