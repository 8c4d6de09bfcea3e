package market

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// Scheduler pre-warms the price cache on a cron schedule so the first
// request after the exchange publishes next-day prices is served warm.
type Scheduler struct {
	fetcher  Fetcher
	loc      *time.Location
	schedule string
	cron     *cron.Cron
	log      zerolog.Logger
}

// NewScheduler creates a prefetch scheduler. The schedule uses standard
// five-field cron syntax.
func NewScheduler(fetcher Fetcher, loc *time.Location, schedule string, log zerolog.Logger) *Scheduler {
	// Minute-precision parser, matching the five-field schedule format.
	c := cron.New(cron.WithParser(cron.NewParser(
		cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow,
	)))

	return &Scheduler{
		fetcher:  fetcher,
		loc:      loc,
		schedule: schedule,
		cron:     c,
		log:      log,
	}
}

// Start registers the warm-up job and blocks until ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context) error {
	if _, err := s.cron.AddFunc(s.schedule, func() { s.warm(ctx) }); err != nil {
		return fmt.Errorf("failed to schedule prefetch: %w", err)
	}

	s.cron.Start()
	s.log.Info().Str("schedule", s.schedule).Msg("prefetch scheduler started")

	<-ctx.Done()
	s.log.Info().Msg("stopping prefetch scheduler")
	s.cron.Stop()
	return nil
}

// warm fetches the window a request for tomorrow's date will ask for: local
// midnight today through local midnight three days out.
func (s *Scheduler) warm(ctx context.Context) {
	y, m, d := time.Now().In(s.loc).Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, s.loc)
	end := start.AddDate(0, 0, 3)

	points, err := s.fetcher.FetchRange(ctx, start, end)
	if err != nil {
		s.log.Error().Err(err).Msg("prefetch failed")
		return
	}
	s.log.Info().
		Int("points", len(points)).
		Time("start", start).
		Time("end", end).
		Msg("prefetched market data")
}
