package monitoring

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// SessionPurger is implemented by session stores that need an explicit
// sweep. The Redis store expires keys server-side and never registers
// a sweeper.
type SessionPurger interface {
	PurgeExpired(ctx context.Context) (int, error)
}

// SessionSweeper periodically drops expired sessions from the in-memory
// store, on the schedule given by a standard cron expression.
type SessionSweeper struct {
	purger   SessionPurger
	schedule cron.Schedule
	ticker   *time.Ticker
	done     chan bool
}

// NewSessionSweeper creates a sweeper. The spec must already have been
// validated by config.Load.
func NewSessionSweeper(purger SessionPurger, spec string) (*SessionSweeper, error) {
	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, err
	}
	return &SessionSweeper{
		purger:   purger,
		schedule: schedule,
		done:     make(chan bool),
	}, nil
}

// Run starts the sweeper's ticking loop.
func (s *SessionSweeper) Run() {
	log.Info().Msg("Starting session sweeper...")
	s.ticker = time.NewTicker(1 * time.Minute)
	defer s.ticker.Stop()

	nextRun := s.schedule.Next(time.Now())

	for {
		select {
		case <-s.done:
			log.Info().Msg("Stopping session sweeper.")
			return
		case now := <-s.ticker.C:
			if now.Before(nextRun) {
				continue
			}
			s.sweep()
			nextRun = s.schedule.Next(now)
		}
	}
}

// Stop halts the sweeper.
func (s *SessionSweeper) Stop() {
	s.done <- true
}

func (s *SessionSweeper) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	purged, err := s.purger.PurgeExpired(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Session sweep failed")
		return
	}
	if purged > 0 {
		log.Info().Int("purged", purged).Msg("Swept expired sessions")
	}
}
