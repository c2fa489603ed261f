package workers

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

type CountdownCompleter interface {
	CompleteExpired(ctx context.Context) (int64, error)
}

// CountdownSweeper periodically flags countdowns whose target date has
// passed as completed.
type CountdownSweeper struct {
	completer CountdownCompleter
	cron      *cron.Cron
	interval  time.Duration
}

func NewCountdownSweeper(completer CountdownCompleter, interval time.Duration) *CountdownSweeper {
	return &CountdownSweeper{
		completer: completer,
		cron:      cron.New(),
		interval:  interval,
	}
}

// Start runs one sweep immediately and then schedules the job.
func (s *CountdownSweeper) Start() error {
	if s.interval <= 0 {
		return fmt.Errorf("invalid sweep interval: %s", s.interval)
	}

	spec := fmt.Sprintf("@every %s", s.interval.String())
	if _, err := s.cron.AddFunc(spec, s.sweep); err != nil {
		return fmt.Errorf("failed to add cron job: %w", err)
	}

	s.sweep()
	s.cron.Start()
	log.Printf("[SWEEPER] Countdown sweeper started, interval %s", s.interval)

	return nil
}

func (s *CountdownSweeper) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("[SWEEPER] Countdown sweeper stopped")
}

func (s *CountdownSweeper) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	n, err := s.completer.CompleteExpired(ctx)
	if err != nil {
		log.Printf("[SWEEPER] Failed to complete expired countdowns: %v", err)
		return
	}
	if n > 0 {
		log.Printf("[SWEEPER] Marked %d countdown(s) as completed", n)
	}
}
