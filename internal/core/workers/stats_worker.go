package workers

import (
	"context"
	"log"
)

// StatsRefresher recomputes and caches the statistics of one habit.
type StatsRefresher interface {
	Refresh(ctx context.Context, habitID string) error
}

type StatsJob struct {
	HabitID string
}

// StatsWorker warms the stats cache in the background after a habit's
// history changes.
type StatsWorker struct {
	refresher StatsRefresher
	jobs      chan StatsJob
}

func NewStatsWorker(refresher StatsRefresher, queueSize int) *StatsWorker {
	if queueSize < 1 {
		queueSize = 100
	}
	return &StatsWorker{
		refresher: refresher,
		jobs:      make(chan StatsJob, queueSize),
	}
}

func (w *StatsWorker) Start(ctx context.Context) {
	go func() {
		log.Println("[WORKER] Stats worker started in background...")
		for {
			select {
			case job := <-w.jobs:
				w.processJob(ctx, job)
			case <-ctx.Done():
				log.Println("[WORKER] Stats worker shutting down...")
				return
			}
		}
	}()
}

// Enqueue never blocks; the job is dropped when the queue is full.
func (w *StatsWorker) Enqueue(habitID string) {
	select {
	case w.jobs <- StatsJob{HabitID: habitID}:
	default:
		log.Printf("[WORKER] Stats queue full! Dropping job for habit %s", habitID)
	}
}

// Pending reports the number of queued jobs.
func (w *StatsWorker) Pending() int {
	return len(w.jobs)
}

func (w *StatsWorker) processJob(ctx context.Context, job StatsJob) {
	if err := w.refresher.Refresh(ctx, job.HabitID); err != nil {
		log.Printf("[WORKER] Failed to refresh stats for %s: %v", job.HabitID, err)
	}
}
