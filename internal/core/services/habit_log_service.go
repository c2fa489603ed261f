package services

import (
	"context"
	"log"
	"time"

	"github.com/comitanigiacomo/kanso-countdown/internal/core/domain"
	"github.com/comitanigiacomo/kanso-countdown/internal/core/workers"
)

type HabitLogService struct {
	repo      domain.HabitLogRepository
	habitRepo domain.HabitRepository
	cache     domain.StatsCache
	worker    *workers.StatsWorker
	clock     func() time.Time
}

func NewHabitLogService(repo domain.HabitLogRepository, habitRepo domain.HabitRepository, cache domain.StatsCache, worker *workers.StatsWorker) *HabitLogService {
	return &HabitLogService{
		repo:      repo,
		habitRepo: habitRepo,
		cache:     cache,
		worker:    worker,
		clock:     time.Now,
	}
}

func (s *HabitLogService) WithClock(clock func() time.Time) *HabitLogService {
	s.clock = clock
	return s
}

// Log records a completion at completedAt, or now when it is nil. A habit can
// be completed at most once per UTC calendar day.
func (s *HabitLogService) Log(ctx context.Context, habitID string, completedAt *time.Time) (*domain.HabitLog, error) {
	if _, err := s.habitRepo.GetByID(ctx, habitID); err != nil {
		return nil, err
	}

	at := s.clock()
	if completedAt != nil {
		at = *completedAt
	}

	entry := domain.NewHabitLog(habitID, at)
	if err := entry.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsForDay(ctx, habitID, entry.CompletedOn)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrHabitAlreadyLogged
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, err
	}

	s.statsChanged(ctx, habitID)
	return entry, nil
}

// List returns the completions of a habit with from <= completed_at < to.
// Zero bounds are open.
func (s *HabitLogService) List(ctx context.Context, habitID string, from, to time.Time) ([]*domain.HabitLog, error) {
	if _, err := s.habitRepo.GetByID(ctx, habitID); err != nil {
		return nil, err
	}

	return s.repo.ListByHabitIDWithRange(ctx, habitID, from, to)
}

func (s *HabitLogService) Delete(ctx context.Context, habitID, logID string) error {
	if _, err := s.habitRepo.GetByID(ctx, habitID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, logID, habitID); err != nil {
		return err
	}

	s.statsChanged(ctx, habitID)
	return nil
}

func (s *HabitLogService) statsChanged(ctx context.Context, habitID string) {
	if err := s.cache.Invalidate(ctx, habitID); err != nil {
		log.Printf("[CACHE] failed to invalidate stats for habit %s: %v", habitID, err)
	}

	if s.worker != nil {
		s.worker.Enqueue(habitID)
	}
}
