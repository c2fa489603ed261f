package services

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/comitanigiacomo/kanso-countdown/internal/core/domain"
)

type StatsService struct {
	habitRepo domain.HabitRepository
	logRepo   domain.HabitLogRepository
	cache     domain.StatsCache
	clock     func() time.Time
}

func NewStatsService(habitRepo domain.HabitRepository, logRepo domain.HabitLogRepository, cache domain.StatsCache) *StatsService {
	return &StatsService{
		habitRepo: habitRepo,
		logRepo:   logRepo,
		cache:     cache,
		clock:     time.Now,
	}
}

// WithClock replaces the time source the statistics are evaluated at.
func (s *StatsService) WithClock(clock func() time.Time) *StatsService {
	s.clock = clock
	return s
}

func (s *StatsService) GetHabitStats(ctx context.Context, habitID string) (*domain.HabitStats, error) {
	habit, err := s.habitRepo.GetByID(ctx, habitID)
	if err != nil {
		return nil, err
	}

	return s.statsFor(ctx, habit, s.clock())
}

// ListHabitStats computes stats for every habit, optionally restricted to a
// category. All habits are evaluated at the same instant.
func (s *StatsService) ListHabitStats(ctx context.Context, categoryID string) ([]*domain.HabitStats, error) {
	habits, err := s.habitRepo.List(ctx, domain.HabitFilter{CategoryID: categoryID})
	if err != nil {
		return nil, err
	}

	now := s.clock()
	result := make([]*domain.HabitStats, 0, len(habits))
	for _, h := range habits {
		stats, err := s.statsFor(ctx, h, now)
		if err != nil {
			return nil, err
		}
		result = append(result, stats)
	}

	return result, nil
}

// Refresh recomputes the stats of a habit and stores them in the cache.
// A habit deleted in the meantime is not an error.
func (s *StatsService) Refresh(ctx context.Context, habitID string) error {
	habit, err := s.habitRepo.GetByID(ctx, habitID)
	if errors.Is(err, domain.ErrHabitNotFound) {
		return s.cache.Invalidate(ctx, habitID)
	}
	if err != nil {
		return err
	}

	gen, err := s.cache.Generation(ctx, habitID)
	if err != nil {
		return err
	}

	now := s.clock()
	stats, err := s.compute(ctx, habit, now)
	if err != nil {
		return err
	}

	return s.cache.Set(ctx, domain.DayKey(now), gen, stats)
}

func (s *StatsService) statsFor(ctx context.Context, habit *domain.Habit, now time.Time) (*domain.HabitStats, error) {
	day := domain.DayKey(now)

	cached, err := s.cache.Get(ctx, habit.ID, day)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, domain.ErrStatsCacheMiss) {
		log.Printf("[CACHE] stats lookup failed for habit %s: %v", habit.ID, err)
	}

	gen, genErr := s.cache.Generation(ctx, habit.ID)
	if genErr != nil {
		log.Printf("[CACHE] stats generation lookup failed for habit %s: %v", habit.ID, genErr)
	}

	stats, err := s.compute(ctx, habit, now)
	if err != nil {
		return nil, err
	}

	// Without a generation the write cannot be fenced, so it is skipped.
	if genErr == nil {
		if err := s.cache.Set(ctx, day, gen, stats); err != nil {
			log.Printf("[CACHE] failed to store stats for habit %s: %v", habit.ID, err)
		}
	}

	return stats, nil
}

func (s *StatsService) compute(ctx context.Context, habit *domain.Habit, now time.Time) (*domain.HabitStats, error) {
	logs, err := s.logRepo.ListByHabitID(ctx, habit.ID)
	if err != nil {
		return nil, err
	}

	stats := domain.ComputeHabitStats(habit, domain.CompletionTimes(logs), now)
	return &stats, nil
}
