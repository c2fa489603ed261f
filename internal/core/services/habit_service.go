package services

import (
	"context"
	"log"

	"github.com/comitanigiacomo/kanso-countdown/internal/core/domain"
)

type HabitService struct {
	repo  domain.HabitRepository
	cache domain.StatsCache
}

func NewHabitService(repo domain.HabitRepository, cache domain.StatsCache) *HabitService {
	return &HabitService{
		repo:  repo,
		cache: cache,
	}
}

type CreateHabitInput struct {
	Title       string
	Description string
	Frequency   string
	CustomDays  []int
	CategoryID  string
}

// UpdateHabitInput carries a partial update. Nil pointers and a nil
// CustomDays slice keep the stored value.
type UpdateHabitInput struct {
	ID          string
	Title       *string
	Description *string
	Frequency   *string
	CustomDays  []int
	CategoryID  *string
}

func (s *HabitService) Create(ctx context.Context, input CreateHabitInput) (*domain.Habit, error) {
	habit, err := domain.NewHabit(input.Title, input.Description, input.Frequency, input.CustomDays, input.CategoryID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, habit); err != nil {
		return nil, err
	}

	return habit, nil
}

func (s *HabitService) GetByID(ctx context.Context, id string) (*domain.Habit, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *HabitService) List(ctx context.Context, categoryID string) ([]*domain.Habit, error) {
	return s.repo.List(ctx, domain.HabitFilter{CategoryID: categoryID})
}

func (s *HabitService) Update(ctx context.Context, input UpdateHabitInput) (*domain.Habit, error) {
	habit, err := s.repo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	title := habit.Title
	if input.Title != nil {
		title = *input.Title
	}

	desc := derefString(habit.Description)
	if input.Description != nil {
		desc = *input.Description
	}

	freq := habit.Frequency
	if input.Frequency != nil {
		freq = *input.Frequency
	}

	days := []int(habit.CustomDays)
	if input.CustomDays != nil {
		days = input.CustomDays
	}

	categoryID := derefString(habit.CategoryID)
	if input.CategoryID != nil {
		categoryID = *input.CategoryID
	}

	if err := habit.Update(title, desc, freq, days, categoryID); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, habit); err != nil {
		return nil, err
	}

	s.invalidateStats(ctx, habit.ID)
	return habit, nil
}

func (s *HabitService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateStats(ctx, id)
	return nil
}

func (s *HabitService) invalidateStats(ctx context.Context, habitID string) {
	if err := s.cache.Invalidate(ctx, habitID); err != nil {
		log.Printf("[CACHE] failed to invalidate stats for habit %s: %v", habitID, err)
	}
}
