package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/comitanigiacomo/kanso-countdown/internal/core/domain"
)

// MemoryStore backs every repository with maps guarded by one lock, so a
// habit delete and its log cleanup are atomic just like in SQL. Values are
// copied on the way in and out.
type MemoryStore struct {
	mu         sync.RWMutex
	categories map[string]domain.Category
	countdowns map[string]domain.Countdown
	habits     map[string]domain.Habit
	logs       map[string]domain.HabitLog
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		categories: make(map[string]domain.Category),
		countdowns: make(map[string]domain.Countdown),
		habits:     make(map[string]domain.Habit),
		logs:       make(map[string]domain.HabitLog),
	}
}

type InMemoryCategoryRepository struct{ s *MemoryStore }
type InMemoryCountdownRepository struct{ s *MemoryStore }
type InMemoryHabitRepository struct{ s *MemoryStore }
type InMemoryHabitLogRepository struct{ s *MemoryStore }

var (
	_ domain.CategoryRepository  = (*InMemoryCategoryRepository)(nil)
	_ domain.CountdownRepository = (*InMemoryCountdownRepository)(nil)
	_ domain.HabitRepository     = (*InMemoryHabitRepository)(nil)
	_ domain.HabitLogRepository  = (*InMemoryHabitLogRepository)(nil)
)

func NewInMemoryCategoryRepository(s *MemoryStore) *InMemoryCategoryRepository {
	return &InMemoryCategoryRepository{s: s}
}

func NewInMemoryCountdownRepository(s *MemoryStore) *InMemoryCountdownRepository {
	return &InMemoryCountdownRepository{s: s}
}

func NewInMemoryHabitRepository(s *MemoryStore) *InMemoryHabitRepository {
	return &InMemoryHabitRepository{s: s}
}

func NewInMemoryHabitLogRepository(s *MemoryStore) *InMemoryHabitLogRepository {
	return &InMemoryHabitLogRepository{s: s}
}

func (r *InMemoryCategoryRepository) Create(ctx context.Context, c *domain.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.categories[c.ID] = *c
	return nil
}

func (r *InMemoryCategoryRepository) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.categories[id]
	if !ok {
		return nil, domain.ErrCategoryNotFound
	}
	return &c, nil
}

func (r *InMemoryCategoryRepository) List(ctx context.Context) ([]*domain.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	categories := make([]*domain.Category, 0, len(r.s.categories))
	for _, c := range r.s.categories {
		c := c
		categories = append(categories, &c)
	}

	sort.Slice(categories, func(i, j int) bool {
		return olderFirst(categories[i].CreatedAt, categories[j].CreatedAt, categories[i].ID, categories[j].ID)
	})
	return categories, nil
}

func (r *InMemoryCategoryRepository) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.categories[id]; !ok {
		return domain.ErrCategoryNotFound
	}
	delete(r.s.categories, id)
	return nil
}

func (r *InMemoryCountdownRepository) Create(ctx context.Context, c *domain.Countdown) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.countdowns[c.ID] = *c
	return nil
}

func (r *InMemoryCountdownRepository) GetByID(ctx context.Context, id string) (*domain.Countdown, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.countdowns[id]
	if !ok {
		return nil, domain.ErrCountdownNotFound
	}
	return &c, nil
}

func (r *InMemoryCountdownRepository) List(ctx context.Context) ([]*domain.Countdown, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	countdowns := make([]*domain.Countdown, 0, len(r.s.countdowns))
	for _, c := range r.s.countdowns {
		c := c
		countdowns = append(countdowns, &c)
	}

	sort.Slice(countdowns, func(i, j int) bool {
		return olderFirst(countdowns[i].TargetDate, countdowns[j].TargetDate, countdowns[i].ID, countdowns[j].ID)
	})
	return countdowns, nil
}

func (r *InMemoryCountdownRepository) Update(ctx context.Context, c *domain.Countdown) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.countdowns[c.ID]; !ok {
		return domain.ErrCountdownNotFound
	}
	r.s.countdowns[c.ID] = *c
	return nil
}

func (r *InMemoryCountdownRepository) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.countdowns[id]; !ok {
		return domain.ErrCountdownNotFound
	}
	delete(r.s.countdowns, id)
	return nil
}

func (r *InMemoryCountdownRepository) CompleteExpired(ctx context.Context, now time.Time) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var n int64
	for id, c := range r.s.countdowns {
		if !c.IsCompleted && c.IsExpired(now) {
			c.IsCompleted = true
			r.s.countdowns[id] = c
			n++
		}
	}
	return n, nil
}

func (r *InMemoryHabitRepository) Create(ctx context.Context, h *domain.Habit) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.habits[h.ID] = cloneHabit(*h)
	return nil
}

func (r *InMemoryHabitRepository) GetByID(ctx context.Context, id string) (*domain.Habit, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	h, ok := r.s.habits[id]
	if !ok {
		return nil, domain.ErrHabitNotFound
	}
	h = cloneHabit(h)
	return &h, nil
}

func (r *InMemoryHabitRepository) List(ctx context.Context, filter domain.HabitFilter) ([]*domain.Habit, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	habits := make([]*domain.Habit, 0, len(r.s.habits))
	for _, h := range r.s.habits {
		if filter.CategoryID != "" && (h.CategoryID == nil || *h.CategoryID != filter.CategoryID) {
			continue
		}
		h = cloneHabit(h)
		habits = append(habits, &h)
	}

	sort.Slice(habits, func(i, j int) bool {
		return olderFirst(habits[i].CreatedAt, habits[j].CreatedAt, habits[i].ID, habits[j].ID)
	})
	return habits, nil
}

func (r *InMemoryHabitRepository) Update(ctx context.Context, h *domain.Habit) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.habits[h.ID]; !ok {
		return domain.ErrHabitNotFound
	}
	r.s.habits[h.ID] = cloneHabit(*h)
	return nil
}

func (r *InMemoryHabitRepository) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.habits[id]; !ok {
		return domain.ErrHabitNotFound
	}
	delete(r.s.habits, id)

	for logID, l := range r.s.logs {
		if l.HabitID == id {
			delete(r.s.logs, logID)
		}
	}
	return nil
}

func (r *InMemoryHabitLogRepository) Create(ctx context.Context, l *domain.HabitLog) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.habits[l.HabitID]; !ok {
		return domain.ErrHabitNotFound
	}
	for _, existing := range r.s.logs {
		if existing.HabitID == l.HabitID && existing.CompletedOn == l.CompletedOn {
			return domain.ErrHabitAlreadyLogged
		}
	}

	r.s.logs[l.ID] = *l
	return nil
}

func (r *InMemoryHabitLogRepository) ExistsForDay(ctx context.Context, habitID, day string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, l := range r.s.logs {
		if l.HabitID == habitID && l.CompletedOn == day {
			return true, nil
		}
	}
	return false, nil
}

func (r *InMemoryHabitLogRepository) ListByHabitID(ctx context.Context, habitID string) ([]*domain.HabitLog, error) {
	return r.ListByHabitIDWithRange(ctx, habitID, time.Time{}, time.Time{})
}

func (r *InMemoryHabitLogRepository) ListByHabitIDWithRange(ctx context.Context, habitID string, from, to time.Time) ([]*domain.HabitLog, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	logs := []*domain.HabitLog{}
	for _, l := range r.s.logs {
		if l.HabitID != habitID {
			continue
		}
		if !from.IsZero() && l.CompletedAt.Before(from) {
			continue
		}
		if !to.IsZero() && !l.CompletedAt.Before(to) {
			continue
		}
		l := l
		logs = append(logs, &l)
	}

	sort.Slice(logs, func(i, j int) bool {
		return logs[i].CompletedAt.Before(logs[j].CompletedAt)
	})
	return logs, nil
}

func (r *InMemoryHabitLogRepository) Delete(ctx context.Context, id, habitID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	l, ok := r.s.logs[id]
	if !ok || l.HabitID != habitID {
		return domain.ErrHabitLogNotFound
	}
	delete(r.s.logs, id)
	return nil
}

func cloneHabit(h domain.Habit) domain.Habit {
	if h.CustomDays != nil {
		h.CustomDays = append(domain.Weekdays(nil), h.CustomDays...)
	}
	return h
}

func olderFirst(a, b time.Time, idA, idB string) bool {
	if a.Equal(b) {
		return idA < idB
	}
	return a.Before(b)
}
