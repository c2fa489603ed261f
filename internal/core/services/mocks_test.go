package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/comitanigiacomo/kanso-countdown/internal/core/domain"
)

func ptr[T any](v T) *T {
	return &v
}

type MockCategoryRepo struct {
	mock.Mock
}

func (m *MockCategoryRepo) Create(ctx context.Context, c *domain.Category) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCategoryRepo) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepo) List(ctx context.Context) ([]*domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Category), args.Error(1)
}

func (m *MockCategoryRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCountdownRepo struct {
	mock.Mock
}

func (m *MockCountdownRepo) Create(ctx context.Context, c *domain.Countdown) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCountdownRepo) GetByID(ctx context.Context, id string) (*domain.Countdown, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Countdown), args.Error(1)
}

func (m *MockCountdownRepo) List(ctx context.Context) ([]*domain.Countdown, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Countdown), args.Error(1)
}

func (m *MockCountdownRepo) Update(ctx context.Context, c *domain.Countdown) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCountdownRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCountdownRepo) CompleteExpired(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

type MockHabitRepo struct {
	mock.Mock
}

func (m *MockHabitRepo) Create(ctx context.Context, h *domain.Habit) error {
	args := m.Called(ctx, h)
	return args.Error(0)
}

func (m *MockHabitRepo) GetByID(ctx context.Context, id string) (*domain.Habit, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Habit), args.Error(1)
}

func (m *MockHabitRepo) List(ctx context.Context, filter domain.HabitFilter) ([]*domain.Habit, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Habit), args.Error(1)
}

func (m *MockHabitRepo) Update(ctx context.Context, h *domain.Habit) error {
	args := m.Called(ctx, h)
	return args.Error(0)
}

func (m *MockHabitRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockHabitLogRepo struct {
	mock.Mock
}

func (m *MockHabitLogRepo) Create(ctx context.Context, l *domain.HabitLog) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockHabitLogRepo) ExistsForDay(ctx context.Context, habitID, day string) (bool, error) {
	args := m.Called(ctx, habitID, day)
	return args.Bool(0), args.Error(1)
}

func (m *MockHabitLogRepo) ListByHabitID(ctx context.Context, habitID string) ([]*domain.HabitLog, error) {
	args := m.Called(ctx, habitID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.HabitLog), args.Error(1)
}

func (m *MockHabitLogRepo) ListByHabitIDWithRange(ctx context.Context, habitID string, from, to time.Time) ([]*domain.HabitLog, error) {
	args := m.Called(ctx, habitID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.HabitLog), args.Error(1)
}

func (m *MockHabitLogRepo) Delete(ctx context.Context, id, habitID string) error {
	args := m.Called(ctx, id, habitID)
	return args.Error(0)
}

type MockStatsCache struct {
	mock.Mock
}

func (m *MockStatsCache) Get(ctx context.Context, habitID, day string) (*domain.HabitStats, error) {
	args := m.Called(ctx, habitID, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HabitStats), args.Error(1)
}

func (m *MockStatsCache) Generation(ctx context.Context, habitID string) (int64, error) {
	args := m.Called(ctx, habitID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatsCache) Set(ctx context.Context, day string, gen int64, stats *domain.HabitStats) error {
	args := m.Called(ctx, day, gen, stats)
	return args.Error(0)
}

func (m *MockStatsCache) Invalidate(ctx context.Context, habitID string) error {
	args := m.Called(ctx, habitID)
	return args.Error(0)
}

// missCache is a MockStatsCache that never hits and accepts every write.
func missCache() *MockStatsCache {
	c := new(MockStatsCache)
	c.On("Get", mock.Anything, mock.Anything, mock.Anything).Return(nil, domain.ErrStatsCacheMiss)
	c.On("Generation", mock.Anything, mock.Anything).Return(int64(0), nil)
	c.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	c.On("Invalidate", mock.Anything, mock.Anything).Return(nil)
	return c
}
