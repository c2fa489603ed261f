package domain

import (
	"context"
	"errors"
	"time"
)

var (
	ErrCategoryNotFound  = errors.New("category not found")
	ErrCountdownNotFound = errors.New("countdown not found")
	ErrHabitNotFound     = errors.New("habit not found")
	ErrHabitLogNotFound  = errors.New("habit log not found")
)

type CategoryRepository interface {
	// Create persists a new category.
	Create(ctx context.Context, category *Category) error

	// GetByID retrieves a category by its identifier.
	GetByID(ctx context.Context, id string) (*Category, error)

	// List returns every category, oldest first.
	List(ctx context.Context) ([]*Category, error)

	// Delete permanently removes a category.
	Delete(ctx context.Context, id string) error
}

type CountdownRepository interface {
	Create(ctx context.Context, countdown *Countdown) error
	GetByID(ctx context.Context, id string) (*Countdown, error)

	// List returns every countdown ordered by target date.
	List(ctx context.Context) ([]*Countdown, error)

	Update(ctx context.Context, countdown *Countdown) error
	Delete(ctx context.Context, id string) error

	// CompleteExpired flags every pending countdown whose target date is not
	// after now as completed and reports how many rows changed.
	CompleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// HabitFilter narrows habit listings. The zero value matches every habit.
type HabitFilter struct {
	CategoryID string
}

type HabitRepository interface {
	// Create persists a new habit definition in the storage.
	Create(ctx context.Context, habit *Habit) error

	// GetByID retrieves a habit by its unique identifier.
	GetByID(ctx context.Context, id string) (*Habit, error)

	// List retrieves the habits matching the filter, oldest first.
	List(ctx context.Context, filter HabitFilter) ([]*Habit, error)

	// Update replaces the mutable fields of an existing habit.
	Update(ctx context.Context, habit *Habit) error

	// Delete permanently removes a habit together with its completion logs.
	Delete(ctx context.Context, id string) error
}

type HabitLogRepository interface {
	// Create persists a completion. Implementations must reject a second log
	// for the same habit and calendar day with ErrHabitAlreadyLogged.
	Create(ctx context.Context, log *HabitLog) error

	// ExistsForDay reports whether the habit already has a completion on the
	// given day key (YYYY-MM-DD, UTC).
	ExistsForDay(ctx context.Context, habitID, day string) (bool, error)

	// ListByHabitID returns the complete history of a habit ordered by
	// completion time. Used by the statistics pipeline.
	ListByHabitID(ctx context.Context, habitID string) ([]*HabitLog, error)

	// ListByHabitIDWithRange returns completions with from <= completed_at < to.
	// A zero bound leaves that side of the range open.
	ListByHabitIDWithRange(ctx context.Context, habitID string, from, to time.Time) ([]*HabitLog, error)

	// Delete removes a single completion belonging to habitID.
	Delete(ctx context.Context, id, habitID string) error
}
