package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrHabitAlreadyLogged = errors.New("habit already logged for this date")
	ErrInvalidLog         = errors.New("invalid habit log data")
)

type HabitLog struct {
	ID          string    `json:"id" db:"id"`
	HabitID     string    `json:"habit_id" db:"habit_id"`
	CompletedAt time.Time `json:"completed_at" db:"completed_at"`

	// CompletedOn is the UTC day of CompletedAt; storage keys uniqueness on it.
	CompletedOn string `json:"-" db:"completed_on"`
}

func NewHabitLog(habitID string, completedAt time.Time) *HabitLog {
	completedAt = completedAt.UTC().Truncate(time.Microsecond)

	return &HabitLog{
		ID:          uuid.NewString(),
		HabitID:     habitID,
		CompletedAt: completedAt,
		CompletedOn: DayKey(completedAt),
	}
}

func (l *HabitLog) Validate() error {
	if strings.TrimSpace(l.HabitID) == "" {
		return errors.Join(ErrInvalidLog, errors.New("habit_id is required"))
	}
	if l.CompletedAt.IsZero() {
		return errors.Join(ErrInvalidLog, errors.New("completed_at is required"))
	}
	if l.CompletedOn != DayKey(l.CompletedAt) {
		return errors.Join(ErrInvalidLog, errors.New("completed_on does not match completed_at"))
	}
	return nil
}

// CompletionTimes projects logs onto the timestamps the stats engine consumes.
func CompletionTimes(logs []*HabitLog) []time.Time {
	times := make([]time.Time, 0, len(logs))
	for _, l := range logs {
		times = append(times, l.CompletedAt)
	}
	return times
}
