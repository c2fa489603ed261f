package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrHabitTitleEmpty   = fmt.Errorf("%w: habit title cannot be empty", ErrValidation)
	ErrHabitTitleTooLong = fmt.Errorf("%w: habit title is too long (max 100 chars)", ErrValidation)
	ErrHabitDescTooLong  = fmt.Errorf("%w: habit description is too long (max 500 chars)", ErrValidation)
	ErrInvalidFrequency  = fmt.Errorf("%w: invalid frequency (must be daily, weekly, or custom)", ErrValidation)
	ErrInvalidWeekdays   = fmt.Errorf("%w: invalid custom days (must be 0-6)", ErrValidation)
)

const (
	HabitFreqDaily  = "daily"
	HabitFreqWeekly = "weekly"
	HabitFreqCustom = "custom"
	MaxTitleLen     = 100
	MaxDescLen      = 500
)

// Weekdays holds weekday indices (0-6). It is persisted as a JSON array.
type Weekdays []int

func (w Weekdays) Value() (driver.Value, error) {
	if len(w) == 0 {
		return nil, nil
	}
	b, err := json.Marshal([]int(w))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (w *Weekdays) Scan(src interface{}) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*w = nil
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("weekdays: unsupported source type %T", src)
	}

	if len(raw) == 0 {
		*w = nil
		return nil
	}

	var days []int
	if err := json.Unmarshal(raw, &days); err != nil {
		return fmt.Errorf("failed to unmarshal weekdays: %w", err)
	}
	*w = normalizeWeekdays(days)
	return nil
}

type Habit struct {
	ID          string    `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description *string   `json:"description" db:"description"`
	Frequency   string    `json:"frequency" db:"frequency"`
	CustomDays  Weekdays  `json:"custom_days" db:"custom_days"`
	CategoryID  *string   `json:"category_id" db:"category_id"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

func IsValidFrequency(freq string) bool {
	switch freq {
	case HabitFreqDaily, HabitFreqWeekly, HabitFreqCustom:
		return true
	}
	return false
}

func normalizeWeekdays(days []int) Weekdays {
	if len(days) == 0 {
		return nil
	}

	seen := make(map[int]bool)
	var unique []int
	for _, d := range days {
		if !seen[d] {
			seen[d] = true
			unique = append(unique, d)
		}
	}

	sort.Ints(unique)
	return unique
}

func validateHabit(title, desc, freq string, days []int) error {
	if title == "" {
		return ErrHabitTitleEmpty
	}
	if len(title) > MaxTitleLen {
		return ErrHabitTitleTooLong
	}
	if len(desc) > MaxDescLen {
		return ErrHabitDescTooLong
	}
	if !IsValidFrequency(freq) {
		return ErrInvalidFrequency
	}
	for _, day := range days {
		if day < 0 || day > 6 {
			return ErrInvalidWeekdays
		}
	}
	return nil
}

func NewHabit(title, description, frequency string, customDays []int, categoryID string) (*Habit, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	frequency = strings.ToLower(strings.TrimSpace(frequency))

	if err := validateHabit(title, description, frequency, customDays); err != nil {
		return nil, err
	}

	return &Habit{
		ID:          uuid.NewString(),
		Title:       title,
		Description: optionalString(description),
		Frequency:   frequency,
		CustomDays:  normalizeWeekdays(customDays),
		CategoryID:  optionalString(strings.TrimSpace(categoryID)),
		CreatedAt:   now(),
	}, nil
}

func (h *Habit) Update(title, description, frequency string, customDays []int, categoryID string) error {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	frequency = strings.ToLower(strings.TrimSpace(frequency))

	if err := validateHabit(title, description, frequency, customDays); err != nil {
		return err
	}

	h.Title = title
	h.Description = optionalString(description)
	h.Frequency = frequency
	h.CustomDays = normalizeWeekdays(customDays)
	h.CategoryID = optionalString(strings.TrimSpace(categoryID))

	return nil
}
