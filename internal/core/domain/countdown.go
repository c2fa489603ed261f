package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrCountdownTitleEmpty   = fmt.Errorf("%w: countdown title cannot be empty", ErrValidation)
	ErrCountdownTitleTooLong = fmt.Errorf("%w: countdown title is too long (max 100 chars)", ErrValidation)
	ErrCountdownDescTooLong  = fmt.Errorf("%w: countdown description is too long (max 500 chars)", ErrValidation)
	ErrCountdownTargetEmpty  = fmt.Errorf("%w: countdown target date is required", ErrValidation)
	ErrInvalidNotifyBefore   = fmt.Errorf("%w: notify_before cannot be negative", ErrValidation)
)

type Countdown struct {
	ID           string    `json:"id" db:"id"`
	Title        string    `json:"title" db:"title"`
	Description  *string   `json:"description" db:"description"`
	TargetDate   time.Time `json:"target_date" db:"target_date"`
	NotifyBefore *int      `json:"notify_before" db:"notify_before"` // minutes
	IsTimer      bool      `json:"is_timer" db:"is_timer"`
	IsCompleted  bool      `json:"is_completed" db:"is_completed"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

func validateCountdown(title, desc string, target time.Time, notifyBefore *int) error {
	if title == "" {
		return ErrCountdownTitleEmpty
	}
	if len(title) > MaxTitleLen {
		return ErrCountdownTitleTooLong
	}
	if len(desc) > MaxDescLen {
		return ErrCountdownDescTooLong
	}
	if target.IsZero() {
		return ErrCountdownTargetEmpty
	}
	if notifyBefore != nil && *notifyBefore < 0 {
		return ErrInvalidNotifyBefore
	}
	return nil
}

func NewCountdown(title, description string, target time.Time, notifyBefore *int, isTimer bool) (*Countdown, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)

	if err := validateCountdown(title, description, target, notifyBefore); err != nil {
		return nil, err
	}

	return &Countdown{
		ID:           uuid.NewString(),
		Title:        title,
		Description:  optionalString(description),
		TargetDate:   target.UTC(),
		NotifyBefore: notifyBefore,
		IsTimer:      isTimer,
		CreatedAt:    now(),
	}, nil
}

// Update replaces the editable fields. Moving the target of a completed
// countdown past reference reopens it.
func (c *Countdown) Update(title, description string, target time.Time, notifyBefore *int, isTimer bool, reference time.Time) error {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)

	if err := validateCountdown(title, description, target, notifyBefore); err != nil {
		return err
	}

	c.Title = title
	c.Description = optionalString(description)
	c.NotifyBefore = notifyBefore
	c.IsTimer = isTimer

	target = target.UTC()
	if c.IsCompleted && !target.Equal(c.TargetDate) && target.After(reference) {
		c.IsCompleted = false
	}
	c.TargetDate = target

	return nil
}

func (c *Countdown) IsExpired(reference time.Time) bool {
	return !c.TargetDate.After(reference)
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
