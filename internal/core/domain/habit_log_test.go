package domain_test

import (
	"testing"
	"time"

	"github.com/comitanigiacomo/kanso-countdown/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHabitLog(t *testing.T) {
	local := time.Date(2024, 3, 5, 23, 30, 0, 1500, time.FixedZone("EST", -5*3600))

	l := domain.NewHabitLog("h-1", local)

	assert.NotEmpty(t, l.ID)
	assert.Equal(t, "h-1", l.HabitID)
	assert.Equal(t, time.UTC, l.CompletedAt.Location())
	assert.Equal(t, 1000, l.CompletedAt.Nanosecond(), "truncated to microseconds")
	assert.Equal(t, "2024-03-06", l.CompletedOn)
	require.NoError(t, l.Validate())
}

func TestHabitLog_Validate(t *testing.T) {
	t.Run("Error: Missing habit", func(t *testing.T) {
		l := domain.NewHabitLog(" ", time.Now())
		assert.ErrorIs(t, l.Validate(), domain.ErrInvalidLog)
	})

	t.Run("Error: Zero timestamp", func(t *testing.T) {
		l := &domain.HabitLog{ID: "x", HabitID: "h-1"}
		assert.ErrorIs(t, l.Validate(), domain.ErrInvalidLog)
	})

	t.Run("Error: Day key out of sync", func(t *testing.T) {
		l := domain.NewHabitLog("h-1", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
		l.CompletedOn = "2023-12-31"
		assert.ErrorIs(t, l.Validate(), domain.ErrInvalidLog)
	})
}

func TestCompletionTimes(t *testing.T) {
	a := domain.NewHabitLog("h", time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC))
	b := domain.NewHabitLog("h", time.Date(2024, 1, 2, 8, 0, 0, 0, time.UTC))

	got := domain.CompletionTimes([]*domain.HabitLog{a, b})

	assert.Equal(t, []time.Time{a.CompletedAt, b.CompletedAt}, got)
	assert.Empty(t, domain.CompletionTimes(nil))
}
