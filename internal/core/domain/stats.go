package domain

import (
	"context"
	"errors"
	"sort"
	"time"
)

var ErrStatsCacheMiss = errors.New("stats cache miss")

type HabitStats struct {
	HabitID          string  `json:"habit_id"`
	Title            string  `json:"title"`
	TotalCompletions int     `json:"total_completions"`
	CurrentStreak    int     `json:"current_streak"`
	LongestStreak    int     `json:"longest_streak"`
	CompletionRate   float64 `json:"completion_rate"`
}

// StatsCache stores computed stats per habit and evaluation day. Writes are
// fenced by a per-habit generation so a computation that raced with an
// invalidation cannot repopulate the cache with stale results.
type StatsCache interface {
	// Get returns ErrStatsCacheMiss when nothing is stored for (habitID, day).
	Get(ctx context.Context, habitID, day string) (*HabitStats, error)

	// Generation returns the habit's invalidation counter. Read it before
	// loading the data the stats are computed from.
	Generation(ctx context.Context, habitID string) (int64, error)

	// Set stores stats only while the habit's generation still equals gen.
	// A write fenced out by a newer generation is dropped without error.
	Set(ctx context.Context, day string, gen int64, stats *HabitStats) error

	// Invalidate advances the generation and drops every cached day.
	Invalidate(ctx context.Context, habitID string) error
}

// ComputeHabitStats derives the statistics summary of a habit from its
// completion timestamps, evaluated on the UTC calendar day of now.
//
// Daily habits get true consecutive-day streaks, where the current streak only
// counts if today itself is completed. Weekly habits report the number of ISO
// weeks with at least one completion as both streak values, which is an
// approximation rather than a consecutive-week run. Custom habits, and any
// frequency not recognised, report a fixed 100% rate and use the completion
// count as both streaks.
//
// The function has no side effects and is safe for concurrent use.
func ComputeHabitStats(habit *Habit, completions []time.Time, now time.Time) HabitStats {
	stats := HabitStats{
		HabitID: habit.ID,
		Title:   habit.Title,
	}
	if len(completions) == 0 {
		return stats
	}

	total := len(completions)
	stats.TotalCompletions = total

	days := distinctDays(completions)
	today := StartOfDay(now)

	habitStart := StartOfDay(habit.CreatedAt)
	if days[0].Before(habitStart) {
		habitStart = days[0]
	}

	daysSinceStart := daysBetween(habitStart, today) + 1
	if daysSinceStart < 1 {
		daysSinceStart = 1
	}

	var rate float64

	switch habit.Frequency {
	case HabitFreqDaily:
		stats.CurrentStreak = currentDailyStreak(days, today)
		stats.LongestStreak = longestDailyStreak(days)
		rate = float64(total) / float64(daysSinceStart) * 100

	case HabitFreqWeekly:
		weeks := distinctISOWeeks(days)
		totalWeeks := daysSinceStart/7 + 1
		rate = float64(weeks) / float64(totalWeeks) * 100
		stats.LongestStreak = weeks
		stats.CurrentStreak = weeks

	default:
		rate = 100
		stats.LongestStreak = total
		stats.CurrentStreak = total
	}

	stats.CompletionRate = clampRate(rate)
	return stats
}

// distinctDays reduces timestamps to unique UTC days, ascending.
func distinctDays(completions []time.Time) []time.Time {
	seen := make(map[time.Time]bool, len(completions))
	days := make([]time.Time, 0, len(completions))

	for _, c := range completions {
		d := StartOfDay(c)
		if !seen[d] {
			seen[d] = true
			days = append(days, d)
		}
	}

	sort.Slice(days, func(i, j int) bool {
		return days[i].Before(days[j])
	})
	return days
}

func currentDailyStreak(days []time.Time, today time.Time) int {
	completed := make(map[time.Time]bool, len(days))
	for _, d := range days {
		completed[d] = true
	}

	streak := 0
	for check := today; completed[check]; check = check.AddDate(0, 0, -1) {
		streak++
	}
	return streak
}

func longestDailyStreak(days []time.Time) int {
	longest := 0
	run := 0

	for i, d := range days {
		if i > 0 && daysBetween(days[i-1], d) == 1 {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}

func distinctISOWeeks(days []time.Time) int {
	type isoWeek struct{ year, week int }

	weeks := make(map[isoWeek]bool)
	for _, d := range days {
		y, w := d.ISOWeek()
		weeks[isoWeek{y, w}] = true
	}
	return len(weeks)
}

// daysBetween counts whole days from a to b. Both must be UTC midnights.
// Computed on Unix seconds; a time.Duration saturates after ~292 years.
func daysBetween(a, b time.Time) int {
	return int((b.Unix() - a.Unix()) / secondsPerDay)
}

const secondsPerDay = 24 * 60 * 60

func clampRate(rate float64) float64 {
	if rate < 0 {
		return 0
	}
	if rate > 100 {
		return 100
	}
	return rate
}
