package heatmap

import (
	"time"

	"github.com/comitanigiacomo/kanso-heatmap/internal/core/domain"
)

type Streaks struct {
	Current int `json:"current_streak"`
	Longest int `json:"longest_streak"`
}

// CalculateStreaks runs two independent scans over [startDate, today].
// Longest walks forward and keeps the best run of clean days. Current walks
// backward from today and stops at the first day with a habit logged or once
// it passes startDate; a habit logged today zeroes it without scanning.
func CalculateStreaks(history domain.HistoryMap, startDate, today time.Time) Streaks {
	start := domain.CivilDate(startDate)
	end := domain.CivilDate(today)

	return Streaks{
		Current: currentStreak(history, start, end),
		Longest: longestStreak(history, start, end),
	}
}

func longestStreak(history domain.HistoryMap, start, end time.Time) int {
	longest, run := 0, 0
	for d := start; !d.After(end); d = domain.NextDay(d) {
		if !history.IsClean(domain.DateKey(d)) {
			run = 0
			continue
		}
		run++
		if run > longest {
			longest = run
		}
	}
	return longest
}

func currentStreak(history domain.HistoryMap, start, end time.Time) int {
	if !history.IsClean(domain.DateKey(end)) {
		return 0
	}

	streak := 0
	for d := end; !d.Before(start); d = domain.PrevDay(d) {
		if !history.IsClean(domain.DateKey(d)) {
			break
		}
		streak++
	}
	return streak
}
