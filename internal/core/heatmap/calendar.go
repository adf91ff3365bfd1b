// Package heatmap derives the dashboard views from a habit document: the
// 12-month calendar grid, the per-day severity bucket and the clean streaks.
// Everything here is a pure function of its inputs; the caller supplies
// "today" so one pass never straddles midnight.
package heatmap

import (
	"fmt"
	"time"

	"github.com/comitanigiacomo/kanso-heatmap/internal/core/domain"
)

const MonthsShown = 12

type DayCell struct {
	Key           string   `json:"key"`
	Date          string   `json:"date,omitempty"`
	HabitsDone    []string `json:"habits_done"`
	IsFuture      bool     `json:"is_future"`
	IsBeforeStart bool     `json:"is_before_start"`
	IsToday       bool     `json:"is_today"`
	IsPlaceholder bool     `json:"is_placeholder"`
	HasNote       bool     `json:"has_note"`
}

// Trackable reports whether the day can be opened and edited. Before-start
// wins over today: a start date in the future leaves today untracked.
func (c DayCell) Trackable() bool {
	return !c.IsPlaceholder && !c.IsFuture && !c.IsBeforeStart
}

type MonthGroup struct {
	Name string    `json:"name"`
	Year int       `json:"year"`
	Days []DayCell `json:"days"`
}

// RealDays counts the non-placeholder cells.
func (m MonthGroup) RealDays() int {
	n := 0
	for _, d := range m.Days {
		if !d.IsPlaceholder {
			n++
		}
	}
	return n
}

// MondayOffset is the column of t's weekday in a Monday-first week.
func MondayOffset(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// BuildCalendar lays out the trailing 12 months ending at today's month,
// oldest first.
func BuildCalendar(today time.Time, history domain.HistoryMap, notes domain.NotesMap, startDate time.Time) []MonthGroup {
	today = domain.CivilDate(today)
	todayKey := domain.DateKey(today)
	startKey := domain.DateKey(domain.CivilDate(startDate))

	groups := make([]MonthGroup, 0, MonthsShown)
	for i := MonthsShown - 1; i >= 0; i-- {
		first := time.Date(today.Year(), today.Month()-time.Month(i), 1, 0, 0, 0, 0, time.UTC)
		year, month := first.Year(), first.Month()
		total := daysIn(year, month)
		lead := MondayOffset(first)

		days := make([]DayCell, 0, lead+total)
		for p := 0; p < lead; p++ {
			days = append(days, DayCell{
				Key:           fmt.Sprintf("placeholder-%d-%02d-%d", year, int(month), p),
				HabitsDone:    []string{},
				IsPlaceholder: true,
			})
		}

		for day := 1; day <= total; day++ {
			key := domain.DateKey(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
			days = append(days, DayCell{
				Key:           key,
				Date:          key,
				HabitsDone:    history.DoneOn(key),
				IsFuture:      key > todayKey,
				IsBeforeStart: key < startKey,
				IsToday:       key == todayKey,
				HasNote:       notes.HasNote(key),
			})
		}

		groups = append(groups, MonthGroup{
			Name: month.String()[:3],
			Year: year,
			Days: days,
		})
	}

	return groups
}
