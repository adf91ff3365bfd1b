package heatmap

import (
	"time"

	"github.com/comitanigiacomo/kanso-heatmap/internal/core/domain"
)

// Cell is a grid cell together with its bucket.
type Cell struct {
	DayCell
	Bucket Bucket `json:"bucket"`
}

type Month struct {
	Name string `json:"name"`
	Year int    `json:"year"`
	Days []Cell `json:"days"`
}

type Dashboard struct {
	Today       string  `json:"today"`
	StartDate   string  `json:"start_date"`
	TotalWeight int     `json:"total_weight"`
	Months      []Month `json:"months"`
	Streaks     Streaks `json:"streaks"`
}

// Compute derives the full dashboard from one snapshot and one reading of
// today. A nil snapshot is treated as an empty document.
func Compute(snap *domain.Snapshot, today time.Time) Dashboard {
	if snap == nil {
		snap = &domain.Snapshot{}
	}
	today = domain.CivilDate(today)
	start := snap.Settings.StartDateOr(today)

	groups := BuildCalendar(today, snap.History, snap.Notes, start)
	months := make([]Month, 0, len(groups))
	for _, g := range groups {
		cells := make([]Cell, 0, len(g.Days))
		for _, d := range g.Days {
			cells = append(cells, Cell{DayCell: d, Bucket: Classify(d, snap.Habits)})
		}
		months = append(months, Month{Name: g.Name, Year: g.Year, Days: cells})
	}

	return Dashboard{
		Today:       domain.DateKey(today),
		StartDate:   domain.DateKey(start),
		TotalWeight: domain.TotalWeight(snap.Habits),
		Months:      months,
		Streaks:     CalculateStreaks(snap.History, start, today),
	}
}
