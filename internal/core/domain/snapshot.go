package domain

import (
	"maps"
	"slices"
	"strings"
	"time"
)

// HistoryMap maps a date key to the names of the habits done that day.
// A missing key or an empty list both mean a clean day.
type HistoryMap map[string][]string

// NotesMap maps a date key to the journal text for that day.
type NotesMap map[string]string

type Settings struct {
	StartDate string `json:"startDate"`
}

// Snapshot is one immutable copy of the persisted document.
type Snapshot struct {
	Habits   []Habit    `json:"habits"`
	History  HistoryMap `json:"history"`
	Notes    NotesMap   `json:"notes"`
	Settings Settings   `json:"settings"`
}

// DoneOn returns the names recorded for date, never nil.
func (h HistoryMap) DoneOn(date string) []string {
	if names, ok := h[date]; ok && names != nil {
		return names
	}
	return []string{}
}

func (h HistoryMap) IsClean(date string) bool {
	return len(h[date]) == 0
}

// Toggle returns a new map with name flipped for date. The receiver is left
// untouched since the whole map is written back as one field.
func (h HistoryMap) Toggle(date, name string) HistoryMap {
	next := h.Clone()
	current := next[date]
	if slices.Contains(current, name) {
		next[date] = slices.DeleteFunc(slices.Clone(current), func(n string) bool { return n == name })
	} else {
		next[date] = append(slices.Clone(current), name)
	}
	return next
}

func (h HistoryMap) Clone() HistoryMap {
	out := make(HistoryMap, len(h))
	for k, v := range h {
		out[k] = slices.Clone(v)
	}
	return out
}

func (n NotesMap) HasNote(date string) bool {
	return strings.TrimSpace(n[date]) != ""
}

func (n NotesMap) Clone() NotesMap {
	out := make(NotesMap, len(n))
	maps.Copy(out, n)
	return out
}

// StartDateOr parses the configured start date, falling back to January 1
// of today's year when it is missing or malformed.
func (s Settings) StartDateOr(today time.Time) time.Time {
	if d, err := ParseDateKey(strings.TrimSpace(s.StartDate)); err == nil {
		return d
	}
	return StartOfYear(today)
}

// Clone deep-copies the snapshot and fills nil maps, so consumers can index
// freely.
func (s *Snapshot) Clone() *Snapshot {
	if s == nil {
		return nil
	}
	out := &Snapshot{
		Habits:   slices.Clone(s.Habits),
		History:  s.History.Clone(),
		Notes:    s.Notes.Clone(),
		Settings: s.Settings,
	}
	if out.Habits == nil {
		out.Habits = []Habit{}
	}
	return out
}

func (s *Snapshot) FindHabit(id string) (Habit, bool) {
	for _, h := range s.Habits {
		if h.ID == id {
			return h, true
		}
	}
	return Habit{}, false
}

func (s *Snapshot) HasHabitNamed(name string) bool {
	for _, h := range s.Habits {
		if h.Name == name {
			return true
		}
	}
	return false
}

// DefaultSnapshot is written when no document exists yet.
func DefaultSnapshot(today time.Time) *Snapshot {
	return &Snapshot{
		Habits: []Habit{
			{ID: "1", Name: "Alcohol", Weight: 3},
			{ID: "2", Name: "Sugar", Weight: 1},
		},
		History:  HistoryMap{},
		Notes:    NotesMap{},
		Settings: Settings{StartDate: DateKey(StartOfYear(today))},
	}
}

// ClearedSnapshot is what "clear all" writes: nothing tracked, tracking
// restarting today.
func ClearedSnapshot(today time.Time) *Snapshot {
	return &Snapshot{
		Habits:   []Habit{},
		History:  HistoryMap{},
		Notes:    NotesMap{},
		Settings: Settings{StartDate: DateKey(today)},
	}
}
