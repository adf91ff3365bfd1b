package services

import (
	"context"
	"strings"
	"time"

	"github.com/comitanigiacomo/kanso-heatmap/internal/core/domain"
)

// DayDetail is what the day view shows when a cell is opened.
type DayDetail struct {
	Date       string   `json:"date"`
	HabitsDone []string `json:"habits_done"`
	Note       string   `json:"note"`
	Trackable  bool     `json:"trackable"`
}

// EntryService edits the per-day history and journal notes.
type EntryService struct {
	state *StateService
	repo  domain.StateRepository
}

func NewEntryService(state *StateService, repo domain.StateRepository) *EntryService {
	return &EntryService{
		state: state,
		repo:  repo,
	}
}

// ToggleToday flips habitName in today's list and returns the new list.
func (s *EntryService) ToggleToday(ctx context.Context, habitName string) ([]string, error) {
	key := domain.DateKey(s.state.Today())

	var history domain.HistoryMap
	_, err := s.state.update(ctx, func(snap *domain.Snapshot) error {
		if !snap.HasHabitNamed(habitName) {
			return domain.ErrHabitNotFound
		}
		history = snap.History.Toggle(key, habitName)
		return s.repo.ReplaceHistory(ctx, s.state.DocumentID(), history)
	})
	if err != nil {
		return nil, err
	}
	return history.DoneOn(key), nil
}

func (s *EntryService) Day(ctx context.Context, date string) (*DayDetail, error) {
	d, err := domain.ParseDateKey(date)
	if err != nil {
		return nil, err
	}

	snap, err := s.state.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	return &DayDetail{
		Date:       date,
		HabitsDone: snap.History.DoneOn(date),
		Note:       snap.Notes[date],
		Trackable:  s.trackable(snap, d),
	}, nil
}

// SaveNote stores the journal text of a tracked day. Blank text removes the
// note.
func (s *EntryService) SaveNote(ctx context.Context, date, text string) (*DayDetail, error) {
	d, err := domain.ParseDateKey(date)
	if err != nil {
		return nil, err
	}

	committed, err := s.state.update(ctx, func(snap *domain.Snapshot) error {
		if !s.trackable(snap, d) {
			return domain.ErrDateNotTrackable
		}

		notes := snap.Notes.Clone()
		if strings.TrimSpace(text) == "" {
			delete(notes, date)
		} else {
			notes[date] = text
		}
		return s.repo.ReplaceNotes(ctx, s.state.DocumentID(), notes)
	})
	if err != nil {
		return nil, err
	}

	return &DayDetail{
		Date:       date,
		HabitsDone: committed.History.DoneOn(date),
		Note:       committed.Notes[date],
		Trackable:  true,
	}, nil
}

// trackable applies the grid rule: not before the start date, not after
// today.
func (s *EntryService) trackable(snap *domain.Snapshot, d time.Time) bool {
	now := s.state.Today()
	start := snap.Settings.StartDateOr(now)
	return !d.Before(start) && !d.After(now)
}
