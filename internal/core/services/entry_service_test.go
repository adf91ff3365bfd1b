package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/kanso-heatmap/internal/core/domain"
)

func TestEntryService_ToggleToday(t *testing.T) {
	ctx := context.Background()

	t.Run("Success: Toggle adds then removes", func(t *testing.T) {
		f := newFixture(testToday)

		done, err := f.entries.ToggleToday(ctx, "Alcohol")
		require.NoError(t, err)
		assert.Equal(t, []string{"Alcohol"}, done)

		done, err = f.entries.ToggleToday(ctx, "Sugar")
		require.NoError(t, err)
		assert.Equal(t, []string{"Alcohol", "Sugar"}, done)

		done, err = f.entries.ToggleToday(ctx, "Alcohol")
		require.NoError(t, err)
		assert.Equal(t, []string{"Sugar"}, done)

		snap, err := f.state.Snapshot(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"Sugar"}, snap.History["2024-01-10"])
	})

	t.Run("Success: Late evening is still the same day", func(t *testing.T) {
		f := newFixture(testToday.Add(9 * time.Hour))
		_, err := f.entries.ToggleToday(ctx, "Sugar")
		require.NoError(t, err)

		day, err := f.entries.Day(ctx, "2024-01-10")
		require.NoError(t, err)
		assert.Equal(t, []string{"Sugar"}, day.HabitsDone)
	})

	t.Run("Error: Unknown habit name", func(t *testing.T) {
		f := newFixture(testToday)
		_, err := f.entries.ToggleToday(ctx, "Coffee")
		assert.ErrorIs(t, err, domain.ErrHabitNotFound)
		assert.Zero(t, f.repo.writes)
	})
}

func TestEntryService_Day(t *testing.T) {
	ctx := context.Background()
	f := newFixture(testToday)
	f.seed(&domain.Snapshot{
		Habits:   []domain.Habit{{ID: "1", Name: "Alcohol", Weight: 3}},
		History:  domain.HistoryMap{"2024-01-05": {"Alcohol"}},
		Notes:    domain.NotesMap{"2024-01-05": "birthday"},
		Settings: domain.Settings{StartDate: "2024-01-02"},
	})

	tests := []struct {
		name          string
		date          string
		wantDone      []string
		wantNote      string
		wantTrackable bool
		wantErr       error
	}{
		{name: "Success: Logged day", date: "2024-01-05", wantDone: []string{"Alcohol"}, wantNote: "birthday", wantTrackable: true},
		{name: "Success: Clean day", date: "2024-01-06", wantDone: []string{}, wantTrackable: true},
		{name: "Edge Case: Start date is trackable", date: "2024-01-02", wantDone: []string{}, wantTrackable: true},
		{name: "Edge Case: Today is trackable", date: "2024-01-10", wantDone: []string{}, wantTrackable: true},
		{name: "Edge Case: Before start", date: "2024-01-01", wantDone: []string{}, wantTrackable: false},
		{name: "Edge Case: Future", date: "2024-01-11", wantDone: []string{}, wantTrackable: false},
		{name: "Error: Malformed date", date: "2024-1-5", wantErr: domain.ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			day, err := f.entries.Day(ctx, tt.date)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.date, day.Date)
			assert.Equal(t, tt.wantDone, day.HabitsDone)
			assert.Equal(t, tt.wantNote, day.Note)
			assert.Equal(t, tt.wantTrackable, day.Trackable)
		})
	}
}

func TestEntryService_SaveNote(t *testing.T) {
	ctx := context.Background()

	t.Run("Success: Note saved on a past day", func(t *testing.T) {
		f := newFixture(testToday)

		day, err := f.entries.SaveNote(ctx, "2024-01-03", "slept badly")
		require.NoError(t, err)
		assert.Equal(t, "slept badly", day.Note)

		snap, err := f.state.Snapshot(ctx)
		require.NoError(t, err)
		assert.Equal(t, "slept badly", snap.Notes["2024-01-03"])
	})

	t.Run("Success: Blank text removes the note", func(t *testing.T) {
		f := newFixture(testToday)
		_, err := f.entries.SaveNote(ctx, "2024-01-03", "something")
		require.NoError(t, err)

		day, err := f.entries.SaveNote(ctx, "2024-01-03", "  \n ")
		require.NoError(t, err)
		assert.Empty(t, day.Note)

		snap, err := f.state.Snapshot(ctx)
		require.NoError(t, err)
		_, ok := snap.Notes["2024-01-03"]
		assert.False(t, ok)
	})

	t.Run("Error: Future day", func(t *testing.T) {
		f := newFixture(testToday)
		_, err := f.entries.SaveNote(ctx, "2024-01-11", "tomorrow")
		assert.ErrorIs(t, err, domain.ErrDateNotTrackable)
	})

	t.Run("Error: Before the start date", func(t *testing.T) {
		f := newFixture(testToday)
		_, err := f.entries.SaveNote(ctx, "2023-12-31", "last year")
		assert.ErrorIs(t, err, domain.ErrDateNotTrackable)
	})

	t.Run("Error: Malformed date", func(t *testing.T) {
		f := newFixture(testToday)
		_, err := f.entries.SaveNote(ctx, "yesterday", "x")
		assert.ErrorIs(t, err, domain.ErrInvalidDate)
	})
}
