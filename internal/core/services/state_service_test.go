package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/kanso-heatmap/internal/core/domain"
	"github.com/comitanigiacomo/kanso-heatmap/internal/core/services"
)

func TestStateService_Snapshot(t *testing.T) {
	ctx := context.Background()

	t.Run("Success: Missing document is bootstrapped with the defaults", func(t *testing.T) {
		f := newFixture(testToday)

		snap, err := f.state.Snapshot(ctx)
		require.NoError(t, err)

		require.Len(t, snap.Habits, 2)
		assert.Equal(t, "Alcohol", snap.Habits[0].Name)
		assert.Equal(t, 3, snap.Habits[0].Weight)
		assert.Equal(t, "Sugar", snap.Habits[1].Name)
		assert.Equal(t, 1, snap.Habits[1].Weight)
		assert.Equal(t, "2024-01-01", snap.Settings.StartDate)
		assert.Empty(t, snap.History)
		assert.Empty(t, snap.Notes)
	})

	t.Run("Success: Existing document is left untouched", func(t *testing.T) {
		f := newFixture(testToday)
		f.seed(&domain.Snapshot{
			Habits:   []domain.Habit{{ID: "x", Name: "Coffee", Weight: 2}},
			Settings: domain.Settings{StartDate: "2023-06-01"},
		})

		snap, err := f.state.Snapshot(ctx)
		require.NoError(t, err)
		require.Len(t, snap.Habits, 1)
		assert.Equal(t, "Coffee", snap.Habits[0].Name)
		assert.Equal(t, "2023-06-01", snap.Settings.StartDate)
	})

	t.Run("Success: Empty document id falls back to the default", func(t *testing.T) {
		state := services.NewStateService(NewMockRepo(), "", services.FixedClock(testToday), nil, nil)
		assert.Equal(t, services.DefaultDocumentID, state.DocumentID())
	})

	t.Run("Error: Load failure is returned as is", func(t *testing.T) {
		repo := new(MockStateRepo)
		boom := errors.New("db down")
		repo.On("Load", mock.Anything, "doc-1").Return(nil, boom)

		state := services.NewStateService(repo, "doc-1", services.FixedClock(testToday), nil, nil)
		_, err := state.Snapshot(ctx)

		assert.ErrorIs(t, err, boom)
		repo.AssertNotCalled(t, "Bootstrap", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Error: Bootstrap failure is wrapped", func(t *testing.T) {
		repo := new(MockStateRepo)
		boom := errors.New("disk full")
		repo.On("Load", mock.Anything, "doc-1").Return(nil, domain.ErrDocumentNotFound)
		repo.On("Bootstrap", mock.Anything, "doc-1", mock.Anything).Return(false, boom)

		state := services.NewStateService(repo, "doc-1", services.FixedClock(testToday), nil, nil)
		_, err := state.Snapshot(ctx)

		assert.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "bootstrap document doc-1")
		repo.AssertExpectations(t)
	})
}

func TestStateService_Subscribe(t *testing.T) {
	ctx := context.Background()
	f := newFixture(testToday)

	var received []*domain.Snapshot
	unsubscribe, err := f.state.Subscribe(ctx, func(s *domain.Snapshot) {
		received = append(received, s)
	})
	require.NoError(t, err)

	require.Len(t, received, 1, "initial snapshot is delivered immediately")
	assert.Len(t, received[0].Habits, 2)

	_, err = f.habits.Add(ctx, "Coffee")
	require.NoError(t, err)

	require.Len(t, received, 2)
	assert.True(t, received[1].HasHabitNamed("Coffee"))

	unsubscribe()
	unsubscribe()
	assert.Equal(t, 0, f.broker.Len())

	_, err = f.habits.Add(ctx, "Tea")
	require.NoError(t, err)
	assert.Len(t, received, 2, "no delivery after unsubscribe")
}

func TestStateService_SubscribersGetIndependentCopies(t *testing.T) {
	ctx := context.Background()
	f := newFixture(testToday)

	var first, second *domain.Snapshot
	_, err := f.state.Subscribe(ctx, func(s *domain.Snapshot) { first = s })
	require.NoError(t, err)
	_, err = f.state.Subscribe(ctx, func(s *domain.Snapshot) { second = s })
	require.NoError(t, err)

	_, err = f.entries.ToggleToday(ctx, "Sugar")
	require.NoError(t, err)

	first.History["2024-01-10"][0] = "mutated"
	assert.Equal(t, []string{"Sugar"}, second.History["2024-01-10"])
}

func TestStateService_SetStartDate(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		input   string
		wantErr error
		want    string
	}{
		{name: "Success: Valid date", input: "2023-03-15", want: "2023-03-15"},
		{name: "Success: Surrounding spaces are trimmed", input: " 2023-03-15 ", want: "2023-03-15"},
		{name: "Success: Future date is accepted", input: "2030-01-01", want: "2030-01-01"},
		{name: "Error: Empty", input: "", wantErr: domain.ErrInvalidDate},
		{name: "Error: Wrong layout", input: "15/03/2023", wantErr: domain.ErrInvalidDate},
		{name: "Error: Impossible day", input: "2023-02-30", wantErr: domain.ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(testToday)

			snap, err := f.state.SetStartDate(ctx, tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Zero(t, f.repo.writes)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, snap.Settings.StartDate)

			stored, err := f.state.Snapshot(ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.want, stored.Settings.StartDate)
		})
	}
}

func TestStateService_ClearAll(t *testing.T) {
	ctx := context.Background()
	f := newFixture(testToday)
	f.seed(&domain.Snapshot{
		Habits:   []domain.Habit{{ID: "1", Name: "Alcohol", Weight: 3}},
		History:  domain.HistoryMap{"2024-01-05": {"Alcohol"}},
		Notes:    domain.NotesMap{"2024-01-05": "party"},
		Settings: domain.Settings{StartDate: "2023-01-01"},
	})

	snap, err := f.state.ClearAll(ctx)
	require.NoError(t, err)

	assert.Empty(t, snap.Habits)
	assert.Empty(t, snap.History)
	assert.Empty(t, snap.Notes)
	assert.Equal(t, "2024-01-10", snap.Settings.StartDate)
}

func TestStateService_Notifier(t *testing.T) {
	ctx := context.Background()

	t.Run("Success: Commit notifies other instances", func(t *testing.T) {
		f := newFixture(testToday)
		notifier := new(MockNotifier)
		notifier.On("Notify", mock.Anything, "doc-1").Return(nil).Once()
		f.state.WithNotifier(notifier)

		_, err := f.state.SetStartDate(ctx, "2023-01-01")
		require.NoError(t, err)
		notifier.AssertExpectations(t)
	})

	t.Run("Edge Case: Notify failure does not fail the write", func(t *testing.T) {
		f := newFixture(testToday)
		notifier := new(MockNotifier)
		notifier.On("Notify", mock.Anything, "doc-1").Return(errors.New("redis gone"))
		f.state.WithNotifier(notifier)

		snap, err := f.state.SetStartDate(ctx, "2023-01-01")
		require.NoError(t, err)
		assert.Equal(t, "2023-01-01", snap.Settings.StartDate)
	})

	t.Run("Success: Refresh publishes locally without notifying", func(t *testing.T) {
		f := newFixture(testToday)
		notifier := new(MockNotifier)
		f.state.WithNotifier(notifier)

		calls := 0
		_, err := f.state.Subscribe(ctx, func(*domain.Snapshot) { calls++ })
		require.NoError(t, err)

		require.NoError(t, f.state.Refresh(ctx))
		assert.Equal(t, 2, calls)
		notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
	})
}
