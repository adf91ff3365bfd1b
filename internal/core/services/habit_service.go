package services

import (
	"context"
	"slices"

	"github.com/comitanigiacomo/kanso-heatmap/internal/core/domain"
)

// HabitService edits the habit list. Every change writes back the whole list.
type HabitService struct {
	state *StateService
	repo  domain.StateRepository
}

func NewHabitService(state *StateService, repo domain.StateRepository) *HabitService {
	return &HabitService{
		state: state,
		repo:  repo,
	}
}

func (s *HabitService) List(ctx context.Context) ([]domain.Habit, error) {
	snap, err := s.state.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Habits, nil
}

func (s *HabitService) Add(ctx context.Context, name string) (*domain.Habit, error) {
	habit, err := domain.NewHabit(name)
	if err != nil {
		return nil, err
	}

	_, err = s.state.update(ctx, func(snap *domain.Snapshot) error {
		if snap.HasHabitNamed(habit.Name) {
			return domain.ErrHabitNameTaken
		}
		habits := append(slices.Clone(snap.Habits), *habit)
		return s.repo.ReplaceHabits(ctx, s.state.DocumentID(), habits)
	})
	if err != nil {
		return nil, err
	}
	return habit, nil
}

// Delete removes the habit. Days that recorded it keep the name, which then
// weighs nothing.
func (s *HabitService) Delete(ctx context.Context, id string) error {
	_, err := s.state.update(ctx, func(snap *domain.Snapshot) error {
		if _, ok := snap.FindHabit(id); !ok {
			return domain.ErrHabitNotFound
		}
		habits := slices.DeleteFunc(slices.Clone(snap.Habits), func(h domain.Habit) bool { return h.ID == id })
		return s.repo.ReplaceHabits(ctx, s.state.DocumentID(), habits)
	})
	return err
}

func (s *HabitService) UpdateWeight(ctx context.Context, id string, weight int) (*domain.Habit, error) {
	var updated domain.Habit
	_, err := s.state.update(ctx, func(snap *domain.Snapshot) error {
		habits := slices.Clone(snap.Habits)
		idx := slices.IndexFunc(habits, func(h domain.Habit) bool { return h.ID == id })
		if idx < 0 {
			return domain.ErrHabitNotFound
		}
		habits[idx].SetWeight(weight)
		updated = habits[idx]
		return s.repo.ReplaceHabits(ctx, s.state.DocumentID(), habits)
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
