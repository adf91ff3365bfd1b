package repository

import (
	"context"
	"slices"
	"sync"

	"github.com/comitanigiacomo/kanso-heatmap/internal/core/domain"
)

var _ domain.StateRepository = (*InMemoryStateRepository)(nil)

type InMemoryStateRepository struct {
	store map[string]*domain.Snapshot

	mu sync.RWMutex
}

func NewInMemoryStateRepository() *InMemoryStateRepository {
	return &InMemoryStateRepository{
		store: make(map[string]*domain.Snapshot),
	}
}

func (r *InMemoryStateRepository) Load(ctx context.Context, docID string) (*domain.Snapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snap, ok := r.store[docID]
	if !ok {
		return nil, domain.ErrDocumentNotFound
	}
	return snap.Clone(), nil
}

func (r *InMemoryStateRepository) Bootstrap(ctx context.Context, docID string, snap *domain.Snapshot) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[docID]; ok {
		return false, nil
	}
	r.store[docID] = snap.Clone()
	return true, nil
}

func (r *InMemoryStateRepository) update(docID string, fn func(*domain.Snapshot)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	snap, ok := r.store[docID]
	if !ok {
		return domain.ErrDocumentNotFound
	}
	next := snap.Clone()
	fn(next)
	r.store[docID] = next
	return nil
}

func (r *InMemoryStateRepository) ReplaceHabits(ctx context.Context, docID string, habits []domain.Habit) error {
	return r.update(docID, func(s *domain.Snapshot) {
		s.Habits = slices.Clone(habits)
		if s.Habits == nil {
			s.Habits = []domain.Habit{}
		}
	})
}

func (r *InMemoryStateRepository) ReplaceHistory(ctx context.Context, docID string, history domain.HistoryMap) error {
	return r.update(docID, func(s *domain.Snapshot) { s.History = history.Clone() })
}

func (r *InMemoryStateRepository) ReplaceNotes(ctx context.Context, docID string, notes domain.NotesMap) error {
	return r.update(docID, func(s *domain.Snapshot) { s.Notes = notes.Clone() })
}

func (r *InMemoryStateRepository) ReplaceSettings(ctx context.Context, docID string, settings domain.Settings) error {
	return r.update(docID, func(s *domain.Snapshot) { s.Settings = settings })
}

func (r *InMemoryStateRepository) Reset(ctx context.Context, docID string, snap *domain.Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.store[docID] = snap.Clone()
	return nil
}
