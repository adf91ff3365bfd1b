package services_test

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/comitanigiacomo/kanso-heatmap/internal/core/domain"
	"github.com/comitanigiacomo/kanso-heatmap/internal/core/services"
)

// MockRepo keeps one document per id in memory.
type MockRepo struct {
	mu            sync.Mutex
	docs          map[string]*domain.Snapshot
	writes        int
	simulateError error
}

func NewMockRepo() *MockRepo {
	return &MockRepo{docs: make(map[string]*domain.Snapshot)}
}

func (m *MockRepo) Load(ctx context.Context, docID string) (*domain.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.simulateError != nil {
		return nil, m.simulateError
	}
	doc, ok := m.docs[docID]
	if !ok {
		return nil, domain.ErrDocumentNotFound
	}
	return doc.Clone(), nil
}

func (m *MockRepo) Bootstrap(ctx context.Context, docID string, snap *domain.Snapshot) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.docs[docID]; ok {
		return false, nil
	}
	m.docs[docID] = snap.Clone()
	return true, nil
}

func (m *MockRepo) update(docID string, fn func(*domain.Snapshot)) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.simulateError != nil {
		return m.simulateError
	}
	doc, ok := m.docs[docID]
	if !ok {
		return domain.ErrDocumentNotFound
	}
	fn(doc)
	m.writes++
	return nil
}

func (m *MockRepo) ReplaceHabits(ctx context.Context, docID string, habits []domain.Habit) error {
	return m.update(docID, func(s *domain.Snapshot) { s.Habits = habits })
}

func (m *MockRepo) ReplaceHistory(ctx context.Context, docID string, history domain.HistoryMap) error {
	return m.update(docID, func(s *domain.Snapshot) { s.History = history })
}

func (m *MockRepo) ReplaceNotes(ctx context.Context, docID string, notes domain.NotesMap) error {
	return m.update(docID, func(s *domain.Snapshot) { s.Notes = notes })
}

func (m *MockRepo) ReplaceSettings(ctx context.Context, docID string, settings domain.Settings) error {
	return m.update(docID, func(s *domain.Snapshot) { s.Settings = settings })
}

func (m *MockRepo) Reset(ctx context.Context, docID string, snap *domain.Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.simulateError != nil {
		return m.simulateError
	}
	m.docs[docID] = snap.Clone()
	m.writes++
	return nil
}

// MockStateRepo is a testify mock for error paths.
type MockStateRepo struct {
	mock.Mock
}

func (m *MockStateRepo) Load(ctx context.Context, docID string) (*domain.Snapshot, error) {
	args := m.Called(ctx, docID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Snapshot), args.Error(1)
}

func (m *MockStateRepo) Bootstrap(ctx context.Context, docID string, snap *domain.Snapshot) (bool, error) {
	args := m.Called(ctx, docID, snap)
	return args.Bool(0), args.Error(1)
}

func (m *MockStateRepo) ReplaceHabits(ctx context.Context, docID string, habits []domain.Habit) error {
	return m.Called(ctx, docID, habits).Error(0)
}

func (m *MockStateRepo) ReplaceHistory(ctx context.Context, docID string, history domain.HistoryMap) error {
	return m.Called(ctx, docID, history).Error(0)
}

func (m *MockStateRepo) ReplaceNotes(ctx context.Context, docID string, notes domain.NotesMap) error {
	return m.Called(ctx, docID, notes).Error(0)
}

func (m *MockStateRepo) ReplaceSettings(ctx context.Context, docID string, settings domain.Settings) error {
	return m.Called(ctx, docID, settings).Error(0)
}

func (m *MockStateRepo) Reset(ctx context.Context, docID string, snap *domain.Snapshot) error {
	return m.Called(ctx, docID, snap).Error(0)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(ctx context.Context, docID string) error {
	return m.Called(ctx, docID).Error(0)
}

var testToday = time.Date(2024, time.January, 10, 14, 30, 0, 0, time.UTC)

type fixture struct {
	repo      *MockRepo
	broker    *services.Broker
	state     *services.StateService
	habits    *services.HabitService
	entries   *services.EntryService
	dashboard *services.DashboardService
}

func newFixture(now time.Time) *fixture {
	repo := NewMockRepo()
	broker := services.NewBroker()
	state := services.NewStateService(repo, "doc-1", services.FixedClock(now), broker, nil)
	return &fixture{
		repo:      repo,
		broker:    broker,
		state:     state,
		habits:    services.NewHabitService(state, repo),
		entries:   services.NewEntryService(state, repo),
		dashboard: services.NewDashboardService(state, nil),
	}
}

// seed stores snap as the document.
func (f *fixture) seed(snap *domain.Snapshot) {
	f.repo.docs["doc-1"] = snap.Clone()
}
