package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/comitanigiacomo/kanso-heatmap/internal/core/domain"
)

const DefaultDocumentID = "user_default"

// StateService owns the single habit document: it bootstraps it, hands out
// snapshots and pushes every committed change to subscribers.
//
// Writes, refreshes and the first delivery to a new subscriber are
// serialized on mu, so subscribers see snapshots in commit order and no
// read-modify-write loses a concurrent one. Subscriber callbacks run with mu
// held and must not call back into the service.
type StateService struct {
	mu sync.Mutex

	repo     domain.StateRepository
	docID    string
	clock    Clock
	broker   *Broker
	notifier Notifier
	logger   *zap.Logger
}

func NewStateService(repo domain.StateRepository, docID string, clock Clock, broker *Broker, logger *zap.Logger) *StateService {
	if docID == "" {
		docID = DefaultDocumentID
	}
	if clock == nil {
		clock = SystemClock{}
	}
	if broker == nil {
		broker = NewBroker()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StateService{
		repo:   repo,
		docID:  docID,
		clock:  clock,
		broker: broker,
		logger: logger,
	}
}

// WithNotifier sets the cross-process change notifier.
func (s *StateService) WithNotifier(n Notifier) *StateService {
	s.notifier = n
	return s
}

func (s *StateService) DocumentID() string {
	return s.docID
}

// Today is the current calendar date according to the service clock.
func (s *StateService) Today() time.Time {
	return today(s.clock)
}

// Snapshot loads the document, writing the default one first if none exists.
func (s *StateService) Snapshot(ctx context.Context) (*domain.Snapshot, error) {
	snap, err := s.repo.Load(ctx, s.docID)
	if err == nil {
		return snap, nil
	}
	if !errors.Is(err, domain.ErrDocumentNotFound) {
		return nil, err
	}

	created, err := s.repo.Bootstrap(ctx, s.docID, domain.DefaultSnapshot(s.Today()))
	if err != nil {
		return nil, fmt.Errorf("bootstrap document %s: %w", s.docID, err)
	}
	if created {
		s.logger.Info("Created default habit document", zap.String("doc_id", s.docID))
	}

	return s.repo.Load(ctx, s.docID)
}

// Subscribe calls fn with the current snapshot and then with every snapshot
// committed afterwards, until the returned func is called.
func (s *StateService) Subscribe(ctx context.Context, fn func(*domain.Snapshot)) (func(), error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	unsubscribe := s.broker.Subscribe(fn)
	fn(snap)
	return unsubscribe, nil
}

// Refresh reloads the document and pushes it to local subscribers without
// notifying other processes. Used when a change arrives from elsewhere.
func (s *StateService) Refresh(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.Snapshot(ctx)
	if err != nil {
		return err
	}
	s.broker.Publish(snap)
	return nil
}

func (s *StateService) SetStartDate(ctx context.Context, date string) (*domain.Snapshot, error) {
	date = strings.TrimSpace(date)
	if _, err := domain.ParseDateKey(date); err != nil {
		return nil, err
	}

	return s.update(ctx, func(*domain.Snapshot) error {
		return s.repo.ReplaceSettings(ctx, s.docID, domain.Settings{StartDate: date})
	})
}

// ClearAll wipes every field. Habits end up empty rather than reset to the
// samples, and tracking restarts today.
func (s *StateService) ClearAll(ctx context.Context) (*domain.Snapshot, error) {
	snap, err := s.write(ctx, func() error {
		return s.repo.Reset(ctx, s.docID, domain.ClearedSnapshot(s.Today()))
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("Cleared habit document", zap.String("doc_id", s.docID))
	return snap, nil
}

// update runs a read-modify-write: apply gets the current document and
// performs its repository writes, then the result is committed.
func (s *StateService) update(ctx context.Context, apply func(*domain.Snapshot) error) (*domain.Snapshot, error) {
	return s.write(ctx, func() error {
		snap, err := s.Snapshot(ctx)
		if err != nil {
			return err
		}
		return apply(snap)
	})
}

// write runs apply and publishes the stored state under mu, then tells
// other processes outside of it.
func (s *StateService) write(ctx context.Context, apply func() error) (*domain.Snapshot, error) {
	snap, err := s.commit(ctx, apply)
	if err != nil {
		return nil, err
	}

	if s.notifier != nil {
		if err := s.notifier.Notify(ctx, s.docID); err != nil {
			s.logger.Warn("Failed to notify other instances", zap.String("doc_id", s.docID), zap.Error(err))
		}
	}
	return snap, nil
}

func (s *StateService) commit(ctx context.Context, apply func() error) (*domain.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := apply(); err != nil {
		return nil, err
	}

	snap, err := s.repo.Load(ctx, s.docID)
	if err != nil {
		return nil, err
	}
	s.broker.Publish(snap)
	return snap, nil
}
