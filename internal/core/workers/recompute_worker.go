package workers

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/comitanigiacomo/kanso-heatmap/internal/core/domain"
	"github.com/comitanigiacomo/kanso-heatmap/internal/core/heatmap"
)

const DefaultRolloverPeriod = time.Minute

// Source is where the worker reads state and the current day from.
type Source interface {
	Snapshot(ctx context.Context) (*domain.Snapshot, error)
	Today() time.Time
}

// Sink receives every recomputed dashboard.
type Sink interface {
	PublishDashboard(ctx context.Context, d heatmap.Dashboard)
}

// RecomputeWorker turns committed snapshots into dashboards off the request
// path. It also recomputes once the day rolls over, since yesterday's future
// cell becomes today without any write.
//
// Pending snapshots coalesce into a single slot: only the newest one is
// computed, and it is never dropped.
type RecomputeWorker struct {
	source Source
	cache  *heatmap.Cache
	sink   Sink
	logger *zap.Logger
	period time.Duration

	mu      sync.Mutex
	latest  *domain.Snapshot
	wake    chan struct{}
	done    chan struct{}
	lastDay string
}

func NewRecomputeWorker(source Source, cache *heatmap.Cache, sink Sink, logger *zap.Logger) *RecomputeWorker {
	if cache == nil {
		cache = heatmap.NewCache(heatmap.DefaultCacheSize)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RecomputeWorker{
		source: source,
		cache:  cache,
		sink:   sink,
		logger: logger,
		period: DefaultRolloverPeriod,
		wake:   make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
}

// WithRolloverPeriod sets how often the day is checked. Must be called
// before Start.
func (w *RecomputeWorker) WithRolloverPeriod(d time.Duration) *RecomputeWorker {
	if d > 0 {
		w.period = d
	}
	return w
}

func (w *RecomputeWorker) Start(ctx context.Context) {
	w.lastDay = domain.DateKey(w.source.Today())

	go func() {
		defer close(w.done)
		w.logger.Info("Recompute worker started")

		ticker := time.NewTicker(w.period)
		defer ticker.Stop()

		for {
			select {
			case <-w.wake:
				if snap := w.take(); snap != nil {
					w.process(ctx, snap)
				}
			case <-ticker.C:
				w.checkRollover(ctx)
			case <-ctx.Done():
				w.logger.Info("Recompute worker shutting down")
				return
			}
		}
	}()
}

// Done is closed once the worker goroutine has returned.
func (w *RecomputeWorker) Done() <-chan struct{} {
	return w.done
}

// Enqueue never blocks. A snapshot still waiting when a newer one arrives is
// replaced by it.
func (w *RecomputeWorker) Enqueue(snap *domain.Snapshot) {
	w.mu.Lock()
	if w.latest != nil {
		w.logger.Debug("Superseding pending snapshot")
	}
	w.latest = snap
	w.mu.Unlock()

	select {
	case w.wake <- struct{}{}:
	default:
	}
}

func (w *RecomputeWorker) take() *domain.Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	snap := w.latest
	w.latest = nil
	return snap
}

func (w *RecomputeWorker) process(ctx context.Context, snap *domain.Snapshot) {
	today := w.source.Today()
	w.lastDay = domain.DateKey(today)
	w.sink.PublishDashboard(ctx, w.cache.Compute(snap, today))
}

func (w *RecomputeWorker) checkRollover(ctx context.Context) {
	day := domain.DateKey(w.source.Today())
	if day == w.lastDay {
		return
	}

	snap, err := w.source.Snapshot(ctx)
	if err != nil {
		w.logger.Error("Failed to load snapshot after day change", zap.String("day", day), zap.Error(err))
		return
	}
	w.logger.Info("Day changed, recomputing dashboard", zap.String("from", w.lastDay), zap.String("to", day))
	w.process(ctx, snap)
}
