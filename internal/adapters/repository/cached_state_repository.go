package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/comitanigiacomo/kanso-heatmap/internal/core/domain"
)

const DefaultCacheTTL = 30 * time.Minute

var _ domain.StateRepository = (*CachedStateRepository)(nil)

// CachedStateRepository is a read-through Redis cache in front of another
// repository. Writes go to next first and then drop the cached copy. Redis
// failures are logged and never fail the call.
type CachedStateRepository struct {
	next   domain.StateRepository
	cache  *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewCachedStateRepository(next domain.StateRepository, cache *redis.Client, logger *zap.Logger) *CachedStateRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedStateRepository{
		next:   next,
		cache:  cache,
		ttl:    DefaultCacheTTL,
		logger: logger.Named("cache"),
	}
}

func (r *CachedStateRepository) cacheKey(docID string) string {
	return fmt.Sprintf("habit_document:%s", docID)
}

func (r *CachedStateRepository) invalidate(ctx context.Context, docID string) {
	if err := r.cache.Del(ctx, r.cacheKey(docID)).Err(); err != nil {
		r.logger.Warn("Failed to invalidate document", zap.String("doc_id", docID), zap.Error(err))
	}
}

func (r *CachedStateRepository) Load(ctx context.Context, docID string) (*domain.Snapshot, error) {
	key := r.cacheKey(docID)

	val, err := r.cache.Get(ctx, key).Result()
	if err == nil {
		var snap domain.Snapshot
		if err := json.Unmarshal([]byte(val), &snap); err == nil {
			return snap.Clone(), nil
		}

		r.logger.Warn("Corrupted cached document, cleaning up key", zap.String("doc_id", docID))
		r.cache.Del(ctx, key)
	} else if !errors.Is(err, redis.Nil) {
		r.logger.Warn("Redis read error", zap.Error(err))
	}

	snap, err := r.next.Load(ctx, docID)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(snap); err == nil {
		if setErr := r.cache.Set(ctx, key, data, r.ttl).Err(); setErr != nil {
			r.logger.Warn("Redis set error", zap.Error(setErr))
		}
	}

	return snap, nil
}

func (r *CachedStateRepository) Bootstrap(ctx context.Context, docID string, snap *domain.Snapshot) (bool, error) {
	created, err := r.next.Bootstrap(ctx, docID, snap)
	if err != nil {
		return false, err
	}
	if created {
		r.invalidate(ctx, docID)
	}
	return created, nil
}

func (r *CachedStateRepository) ReplaceHabits(ctx context.Context, docID string, habits []domain.Habit) error {
	if err := r.next.ReplaceHabits(ctx, docID, habits); err != nil {
		return err
	}
	r.invalidate(ctx, docID)
	return nil
}

func (r *CachedStateRepository) ReplaceHistory(ctx context.Context, docID string, history domain.HistoryMap) error {
	if err := r.next.ReplaceHistory(ctx, docID, history); err != nil {
		return err
	}
	r.invalidate(ctx, docID)
	return nil
}

func (r *CachedStateRepository) ReplaceNotes(ctx context.Context, docID string, notes domain.NotesMap) error {
	if err := r.next.ReplaceNotes(ctx, docID, notes); err != nil {
		return err
	}
	r.invalidate(ctx, docID)
	return nil
}

func (r *CachedStateRepository) ReplaceSettings(ctx context.Context, docID string, settings domain.Settings) error {
	if err := r.next.ReplaceSettings(ctx, docID, settings); err != nil {
		return err
	}
	r.invalidate(ctx, docID)
	return nil
}

func (r *CachedStateRepository) Reset(ctx context.Context, docID string, snap *domain.Snapshot) error {
	if err := r.next.Reset(ctx, docID, snap); err != nil {
		return err
	}
	r.invalidate(ctx, docID)
	return nil
}

// Invalidate drops the cached copy. Used when another instance reports a
// change.
func (r *CachedStateRepository) Invalidate(ctx context.Context, docID string) {
	r.invalidate(ctx, docID)
}
