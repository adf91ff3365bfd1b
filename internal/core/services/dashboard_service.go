package services

import (
	"context"
	"time"

	"github.com/comitanigiacomo/kanso-heatmap/internal/core/domain"
	"github.com/comitanigiacomo/kanso-heatmap/internal/core/heatmap"
)

// DashboardService computes the derived views. Today is read once per call
// and shared by the grid, the buckets and the streaks.
type DashboardService struct {
	state *StateService
	cache *heatmap.Cache
}

func NewDashboardService(state *StateService, cache *heatmap.Cache) *DashboardService {
	if cache == nil {
		cache = heatmap.NewCache(heatmap.DefaultCacheSize)
	}
	return &DashboardService{
		state: state,
		cache: cache,
	}
}

func (s *DashboardService) Dashboard(ctx context.Context) (heatmap.Dashboard, error) {
	snap, err := s.state.Snapshot(ctx)
	if err != nil {
		return heatmap.Dashboard{}, err
	}
	return s.cache.Compute(snap, s.state.Today()), nil
}

// For computes the dashboard of an already loaded snapshot.
func (s *DashboardService) For(snap *domain.Snapshot, today time.Time) heatmap.Dashboard {
	return s.cache.Compute(snap, today)
}

func (s *DashboardService) Streaks(ctx context.Context) (heatmap.Streaks, error) {
	d, err := s.Dashboard(ctx)
	if err != nil {
		return heatmap.Streaks{}, err
	}
	return d.Streaks, nil
}
