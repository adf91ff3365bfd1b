package app

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/comitanigiacomo/kanso-heatmap/internal/adapters/cache"
	"github.com/comitanigiacomo/kanso-heatmap/internal/adapters/database"
	"github.com/comitanigiacomo/kanso-heatmap/internal/adapters/repository"
	"github.com/comitanigiacomo/kanso-heatmap/internal/config"
	"github.com/comitanigiacomo/kanso-heatmap/internal/core/domain"
	"github.com/comitanigiacomo/kanso-heatmap/internal/core/heatmap"
	"github.com/comitanigiacomo/kanso-heatmap/internal/core/services"
)

// App is the wired core shared by the API server and the terminal client.
type App struct {
	Config *config.Config
	Logger *zap.Logger

	DB    *sqlx.DB
	Redis *redis.Client
	Bus   *cache.SnapshotBus

	Repo   domain.StateRepository
	SQL    *repository.SQLStateRepository
	Broker *services.Broker
	Cache  *heatmap.Cache

	State      *services.StateService
	Habits     *services.HabitService
	Entries    *services.EntryService
	Dashboards *services.DashboardService
}

// New opens the configured store and builds the services. clock may be nil
// for the wall clock in the configured zone.
func New(cfg *config.Config, logger *zap.Logger, clock services.Clock) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if clock == nil {
		clock = services.SystemClock{Location: cfg.Location}
	}

	a := &App{
		Config: cfg,
		Logger: logger,
		Broker: services.NewBroker(),
		Cache:  heatmap.NewCache(heatmap.DefaultCacheSize),
	}

	if cfg.DBDriver == config.DriverMemory {
		a.Repo = repository.NewInMemoryStateRepository()
		logger.Info("Using in-memory store")
	} else {
		db, err := database.Open(cfg.DBDriver, cfg.DSN())
		if err != nil {
			return nil, fmt.Errorf("open %s store: %w", cfg.DBDriver, err)
		}
		a.DB = db
		a.SQL = repository.NewSQLStateRepository(db)
		a.Repo = a.SQL
		logger.Info("Database connected", zap.String("driver", cfg.DBDriver))
	}

	if cfg.Redis.Enabled() {
		rdb, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			logger.Warn("Redis unavailable, continuing without cache", zap.Error(err))
		} else {
			a.Redis = rdb
			a.Repo = repository.NewCachedStateRepository(a.Repo, rdb, logger)
			a.Bus = cache.NewSnapshotBus(rdb, logger)
			logger.Info("Redis connected", zap.String("addr", cfg.Redis.Addr()))
		}
	}

	a.State = services.NewStateService(a.Repo, cfg.DocumentID, clock, a.Broker, logger)
	if a.Bus != nil {
		a.State.WithNotifier(a.Bus)
	}
	a.Habits = services.NewHabitService(a.State, a.Repo)
	a.Entries = services.NewEntryService(a.State, a.Repo)
	a.Dashboards = services.NewDashboardService(a.State, a.Cache)

	return a, nil
}

// DocumentVersion reports the write count of the configured document. It is
// nil for the memory store, which keeps no version.
func (a *App) DocumentVersion() func(ctx context.Context) (int, error) {
	if a.SQL == nil {
		return nil
	}
	return func(ctx context.Context) (int, error) {
		return a.SQL.Version(ctx, a.State.DocumentID())
	}
}

func (a *App) Close() {
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			a.Logger.Warn("Failed to close redis", zap.Error(err))
		}
	}
	if a.DB != nil {
		if err := a.DB.Close(); err != nil {
			a.Logger.Warn("Failed to close database", zap.Error(err))
		}
	}
}
