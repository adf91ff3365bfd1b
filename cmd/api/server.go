package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	adapterHTTP "github.com/comitanigiacomo/kanso-heatmap/internal/adapters/handler/http"
	"github.com/comitanigiacomo/kanso-heatmap/internal/adapters/realtime"
	"github.com/comitanigiacomo/kanso-heatmap/internal/app"
	"github.com/comitanigiacomo/kanso-heatmap/internal/core/workers"
)

type server struct {
	app    *app.App
	hub    *realtime.Hub
	worker *workers.RecomputeWorker
	router *gin.Engine
	logger *zap.Logger

	unsubscribe func()
}

func newServer(a *app.App, startTime time.Time) *server {
	hub := realtime.NewHub(a.Logger)

	router := adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
		HabitHandler:     adapterHTTP.NewHabitHandler(a.Habits),
		EntryHandler:     adapterHTTP.NewEntryHandler(a.Entries),
		DashboardHandler: adapterHTTP.NewDashboardHandler(a.Dashboards),
		SettingsHandler:  adapterHTTP.NewSettingsHandler(a.State),
		Hub:              hub,
		InitialSnapshot:  a.Dashboards.Dashboard,
		DocumentVersion:  a.DocumentVersion(),
		DB:               a.DB,
		Redis:            a.Redis,
		RateLimit:        a.Config.RateLimit,
		Logger:           a.Logger,
		StartTime:        startTime,
	})

	return &server{
		app:    a,
		hub:    hub,
		worker: workers.NewRecomputeWorker(a.State, a.Cache, hub, a.Logger),
		router: router,
		logger: a.Logger,
	}
}

// start runs the background parts: the recompute worker fed by every
// committed snapshot, and the listener for changes made by other instances.
func (s *server) start(ctx context.Context) error {
	s.worker.Start(ctx)

	unsubscribe, err := s.app.State.Subscribe(ctx, s.worker.Enqueue)
	if err != nil {
		return err
	}
	s.unsubscribe = unsubscribe

	if s.app.Bus != nil {
		go func() {
			err := s.app.Bus.Listen(ctx, func(ctx context.Context, docID string) {
				if docID != s.app.State.DocumentID() {
					return
				}
				if err := s.app.State.Refresh(ctx); err != nil {
					s.logger.Warn("Failed to refresh after remote change", zap.Error(err))
				}
			})
			if err != nil {
				s.logger.Error("Change listener stopped", zap.Error(err))
			}
		}()
	}
	return nil
}

func (s *server) stop() {
	if s.unsubscribe != nil {
		s.unsubscribe()
	}
}

// httpServer sets no read or write deadline: /ws connections are long lived.
func (s *server) httpServer(port string) *http.Server {
	return &http.Server{
		Addr:              ":" + port,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}
