package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/comitanigiacomo/kanso-heatmap/docs"
	"github.com/comitanigiacomo/kanso-heatmap/internal/adapters/handler/http/middleware"
	"github.com/comitanigiacomo/kanso-heatmap/internal/adapters/realtime"
)

type RouterDependencies struct {
	HabitHandler     *HabitHandler
	EntryHandler     *EntryHandler
	DashboardHandler *DashboardHandler
	SettingsHandler  *SettingsHandler

	Hub             *realtime.Hub
	InitialSnapshot realtime.CurrentFunc

	// DocumentVersion is optional; when set /health reports the write count
	// of the stored document.
	DocumentVersion func(ctx context.Context) (int, error)

	// DB and Redis are optional; nil means not configured.
	DB        *sqlx.DB
	Redis     *redis.Client
	RateLimit int

	Logger    *zap.Logger
	StartTime time.Time
}

func NewRouter(deps RouterDependencies) *gin.Engine {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.CORS())

	if deps.Redis != nil && deps.RateLimit > 0 {
		router.Use(middleware.RateLimiter(deps.Redis, deps.RateLimit, time.Minute, logger))
	}

	router.GET("/health", healthHandler(deps))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if deps.Hub != nil {
		router.GET("/ws", gin.WrapF(realtime.HandleWebSocket(deps.Hub, deps.InitialSnapshot)))
	}

	apiV1 := router.Group("/api/v1")
	deps.DashboardHandler.RegisterRoutes(apiV1)
	deps.HabitHandler.RegisterRoutes(apiV1)
	deps.EntryHandler.RegisterRoutes(apiV1)
	deps.SettingsHandler.RegisterRoutes(apiV1)

	return router
}

func healthHandler(deps RouterDependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		dbStatus := "not_configured"
		if deps.DB != nil {
			dbStatus = "connected"
			if err := deps.DB.PingContext(ctx); err != nil {
				dbStatus = "unreachable"
			}
		}

		redisStatus := "not_configured"
		if deps.Redis != nil {
			redisStatus = "connected"
			if err := deps.Redis.Ping(ctx).Err(); err != nil {
				redisStatus = "unreachable"
			}
		}

		statusCode := http.StatusOK
		status := "ok"
		if dbStatus == "unreachable" || redisStatus == "unreachable" {
			statusCode = http.StatusServiceUnavailable
			status = "degraded"
		}

		body := gin.H{
			"status":   status,
			"database": dbStatus,
			"redis":    redisStatus,
			"uptime":   time.Since(deps.StartTime).String(),
		}
		if deps.Hub != nil {
			body["clients"] = deps.Hub.ClientCount()
		}
		if deps.DocumentVersion != nil {
			if v, err := deps.DocumentVersion(ctx); err == nil {
				body["document_version"] = v
			}
		}

		c.JSON(statusCode, body)
	}
}
