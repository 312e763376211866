package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard-backend/internal/applications"
	"jobboard-backend/internal/figures"
	"jobboard-backend/internal/jobs"
	"jobboard-backend/internal/services/health"
	"jobboard-backend/internal/shared/config"
	"jobboard-backend/internal/shared/metrics"
	"jobboard-backend/internal/shared/server/middleware"
	"jobboard-backend/internal/shared/server/respond"
	"jobboard-backend/internal/stats"
)

// RouterDeps carries the handlers mounted by NewRouter.
type RouterDeps struct {
	Config             config.Config
	JobHandler         *jobs.Handler
	ApplicationHandler *applications.Handler
	StatsHandler       *stats.Handler
	FigureHandler      *figures.Handler
	Health             *health.Service
	// RateLimiter is shared across requests; nil builds a fresh one.
	RateLimiter *middleware.RateLimiter
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Config.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		metrics.Middleware(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	r.GET("/health", func(c *gin.Context) {
		body, ok := deps.Health.Status(c.Request.Context())
		if !ok {
			respond.JSON(c, http.StatusServiceUnavailable, body)
			return
		}
		respond.JSON(c, http.StatusOK, body)
	})
	r.GET("/metrics", metrics.Handler())

	root := &r.RouterGroup
	if deps.JobHandler != nil {
		deps.JobHandler.RegisterRoutes(root)
	}
	if deps.ApplicationHandler != nil {
		deps.ApplicationHandler.RegisterRoutes(root)
	}
	if deps.StatsHandler != nil {
		limiter := deps.RateLimiter
		if limiter == nil {
			limiter = middleware.NewRateLimiter(nil)
		}
		rule := middleware.RateLimitRule{Rate: deps.Config.StatsRatePerSec, Burst: deps.Config.StatsBurst}
		deps.StatsHandler.RegisterRoutes(root, middleware.RateLimit("STATS", rule, limiter))
	}
	if deps.FigureHandler != nil {
		deps.FigureHandler.RegisterRoutes(root)
	}

	r.NoRoute(func(c *gin.Context) {
		respond.Error(c, http.StatusNotFound, "not_found", "route not found", nil)
	})

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
