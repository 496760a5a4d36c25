package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"resume-client/internal/services/health"
	"resume-client/internal/shared/config"
	"resume-client/internal/shared/metrics"
	"resume-client/internal/shared/server/middleware"
	"resume-client/internal/shared/server/respond"
	"resume-client/internal/web"
)

const readyTimeout = 3 * time.Second

// DefaultRateLimits applies per client IP. Submits are the only routes that
// reach the analysis service, so they get the tighter bucket.
var DefaultRateLimits = map[string]middleware.RateLimitRule{
	"DEFAULT": {Rate: 20, Burst: 60},
	"SUBMIT":  {Rate: 0.5, Burst: 5},
}

// RouterDeps groups the handlers the router mounts.
type RouterDeps struct {
	Config         config.Config
	SessionHandler *web.Handler
	Health         *health.Service
	RateLimits     map[string]middleware.RateLimitRule
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Config.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	limits := deps.RateLimits
	if limits == nil {
		limits = DefaultRateLimits
	}
	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules:    limits,
			GroupFor: rateLimitGroup,
		}),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.OK(c, gin.H{"ok": true})
	})
	api.GET("/ready", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), readyTimeout)
		defer cancel()
		checks, ok := deps.Health.Status(ctx)
		if !ok {
			respond.Error(c, http.StatusServiceUnavailable, "dependency_unavailable", "a required service is not reachable", checks)
			return
		}
		respond.OK(c, gin.H{"ok": true, "checks": checks})
	})
	if deps.SessionHandler != nil {
		deps.SessionHandler.RegisterRoutes(api)
	}

	return r
}

func rateLimitGroup(c *gin.Context) string {
	switch c.FullPath() {
	case "/api/v1/sessions/:id/submit":
		return "SUBMIT"
	case "/metrics", "/api/v1/health", "/api/v1/ready":
		return "UNLIMITED"
	default:
		return "DEFAULT"
	}
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
