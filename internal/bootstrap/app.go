package bootstrap

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"resume-client/internal/analyzer"
	"resume-client/internal/keywords"
	"resume-client/internal/presenter"
	"resume-client/internal/services/health"
	"resume-client/internal/session"
	"resume-client/internal/shared/config"
	"resume-client/internal/shared/server"
	"resume-client/internal/web"
)

// SweepInterval is how often idle sessions are evicted.
const SweepInterval = time.Minute

// App holds shared dependencies.
type App struct {
	Config         config.Config
	Router         *gin.Engine
	Analyzer       *analyzer.Client
	Presenter      *presenter.Presenter
	Sessions       *session.Store
	SessionHandler *web.Handler
}

// Build prepares shared dependencies and wires routes.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if cfg.TrendFallback == nil {
		cfg.TrendFallback = presenter.DefaultFallbackTrend
	}

	client, err := analyzer.New(cfg.AnalyzerBaseURL, analyzer.WithTimeout(cfg.AnalyzerTimeout))
	if err != nil {
		return nil, fmt.Errorf("bootstrap: analyzer client: %w", err)
	}

	app := &App{
		Config:    cfg,
		Analyzer:  client,
		Presenter: presenter.New(keywords.Default(), cfg.TrendFallback),
		Sessions:  session.NewStore(client, cfg.SessionTTL, nil),
	}
	app.SessionHandler = web.NewHandler(app.Sessions, app.Presenter, cfg.MaxUploadBytes)
	checks := health.NewService(map[string]health.Check{
		"analyzer": client.Ping,
	})
	app.Router = server.NewRouter(server.RouterDeps{
		Config:         cfg,
		SessionHandler: app.SessionHandler,
		Health:         checks,
	})

	return app, nil
}

// StartBackground runs the session sweeper until ctx is done.
func (a *App) StartBackground(ctx context.Context) {
	go a.Sessions.Run(ctx, SweepInterval)
}
