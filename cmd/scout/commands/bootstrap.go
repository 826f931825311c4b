package commands

import (
	"context"
	"fmt"

	"github.com/wonny/scout/backend/internal/dashboard"
	"github.com/wonny/scout/backend/internal/dashboardconfig"
	"github.com/wonny/scout/backend/internal/s0_data"
	"github.com/wonny/scout/backend/pkg/config"
	"github.com/wonny/scout/backend/pkg/database"
	"github.com/wonny/scout/backend/pkg/httputil"
	"github.com/wonny/scout/backend/pkg/logger"
	"github.com/wonny/scout/backend/pkg/metrics"
)

// app bundles the wired pipeline shared by every command
type app struct {
	cfg          *config.Config
	log          *logger.Logger
	metrics      *metrics.Metrics
	db           *database.DB
	store        *s0_data.Store
	analytics    *dashboardconfig.Config
	orchestrator *dashboard.Orchestrator
}

// Close releases the database pool, if any
func (a *app) Close() {
	if a.db != nil {
		a.db.Close()
	}
}

// loadConfig reads .env and applies the global flag overrides
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if datasetPath != "" {
		cfg.Dataset.Path = datasetPath
		cfg.Dataset.Source = config.InferSource(datasetPath)
	}
	if datasetSource != "" {
		cfg.Dataset.Source = datasetSource
	}
	if currentYear > 0 {
		cfg.Dataset.CurrentYear = currentYear
	}
	if analyticsConfig != "" {
		cfg.AnalyticsConfig = analyticsConfig
	}
	if verbose {
		cfg.LogLevel = "debug"
	}

	return cfg, nil
}

// newApp wires config → source → loader → store → orchestrator
func newApp(ctx context.Context, cfg *config.Config, log *logger.Logger) (*app, error) {
	a := &app{cfg: cfg, log: log}

	if cfg.MetricsEnabled {
		a.metrics = metrics.New()
	}

	// DB는 postgres 소스일 때만 연결
	if cfg.Dataset.Source == config.SourcePostgres {
		db, err := database.New(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("connect to database: %w", err)
		}
		a.db = db
		log.Info("Connected to database")
	}

	source, err := s0_data.NewSource(cfg, a.db, httputil.New(log))
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("dataset source: %w", err)
	}

	analytics, err := dashboardconfig.LoadOrDefault(cfg.AnalyticsConfig)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("analytics config: %w", err)
	}
	a.analytics = analytics

	loader := s0_data.NewLoader(source, cfg.Dataset.CurrentYear, log)
	a.store = s0_data.NewStore(loader, log, a.metrics)
	a.orchestrator = dashboard.NewOrchestrator(a.store, analytics, cfg.Dataset.PublicURL, log)

	log.WithFields(map[string]interface{}{
		"source":    source.Name(),
		"config_id": analytics.Meta.ConfigID,
	}).Debug("Pipeline wired")

	return a, nil
}

// newCLIApp is newApp for one-shot report commands
func newCLIApp(ctx context.Context) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	// 리포트 출력과 섞이지 않도록 CLI는 console 포맷
	cfg.LogFormat = "console"
	if !verbose {
		cfg.LogLevel = "warn"
	}
	cfg.MetricsEnabled = false
	return newApp(ctx, cfg, logger.New(cfg))
}
