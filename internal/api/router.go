package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/wonny/scout/backend/internal/api/handlers"
	"github.com/wonny/scout/backend/pkg/logger"
	"github.com/wonny/scout/backend/pkg/metrics"
)

// Pinger is a dependency reported by /health (e.g. Redis)
type Pinger interface {
	Enabled() bool
	Ping(ctx context.Context) error
}

// RouterDeps bundles what the router wires into handlers and middleware
type RouterDeps struct {
	Dashboard     *handlers.DashboardHandler
	Refresh       *handlers.RefreshHandler // nil when no refresh job is scheduled
	Metrics       *metrics.Metrics         // nil disables /metrics
	Limiter       *RateLimiter             // nil disables rate limiting
	DatasetLoaded func() bool              // nil reports unknown
	Redis         Pinger                   // nil reports disabled
	Logger        *logger.Logger
}

// NewRouter creates and configures the HTTP router
// ⭐ SSOT: 라우팅 설정은 이 함수에서만
func NewRouter(deps RouterDeps) http.Handler {
	r := mux.NewRouter()

	// Health check
	r.HandleFunc("/health", healthCheckHandler(deps)).Methods("GET")

	if deps.Metrics != nil {
		r.Handle("/metrics", deps.Metrics.Handler()).Methods("GET")
	}

	// API v1
	api := r.PathPrefix("/api/v1").Subrouter()

	h := deps.Dashboard
	api.HandleFunc("/options", h.GetOptions).Methods("GET")
	api.HandleFunc("/overview", h.GetOverview).Methods("GET")
	api.HandleFunc("/positions", h.GetPositions).Methods("GET")
	api.HandleFunc("/growth", h.GetGrowth).Methods("GET")
	api.HandleFunc("/players", h.GetPlayers).Methods("GET")
	api.HandleFunc("/source", h.GetSource).Methods("GET")
	api.HandleFunc("/dataset/reload", h.ReloadDataset).Methods("POST")

	if deps.Refresh != nil {
		api.HandleFunc("/dataset/refresh", deps.Refresh.GetStatus).Methods("GET")
		api.HandleFunc("/dataset/refresh", deps.Refresh.Trigger).Methods("POST")
	}

	if deps.Limiter != nil {
		api.Use(rateLimitMiddleware(deps.Limiter))
	}

	// Apply middleware
	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware(deps.Logger))
	if deps.Metrics != nil {
		r.Use(metricsMiddleware(deps.Metrics))
	}
	r.Use(recoveryMiddleware(deps.Logger))

	return r
}

// healthCheckHandler reports liveness plus dataset and Redis state
// 데이터셋 미적재나 Redis 오류도 200: 요청 시 재적재/로컬 제한으로 동작 가능
func healthCheckHandler(deps RouterDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body := map[string]interface{}{
			"status":  "ok",
			"service": "scout-api",
		}

		if deps.DatasetLoaded != nil {
			body["dataset_loaded"] = deps.DatasetLoaded()
		}

		redisState := "disabled"
		if deps.Redis != nil && deps.Redis.Enabled() {
			ctx, cancel := context.WithTimeout(r.Context(), time.Second)
			defer cancel()
			redisState = "ok"
			if err := deps.Redis.Ping(ctx); err != nil {
				redisState = "error"
			}
		}
		body["redis"] = redisState

		writeJSON(w, http.StatusOK, body)
	}
}
