package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/scout/backend/internal/api/handlers"
	"github.com/wonny/scout/backend/internal/contracts"
	"github.com/wonny/scout/backend/internal/dashboard"
	"github.com/wonny/scout/backend/internal/dashboardconfig"
	"github.com/wonny/scout/backend/internal/scheduler"
	"github.com/wonny/scout/backend/pkg/config"
	"github.com/wonny/scout/backend/pkg/logger"
	"github.com/wonny/scout/backend/pkg/metrics"
	"github.com/wonny/scout/backend/pkg/redis"
)

type memoryProvider struct{ ds *contracts.Dataset }

func (p *memoryProvider) Get(ctx context.Context) (*contracts.Dataset, error) { return p.ds, nil }

func (p *memoryProvider) Reload(ctx context.Context) (*contracts.Dataset, error) { return p.ds, nil }

func newTestRouter(t *testing.T, limiter *RateLimiter) http.Handler {
	t.Helper()
	p := &memoryProvider{ds: &contracts.Dataset{
		Records: []contracts.PlayerRecord{
			{ID: 1, Name: "Pedri", Age: 19, Nationality: "Spain", Position: "LCM", Overall: 85, Potential: 92, MarketValue: 1.0e8, Wage: 120000},
		},
		CurrentYear: 2023,
		LoadedAt:    time.Now(),
	}}
	o := dashboard.NewOrchestrator(p, dashboardconfig.Default(), "", logger.Nop())
	return NewRouter(RouterDeps{
		Dashboard: handlers.NewDashboardHandler(o, p, logger.Nop()),
		Metrics:   metrics.New(),
		Limiter:   limiter,
		Logger:    logger.Nop(),
	})
}

func TestRouter_Health(t *testing.T) {
	r := newTestRouter(t, nil)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "scout-api")
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
}

type stubPinger struct {
	enabled bool
	err     error
}

func (p stubPinger) Enabled() bool                  { return p.enabled }
func (p stubPinger) Ping(ctx context.Context) error { return p.err }

func TestRouter_HealthReportsDependencies(t *testing.T) {
	tests := []struct {
		name  string
		redis Pinger
		want  string
	}{
		{"no redis", nil, `"redis":"disabled"`},
		{"redis disabled", stubPinger{}, `"redis":"disabled"`},
		{"redis ok", stubPinger{enabled: true}, `"redis":"ok"`},
		{"redis down", stubPinger{enabled: true, err: assert.AnError}, `"redis":"error"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRouter(RouterDeps{
				Dashboard:     handlers.NewDashboardHandler(nil, nil, logger.Nop()),
				DatasetLoaded: func() bool { return true },
				Redis:         tt.redis,
				Logger:        logger.Nop(),
			})

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), `"dataset_loaded":true`)
			assert.Contains(t, rec.Body.String(), tt.want)
		})
	}
}

type noopJob struct{}

func (noopJob) Name() string                  { return "dataset_refresh" }
func (noopJob) Schedule() string              { return "0 0 0 1 1 *" }
func (noopJob) Run(ctx context.Context) error { return nil }

func TestRouter_RefreshRoutes(t *testing.T) {
	sched := scheduler.New(logger.Nop())
	require.NoError(t, sched.AddJob(noopJob{}))

	r := NewRouter(RouterDeps{
		Dashboard: handlers.NewDashboardHandler(nil, nil, logger.Nop()),
		Refresh:   handlers.NewRefreshHandler(sched, "dataset_refresh", logger.Nop()),
		Logger:    logger.Nop(),
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/dataset/refresh", nil))
	assert.Equal(t, http.StatusAccepted, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/dataset/refresh", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"next_run"`)

	// not registered without a scheduled job
	rec = httptest.NewRecorder()
	newTestRouter(t, nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/dataset/refresh", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_KeepsIncomingRequestID(t *testing.T) {
	r := newTestRouter(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/options", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
}

func TestRouter_Routes(t *testing.T) {
	r := newTestRouter(t, nil)

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/api/v1/options", http.StatusOK},
		{http.MethodGet, "/api/v1/overview", http.StatusOK},
		{http.MethodGet, "/api/v1/positions", http.StatusOK},
		{http.MethodGet, "/api/v1/growth", http.StatusOK},
		{http.MethodGet, "/api/v1/players?age=19", http.StatusOK},
		{http.MethodGet, "/api/v1/source", http.StatusOK},
		{http.MethodPost, "/api/v1/dataset/reload", http.StatusOK},
		{http.MethodGet, "/api/v1/dataset/reload", http.StatusMethodNotAllowed},
		{http.MethodGet, "/api/v1/unknown", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestRouter_MetricsEndpoint(t *testing.T) {
	r := newTestRouter(t, nil)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/overview", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `route="/api/v1/overview"`), body)
}

func TestRouter_RateLimit(t *testing.T) {
	// no shared limiter: the local token bucket applies
	limiter := NewRateLimiter(nil, 1, 1, logger.Nop())
	r := newTestRouter(t, limiter)

	first := httptest.NewRecorder()
	r.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/api/v1/options", nil))
	assert.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	r.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/api/v1/options", nil))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Equal(t, "1", second.Header().Get("Retry-After"))

	// health is outside /api/v1 and never limited
	health := httptest.NewRecorder()
	r.ServeHTTP(health, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, health.Code)
}

func TestRateLimiter_SharedDisabledAllows(t *testing.T) {
	client, err := redis.New(context.Background(), &config.Config{})
	require.NoError(t, err)

	l := NewRateLimiter(redis.NewRateLimiter(client, "scout"), 1, 1, logger.Nop())
	for i := 0; i < 5; i++ {
		assert.True(t, l.Allow(context.Background(), "10.0.0.1"))
	}
}

func TestRateLimiter_Disabled(t *testing.T) {
	l := NewRateLimiter(nil, 0, 0, logger.Nop())
	for i := 0; i < 100; i++ {
		assert.True(t, l.Allow(context.Background(), "10.0.0.1"))
	}
}

func TestRouter_RecoversPanics(t *testing.T) {
	h := recoveryMiddleware(logger.Nop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
