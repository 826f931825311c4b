package api

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"golang.org/x/time/rate"

	"github.com/wonny/scout/backend/pkg/logger"
	"github.com/wonny/scout/backend/pkg/metrics"
	"github.com/wonny/scout/backend/pkg/redis"
)

// RequestIDHeader carries the per-request correlation ID
const RequestIDHeader = "X-Request-ID"

type contextKey string

const requestIDKey contextKey = "request_id"

// RequestIDFromContext returns the request ID stored by requestIDMiddleware
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// statusRecorder captures the status code written by a handler
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// requestIDMiddleware keeps an incoming X-Request-ID or assigns a new one
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey, id)))
	})
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware(log *logger.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			// Call next handler
			next.ServeHTTP(rec, r)

			// Log request
			log.WithFields(map[string]interface{}{
				"method":     r.Method,
				"path":       r.URL.Path,
				"status":     rec.status,
				"request_id": RequestIDFromContext(r.Context()),
				"duration":   time.Since(start),
			}).Debug("HTTP request")
		})
	}
}

// metricsMiddleware records request counts and latency per route template
func metricsMiddleware(m *metrics.Metrics) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			route := r.URL.Path
			if cur := mux.CurrentRoute(r); cur != nil {
				if tpl, err := cur.GetPathTemplate(); err == nil {
					route = tpl
				}
			}
			m.ObserveRequest(route, r.Method, rec.status, time.Since(start))
		})
	}
}

// recoveryMiddleware recovers from panics
func recoveryMiddleware(log *logger.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					log.WithFields(map[string]interface{}{
						"error":      err,
						"path":       r.URL.Path,
						"request_id": RequestIDFromContext(r.Context()),
					}).Error("Panic recovered")

					writeJSON(w, http.StatusInternalServerError, map[string]string{
						"error": "Internal server error",
					})
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

// Local limiter buckets idle longer than limiterIdleTTL are dropped
// by a sweep that runs at most once per limiterSweepEvery
const (
	limiterIdleTTL    = 10 * time.Minute
	limiterSweepEvery = time.Minute
)

// SharedLimiter is a limiter shared across replicas (Redis sliding window)
type SharedLimiter interface {
	Allow(ctx context.Context, cfg redis.RateLimitConfig) (bool, int, error)
}

type clientBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter bounds requests per client address.
// Redis가 켜져 있으면 공유 sliding window, 아니면 프로세스 로컬 token bucket
type RateLimiter struct {
	shared SharedLimiter
	rps    int
	burst  int
	log    *logger.Logger
	now    func() time.Time

	sharedDown atomic.Bool

	mu        sync.Mutex
	local     map[string]*clientBucket
	lastSweep time.Time
}

// NewRateLimiter creates a limiter; rps <= 0 disables limiting
func NewRateLimiter(shared SharedLimiter, rps, burst int, log *logger.Logger) *RateLimiter {
	if burst < rps {
		burst = rps
	}
	return &RateLimiter{
		shared: shared,
		rps:    rps,
		burst:  burst,
		log:    log.Component("ratelimit"),
		now:    time.Now,
		local:  make(map[string]*clientBucket),
	}
}

// Allow reports whether the client may proceed
func (l *RateLimiter) Allow(ctx context.Context, client string) bool {
	if l.rps <= 0 {
		return true
	}

	if l.shared != nil {
		allowed, _, err := l.shared.Allow(ctx, redis.APIRateLimit(client, l.rps))
		if err == nil {
			if l.sharedDown.CompareAndSwap(true, false) {
				l.log.Info("Shared rate limiter recovered")
			}
			return allowed
		}
		// 상태 전환 시에만 기록
		if l.sharedDown.CompareAndSwap(false, true) {
			l.log.WithError(err).Warn("Shared rate limiter failed, using local limiter")
		}
	}

	return l.limiterFor(client).Allow()
}

// Clients returns the number of tracked local buckets
func (l *RateLimiter) Clients() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.local)
}

func (l *RateLimiter) limiterFor(client string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) >= limiterSweepEvery {
		for key, b := range l.local {
			if now.Sub(b.lastSeen) > limiterIdleTTL {
				delete(l.local, key)
			}
		}
		l.lastSweep = now
	}

	b, ok := l.local[client]
	if !ok {
		b = &clientBucket{limiter: rate.NewLimiter(rate.Limit(l.rps), l.burst)}
		l.local[client] = b
	}
	b.lastSeen = now
	return b.limiter
}

// rateLimitMiddleware answers 429 once a client exceeds its budget
func rateLimitMiddleware(l *RateLimiter) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !l.Allow(r.Context(), clientKey(r)) {
				w.Header().Set("Retry-After", strconv.Itoa(1))
				writeJSON(w, http.StatusTooManyRequests, map[string]string{
					"error": "Too many requests",
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
