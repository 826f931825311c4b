package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/wonny/scout/backend/internal/api"
	"github.com/wonny/scout/backend/internal/api/handlers"
	"github.com/wonny/scout/backend/internal/scheduler/jobs"
	"github.com/wonny/scout/backend/pkg/logger"
	"github.com/wonny/scout/backend/pkg/redis"
)

// apiCmd represents the api command
var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "API 서버 시작",
	Long: `REST API 서버를 시작합니다.

이 명령어는:
- 데이터셋 적재 (세션 동안 1회, 실패 시 다음 요청에서 재시도)
- 대시보드 탭별 조회 엔드포인트 제공
- 데이터셋 정기 재적재 스케줄러 실행

Endpoints:
  GET  /health                  - Health check
  GET  /metrics                 - Prometheus metrics
  GET  /api/v1/options          - 필터 선택지
  GET  /api/v1/overview         - 개요 탭 (산점도, Top N)
  GET  /api/v1/positions        - 포지션 탭 (그룹 통계, 분포)
  GET  /api/v1/growth           - 잠재력 탭 (코호트, 가성비)
  GET  /api/v1/players          - 필터된 선수 목록
  GET  /api/v1/source           - 데이터 출처, 적재 리포트
  POST /api/v1/dataset/reload   - 데이터셋 재적재
  GET  /api/v1/dataset/refresh  - 재적재 작업 상태 (REFRESH_SCHEDULE 설정 시)
  POST /api/v1/dataset/refresh  - 재적재 작업 즉시 실행 (재시도 포함)

Example:
  go run ./cmd/scout api
  go run ./cmd/scout api --port 8080 --dataset datasets/players.xlsx`,
	RunE: runAPIServer,
}

var (
	apiPort    string
	apiPreload bool
)

func init() {
	rootCmd.AddCommand(apiCmd)

	// Flags
	apiCmd.Flags().StringVar(&apiPort, "port", "", "API 서버 포트 (default PORT)")
	apiCmd.Flags().BoolVar(&apiPreload, "preload", true, "시작 시 데이터셋 적재")
}

func runAPIServer(cmd *cobra.Command, args []string) error {
	fmt.Println("=== Scout API Server ===")

	// 1. Load config
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Override port if flag is set
	if apiPort != "" {
		cfg.Port = apiPort
	}

	// 2. Initialize logger
	log := logger.New(cfg)

	log.WithFields(map[string]interface{}{
		"port":    cfg.Port,
		"env":     cfg.Env,
		"dataset": cfg.Dataset.Path,
		"source":  cfg.Dataset.Source,
	}).Info("Initializing API server")

	ctx := context.Background()

	// 3. Wire pipeline (db, source, store, orchestrator)
	a, err := newApp(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer a.Close()

	// 4. Preload; a failure here is not fatal, requests retry the load
	if apiPreload {
		if _, err := a.store.Get(ctx); err != nil {
			log.WithError(err).Warn("Dataset preload failed, will retry on first request")
		}
	}

	// 5. Rate limiter (shared via Redis when enabled)
	rdb, err := redis.New(ctx, cfg)
	if err != nil {
		log.WithError(err).Warn("Redis unavailable, using local rate limiter")
		rdb = nil
	}
	var shared api.SharedLimiter
	var redisPing api.Pinger
	if rdb != nil {
		defer rdb.Close()
		redisPing = rdb
		if rdb.Enabled() {
			shared = redis.NewRateLimiter(rdb, "scout")
		}
	}
	limiter := api.NewRateLimiter(shared, cfg.RateLimit.RPS, cfg.RateLimit.Burst, log)

	// 6. Scheduler: periodic dataset refresh
	sched, err := newJobScheduler(a)
	if err != nil {
		return err
	}
	var refreshHandler *handlers.RefreshHandler
	if len(sched.GetAllJobs()) > 0 {
		refreshHandler = handlers.NewRefreshHandler(sched, jobs.DatasetRefreshJobName, log)
		sched.Start()
		defer sched.Stop()
	}

	// 7. Create handlers and router
	dashboardHandler := handlers.NewDashboardHandler(a.orchestrator, a.store, log)
	router := api.NewRouter(api.RouterDeps{
		Dashboard:     dashboardHandler,
		Refresh:       refreshHandler,
		Metrics:       a.metrics,
		Limiter:       limiter,
		DatasetLoaded: a.store.Loaded,
		Redis:         redisPing,
		Logger:        log,
	})

	// 8. Serve until SIGINT/SIGTERM, then drain within SHUTDOWN_TIMEOUT
	runCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	ready := make(chan string, 1)
	go func() {
		addr, ok := <-ready
		if !ok {
			return
		}
		log.Info("API server started successfully")
		fmt.Printf("\n✅ Server running on %s\n", addr)
		fmt.Println("\nAvailable endpoints:")
		fmt.Println("  GET  /health")
		fmt.Println("  GET  /api/v1/{options,overview,positions,growth,players,source}")
		fmt.Println("  POST /api/v1/dataset/reload")
		if refreshHandler != nil {
			fmt.Println("  GET  /api/v1/dataset/refresh")
			fmt.Println("  POST /api/v1/dataset/refresh")
		}
		fmt.Println("\nPress Ctrl+C to stop")
	}()

	server := api.New(cfg, log, router)
	err = server.Run(runCtx, ready)
	close(ready)
	if err != nil {
		return fmt.Errorf("api server: %w", err)
	}

	log.Info("Server stopped")
	return nil
}
