package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/wonny/scout/backend/internal/scheduler"
	"github.com/wonny/scout/backend/internal/scheduler/jobs"
	"github.com/wonny/scout/backend/pkg/logger"
)

// schedulerCmd represents the scheduler command
var schedulerCmd = &cobra.Command{
	Use:   "scheduler",
	Short: "데이터셋 재적재 스케줄러 관리",
	Long: `데이터셋 재적재 작업을 조회하거나 실행합니다.

Subcommands:
  list   - 등록된 작업과 다음 실행 시각
  run    - 작업 즉시 실행 (재시도 포함)
  start  - 스케줄러 데몬 시작 (API 서버 없이)

작업 주기는 REFRESH_SCHEDULE (초 필드 포함 cron) 로 설정합니다.
비어 있으면 등록되는 작업이 없습니다.

Example:
  go run ./cmd/scout scheduler list
  go run ./cmd/scout scheduler run dataset_refresh`,
}

var (
	schedulerListCmd = &cobra.Command{
		Use:   "list",
		Short: "등록된 작업 목록",
		RunE:  runSchedulerList,
	}

	schedulerRunCmd = &cobra.Command{
		Use:   "run [job_name]",
		Short: "작업 즉시 실행",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSchedulerRun,
	}

	schedulerStartCmd = &cobra.Command{
		Use:   "start",
		Short: "스케줄러 시작 (Ctrl+C로 종료)",
		RunE:  runSchedulerStart,
	}
)

func init() {
	rootCmd.AddCommand(schedulerCmd)
	schedulerCmd.AddCommand(schedulerListCmd)
	schedulerCmd.AddCommand(schedulerRunCmd)
	schedulerCmd.AddCommand(schedulerStartCmd)
}

// newJobScheduler registers the dataset refresh job when a schedule is configured.
// Shared by the api command and the scheduler subcommands.
func newJobScheduler(a *app) (*scheduler.Scheduler, error) {
	sched := scheduler.New(a.log)
	if a.cfg.RefreshSchedule == "" {
		return sched, nil
	}
	job := jobs.NewDatasetRefreshJob(a.store, a.cfg.RefreshSchedule, a.log)
	if err := sched.AddJob(job); err != nil {
		return nil, fmt.Errorf("schedule %s: %w", job.Name(), err)
	}
	return sched, nil
}

func runSchedulerList(cmd *cobra.Command, args []string) error {
	a, err := newCLIApp(context.Background())
	if err != nil {
		return err
	}
	defer a.Close()

	sched, err := newJobScheduler(a)
	if err != nil {
		return err
	}

	names := sched.GetAllJobs()
	if len(names) == 0 {
		PrintWarning("No jobs registered (REFRESH_SCHEDULE is empty)")
		return nil
	}

	stats := sched.GetJobStats()
	widths := []int{20, 20, 26}
	PrintTableHeader([]string{"Job", "Schedule", "Next run"}, widths)
	for _, name := range names {
		next := "-"
		if t, err := sched.NextRun(name); err == nil {
			next = t.Format(time.RFC3339)
		}
		PrintTableRow([]string{name, stats[name].Schedule, next}, widths)
	}
	return nil
}

func runSchedulerRun(cmd *cobra.Command, args []string) error {
	name := jobs.DatasetRefreshJobName
	if len(args) == 1 {
		name = args[0]
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	a, err := newCLIApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	sched, err := newJobScheduler(a)
	if err != nil {
		return err
	}

	result, err := sched.RunNow(ctx, name)
	if err != nil {
		return err
	}

	PrintSection("Job " + name)
	PrintKeyValue("Attempts", fmt.Sprintf("%d", result.Attempts), 12)
	PrintKeyValue("Duration", result.Duration.Round(time.Millisecond).String(), 12)
	if !result.Success {
		PrintWarning(result.Error)
		return fmt.Errorf("job %s failed after %d attempts", name, result.Attempts)
	}

	history, err := sched.GetJobHistory(name)
	if err != nil {
		return err
	}
	PrintKeyValue("Runs", fmt.Sprintf("%d (%.0f%% ok)", len(history.Results), history.GetSuccessRate()*100), 12)

	if ds, err := a.store.Get(ctx); err == nil {
		PrintSuccess(fmt.Sprintf("%d players ready", ds.Count()))
	}
	return nil
}

func runSchedulerStart(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	a, err := newApp(context.Background(), cfg, logger.New(cfg))
	if err != nil {
		return err
	}
	defer a.Close()

	sched, err := newJobScheduler(a)
	if err != nil {
		return err
	}
	if len(sched.GetAllJobs()) == 0 {
		return fmt.Errorf("no jobs registered: set REFRESH_SCHEDULE")
	}

	sched.Start()
	defer sched.Stop()

	for _, name := range sched.GetAllJobs() {
		if next, err := sched.NextRun(name); err == nil {
			PrintInfo(fmt.Sprintf("%s next run %s", name, next.Format(time.RFC3339)))
		}
	}
	PrintInfo("Press Ctrl+C to stop")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	a.log.Info("Scheduler stopped")
	return nil
}
