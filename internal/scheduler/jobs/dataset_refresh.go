package jobs

import (
	"context"
	"fmt"

	"github.com/wonny/scout/backend/internal/contracts"
	"github.com/wonny/scout/backend/pkg/logger"
)

// Reloader swaps in a freshly loaded dataset
type Reloader interface {
	Reload(ctx context.Context) (*contracts.Dataset, error)
}

// DatasetRefreshJobName identifies the refresh job in the scheduler
const DatasetRefreshJobName = "dataset_refresh"

// DatasetRefreshJob reloads the player dataset on a schedule.
// 연도가 바뀌면 계약 만료 판정이 달라지므로 새해 직후 재적재한다
type DatasetRefreshJob struct {
	store    Reloader
	schedule string
	logger   *logger.Logger
}

// NewDatasetRefreshJob creates a new dataset refresh job
func NewDatasetRefreshJob(store Reloader, schedule string, log *logger.Logger) *DatasetRefreshJob {
	return &DatasetRefreshJob{
		store:    store,
		schedule: schedule,
		logger:   log.Component("dataset_refresh"),
	}
}

// Name returns the job name
func (j *DatasetRefreshJob) Name() string {
	return DatasetRefreshJobName
}

// Schedule returns the cron schedule
func (j *DatasetRefreshJob) Schedule() string {
	return j.schedule
}

// Run executes the reload; the previous dataset stays live on failure
func (j *DatasetRefreshJob) Run(ctx context.Context) error {
	j.logger.Debug("Starting scheduled dataset refresh")

	ds, err := j.store.Reload(ctx)
	if err != nil {
		return fmt.Errorf("dataset refresh: %w", err)
	}

	j.logger.WithFields(map[string]interface{}{
		"eligible":     ds.Report.Eligible,
		"excluded":     ds.Report.ExcludedCount(),
		"current_year": ds.CurrentYear,
	}).Info("Dataset refreshed")

	return nil
}
