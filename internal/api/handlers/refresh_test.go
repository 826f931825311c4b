package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/scout/backend/internal/scheduler"
	"github.com/wonny/scout/backend/internal/scheduler/jobs"
	"github.com/wonny/scout/backend/pkg/logger"
)

func newRefreshScheduler(t *testing.T, p *fakeProvider) *scheduler.Scheduler {
	t.Helper()
	s := scheduler.New(logger.Nop(), scheduler.WithRetry(0, time.Millisecond))
	require.NoError(t, s.AddJob(jobs.NewDatasetRefreshJob(p, "0 5 0 1 1 *", logger.Nop())))
	return s
}

func TestRefreshStatus(t *testing.T) {
	p := &fakeProvider{ds: fixture()}
	s := newRefreshScheduler(t, p)
	_, err := s.RunNow(context.Background(), jobs.DatasetRefreshJobName)
	require.NoError(t, err)

	h := NewRefreshHandler(s, jobs.DatasetRefreshJobName, logger.Nop())
	rec := serve(h.GetStatus, http.MethodGet, "/api/v1/dataset/refresh")
	require.Equal(t, http.StatusOK, rec.Code)

	var status RefreshStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, "0 5 0 1 1 *", status.Stats.Schedule)
	assert.Equal(t, 1, status.Stats.SuccessCount)
	assert.Equal(t, time.January, status.NextRun.Month())
	assert.Equal(t, 1, status.NextRun.Day())
	require.Len(t, status.Recent, 1)
	assert.Equal(t, 1, p.reloads)
}

func TestRefreshTrigger(t *testing.T) {
	p := &fakeProvider{ds: fixture()}
	s := newRefreshScheduler(t, p)

	h := NewRefreshHandler(s, jobs.DatasetRefreshJobName, logger.Nop())
	rec := serve(h.Trigger, http.MethodPost, "/api/v1/dataset/refresh")
	require.Equal(t, http.StatusAccepted, rec.Code)

	assert.Eventually(t, func() bool {
		hist, err := s.GetJobHistory(jobs.DatasetRefreshJobName)
		return err == nil && len(hist.Results) == 1
	}, time.Second, 5*time.Millisecond)
}

func TestRefreshUnknownJob(t *testing.T) {
	s := scheduler.New(logger.Nop())

	h := NewRefreshHandler(s, jobs.DatasetRefreshJobName, logger.Nop())
	assert.Equal(t, http.StatusNotFound, serve(h.GetStatus, http.MethodGet, "/").Code)
	assert.Equal(t, http.StatusNotFound, serve(h.Trigger, http.MethodPost, "/").Code)
}
