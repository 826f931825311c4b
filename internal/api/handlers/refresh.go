package handlers

import (
	"net/http"
	"time"

	"github.com/wonny/scout/backend/internal/scheduler"
	"github.com/wonny/scout/backend/pkg/logger"
)

// JobRunner is the part of the scheduler the refresh endpoints need
type JobRunner interface {
	RunJob(jobName string) error
	NextRun(jobName string) (time.Time, error)
	GetJobStats() map[string]scheduler.JobStats
	GetJobHistory(jobName string) (scheduler.JobHistory, error)
}

// RefreshStatus reports the scheduled dataset refresh
type RefreshStatus struct {
	Stats   scheduler.JobStats    `json:"stats"`
	NextRun time.Time             `json:"next_run"`
	Recent  []scheduler.JobResult `json:"recent"`
}

// RefreshHandler exposes the scheduled dataset refresh job
type RefreshHandler struct {
	runner  JobRunner
	jobName string
	logger  *logger.Logger
}

// NewRefreshHandler creates a handler for jobName
func NewRefreshHandler(runner JobRunner, jobName string, log *logger.Logger) *RefreshHandler {
	return &RefreshHandler{
		runner:  runner,
		jobName: jobName,
		logger:  log.Component("api"),
	}
}

// GetStatus returns schedule, run statistics and the latest results
// GET /api/v1/dataset/refresh
func (h *RefreshHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	next, err := h.runner.NextRun(h.jobName)
	if err != nil {
		respondError(w, http.StatusNotFound, "Refresh job not scheduled")
		return
	}
	history, err := h.runner.GetJobHistory(h.jobName)
	if err != nil {
		respondError(w, http.StatusNotFound, "Refresh job not scheduled")
		return
	}

	respondJSON(w, http.StatusOK, RefreshStatus{
		Stats:   h.runner.GetJobStats()[h.jobName],
		NextRun: next,
		Recent:  history.GetLatestResults(5),
	})
}

// Trigger starts the refresh job in the background
// POST /api/v1/dataset/refresh
func (h *RefreshHandler) Trigger(w http.ResponseWriter, r *http.Request) {
	if err := h.runner.RunJob(h.jobName); err != nil {
		respondError(w, http.StatusNotFound, "Refresh job not scheduled")
		return
	}

	h.logger.WithField("job", h.jobName).Info("Dataset refresh triggered via API")
	respondJSON(w, http.StatusAccepted, map[string]string{
		"status": "accepted",
		"job":    h.jobName,
	})
}
