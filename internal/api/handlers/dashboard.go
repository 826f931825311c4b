package handlers

import (
	"context"
	"net/http"

	"github.com/wonny/scout/backend/internal/contracts"
	"github.com/wonny/scout/backend/internal/dashboard"
	"github.com/wonny/scout/backend/pkg/logger"
)

// DatasetReloader replaces the session dataset on demand
type DatasetReloader interface {
	Reload(ctx context.Context) (*contracts.Dataset, error)
}

// DashboardHandler serves the dashboard tabs
// ⭐ SSOT: 대시보드 API 핸들러는 이 구조체에서만
type DashboardHandler struct {
	orchestrator *dashboard.Orchestrator
	reloader     DatasetReloader
	params       *ParamValidator
	logger       *logger.Logger
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(
	orchestrator *dashboard.Orchestrator,
	reloader DatasetReloader,
	log *logger.Logger,
) *DashboardHandler {
	return &DashboardHandler{
		orchestrator: orchestrator,
		reloader:     reloader,
		params:       NewParamValidator(),
		logger:       log.Component("api"),
	}
}

// GetOptions returns the selectable filter values
// GET /api/v1/options
func (h *DashboardHandler) GetOptions(w http.ResponseWriter, r *http.Request) {
	opts, err := h.orchestrator.Options(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, opts)
}

// GetOverview returns the overview tab
// GET /api/v1/overview?position=&nationality=&age=&metric=market_value&limit=10
func (h *DashboardHandler) GetOverview(w http.ResponseWriter, r *http.Request) {
	p, metric, ok := h.parse(w, r)
	if !ok {
		return
	}

	res, err := h.orchestrator.Overview(r.Context(), dashboard.OverviewRequest{
		Criteria: p.Criteria(),
		Metric:   metric,
		Limit:    p.Limit,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

// GetPositions returns the positions tab
// GET /api/v1/positions?metric=wage
func (h *DashboardHandler) GetPositions(w http.ResponseWriter, r *http.Request) {
	p, metric, ok := h.parse(w, r)
	if !ok {
		return
	}

	res, err := h.orchestrator.Positions(r.Context(), dashboard.PositionsRequest{
		Criteria: p.Criteria(),
		Metric:   metric,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

// GetGrowth returns the growth tab
// GET /api/v1/growth?limit=10
func (h *DashboardHandler) GetGrowth(w http.ResponseWriter, r *http.Request) {
	p, _, ok := h.parse(w, r)
	if !ok {
		return
	}

	res, err := h.orchestrator.Growth(r.Context(), dashboard.GrowthRequest{
		Criteria: p.Criteria(),
		Limit:    p.Limit,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

// GetPlayers returns the filtered view
// GET /api/v1/players
func (h *DashboardHandler) GetPlayers(w http.ResponseWriter, r *http.Request) {
	p, _, ok := h.parse(w, r)
	if !ok {
		return
	}

	res, err := h.orchestrator.Players(r.Context(), p.Criteria())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

// GetSource returns the dataset link and load report
// GET /api/v1/source
func (h *DashboardHandler) GetSource(w http.ResponseWriter, r *http.Request) {
	info, err := h.orchestrator.Source(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, info)
}

// ReloadResponse reports an explicit dataset reload
type ReloadResponse struct {
	Status string               `json:"status"`
	Report contracts.LoadReport `json:"report"`
}

// ReloadDataset drops the session dataset and loads it again
// POST /api/v1/dataset/reload
func (h *DashboardHandler) ReloadDataset(w http.ResponseWriter, r *http.Request) {
	ds, err := h.reloader.Reload(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.logger.WithField("eligible", ds.Report.Eligible).Info("Dataset reloaded via API")
	respondJSON(w, http.StatusOK, ReloadResponse{Status: "reloaded", Report: ds.Report})
}

// parse validates the query string; on failure the 400 is already written
func (h *DashboardHandler) parse(w http.ResponseWriter, r *http.Request) (QueryParams, contracts.Metric, bool) {
	p, err := h.params.Parse(r.URL.Query())
	if err != nil {
		respondErr(w, err)
		return QueryParams{}, "", false
	}
	metric, err := p.MetricValue()
	if err != nil {
		respondErr(w, err)
		return QueryParams{}, "", false
	}
	return p, metric, true
}

// fail logs server-side failures and writes the mapped response
func (h *DashboardHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	if !contracts.IsValidationError(err) {
		h.logger.WithError(err).WithField("path", r.URL.Path).Error("Request failed")
	}
	respondErr(w, err)
}
