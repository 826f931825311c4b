package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/wonny/scout/backend/internal/contracts"
	"github.com/wonny/scout/backend/internal/dashboardconfig"
	"github.com/wonny/scout/backend/internal/s1_view"
	"github.com/wonny/scout/backend/internal/s2_positions"
	"github.com/wonny/scout/backend/internal/s3_ranking"
	"github.com/wonny/scout/backend/internal/s4_growth"
	"github.com/wonny/scout/backend/pkg/logger"
)

// Orchestrator composes S1 → {S2, S3, S4} over the session dataset per tab
// ⭐ SSOT: 파이프라인 조율은 여기서만 (UI 상태 없음)
type Orchestrator struct {
	provider  contracts.DatasetProvider
	config    *dashboardconfig.Config
	growth    *s4_growth.Engine
	publicURL string
	logger    *logger.Logger
}

// NewOrchestrator creates a new orchestrator
func NewOrchestrator(
	provider contracts.DatasetProvider,
	config *dashboardconfig.Config,
	publicURL string,
	logger *logger.Logger,
) *Orchestrator {
	return &Orchestrator{
		provider:  provider,
		config:    config,
		growth:    s4_growth.NewEngine(config.Growth.U20MaxAge, config.Growth.YoungMaxAge),
		publicURL: publicURL,
		logger:    logger.Component("dashboard"),
	}
}

// Config returns the analytics configuration in use
func (o *Orchestrator) Config() *dashboardconfig.Config {
	return o.config
}

// Options lists the filter values of the whole canonical dataset
func (o *Orchestrator) Options(ctx context.Context) (*contracts.FilterOptions, error) {
	ds, err := o.provider.Get(ctx)
	if err != nil {
		return nil, err
	}
	opts := s1_view.Options(ds.Records)
	return &opts, nil
}

// Players returns the filtered view itself
func (o *Orchestrator) Players(ctx context.Context, criteria contracts.FilterCriteria) (*PlayersResult, error) {
	view, _, err := o.runS1(ctx, criteria)
	if err != nil {
		return nil, err
	}
	return &PlayersResult{
		Criteria: criteria,
		Count:    len(view),
		Players:  view,
		Empty:    len(view) == 0,
	}, nil
}

// Overview builds the overview tab
func (o *Orchestrator) Overview(ctx context.Context, req OverviewRequest) (*OverviewResult, error) {
	metric := req.Metric
	if metric == "" {
		metric = o.config.OverviewMetric()
	}
	limit := req.Limit
	if limit <= 0 {
		limit = o.config.Overview.TopN
	}

	view, s1, err := o.runS1(ctx, req.Criteria)
	if err != nil {
		return nil, err
	}

	// S3: Top N
	start := time.Now()
	top, err := s3_ranking.TopByMetric(view, metric, limit)
	if err != nil {
		return nil, err
	}
	s3 := o.stageDone(contracts.StageRanking, len(view), len(top), start, map[string]interface{}{
		"metric": metric,
		"limit":  limit,
	})

	return &OverviewResult{
		Criteria: req.Criteria,
		Overview: s1_view.Summarize(view),
		Scatter:  s1_view.Scatter(view, o.config.Overview.ScatterSample),
		Metric:   metric,
		Top:      top,
		Empty:    len(view) == 0,
		Stages:   []contracts.PipelineResult{s1, s3},
	}, nil
}

// Positions builds the positions tab
func (o *Orchestrator) Positions(ctx context.Context, req PositionsRequest) (*PositionsResult, error) {
	metric := req.Metric
	if metric == "" {
		metric = o.config.PositionsMetric()
	}

	view, s1, err := o.runS1(ctx, req.Criteria)
	if err != nil {
		return nil, err
	}

	// S2: 그룹 통계 + 분포
	start := time.Now()
	stats := s2_positions.Aggregate(view, o.config.Taxonomy)
	dist, err := s2_positions.Distribution(view, o.config.Taxonomy, metric)
	if err != nil {
		return nil, err
	}
	s2 := o.stageDone(contracts.StagePositions, len(view), len(stats), start, map[string]interface{}{
		"metric": metric,
	})

	return &PositionsResult{
		Criteria:     req.Criteria,
		Stats:        stats,
		Metric:       metric,
		Distribution: dist,
		Empty:        len(stats) == 0,
		Stages:       []contracts.PipelineResult{s1, s2},
	}, nil
}

// Growth builds the growth tab
func (o *Orchestrator) Growth(ctx context.Context, req GrowthRequest) (*GrowthResult, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = o.config.Growth.TableLimit
	}

	view, s1, err := o.runS1(ctx, req.Criteria)
	if err != nil {
		return nil, err
	}

	// S4: 잠재력 격차
	start := time.Now()
	report := o.growth.Compute(view)
	s4 := o.stageDone(contracts.StageGrowth, len(view), report.Summary.PromisingCount, start, map[string]interface{}{
		"peaked":         report.Summary.PeakedCount,
		"young_promises": report.Summary.YoungPromisingCount,
	})

	// S3: 가성비
	start = time.Now()
	picks := s3_ranking.BestValue(view, o.config.Value.QualityThreshold, o.config.Value.TopN)
	s3 := o.stageDone(contracts.StageRanking, len(view), len(picks), start, map[string]interface{}{
		"quality_threshold": o.config.Value.QualityThreshold,
	})

	return &GrowthResult{
		Criteria:        req.Criteria,
		Summary:         report.Summary,
		U20:             s4_growth.Head(report.U20, limit),
		YoungCohort:     s4_growth.Head(report.YoungCohort, limit),
		PromisingSeries: s4_growth.PromisingSeries(report),
		PeakedSeries:    s4_growth.PeakedSeries(report),
		BestValue:       picks,
		ValueSeries:     valueSeries(picks),
		Empty:           len(view) == 0,
		Stages:          []contracts.PipelineResult{s1, s4, s3},
	}, nil
}

// Source describes the loaded dataset
func (o *Orchestrator) Source(ctx context.Context) (*SourceInfo, error) {
	ds, err := o.provider.Get(ctx)
	if err != nil {
		return nil, err
	}

	hash, err := dashboardconfig.Hash(o.config)
	if err != nil {
		return nil, fmt.Errorf("hash analytics config: %w", err)
	}

	return &SourceInfo{
		PublicURL:   o.publicURL,
		CurrentYear: ds.CurrentYear,
		LoadedAt:    ds.LoadedAt,
		Report:      ds.Report,
		ConfigID:    o.config.Meta.ConfigID,
		ConfigHash:  hash,
	}, nil
}

// runS1 loads the session dataset and applies the filter
func (o *Orchestrator) runS1(ctx context.Context, criteria contracts.FilterCriteria) ([]contracts.PlayerRecord, contracts.PipelineResult, error) {
	ds, err := o.provider.Get(ctx)
	if err != nil {
		return nil, contracts.PipelineResult{}, err
	}

	start := time.Now()
	view, err := s1_view.Filter(ds.Records, criteria)
	if err != nil {
		return nil, contracts.PipelineResult{}, err
	}

	res := o.stageDone(contracts.StageView, ds.Count(), len(view), start, map[string]interface{}{
		"position":    criteria.Position,
		"nationality": criteria.Nationality,
		"age":         criteria.Age,
	})
	return view, res, nil
}

// stageDone records and logs one stage execution
func (o *Orchestrator) stageDone(stage contracts.Stage, in, out int, start time.Time, meta map[string]interface{}) contracts.PipelineResult {
	res := contracts.PipelineResult{
		Stage:       stage,
		InputCount:  in,
		OutputCount: out,
		Duration:    time.Since(start).Microseconds(),
		Metadata:    meta,
	}

	o.logger.WithFields(map[string]interface{}{
		"stage":  stage.ShortName(),
		"input":  in,
		"output": out,
		"us":     res.Duration,
	}).Debug(fmt.Sprintf("%s completed", stage.Description()))

	return res
}

// valueSeries plots market value (x) against overall (y), sized by efficiency
func valueSeries(picks []contracts.ValuePick) []contracts.ScatterPoint {
	points := make([]contracts.ScatterPoint, 0, len(picks))
	for _, p := range picks {
		points = append(points, contracts.ScatterPoint{
			ID:   p.Player.ID,
			Name: p.Player.Name,
			Club: p.Player.Club,
			X:    p.Player.MarketValue,
			Y:    float64(p.Player.Overall),
			Size: p.Efficiency,
		})
	}
	return points
}
