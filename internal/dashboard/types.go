package dashboard

import (
	"time"

	"github.com/wonny/scout/backend/internal/contracts"
)

// OverviewRequest selects the overview tab
type OverviewRequest struct {
	Criteria contracts.FilterCriteria
	Metric   contracts.Metric // empty = config default
	Limit    int              // 0 = config default
}

// OverviewResult is the overview tab: headline metrics, scatter sample, top N
type OverviewResult struct {
	Criteria contracts.FilterCriteria   `json:"criteria"`
	Overview contracts.Overview         `json:"overview"`
	Scatter  []contracts.ScatterPoint   `json:"scatter"`
	Metric   contracts.Metric           `json:"metric"`
	Top      []contracts.RankedPlayer   `json:"top"`
	Empty    bool                       `json:"empty"`
	Stages   []contracts.PipelineResult `json:"stages"`
}

// PositionsRequest selects the positions tab
type PositionsRequest struct {
	Criteria contracts.FilterCriteria
	Metric   contracts.Metric // distribution metric, empty = config default
}

// PositionsResult is the positions tab: group table and box plot data
type PositionsResult struct {
	Criteria     contracts.FilterCriteria   `json:"criteria"`
	Stats        []contracts.PositionStats  `json:"stats"`
	Metric       contracts.Metric           `json:"metric"`
	Distribution []contracts.BoxSummary     `json:"distribution"`
	Empty        bool                       `json:"empty"`
	Stages       []contracts.PipelineResult `json:"stages"`
}

// GrowthRequest selects the growth tab
type GrowthRequest struct {
	Criteria contracts.FilterCriteria
	Limit    int // cohort table length, 0 = config default
}

// GrowthResult is the growth tab: summary, cohort tables, series, best value
type GrowthResult struct {
	Criteria        contracts.FilterCriteria   `json:"criteria"`
	Summary         contracts.GrowthSummary    `json:"summary"`
	U20             []contracts.GrowthRecord   `json:"u20"`
	YoungCohort     []contracts.GrowthRecord   `json:"young_cohort"`
	PromisingSeries []contracts.ScatterPoint   `json:"promising_series"`
	PeakedSeries    []contracts.ScatterPoint   `json:"peaked_series"`
	BestValue       []contracts.ValuePick      `json:"best_value"`
	ValueSeries     []contracts.ScatterPoint   `json:"value_series"`
	Empty           bool                       `json:"empty"`
	Stages          []contracts.PipelineResult `json:"stages"`
}

// PlayersResult is the raw filtered view
type PlayersResult struct {
	Criteria contracts.FilterCriteria `json:"criteria"`
	Count    int                      `json:"count"`
	Players  []contracts.PlayerRecord `json:"players"`
	Empty    bool                     `json:"empty"`
}

// SourceInfo describes where the dataset came from
type SourceInfo struct {
	PublicURL   string               `json:"public_url"`
	CurrentYear int                  `json:"current_year"`
	LoadedAt    time.Time            `json:"loaded_at"`
	Report      contracts.LoadReport `json:"report"`
	ConfigID    string               `json:"config_id"`
	ConfigHash  string               `json:"config_hash"`
}
