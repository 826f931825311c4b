package s3_ranking

import (
	"fmt"
	"sort"

	"github.com/wonny/scout/backend/internal/contracts"
)

// Defaults of the overview ranking and the best-value table
const (
	DefaultTopN             = 10
	DefaultQualityThreshold = 80
	DefaultValueTopN        = 20
)

// TopByMetric ranks the view by metric (descending) and keeps the first n
// Ties keep view order; n <= 0 yields an empty ranking
// ⭐ SSOT: S3 지표별 Top N
func TopByMetric(view []contracts.PlayerRecord, metric contracts.Metric, n int) ([]contracts.RankedPlayer, error) {
	if !metric.Supports(contracts.RankingMetrics()) {
		return nil, &contracts.ValidationError{
			Field:   "metric",
			Message: fmt.Sprintf("%s is not a ranking metric", metric),
		}
	}
	if n <= 0 || len(view) == 0 {
		return []contracts.RankedPlayer{}, nil
	}

	sorted := make([]contracts.PlayerRecord, len(view))
	copy(sorted, view)
	sort.SliceStable(sorted, func(i, j int) bool {
		return metric.Value(&sorted[i]) > metric.Value(&sorted[j])
	})

	if n > len(sorted) {
		n = len(sorted)
	}

	ranked := make([]contracts.RankedPlayer, n)
	for i := 0; i < n; i++ {
		ranked[i] = contracts.RankedPlayer{
			Rank:   i + 1,
			Metric: metric,
			Score:  metric.Value(&sorted[i]),
			Player: sorted[i],
		}
	}
	return ranked, nil
}

// BestValue keeps players with Overall > threshold and orders them by
// Overall / MarketValue descending, first n
// No qualifying player is an empty result, not an error
func BestValue(view []contracts.PlayerRecord, threshold, n int) []contracts.ValuePick {
	picks := make([]contracts.ValuePick, 0)
	if n <= 0 {
		return picks
	}

	for _, r := range view {
		if r.Overall <= threshold || r.MarketValue <= 0 {
			continue
		}
		picks = append(picks, contracts.ValuePick{
			Efficiency: float64(r.Overall) / r.MarketValue,
			Player:     r,
		})
	}

	// 가성비 내림차순, 동점은 뷰 순서 유지
	sort.SliceStable(picks, func(i, j int) bool {
		return picks[i].Efficiency > picks[j].Efficiency
	})

	if len(picks) > n {
		picks = picks[:n]
	}
	for i := range picks {
		picks[i].Rank = i + 1
	}
	return picks
}
