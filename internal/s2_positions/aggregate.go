package s2_positions

import (
	"github.com/wonny/scout/backend/internal/contracts"
	"github.com/wonny/scout/backend/internal/stats"
)

// Aggregate computes PositionStats per taxonomy group, in declared order
// Groups with no record in the view are omitted
// ⭐ SSOT: S1 → S2 포지션 그룹 통계
func Aggregate(view []contracts.PlayerRecord, taxonomy contracts.Taxonomy) []contracts.PositionStats {
	groups := partition(view, taxonomy)

	out := make([]contracts.PositionStats, 0, len(taxonomy))
	for _, g := range taxonomy {
		members := groups[g.Name]
		if len(members) == 0 {
			continue
		}

		overall := make([]float64, len(members))
		potential := make([]float64, len(members))
		value := make([]float64, len(members))
		wage := make([]float64, len(members))
		for i, r := range members {
			overall[i] = float64(r.Overall)
			potential[i] = float64(r.Potential)
			value[i] = r.MarketValue
			wage[i] = r.Wage
		}

		out = append(out, contracts.PositionStats{
			Group:           g.Name,
			Count:           len(members),
			MeanOverall:     stats.Round2(stats.Mean(overall)),
			MeanPotential:   stats.Round2(stats.Mean(potential)),
			MeanMarketValue: stats.Round2(stats.Mean(value)),
			MeanWage:        stats.Round2(stats.Mean(wage)),
			WageStdDev:      stats.Round2(stats.StdDev(wage)),
			WageOutliers:    stats.CountOutliers(wage),
		})
	}

	return out
}

// Classify returns the group name of a position code
func Classify(position string, taxonomy contracts.Taxonomy) (string, bool) {
	for _, g := range taxonomy {
		if g.Contains(position) {
			return g.Name, true
		}
	}
	return "", false
}

// partition buckets the view by group name, keeping view order inside each bucket
func partition(view []contracts.PlayerRecord, taxonomy contracts.Taxonomy) map[string][]contracts.PlayerRecord {
	idx := taxonomy.Index()
	groups := make(map[string][]contracts.PlayerRecord, len(taxonomy))
	for _, r := range view {
		if name, ok := idx[r.Position]; ok {
			groups[name] = append(groups[name], r)
		}
	}
	return groups
}
