package s2_positions

import (
	"fmt"

	"github.com/wonny/scout/backend/internal/contracts"
	"github.com/wonny/scout/backend/internal/stats"
)

// Distribution returns the box plot summary of metric for every non-empty group
func Distribution(view []contracts.PlayerRecord, taxonomy contracts.Taxonomy, metric contracts.Metric) ([]contracts.BoxSummary, error) {
	if !metric.Supports(contracts.DistributionMetrics()) {
		return nil, &contracts.ValidationError{
			Field:   "metric",
			Message: fmt.Sprintf("%s is not available for distributions", metric),
		}
	}

	groups := partition(view, taxonomy)

	out := make([]contracts.BoxSummary, 0, len(taxonomy))
	for _, g := range taxonomy {
		members := groups[g.Name]
		if len(members) == 0 {
			continue
		}

		values := make([]float64, len(members))
		for i := range members {
			values[i] = metric.Value(&members[i])
		}
		out = append(out, summarize(g.Name, metric, values))
	}

	return out, nil
}

func summarize(group string, metric contracts.Metric, values []float64) contracts.BoxSummary {
	sorted := stats.Sorted(values)
	fences := stats.TukeyFences(sorted)

	box := contracts.BoxSummary{
		Group:        group,
		Metric:       metric,
		Count:        len(sorted),
		Min:          sorted[0],
		Q1:           fences.Q1,
		Median:       stats.Quantile(sorted, 0.5),
		Q3:           fences.Q3,
		Max:          sorted[len(sorted)-1],
		LowerWhisker: sorted[len(sorted)-1],
		UpperWhisker: sorted[0],
		Outliers:     make([]float64, 0),
	}

	// 수염: 펜스 안쪽의 가장 먼 값
	for _, v := range sorted {
		if fences.IsOutlier(v) {
			box.Outliers = append(box.Outliers, v)
			continue
		}
		if v < box.LowerWhisker {
			box.LowerWhisker = v
		}
		if v > box.UpperWhisker {
			box.UpperWhisker = v
		}
	}
	return box
}
