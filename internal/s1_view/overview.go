package s1_view

import "github.com/wonny/scout/backend/internal/contracts"

// DefaultScatterSample is the number of leading records plotted on the overview
const DefaultScatterSample = 100

// Summarize computes the headline metrics of a view
func Summarize(view []contracts.PlayerRecord) contracts.Overview {
	nations := make(map[string]struct{})
	ids := make(map[int64]struct{}, len(view))
	for _, r := range view {
		nations[r.Nationality] = struct{}{}
		ids[r.ID] = struct{}{}
	}

	return contracts.Overview{
		NationalityCount: len(nations),
		PlayerCount:      len(ids),
		Empty:            len(view) == 0,
	}
}

// Scatter returns market value (x) against overall (y) for the first n records
// n <= 0 uses DefaultScatterSample
func Scatter(view []contracts.PlayerRecord, n int) []contracts.ScatterPoint {
	if n <= 0 {
		n = DefaultScatterSample
	}
	if n > len(view) {
		n = len(view)
	}

	points := make([]contracts.ScatterPoint, 0, n)
	for _, r := range view[:n] {
		points = append(points, contracts.ScatterPoint{
			ID:   r.ID,
			Name: r.Name,
			Club: r.Club,
			X:    r.MarketValue,
			Y:    float64(r.Overall),
		})
	}
	return points
}
