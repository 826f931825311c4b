package contracts

// RankedPlayer is a record with its 1-based position in a ranking
// ⭐ SSOT: S3 랭킹 결과 전달
type RankedPlayer struct {
	Rank   int          `json:"rank"`
	Metric Metric       `json:"metric"`
	Score  float64      `json:"score"`
	Player PlayerRecord `json:"player"`
}

// IsTopRanked checks if the player is in top N ranks
func (r *RankedPlayer) IsTopRanked(n int) bool {
	return r.Rank <= n && r.Rank > 0
}

// ValuePick is a high-rated player ordered by rating per unit of market value
type ValuePick struct {
	Rank       int          `json:"rank"`
	Efficiency float64      `json:"efficiency"` // Overall / MarketValue
	Player     PlayerRecord `json:"player"`
}
