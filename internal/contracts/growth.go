package contracts

// Cohort buckets a player by age for growth analysis
type Cohort string

const (
	CohortU20   Cohort = "u20"    // age < 20
	CohortYoung Cohort = "20to23" // 20 <= age <= 23
	CohortOther Cohort = "other"
)

// GrowthRecord is a record annotated with its potential gap
// ⭐ SSOT: S4 잠재력 격차 레코드
type GrowthRecord struct {
	PlayerRecord
	PotentialGap int    `json:"potential_gap"`
	Cohort       Cohort `json:"cohort"`
}

// IsPromising reports a positive gap
func (g *GrowthRecord) IsPromising() bool { return g.PotentialGap > 0 }

// IsPeaked reports a zero gap
func (g *GrowthRecord) IsPeaked() bool { return g.PotentialGap == 0 }

// GrowthSummary holds the headline counts of the growth tab
type GrowthSummary struct {
	PromisingCount      int `json:"promising_count"`
	PeakedCount         int `json:"peaked_count"`
	DeclinedCount       int `json:"declined_count"`
	YoungPromisingCount int `json:"young_promising_count"` // len(U20) + len(YoungCohort)
}

// GrowthReport partitions a view by potential gap
type GrowthReport struct {
	Records     []GrowthRecord `json:"records"`
	Promising   []GrowthRecord `json:"promising"` // gap > 0, gap 내림차순
	Peaked      []GrowthRecord `json:"peaked"`    // gap == 0
	Declined    []GrowthRecord `json:"declined"`  // gap < 0
	U20         []GrowthRecord `json:"u20"`
	YoungCohort []GrowthRecord `json:"young_cohort"`
	Summary     GrowthSummary  `json:"summary"`
}
