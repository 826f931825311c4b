package contracts

// PositionGroup maps a display name to the position codes it covers
type PositionGroup struct {
	Name  string   `json:"name" yaml:"name"`
	Codes []string `json:"codes" yaml:"codes"`
}

// Contains checks if a position code belongs to the group
func (g *PositionGroup) Contains(code string) bool {
	for _, c := range g.Codes {
		if c == code {
			return true
		}
	}
	return false
}

// Taxonomy is the ordered list of position groups; declared order is iteration order
type Taxonomy []PositionGroup

// DefaultTaxonomy returns the standard four-group taxonomy
func DefaultTaxonomy() Taxonomy {
	return Taxonomy{
		{Name: "Goalkeepers", Codes: []string{"GK"}},
		{Name: "Defenders", Codes: []string{"CB", "LCB", "RCB"}},
		{Name: "Midfielders", Codes: []string{"CM", "CDM", "CAM", "LM", "RM", "LDM", "RDM"}},
		{Name: "Attackers", Codes: []string{"ST", "CF", "RW", "LW", "RS", "LS", "RF", "LF"}},
	}
}

// Index builds a code → group name lookup
func (t Taxonomy) Index() map[string]string {
	idx := make(map[string]string)
	for _, g := range t {
		for _, c := range g.Codes {
			idx[c] = g.Name
		}
	}
	return idx
}

// PositionStats is the per-group aggregate emitted by S2
// ⭐ SSOT: S2 포지션 그룹 통계
type PositionStats struct {
	Group           string  `json:"group"`
	Count           int     `json:"count"`
	MeanOverall     float64 `json:"mean_overall"`
	MeanPotential   float64 `json:"mean_potential"`
	MeanMarketValue float64 `json:"mean_market_value"`
	MeanWage        float64 `json:"mean_wage"`
	WageStdDev      float64 `json:"wage_std_dev"` // 표본 표준편차, Count = 1 이면 0
	WageOutliers    int     `json:"wage_outliers"`
}

// BoxSummary is the five-number summary of one metric within a group
type BoxSummary struct {
	Group        string    `json:"group"`
	Metric       Metric    `json:"metric"`
	Count        int       `json:"count"`
	Min          float64   `json:"min"`
	Q1           float64   `json:"q1"`
	Median       float64   `json:"median"`
	Q3           float64   `json:"q3"`
	Max          float64   `json:"max"`
	LowerWhisker float64   `json:"lower_whisker"`
	UpperWhisker float64   `json:"upper_whisker"`
	Outliers     []float64 `json:"outliers"`
}
