package s4_growth

import (
	"sort"

	"github.com/wonny/scout/backend/internal/contracts"
)

// Cohort age bounds
const (
	DefaultU20MaxAge   = 19 // u20: age < 20
	DefaultYoungMaxAge = 23 // 20to23: 20 <= age <= 23
)

// Engine computes potential gaps with configurable cohort bounds
type Engine struct {
	u20MaxAge   int
	youngMaxAge int
}

// NewEngine creates an engine; u20MaxAge < youngMaxAge is expected
func NewEngine(u20MaxAge, youngMaxAge int) *Engine {
	return &Engine{u20MaxAge: u20MaxAge, youngMaxAge: youngMaxAge}
}

// ComputeGrowth partitions the view with the default cohort bounds
func ComputeGrowth(view []contracts.PlayerRecord) contracts.GrowthReport {
	return NewEngine(DefaultU20MaxAge, DefaultYoungMaxAge).Compute(view)
}

// CohortOf buckets an age
func (e *Engine) CohortOf(age int) contracts.Cohort {
	switch {
	case age <= e.u20MaxAge:
		return contracts.CohortU20
	case age <= e.youngMaxAge:
		return contracts.CohortYoung
	default:
		return contracts.CohortOther
	}
}

// Compute annotates each record with its gap and cohort, then partitions
// promising (gap > 0), peaked (gap == 0) and declined (gap < 0)
// ⭐ SSOT: S1 → S4 잠재력 격차 분석
func (e *Engine) Compute(view []contracts.PlayerRecord) contracts.GrowthReport {
	report := contracts.GrowthReport{
		Records:     make([]contracts.GrowthRecord, 0, len(view)),
		Promising:   make([]contracts.GrowthRecord, 0),
		Peaked:      make([]contracts.GrowthRecord, 0),
		Declined:    make([]contracts.GrowthRecord, 0),
		U20:         make([]contracts.GrowthRecord, 0),
		YoungCohort: make([]contracts.GrowthRecord, 0),
	}

	for _, r := range view {
		g := contracts.GrowthRecord{
			PlayerRecord: r,
			PotentialGap: r.PotentialGap(),
			Cohort:       e.CohortOf(r.Age),
		}
		report.Records = append(report.Records, g)

		switch {
		case g.PotentialGap > 0:
			report.Promising = append(report.Promising, g)
		case g.PotentialGap == 0:
			report.Peaked = append(report.Peaked, g)
		default:
			report.Declined = append(report.Declined, g)
		}
	}

	sort.SliceStable(report.Promising, func(i, j int) bool {
		return report.Promising[i].PotentialGap > report.Promising[j].PotentialGap
	})

	// 코호트는 갭 순서에서 출발해 잠재력 내림차순으로 재정렬
	for _, g := range report.Promising {
		switch g.Cohort {
		case contracts.CohortU20:
			report.U20 = append(report.U20, g)
		case contracts.CohortYoung:
			report.YoungCohort = append(report.YoungCohort, g)
		}
	}
	byPotential := func(s []contracts.GrowthRecord) {
		sort.SliceStable(s, func(i, j int) bool {
			return s[i].Potential > s[j].Potential
		})
	}
	byPotential(report.U20)
	byPotential(report.YoungCohort)

	report.Summary = contracts.GrowthSummary{
		PromisingCount:      len(report.Promising),
		PeakedCount:         len(report.Peaked),
		DeclinedCount:       len(report.Declined),
		YoungPromisingCount: len(report.U20) + len(report.YoungCohort),
	}

	return report
}

// PromisingSeries plots age (x) against potential gap (y)
func PromisingSeries(report contracts.GrowthReport) []contracts.ScatterPoint {
	points := make([]contracts.ScatterPoint, 0, len(report.Promising))
	for _, g := range report.Promising {
		points = append(points, contracts.ScatterPoint{
			ID: g.ID, Name: g.Name, Club: g.Club,
			X: float64(g.Age), Y: float64(g.PotentialGap),
		})
	}
	return points
}

// PeakedSeries plots age (x) against overall (y)
func PeakedSeries(report contracts.GrowthReport) []contracts.ScatterPoint {
	points := make([]contracts.ScatterPoint, 0, len(report.Peaked))
	for _, g := range report.Peaked {
		points = append(points, contracts.ScatterPoint{
			ID: g.ID, Name: g.Name, Club: g.Club,
			X: float64(g.Age), Y: float64(g.Overall),
		})
	}
	return points
}

// Head returns at most n records of s
func Head(s []contracts.GrowthRecord, n int) []contracts.GrowthRecord {
	if n < 0 {
		n = 0
	}
	if len(s) > n {
		return s[:n]
	}
	return s
}
