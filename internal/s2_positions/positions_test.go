package s2_positions

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/scout/backend/internal/contracts"
)

func player(id int64, pos string, overall, potential int, value, wage float64) contracts.PlayerRecord {
	return contracts.PlayerRecord{
		ID: id, Name: "P", Position: pos, Overall: overall, Potential: potential,
		MarketValue: value, Wage: wage,
	}
}

func TestAggregate(t *testing.T) {
	view := []contracts.PlayerRecord{
		player(1, "ST", 90, 92, 1.0e8, 300000),
		player(2, "CB", 85, 86, 5.0e7, 120000),
		player(3, "LW", 84, 88, 6.0e7, 150000),
		player(4, "RCB", 80, 84, 3.0e7, 80000),
		player(5, "SUB", 75, 80, 1.0e7, 20000), // not in any group
		player(6, "RF", 81, 81, 2.5e7, 60000),
	}

	got := Aggregate(view, contracts.DefaultTaxonomy())
	require.Len(t, got, 2)

	// Declared order: Defenders before Attackers, Goalkeepers/Midfielders omitted
	assert.Equal(t, "Defenders", got[0].Group)
	assert.Equal(t, "Attackers", got[1].Group)

	def := got[0]
	assert.Equal(t, 2, def.Count)
	assert.Equal(t, 82.5, def.MeanOverall)
	assert.Equal(t, 85.0, def.MeanPotential)
	assert.Equal(t, 4.0e7, def.MeanMarketValue)
	assert.Equal(t, 100000.0, def.MeanWage)
	assert.Equal(t, 28284.27, def.WageStdDev)
	assert.Equal(t, 0, def.WageOutliers)

	att := got[1]
	assert.Equal(t, 3, att.Count)
	assert.Equal(t, 85.0, att.MeanOverall)
	assert.Equal(t, 87.0, att.MeanPotential)
	assert.Equal(t, 170000.0, att.MeanWage)
}

func TestAggregate_MeanRoundsHalfToEven(t *testing.T) {
	view := make([]contracts.PlayerRecord, 0, 8)
	for i := 1; i <= 7; i++ {
		view = append(view, player(int64(i), "ST", 80, 80, 1.0e7, 10000))
	}
	view = append(view, player(8, "ST", 81, 81, 1.0e7, 10000))

	got := Aggregate(view, contracts.DefaultTaxonomy())
	require.Len(t, got, 1)

	// 641 / 8 = 80.125
	assert.Equal(t, 80.12, got[0].MeanOverall)
	assert.Equal(t, 80.12, got[0].MeanPotential)
}

func TestAggregate_SinglePlayerGroup(t *testing.T) {
	got := Aggregate([]contracts.PlayerRecord{player(1, "GK", 90, 91, 9.0e7, 250000)}, contracts.DefaultTaxonomy())
	require.Len(t, got, 1)
	assert.Equal(t, "Goalkeepers", got[0].Group)
	assert.Equal(t, 0.0, got[0].WageStdDev)
	assert.Equal(t, 0, got[0].WageOutliers)
}

func TestAggregate_NeverEmitsEmptyGroups(t *testing.T) {
	assert.Empty(t, Aggregate(nil, contracts.DefaultTaxonomy()))

	view := []contracts.PlayerRecord{player(1, "CAM", 80, 85, 1e7, 1000)}
	for _, s := range Aggregate(view, contracts.DefaultTaxonomy()) {
		assert.Greater(t, s.Count, 0)
	}
}

func TestAggregate_OutliersOrderInvariant(t *testing.T) {
	wages := []float64{1000, 1100, 1200, 1300, 1250, 1150, 90000, 1050, 1400, 70000}
	view := make([]contracts.PlayerRecord, len(wages))
	for i, w := range wages {
		view[i] = player(int64(i), "CM", 70, 75, 1e6, w)
	}

	base := Aggregate(view, contracts.DefaultTaxonomy())
	require.Len(t, base, 1)
	assert.Equal(t, 2, base[0].WageOutliers)

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		shuffled := append([]contracts.PlayerRecord(nil), view...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		got := Aggregate(shuffled, contracts.DefaultTaxonomy())
		assert.Equal(t, base[0].WageOutliers, got[0].WageOutliers)
		assert.Equal(t, base[0].WageStdDev, got[0].WageStdDev)
	}
}

func TestAggregate_CustomTaxonomyOrder(t *testing.T) {
	taxonomy := contracts.Taxonomy{
		{Name: "Forwards", Codes: []string{"ST"}},
		{Name: "Keepers", Codes: []string{"GK"}},
	}
	view := []contracts.PlayerRecord{
		player(1, "GK", 80, 80, 1e6, 1000),
		player(2, "ST", 80, 80, 1e6, 1000),
	}

	got := Aggregate(view, taxonomy)
	require.Len(t, got, 2)
	assert.Equal(t, "Forwards", got[0].Group)
	assert.Equal(t, "Keepers", got[1].Group)
}

func TestClassify(t *testing.T) {
	group, ok := Classify("LDM", contracts.DefaultTaxonomy())
	assert.True(t, ok)
	assert.Equal(t, "Midfielders", group)

	_, ok = Classify("RES", contracts.DefaultTaxonomy())
	assert.False(t, ok)
}

func TestDistribution(t *testing.T) {
	view := []contracts.PlayerRecord{
		player(1, "CB", 80, 80, 1e6, 10),
		player(2, "LCB", 80, 80, 1e6, 20),
		player(3, "RCB", 80, 80, 1e6, 1000),
		player(4, "CB", 80, 80, 1e6, 30),
		player(5, "CB", 80, 80, 1e6, 25),
		player(6, "ST", 80, 80, 1e6, 500),
	}

	got, err := Distribution(view, contracts.DefaultTaxonomy(), contracts.MetricWage)
	require.NoError(t, err)
	require.Len(t, got, 2)

	def := got[0]
	assert.Equal(t, "Defenders", def.Group)
	assert.Equal(t, 5, def.Count)
	assert.Equal(t, 10.0, def.Min)
	assert.Equal(t, 20.0, def.Q1)
	assert.Equal(t, 25.0, def.Median)
	assert.Equal(t, 30.0, def.Q3)
	assert.Equal(t, 1000.0, def.Max)
	assert.Equal(t, 10.0, def.LowerWhisker)
	assert.Equal(t, 30.0, def.UpperWhisker)
	assert.Equal(t, []float64{1000}, def.Outliers)

	att := got[1]
	assert.Equal(t, "Attackers", att.Group)
	assert.Equal(t, 500.0, att.LowerWhisker)
	assert.Equal(t, 500.0, att.UpperWhisker)
	assert.Empty(t, att.Outliers)
}

func TestDistribution_RejectsMarketValue(t *testing.T) {
	_, err := Distribution(nil, contracts.DefaultTaxonomy(), contracts.MetricMarketValue)
	assert.True(t, contracts.IsValidationError(err))
}
