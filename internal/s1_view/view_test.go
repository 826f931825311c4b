package s1_view

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/scout/backend/internal/contracts"
)

func fixture() []contracts.PlayerRecord {
	return []contracts.PlayerRecord{
		{ID: 1, Name: "K. Mbappé", Age: 23, Nationality: "France", Position: "ST", Overall: 91, Potential: 95, MarketValue: 1.9e8, Club: "PSG"},
		{ID: 2, Name: "K. Benzema", Age: 34, Nationality: "France", Position: "CF", Overall: 91, Potential: 91, MarketValue: 6.4e7, Club: "Real Madrid"},
		{ID: 3, Name: "R. Lewandowski", Age: 33, Nationality: "Poland", Position: "ST", Overall: 91, Potential: 91, MarketValue: 8.4e7, Club: "FC Barcelona"},
		{ID: 4, Name: "T. Courtois", Age: 30, Nationality: "Belgium", Position: "GK", Overall: 90, Potential: 91, MarketValue: 9.0e7, Club: "Real Madrid"},
		{ID: 5, Name: "Pedri", Age: 19, Nationality: "Spain", Position: "CM", Overall: 85, Potential: 92, MarketValue: 1.0e8, Club: "FC Barcelona"},
		{ID: 6, Name: "E. Camavinga", Age: 19, Nationality: "France", Position: "CM", Overall: 82, Potential: 90, MarketValue: 6.0e7, Club: "Real Madrid"},
	}
}

func ids(records []contracts.PlayerRecord) []int64 {
	out := make([]int64, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

// isSubsequence reports whether sub appears in full in the same relative order
func isSubsequence(sub, full []int64) bool {
	i := 0
	for _, v := range full {
		if i < len(sub) && sub[i] == v {
			i++
		}
	}
	return i == len(sub)
}

func TestFilter(t *testing.T) {
	records := fixture()

	tests := []struct {
		name     string
		criteria contracts.FilterCriteria
		want     []int64
	}{
		{"no filter", contracts.FilterCriteria{}, []int64{1, 2, 3, 4, 5, 6}},
		{"all sentinels", contracts.FilterCriteria{Position: "All", Nationality: "All", Age: "All"}, []int64{1, 2, 3, 4, 5, 6}},
		{"position", contracts.FilterCriteria{Position: "ST"}, []int64{1, 3}},
		{"nationality", contracts.FilterCriteria{Nationality: "France"}, []int64{1, 2, 6}},
		{"age", contracts.FilterCriteria{Age: "19"}, []int64{5, 6}},
		{"combined", contracts.FilterCriteria{Position: "CM", Nationality: "France", Age: "19"}, []int64{6}},
		{"no match", contracts.FilterCriteria{Nationality: "Brazil"}, []int64{}},
		{"case sensitive", contracts.FilterCriteria{Position: "st"}, []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view, err := Filter(records, tt.criteria)
			require.NoError(t, err)
			require.NotNil(t, view)
			assert.Equal(t, tt.want, ids(view))
			assert.True(t, isSubsequence(ids(view), ids(records)))
		})
	}
}

func TestFilter_InvalidAge(t *testing.T) {
	_, err := Filter(fixture(), contracts.FilterCriteria{Age: "old"})
	assert.True(t, contracts.IsValidationError(err))
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	records := fixture()
	before := ids(records)

	_, err := Filter(records, contracts.FilterCriteria{Position: "GK"})
	require.NoError(t, err)
	assert.Equal(t, before, ids(records))
}

func TestParseCriteria(t *testing.T) {
	c, err := ParseCriteria(url.Values{"position": {" ST "}, "nationality": {"France"}, "age": {"All"}})
	require.NoError(t, err)
	assert.Equal(t, "ST", c.Position)
	assert.Equal(t, "France", c.Nationality)
	assert.False(t, c.AgeActive())

	_, err = ParseCriteria(url.Values{"age": {"2x"}})
	assert.True(t, contracts.IsValidationError(err))
}

func TestOptions(t *testing.T) {
	opts := Options(fixture())

	// ST and CM both appear twice; ST appears first
	assert.Equal(t, []string{"All", "ST", "CM", "CF", "GK"}, opts.Positions)
	assert.Equal(t, []string{"All", "Belgium", "France", "Poland", "Spain"}, opts.Nationalities)
	assert.Equal(t, []string{"All", "19", "23", "30", "33", "34"}, opts.Ages)
}

func TestOptions_Empty(t *testing.T) {
	opts := Options(nil)
	assert.Equal(t, []string{"All"}, opts.Positions)
	assert.Equal(t, []string{"All"}, opts.Nationalities)
	assert.Equal(t, []string{"All"}, opts.Ages)
}

func TestSummarize(t *testing.T) {
	records := fixture()
	records = append(records, records[0]) // duplicate ID counts once

	ov := Summarize(records)
	assert.Equal(t, 4, ov.NationalityCount)
	assert.Equal(t, 6, ov.PlayerCount)
	assert.False(t, ov.Empty)

	assert.True(t, Summarize(nil).Empty)
}

func TestScatter(t *testing.T) {
	points := Scatter(fixture(), 2)
	require.Len(t, points, 2)
	assert.Equal(t, "K. Mbappé", points[0].Name)
	assert.Equal(t, 1.9e8, points[0].X)
	assert.Equal(t, 91.0, points[0].Y)

	assert.Len(t, Scatter(fixture(), 0), 6)
	assert.Empty(t, Scatter(nil, 10))
}
