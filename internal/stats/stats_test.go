package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMean(t *testing.T) {
	assert.Equal(t, 0.0, Mean(nil))
	assert.Equal(t, 2.0, Mean([]float64{1, 2, 3}))
}

func TestStdDev(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{"empty", nil, 0},
		{"single value", []float64{500}, 0},
		{"two values", []float64{10, 20}, math.Sqrt(50)},
		{"sample not population", []float64{2, 4, 4, 4, 5, 5, 7, 9}, 2.138089935299395},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, StdDev(tt.values), 1e-9)
		})
	}
}

func TestQuantile(t *testing.T) {
	sorted := []float64{10, 20, 1000}

	tests := []struct {
		q    float64
		want float64
	}{
		{0, 10},
		{0.25, 15},
		{0.5, 20},
		{0.75, 510},
		{1, 1000},
		{-1, 10},
		{2, 1000},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, Quantile(sorted, tt.q), 1e-9, "q=%v", tt.q)
	}

	assert.Equal(t, 0.0, Quantile(nil, 0.5))
	assert.Equal(t, 7.0, Quantile([]float64{7}, 0.25))
}

func TestTukeyFences_Wages(t *testing.T) {
	wages := []float64{10, 20, 1000}

	f := TukeyFences(wages)
	assert.InDelta(t, 15.0, f.Q1, 1e-9)
	assert.InDelta(t, 510.0, f.Q3, 1e-9)
	assert.InDelta(t, 495.0, f.IQR, 1e-9)
	assert.InDelta(t, -727.5, f.Lower, 1e-9)
	assert.InDelta(t, 1252.5, f.Upper, 1e-9)

	// 1000 sits inside the upper fence of this tiny sample
	assert.Equal(t, 0, CountOutliers(wages))
}

func TestCountOutliers(t *testing.T) {
	wages := []float64{1000, 1100, 1200, 1300, 1250, 1150, 90000}
	assert.Equal(t, 1, CountOutliers(wages))

	// Order invariant
	reversed := make([]float64, len(wages))
	for i, v := range wages {
		reversed[len(wages)-1-i] = v
	}
	assert.Equal(t, CountOutliers(wages), CountOutliers(reversed))

	assert.Equal(t, 0, CountOutliers(nil))
	assert.Equal(t, 0, CountOutliers([]float64{5, 5, 5, 5}))
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{1.234, 1.23},
		{1.235, 1.24},
		{-1.235, -1.24},
		{1.125, 1.12},
		{80.125, 80.12},
		{-80.125, -80.12},
		{0.375, 0.38},
		{2.5, 2.5},
		{79.99999, 80},
		{0, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Round2(tt.in), "Round2(%v)", tt.in)
	}

	assert.True(t, math.IsNaN(Round2(math.NaN())))
}

func TestSortedDoesNotMutate(t *testing.T) {
	in := []float64{3, 1, 2}
	out := Sorted(in)
	assert.Equal(t, []float64{3, 1, 2}, in)
	assert.Equal(t, []float64{1, 2, 3}, out)
}
