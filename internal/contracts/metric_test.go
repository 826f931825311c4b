package contracts

import (
	"errors"
	"testing"
)

func TestParseMetric(t *testing.T) {
	tests := []struct {
		input   string
		want    Metric
		wantErr bool
	}{
		{"market_value", MetricMarketValue, false},
		{"Value(£)", MetricMarketValue, false},
		{"value", MetricMarketValue, false},
		{"wage", MetricWage, false},
		{"Wage(£)", MetricWage, false},
		{"Potential", MetricPotential, false},
		{" overall ", MetricOverall, false},
		{"pace", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMetric(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMetric(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseMetric(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if tt.wantErr {
				var ve *ValidationError
				if !errors.As(err, &ve) || ve.Field != "metric" {
					t.Errorf("expected metric ValidationError, got %v", err)
				}
			}
		})
	}
}

func TestMetric_Value(t *testing.T) {
	p := PlayerRecord{Overall: 91, Potential: 95, MarketValue: 1.075e8, Wage: 350000}

	tests := []struct {
		metric Metric
		want   float64
	}{
		{MetricMarketValue, 1.075e8},
		{MetricWage, 350000},
		{MetricPotential, 95},
		{MetricOverall, 91},
		{Metric("unknown"), 0},
	}

	for _, tt := range tests {
		if got := tt.metric.Value(&p); got != tt.want {
			t.Errorf("%s.Value() = %v, want %v", tt.metric, got, tt.want)
		}
	}
}

func TestMetric_Supports(t *testing.T) {
	if MetricWage.Supports(RankingMetrics()) {
		t.Error("wage must not be a ranking metric")
	}
	if MetricMarketValue.Supports(DistributionMetrics()) {
		t.Error("market value must not be a distribution metric")
	}
	for _, m := range []Metric{MetricPotential, MetricOverall} {
		if !m.Supports(RankingMetrics()) || !m.Supports(DistributionMetrics()) {
			t.Errorf("%s must be accepted by both engines", m)
		}
	}
}
