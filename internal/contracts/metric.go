package contracts

import (
	"fmt"
	"strings"
)

// Metric selects a numeric attribute of PlayerRecord
type Metric string

const (
	MetricMarketValue Metric = "market_value"
	MetricWage        Metric = "wage"
	MetricPotential   Metric = "potential"
	MetricOverall     Metric = "overall"
)

// String returns the metric name
func (m Metric) String() string {
	return string(m)
}

// Label returns the column header used by the dataset for this metric
func (m Metric) Label() string {
	switch m {
	case MetricMarketValue:
		return "Value(£)"
	case MetricWage:
		return "Wage(£)"
	case MetricPotential:
		return "Potential"
	case MetricOverall:
		return "Overall"
	default:
		return string(m)
	}
}

// Value extracts the metric from a record
func (m Metric) Value(p *PlayerRecord) float64 {
	switch m {
	case MetricMarketValue:
		return p.MarketValue
	case MetricWage:
		return p.Wage
	case MetricPotential:
		return float64(p.Potential)
	case MetricOverall:
		return float64(p.Overall)
	default:
		return 0
	}
}

// RankingMetrics are the metrics accepted by the ranking engine
func RankingMetrics() []Metric {
	return []Metric{MetricMarketValue, MetricPotential, MetricOverall}
}

// DistributionMetrics are the metrics accepted by position distributions
func DistributionMetrics() []Metric {
	return []Metric{MetricWage, MetricPotential, MetricOverall}
}

// AllMetrics returns every metric
func AllMetrics() []Metric {
	return []Metric{MetricMarketValue, MetricWage, MetricPotential, MetricOverall}
}

// ParseMetric accepts the metric name or its dataset column label
func ParseMetric(s string) (Metric, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for _, m := range AllMetrics() {
		if key == string(m) || key == strings.ToLower(m.Label()) {
			return m, nil
		}
	}
	switch key {
	case "value", "market-value", "marketvalue":
		return MetricMarketValue, nil
	}
	return "", &ValidationError{Field: "metric", Message: fmt.Sprintf("unknown metric %q", s)}
}

// Supports reports whether m is one of allowed
func (m Metric) Supports(allowed []Metric) bool {
	for _, a := range allowed {
		if a == m {
			return true
		}
	}
	return false
}
