package dashboardconfig

import (
	"github.com/wonny/scout/backend/internal/contracts"
	"github.com/wonny/scout/backend/internal/s1_view"
	"github.com/wonny/scout/backend/internal/s3_ranking"
	"github.com/wonny/scout/backend/internal/s4_growth"
)

// Config는 대시보드 분석 설정 전체
type Config struct {
	Meta      Meta               `yaml:"meta" json:"meta"`
	Taxonomy  contracts.Taxonomy `yaml:"taxonomy" json:"taxonomy"`
	Overview  Overview           `yaml:"overview" json:"overview"`
	Positions Positions          `yaml:"positions" json:"positions"`
	Growth    Growth             `yaml:"growth" json:"growth"`
	Value     Value              `yaml:"value" json:"value"`
}

// Meta 메타 정보
type Meta struct {
	ConfigID string `yaml:"config_id" json:"config_id"`
	Version  string `yaml:"version" json:"version"`
}

// Overview 개요 탭: 산점도 표본, Top N
type Overview struct {
	ScatterSample int    `yaml:"scatter_sample" json:"scatter_sample"`
	TopN          int    `yaml:"top_n" json:"top_n"`
	DefaultMetric string `yaml:"default_metric" json:"default_metric"` // market_value | potential | overall
}

// Positions 포지션 탭: 분포 기본 지표
type Positions struct {
	DefaultMetric string `yaml:"default_metric" json:"default_metric"` // wage | potential | overall
}

// Growth 잠재력 탭: 코호트 경계, 표 길이
type Growth struct {
	TableLimit  int `yaml:"table_limit" json:"table_limit"`
	U20MaxAge   int `yaml:"u20_max_age" json:"u20_max_age"`
	YoungMaxAge int `yaml:"young_max_age" json:"young_max_age"`
}

// Value 가성비 표: Overall > QualityThreshold, 상위 TopN
type Value struct {
	QualityThreshold int `yaml:"quality_threshold" json:"quality_threshold"`
	TopN             int `yaml:"top_n" json:"top_n"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Meta: Meta{
			ConfigID: "fifa23_default",
			Version:  "1",
		},
		Taxonomy: contracts.DefaultTaxonomy(),
		Overview: Overview{
			ScatterSample: s1_view.DefaultScatterSample,
			TopN:          s3_ranking.DefaultTopN,
			DefaultMetric: string(contracts.MetricMarketValue),
		},
		Positions: Positions{
			DefaultMetric: string(contracts.MetricWage),
		},
		Growth: Growth{
			TableLimit:  10,
			U20MaxAge:   s4_growth.DefaultU20MaxAge,
			YoungMaxAge: s4_growth.DefaultYoungMaxAge,
		},
		Value: Value{
			QualityThreshold: s3_ranking.DefaultQualityThreshold,
			TopN:             s3_ranking.DefaultValueTopN,
		},
	}
}

// OverviewMetric returns the parsed default ranking metric
func (c *Config) OverviewMetric() contracts.Metric {
	m, err := contracts.ParseMetric(c.Overview.DefaultMetric)
	if err != nil {
		return contracts.MetricMarketValue
	}
	return m
}

// PositionsMetric returns the parsed default distribution metric
func (c *Config) PositionsMetric() contracts.Metric {
	m, err := contracts.ParseMetric(c.Positions.DefaultMetric)
	if err != nil {
		return contracts.MetricWage
	}
	return m
}
