package dashboardconfig

import (
	"fmt"

	"github.com/wonny/scout/backend/internal/contracts"
)

// Validate checks all required constraints
// 실패 시 *contracts.ValidationError 반환
func Validate(cfg *Config) error {
	// === Taxonomy ===
	if len(cfg.Taxonomy) == 0 {
		return &contracts.ValidationError{Field: "taxonomy", Message: "at least one group required"}
	}
	names := make(map[string]bool, len(cfg.Taxonomy))
	owner := make(map[string]string)
	for i, g := range cfg.Taxonomy {
		field := fmt.Sprintf("taxonomy[%d]", i)
		if g.Name == "" {
			return &contracts.ValidationError{Field: field + ".name", Message: "required"}
		}
		if names[g.Name] {
			return &contracts.ValidationError{Field: field + ".name", Message: fmt.Sprintf("duplicate group %q", g.Name)}
		}
		names[g.Name] = true

		if len(g.Codes) == 0 {
			return &contracts.ValidationError{Field: field + ".codes", Message: "at least one position code required"}
		}
		// 포지션 코드는 최대 한 그룹에만 속함
		for _, code := range g.Codes {
			if prev, ok := owner[code]; ok {
				return &contracts.ValidationError{
					Field:   field + ".codes",
					Message: fmt.Sprintf("code %s already belongs to %s", code, prev),
				}
			}
			owner[code] = g.Name
		}
	}

	// === Overview ===
	if cfg.Overview.ScatterSample <= 0 {
		return &contracts.ValidationError{Field: "overview.scatter_sample", Message: "must be > 0"}
	}
	if cfg.Overview.TopN <= 0 {
		return &contracts.ValidationError{Field: "overview.top_n", Message: "must be > 0"}
	}
	if err := validateMetric("overview.default_metric", cfg.Overview.DefaultMetric, contracts.RankingMetrics()); err != nil {
		return err
	}

	// === Positions ===
	if err := validateMetric("positions.default_metric", cfg.Positions.DefaultMetric, contracts.DistributionMetrics()); err != nil {
		return err
	}

	// === Growth ===
	if cfg.Growth.TableLimit <= 0 {
		return &contracts.ValidationError{Field: "growth.table_limit", Message: "must be > 0"}
	}
	if cfg.Growth.U20MaxAge <= 0 {
		return &contracts.ValidationError{Field: "growth.u20_max_age", Message: "must be > 0"}
	}
	if cfg.Growth.YoungMaxAge <= cfg.Growth.U20MaxAge {
		return &contracts.ValidationError{Field: "growth.young_max_age", Message: "must be greater than u20_max_age"}
	}

	// === Value ===
	if cfg.Value.QualityThreshold < 0 || cfg.Value.QualityThreshold > 100 {
		return &contracts.ValidationError{Field: "value.quality_threshold", Message: "must be in [0, 100]"}
	}
	if cfg.Value.TopN <= 0 {
		return &contracts.ValidationError{Field: "value.top_n", Message: "must be > 0"}
	}

	return nil
}

func validateMetric(field, value string, allowed []contracts.Metric) error {
	m, err := contracts.ParseMetric(value)
	if err != nil {
		return &contracts.ValidationError{Field: field, Message: err.Error()}
	}
	if !m.Supports(allowed) {
		return &contracts.ValidationError{Field: field, Message: fmt.Sprintf("%s not allowed here", m)}
	}
	return nil
}
