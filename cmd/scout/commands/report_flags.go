package commands

import (
	"github.com/spf13/cobra"

	"github.com/wonny/scout/backend/internal/contracts"
)

// reportFlags are the filter and output flags shared by report commands
type reportFlags struct {
	position    string
	nationality string
	age         string
	metric      string
	limit       int
	asJSON      bool
}

func bindReportFlags(cmd *cobra.Command, withMetric bool) *reportFlags {
	f := &reportFlags{}
	cmd.Flags().StringVar(&f.position, "position", contracts.AllValue, "position code filter (e.g. ST, LCB)")
	cmd.Flags().StringVar(&f.nationality, "nationality", contracts.AllValue, "nationality filter")
	cmd.Flags().StringVar(&f.age, "age", contracts.AllValue, "exact age filter")
	cmd.Flags().IntVar(&f.limit, "limit", 0, "table length (default from analytics config)")
	cmd.Flags().BoolVar(&f.asJSON, "json", false, "print JSON instead of tables")
	if withMetric {
		cmd.Flags().StringVar(&f.metric, "metric", "", "metric (default from analytics config)")
	}
	return f
}

func (f *reportFlags) criteria() contracts.FilterCriteria {
	return contracts.FilterCriteria{
		Position:    f.position,
		Nationality: f.nationality,
		Age:         f.age,
	}
}

// parsedMetric returns the metric flag; empty means the configured default
func (f *reportFlags) parsedMetric() (contracts.Metric, error) {
	if f.metric == "" {
		return "", nil
	}
	return contracts.ParseMetric(f.metric)
}
