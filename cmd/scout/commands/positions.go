package commands

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/wonny/scout/backend/internal/dashboard"
)

// positionsCmd represents the positions command
var positionsCmd = &cobra.Command{
	Use:   "positions",
	Short: "포지션 탭: 그룹별 평균, 분포 요약",
	Long: `포지션 그룹(Forwards, Midfielders, Defenders, Goalkeepers)별
평균 Overall / Potential / Wage 와 지표 분포(사분위, Tukey 이상치)를 출력합니다.

Example:
  go run ./cmd/scout positions
  go run ./cmd/scout positions --metric potential --nationality England`,
	RunE: runPositions,
}

var positionsFlags *reportFlags

func init() {
	rootCmd.AddCommand(positionsCmd)
	positionsFlags = bindReportFlags(positionsCmd, true)
}

func runPositions(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	metric, err := positionsFlags.parsedMetric()
	if err != nil {
		return err
	}

	a, err := newCLIApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	res, err := a.orchestrator.Positions(ctx, dashboard.PositionsRequest{
		Criteria: positionsFlags.criteria(),
		Metric:   metric,
	})
	if err != nil {
		return err
	}

	if positionsFlags.asJSON {
		return PrintJSON(res)
	}

	PrintReportHeader("Positions", res.Criteria)
	if res.Empty {
		PrintWarning("No players match the selected filters")
		return nil
	}

	PrintSection("Averages by position group")
	widths := []int{12, 6, 8, 9, 8, 8, 9, 8}
	PrintTableHeader([]string{"Group", "Count", "Overall", "Potential", "Value", "Wage", "Wage SD", "Outliers"}, widths)
	for _, s := range res.Stats {
		PrintTableRow([]string{
			s.Group,
			strconv.Itoa(s.Count),
			strconv.FormatFloat(s.MeanOverall, 'f', 2, 64),
			strconv.FormatFloat(s.MeanPotential, 'f', 2, 64),
			FormatMoney(s.MeanMarketValue),
			FormatMoney(s.MeanWage),
			FormatMoney(s.WageStdDev),
			strconv.Itoa(s.WageOutliers),
		}, widths)
	}

	PrintSection(res.Metric.Label() + " distribution")
	widths = []int{12, 8, 8, 8, 8, 8, 8}
	PrintTableHeader([]string{"Group", "Min", "Q1", "Median", "Q3", "Max", "Outliers"}, widths)
	for _, b := range res.Distribution {
		PrintTableRow([]string{
			b.Group,
			FormatMetric(res.Metric, b.Min),
			FormatMetric(res.Metric, b.Q1),
			FormatMetric(res.Metric, b.Median),
			FormatMetric(res.Metric, b.Q3),
			FormatMetric(res.Metric, b.Max),
			strconv.Itoa(len(b.Outliers)),
		}, widths)
	}
	return nil
}
