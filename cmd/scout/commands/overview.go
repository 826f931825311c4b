package commands

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/wonny/scout/backend/internal/dashboard"
)

// overviewCmd represents the overview command
var overviewCmd = &cobra.Command{
	Use:   "overview",
	Short: "개요 탭: 국적 수, 선수 수, Top N",
	Long: `필터된 선수 집합의 개요를 출력합니다.

출력 항목:
- 국적 수 / 선수 수
- 지표(market_value | potential | overall) 기준 Top N

Example:
  go run ./cmd/scout overview
  go run ./cmd/scout overview --nationality Spain --metric potential --limit 5`,
	RunE: runOverview,
}

var overviewFlags *reportFlags

func init() {
	rootCmd.AddCommand(overviewCmd)
	overviewFlags = bindReportFlags(overviewCmd, true)
}

func runOverview(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	metric, err := overviewFlags.parsedMetric()
	if err != nil {
		return err
	}

	a, err := newCLIApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	res, err := a.orchestrator.Overview(ctx, dashboard.OverviewRequest{
		Criteria: overviewFlags.criteria(),
		Metric:   metric,
		Limit:    overviewFlags.limit,
	})
	if err != nil {
		return err
	}

	if overviewFlags.asJSON {
		return PrintJSON(res)
	}

	PrintReportHeader("Overview", res.Criteria)
	if res.Empty {
		PrintWarning("No players match the selected filters")
		return nil
	}

	PrintKeyValue("Nationalities", strconv.Itoa(res.Overview.NationalityCount), 13)
	PrintKeyValue("Players", strconv.Itoa(res.Overview.PlayerCount), 13)

	PrintSection("Top " + strconv.Itoa(len(res.Top)) + " by " + res.Metric.Label())
	widths := []int{4, 24, 22, 5, 12}
	PrintTableHeader([]string{"#", "Name", "Club", "Pos", res.Metric.Label()}, widths)
	for _, rp := range res.Top {
		PrintTableRow([]string{
			strconv.Itoa(rp.Rank),
			rp.Player.Name,
			rp.Player.Club,
			rp.Player.Position,
			FormatMetric(rp.Metric, rp.Score),
		}, widths)
	}
	return nil
}
