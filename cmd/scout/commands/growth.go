package commands

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/wonny/scout/backend/internal/contracts"
	"github.com/wonny/scout/backend/internal/dashboard"
)

// growthCmd represents the growth command
var growthCmd = &cobra.Command{
	Use:   "growth",
	Short: "잠재력 탭: 성장 여력, 코호트, 가성비",
	Long: `Potential - Overall 격차 기준으로 선수를 분류하고
U20 / 20~23세 유망주 표와 가성비(Overall / Value) 상위 선수를 출력합니다.

Example:
  go run ./cmd/scout growth
  go run ./cmd/scout growth --position ST --limit 5`,
	RunE: runGrowth,
}

var growthFlags *reportFlags

func init() {
	rootCmd.AddCommand(growthCmd)
	growthFlags = bindReportFlags(growthCmd, false)
}

func runGrowth(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	a, err := newCLIApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	res, err := a.orchestrator.Growth(ctx, dashboard.GrowthRequest{
		Criteria: growthFlags.criteria(),
		Limit:    growthFlags.limit,
	})
	if err != nil {
		return err
	}

	if growthFlags.asJSON {
		return PrintJSON(res)
	}

	PrintReportHeader("Growth", res.Criteria)
	if res.Empty {
		PrintWarning("No players match the selected filters")
		return nil
	}

	PrintKeyValue("Promising", strconv.Itoa(res.Summary.PromisingCount), 15)
	PrintKeyValue("Peaked", strconv.Itoa(res.Summary.PeakedCount), 15)
	PrintKeyValue("Declined", strconv.Itoa(res.Summary.DeclinedCount), 15)
	PrintKeyValue("Young promising", strconv.Itoa(res.Summary.YoungPromisingCount), 15)

	printCohort("Under 20", res.U20)
	printCohort("Age 20 to 23", res.YoungCohort)

	PrintSection("Best value")
	if len(res.BestValue) == 0 {
		PrintInfo("No player above the quality threshold")
		return nil
	}
	widths := []int{4, 24, 22, 7, 10, 12}
	PrintTableHeader([]string{"#", "Name", "Club", "Overall", "Value", "Efficiency"}, widths)
	for _, v := range res.BestValue {
		PrintTableRow([]string{
			strconv.Itoa(v.Rank),
			v.Player.Name,
			v.Player.Club,
			strconv.Itoa(v.Player.Overall),
			FormatMoney(v.Player.MarketValue),
			strconv.FormatFloat(v.Efficiency*1e6, 'f', 3, 64) + "/M",
		}, widths)
	}
	return nil
}

func printCohort(title string, rows []contracts.GrowthRecord) {
	PrintSection(title)
	if len(rows) == 0 {
		PrintInfo("No promising players in this cohort")
		return
	}
	widths := []int{24, 22, 4, 7, 9, 4}
	PrintTableHeader([]string{"Name", "Club", "Age", "Overall", "Potential", "Gap"}, widths)
	for _, g := range rows {
		PrintTableRow([]string{
			g.Name,
			g.Club,
			strconv.Itoa(g.Age),
			strconv.Itoa(g.Overall),
			strconv.Itoa(g.Potential),
			"+" + strconv.Itoa(g.PotentialGap),
		}, widths)
	}
}
