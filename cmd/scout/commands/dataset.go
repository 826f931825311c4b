package commands

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// datasetCmd represents the dataset command
var datasetCmd = &cobra.Command{
	Use:   "dataset",
	Short: "데이터셋 점검",
	Long: `데이터셋 적재 상태와 필터 선택지를 확인합니다.

Subcommands:
  check    - 적재 리포트 (전체/유효/제외 사유별 건수)
  options  - 필터 선택지 (포지션, 국적, 나이)

Example:
  go run ./cmd/scout dataset check
  go run ./cmd/scout dataset check --dataset https://example.com/players.csv
  go run ./cmd/scout dataset options`,
}

var (
	datasetCheckCmd = &cobra.Command{
		Use:   "check",
		Short: "적재 리포트 출력",
		RunE:  runDatasetCheck,
	}

	datasetOptionsCmd = &cobra.Command{
		Use:   "options",
		Short: "필터 선택지 출력",
		RunE:  runDatasetOptions,
	}

	datasetJSON bool
)

func init() {
	rootCmd.AddCommand(datasetCmd)
	datasetCmd.AddCommand(datasetCheckCmd)
	datasetCmd.AddCommand(datasetOptionsCmd)

	datasetCmd.PersistentFlags().BoolVar(&datasetJSON, "json", false, "print JSON instead of tables")
}

func runDatasetCheck(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	a, err := newCLIApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	info, err := a.orchestrator.Source(ctx)
	if err != nil {
		return err
	}

	if datasetJSON {
		return PrintJSON(info)
	}

	fmt.Fprintln(out)
	PrintDoubleSeparator()
	fmt.Fprintln(out, "  Dataset Check")
	PrintSeparator()

	PrintKeyValue("Source", info.Report.Source, 13)
	PrintKeyValue("Public URL", info.PublicURL, 13)
	PrintKeyValue("Current year", strconv.Itoa(info.CurrentYear), 13)
	PrintKeyValue("Loaded at", info.LoadedAt.Format("2006-01-02 15:04:05"), 13)
	PrintKeyValue("Config", info.ConfigID+" ("+shortHash(info.ConfigHash)+")", 13)
	PrintKeyValue("Rows", strconv.Itoa(info.Report.Total), 13)
	PrintKeyValue("Eligible", strconv.Itoa(info.Report.Eligible), 13)

	reasons := make([]string, 0, len(info.Report.Excluded))
	for reason := range info.Report.Excluded {
		reasons = append(reasons, reason)
	}
	sort.Strings(reasons)
	for _, reason := range reasons {
		PrintKeyValue("  "+reason, strconv.Itoa(info.Report.Excluded[reason]), 13)
	}

	PrintSeparator()
	PrintSuccess(fmt.Sprintf("%d players ready", info.Report.Eligible))
	return nil
}

func runDatasetOptions(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	a, err := newCLIApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	opts, err := a.orchestrator.Options(ctx)
	if err != nil {
		return err
	}

	if datasetJSON {
		return PrintJSON(opts)
	}

	PrintSection(fmt.Sprintf("Positions (%d)", len(opts.Positions)))
	fmt.Fprintf(out, "   %s\n", strings.Join(opts.Positions, ", "))
	PrintSection(fmt.Sprintf("Nationalities (%d)", len(opts.Nationalities)))
	fmt.Fprintf(out, "   %s\n", strings.Join(opts.Nationalities, ", "))
	PrintSection(fmt.Sprintf("Ages (%d)", len(opts.Ages)))
	fmt.Fprintf(out, "   %s\n", strings.Join(opts.Ages, ", "))
	return nil
}

func shortHash(h string) string {
	if len(h) > 12 {
		return h[:12]
	}
	return h
}

// optionsCmd is the top-level shortcut for "dataset options"
var optionsCmd = &cobra.Command{
	Use:   "options",
	Short: "필터 선택지 출력 (dataset options)",
	RunE:  runDatasetOptions,
}

func init() {
	rootCmd.AddCommand(optionsCmd)
	optionsCmd.Flags().BoolVar(&datasetJSON, "json", false, "print JSON instead of lists")
}
