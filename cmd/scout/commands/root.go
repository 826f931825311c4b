package commands

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	datasetPath     string
	datasetSource   string
	currentYear     int
	analyticsConfig string
	verbose         bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "scout",
	Short: "Scout - FIFA 23 선수 스카우팅 대시보드",
	Long: `Scout Unified CLI

FIFA 23 공식 데이터셋 기반 선수 분석 백엔드.
S0 적재 → S1 필터 → S2 포지션 → S3 랭킹 → S4 성장 파이프라인.

Usage:
  go run ./cmd/scout [command]

Examples:
  go run ./cmd/scout api
  go run ./cmd/scout dataset check
  go run ./cmd/scout overview --nationality Spain --metric potential
  go run ./cmd/scout positions --metric wage
  go run ./cmd/scout growth --limit 5`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags (override .env)
	rootCmd.PersistentFlags().StringVar(&datasetPath, "dataset", "", "dataset path or URL (default DATASET_PATH)")
	rootCmd.PersistentFlags().StringVar(&datasetSource, "source", "", "dataset source: csv|xlsx|http|postgres (default inferred)")
	rootCmd.PersistentFlags().IntVar(&currentYear, "year", 0, "current year for contract expiry (default wall clock)")
	rootCmd.PersistentFlags().StringVar(&analyticsConfig, "analytics-config", "", "analytics YAML (default ANALYTICS_CONFIG or built-in)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
