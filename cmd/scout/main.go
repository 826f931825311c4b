package main

import (
	"os"

	"github.com/wonny/scout/backend/cmd/scout/commands"
)

// main is the entry point for the Scout CLI
// ⭐ 통합 CLI 진입점: go run ./cmd/scout [command]
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
