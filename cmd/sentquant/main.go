package main

import (
	"os"

	"github.com/sentquant/analytics/cmd/sentquant/commands"
)

// main is the entry point for the Sentquant analytics CLI
// ⭐ 통합 CLI 진입점: go run ./cmd/sentquant [command]
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
