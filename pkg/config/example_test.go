package config_test

import (
	"fmt"

	"github.com/sentquant/analytics/pkg/config"
)

// Example demonstrates how to use the config package
func Example() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		return
	}

	fmt.Printf("Environment: %s\n", cfg.Env)
	fmt.Printf("Seed: %d\n", cfg.Generation.Seed)
	fmt.Printf("Drawdown mode: %s\n", cfg.Generation.DrawdownMode)
	fmt.Printf("Stats mode: %s\n", cfg.Generation.StatsMode)
}
