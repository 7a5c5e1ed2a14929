package config

import (
	"testing"
)

func TestLoad(t *testing.T) {
	t.Setenv("ENV", "")
	t.Setenv("SENTQUANT_SEED", "")
	t.Setenv("SENTQUANT_DRAWDOWN_MODE", "")
	t.Setenv("SENTQUANT_STATS_MODE", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	// Check defaults
	if cfg.Env != "development" {
		t.Errorf("Expected Env to be development, got %s", cfg.Env)
	}

	if cfg.Generation.Seed != 0 {
		t.Errorf("Expected Seed to be 0, got %d", cfg.Generation.Seed)
	}

	if cfg.Generation.DrawdownMode != DrawdownRunning {
		t.Errorf("Expected DrawdownMode to be %s, got %s", DrawdownRunning, cfg.Generation.DrawdownMode)
	}

	if cfg.Generation.StatsMode != StatsDeclared {
		t.Errorf("Expected StatsMode to be %s, got %s", StatsDeclared, cfg.Generation.StatsMode)
	}

	if cfg.Generation.HeatmapEndYear != 2025 {
		t.Errorf("Expected HeatmapEndYear to be 2025, got %d", cfg.Generation.HeatmapEndYear)
	}
}

func TestLoadWithCustomValues(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("SENTQUANT_SEED", "42")
	t.Setenv("SENTQUANT_CATALOG", "catalog.yaml")
	t.Setenv("SENTQUANT_DRAWDOWN_MODE", "cosmetic")
	t.Setenv("SENTQUANT_STATS_MODE", "derived")
	t.Setenv("SENTQUANT_HEATMAP_END_YEAR", "2024")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Env != "production" {
		t.Errorf("Expected Env to be production, got %s", cfg.Env)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("Expected LogLevel to be warn, got %s", cfg.LogLevel)
	}
	if cfg.Generation.Seed != 42 {
		t.Errorf("Expected Seed to be 42, got %d", cfg.Generation.Seed)
	}
	if cfg.Generation.CatalogPath != "catalog.yaml" {
		t.Errorf("Expected CatalogPath to be catalog.yaml, got %s", cfg.Generation.CatalogPath)
	}
	if cfg.Generation.DrawdownMode != DrawdownCosmetic {
		t.Errorf("Expected DrawdownMode to be cosmetic, got %s", cfg.Generation.DrawdownMode)
	}
	if cfg.Generation.StatsMode != StatsDerived {
		t.Errorf("Expected StatsMode to be derived, got %s", cfg.Generation.StatsMode)
	}
	if cfg.Generation.HeatmapEndYear != 2024 {
		t.Errorf("Expected HeatmapEndYear to be 2024, got %d", cfg.Generation.HeatmapEndYear)
	}
}

func TestValidateInvalidEnv(t *testing.T) {
	t.Setenv("ENV", "invalid")

	_, err := Load()
	if err == nil {
		t.Error("Expected error when ENV is invalid, got nil")
	}
}

func TestValidateInvalidModes(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"drawdown mode", "SENTQUANT_DRAWDOWN_MODE", "peak"},
		{"stats mode", "SENTQUANT_STATS_MODE", "measured"},
		{"heatmap year", "SENTQUANT_HEATMAP_END_YEAR", "1900"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("ENV", "development")
			t.Setenv(tt.key, tt.val)

			if _, err := Load(); err == nil {
				t.Errorf("Expected error for %s=%s, got nil", tt.key, tt.val)
			}
		})
	}
}

func TestParseEnvInt64(t *testing.T) {
	t.Setenv("TEST_INT64", "9007199254740993")

	value, err := parseEnvInt64("TEST_INT64", 1)
	if err != nil {
		t.Fatalf("parseEnvInt64() failed: %v", err)
	}
	if value != 9007199254740993 {
		t.Errorf("Expected value to be 9007199254740993, got %d", value)
	}

	t.Setenv("TEST_INT64", "")
	if got, err := parseEnvInt64("TEST_INT64", 7); err != nil || got != 7 {
		t.Errorf("Expected default 7, got %d (err %v)", got, err)
	}

	t.Setenv("TEST_INT64", "not-a-number")
	if _, err := parseEnvInt64("TEST_INT64", 7); err == nil {
		t.Error("Expected error for non-numeric value, got nil")
	}
}

func TestLoadRejectsUnparsableSeed(t *testing.T) {
	t.Setenv("ENV", "development")

	for _, val := range []string{"abc", "12.5", "0x2a"} {
		t.Setenv("SENTQUANT_SEED", val)

		if _, err := Load(); err == nil {
			t.Errorf("Expected error for SENTQUANT_SEED=%s, got nil", val)
		}
	}
}

func TestGetEnvAsInt(t *testing.T) {
	t.Setenv("TEST_INT", "100")

	value := getEnvAsInt("TEST_INT", 50)
	if value != 100 {
		t.Errorf("Expected value to be 100, got %d", value)
	}
}
