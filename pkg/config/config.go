package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Drawdown modes for the per-point drawdown field
const (
	DrawdownRunning  = "running"  // true running drawdown from peak
	DrawdownCosmetic = "cosmetic" // independent noise proxy (reference behavior)
)

// Statistics modes
const (
	StatsDeclared = "declared" // headline numbers pass through from the catalog
	StatsDerived  = "derived"  // CAGR/volatility measured from the simulated series
)

// Config holds all configuration for the application
// ⭐ SSOT: 모든 환경변수는 여기서만 읽음
type Config struct {
	Env string // development, staging, production

	// Logging
	LogLevel  string
	LogFormat string

	// Generation
	Generation GenerationConfig
}

// GenerationConfig holds analytics build configuration
type GenerationConfig struct {
	Seed           int64  // 0 = seed from wall clock
	CatalogPath    string // empty = built-in catalog
	DrawdownMode   string
	StatsMode      string
	HeatmapEndYear int
}

// Load reads configuration from environment variables
// ⭐ SSOT: 이 함수만 os.Getenv()를 호출함
func Load() (*Config, error) {
	loadEnvFile()

	// 시드는 재현성 전용: 파싱 실패 시 시계 시드로 조용히 대체하지 않음
	seed, err := parseEnvInt64("SENTQUANT_SEED", 0)
	if err != nil {
		return nil, fmt.Errorf("config validation failed: SENTQUANT_SEED must be an integer: %w", err)
	}

	cfg := &Config{
		Env: getEnv("ENV", "development"),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "console"),

		Generation: GenerationConfig{
			Seed:           seed,
			CatalogPath:    getEnv("SENTQUANT_CATALOG", ""),
			DrawdownMode:   getEnv("SENTQUANT_DRAWDOWN_MODE", DrawdownRunning),
			StatsMode:      getEnv("SENTQUANT_STATS_MODE", StatsDeclared),
			HeatmapEndYear: getEnvAsInt("SENTQUANT_HEATMAP_END_YEAR", 2025),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks if configuration values are usable
func (c *Config) Validate() error {
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return fmt.Errorf("ENV must be one of: development, staging, production")
	}

	switch c.Generation.DrawdownMode {
	case DrawdownRunning, DrawdownCosmetic:
	default:
		return fmt.Errorf("SENTQUANT_DRAWDOWN_MODE must be one of: %s, %s", DrawdownRunning, DrawdownCosmetic)
	}

	switch c.Generation.StatsMode {
	case StatsDeclared, StatsDerived:
	default:
		return fmt.Errorf("SENTQUANT_STATS_MODE must be one of: %s, %s", StatsDeclared, StatsDerived)
	}

	if c.Generation.HeatmapEndYear < 1970 {
		return fmt.Errorf("SENTQUANT_HEATMAP_END_YEAR must be >= 1970, got %d", c.Generation.HeatmapEndYear)
	}

	return nil
}

// loadEnvFile tries to load .env from multiple locations
func loadEnvFile() {
	paths := []string{".env"}

	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		paths = append(paths,
			filepath.Join(exeDir, ".env"),
			filepath.Join(exeDir, "..", ".env"),
		)
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			return
		}
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

// parseEnvInt64 returns defaultValue when key is unset and an error when it does not parse
func parseEnvInt64(key string, defaultValue int64) (int64, error) {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue, nil
	}

	return strconv.ParseInt(valueStr, 10, 64)
}
