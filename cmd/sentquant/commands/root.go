package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/sentquant/analytics/internal/catalog"
	"github.com/sentquant/analytics/internal/random"
	"github.com/sentquant/analytics/internal/series"
	"github.com/sentquant/analytics/internal/stats"
	"github.com/sentquant/analytics/internal/store"
	"github.com/sentquant/analytics/pkg/config"
	"github.com/sentquant/analytics/pkg/logger"
)

const dateLayout = "2006-01-02"

var (
	// Global flags
	env            string
	verbose        bool
	seed           int64
	catalogPath    string
	drawdownMode   string
	statsMode      string
	heatmapEndYear int
	benchmarkEnd   string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "sentquant",
	Short: "Sentquant - 전략 성과 시뮬레이션 및 분석",
	Long: `Sentquant Analytics CLI

카탈로그의 전략마다 합성 성과 시계열을 생성하고
드로다운, 통계, 히트맵, 벤치마크, SRS 랭킹을 계산합니다.

Usage:
  go run ./cmd/sentquant [command]

Examples:
  go run ./cmd/sentquant build --seed 42
  go run ./cmd/sentquant rank --seed 42
  go run ./cmd/sentquant export --format xlsx --out analytics.xlsx
  go run ./cmd/sentquant catalog --catalog strategies.yaml`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&env, "env", "", "environment (development|staging|production), overrides ENV")
	pf.BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	pf.Int64Var(&seed, "seed", 0, "재현성용 시드 (0=랜덤), overrides SENTQUANT_SEED")
	pf.StringVar(&catalogPath, "catalog", "", "전략 카탈로그 YAML (기본: 내장 카탈로그)")
	pf.StringVar(&drawdownMode, "drawdown-mode", "", "per-point drawdown (running|cosmetic)")
	pf.StringVar(&statsMode, "stats-mode", "", "statistics mode (declared|derived)")
	pf.IntVar(&heatmapEndYear, "heatmap-end-year", 0, "most recent heatmap year")
	pf.StringVar(&benchmarkEnd, "benchmark-end", "", "last benchmark date (YYYY-MM-DD, 기본: 오늘)")
}

// initDeps loads config, applies flag overrides and creates the logger
func initDeps(cmd *cobra.Command) (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("env") {
		cfg.Env = env
	}
	if verbose {
		cfg.LogLevel = "debug"
	}
	if flags.Changed("seed") {
		cfg.Generation.Seed = seed
	}
	if flags.Changed("catalog") {
		cfg.Generation.CatalogPath = catalogPath
	}
	if flags.Changed("drawdown-mode") {
		cfg.Generation.DrawdownMode = drawdownMode
	}
	if flags.Changed("stats-mode") {
		cfg.Generation.StatsMode = statsMode
	}
	if flags.Changed("heatmap-end-year") {
		cfg.Generation.HeatmapEndYear = heatmapEndYear
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid flags: %w", err)
	}

	return cfg, logger.New(cfg), nil
}

// loadCatalog returns the configured catalog, built-in when no path is set
func loadCatalog(cfg *config.Config, log *logger.Logger) (*catalog.Catalog, error) {
	if cfg.Generation.CatalogPath == "" {
		return catalog.Default(), nil
	}

	cat, _, err := catalog.Load(cfg.Generation.CatalogPath)
	if err != nil {
		return nil, err
	}
	log.Infof("catalog loaded: %s (%d strategies)", cfg.Generation.CatalogPath, cat.Len())
	return cat, nil
}

// buildStore runs one full analytics build from config
func buildStore(ctx context.Context, cfg *config.Config, log *logger.Logger) (*store.Store, error) {
	cat, err := loadCatalog(cfg, log)
	if err != nil {
		return nil, err
	}

	opts, err := storeOptions(cfg, log)
	if err != nil {
		return nil, err
	}

	loader := store.NewLoader(func(ctx context.Context) (*store.Store, error) {
		return store.Build(ctx, cat, opts)
	}, log)
	return loader.Reload(ctx)
}

func storeOptions(cfg *config.Config, log *logger.Logger) (store.Options, error) {
	ddMode, err := series.ParseDrawdownMode(cfg.Generation.DrawdownMode)
	if err != nil {
		return store.Options{}, err
	}
	sMode, err := stats.ParseMode(cfg.Generation.StatsMode)
	if err != nil {
		return store.Options{}, err
	}

	end := time.Now()
	if benchmarkEnd != "" {
		end, err = time.Parse(dateLayout, benchmarkEnd)
		if err != nil {
			return store.Options{}, fmt.Errorf("--benchmark-end: %w", err)
		}
	}

	return store.Options{
		Source:         random.New(cfg.Generation.Seed),
		DrawdownMode:   ddMode,
		StatsMode:      sMode,
		HeatmapEndYear: cfg.Generation.HeatmapEndYear,
		BenchmarkEnd:   end,
		Logger:         log,
	}, nil
}

func ctxOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
