// Package store builds the analytics store: one record per catalog strategy
// plus a lockstep benchmark and the SRS ranking, all derived from a single
// ordered random stream.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sentquant/analytics/internal/catalog"
	"github.com/sentquant/analytics/internal/drawdown"
	"github.com/sentquant/analytics/internal/random"
	"github.com/sentquant/analytics/internal/ranking"
	"github.com/sentquant/analytics/internal/series"
	"github.com/sentquant/analytics/internal/stats"
	"github.com/sentquant/analytics/pkg/logger"
)

// DefaultHeatmapEndYear is the most recent calendar year shown
const DefaultHeatmapEndYear = 2025

// Horizons groups the three generation horizons of a build
type Horizons struct {
	Live       series.Horizon
	Historical series.Horizon
	Benchmark  series.Horizon
}

// DefaultHorizons 150 / 365 / 200 steps
func DefaultHorizons() Horizons {
	return Horizons{
		Live:       series.LiveHorizon,
		Historical: series.HistoricalHorizon,
		Benchmark:  series.BenchmarkHorizon,
	}
}

// Options configures a build. The zero value is usable.
type Options struct {
	Source         random.Source // nil = wall-clock seeded
	DrawdownMode   series.DrawdownMode
	StatsMode      stats.Mode
	HeatmapEndYear int            // 0 = DefaultHeatmapEndYear
	BenchmarkEnd   time.Time      // zero = now
	Horizons       *Horizons      // nil = DefaultHorizons()
	Logger         *logger.Logger // nil = discard
}

func (o Options) withDefaults() Options {
	if o.Source == nil {
		o.Source = random.New(0)
	}
	if o.HeatmapEndYear == 0 {
		o.HeatmapEndYear = DefaultHeatmapEndYear
	}
	if o.BenchmarkEnd.IsZero() {
		o.BenchmarkEnd = time.Now()
	}
	if o.Horizons == nil {
		h := DefaultHorizons()
		o.Horizons = &h
	}
	if o.Logger == nil {
		o.Logger = logger.Nop()
	}
	return o
}

// Store is the immutable result of one build
// ⭐ SSOT: 화면/내보내기는 모두 이 스토어만 읽음
type Store struct {
	runID        string
	builtAt      time.Time
	catalogHash  string
	drawdownMode series.DrawdownMode
	statsMode    stats.Mode
	draws        int
	clamps       int

	order     []string
	records   map[string]Record
	benchmark []series.BenchmarkRow
	rankings  []ranking.Row
}

// Build generates every record, then the benchmark, then the ranking.
// Draw order per strategy: live series, historical series, statistics samples,
// heatmap, annual returns. The benchmark draws last across all strategies.
func Build(ctx context.Context, cat *catalog.Catalog, opts Options) (*Store, error) {
	if cat == nil || cat.Len() == 0 {
		return nil, catalog.ErrEmptyCatalog
	}
	opts = opts.withDefaults()
	log := opts.Logger.Component("store")
	started := time.Now()

	src := random.NewCounting(opts.Source)
	gen := series.NewGenerator(src, opts.DrawdownMode)
	agg := stats.NewAggregator(opts.StatsMode, src)
	h := opts.Horizons

	s := &Store{
		runID:        uuid.New().String(),
		drawdownMode: opts.DrawdownMode,
		statsMode:    opts.StatsMode,
		order:        cat.IDs(),
		records:      make(map[string]Record, cat.Len()),
	}

	inputs := make([]ranking.Input, 0, cat.Len())
	for _, e := range cat.Entries() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		rec, err := buildRecord(gen, agg, src, e, *h, opts.HeatmapEndYear)
		if err != nil {
			return nil, fmt.Errorf("strategy %s: %w", e.Identity.ID, err)
		}
		s.records[e.Identity.ID] = rec
		inputs = append(inputs, ranking.Input{
			ID:       e.Identity.ID,
			Name:     e.Identity.Name,
			Measured: rec.Measured,
		})

		log.WithField("strategy", e.Identity.ID).Debugf("record built: live=%d historical=%d worst_dd=%.2f%%",
			len(rec.LiveData), len(rec.HistoricalData), rec.TopDrawdowns[0].DepthPct)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	labels := series.DateLabels(opts.BenchmarkEnd, h.Benchmark.Length)
	bench, err := gen.Lockstep(cat.IDs(), cat.Behaviors(), h.Benchmark, labels)
	if err != nil {
		return nil, fmt.Errorf("benchmark: %w", err)
	}
	s.benchmark = bench
	s.rankings = ranking.Rank(inputs)

	hash, err := cat.Hash()
	if err != nil {
		return nil, fmt.Errorf("catalog hash: %w", err)
	}
	s.catalogHash = hash
	s.draws = src.Draws()
	s.clamps = gen.Clamps()
	s.builtAt = time.Now()

	log.WithFields(map[string]interface{}{
		"run_id":      s.runID,
		"strategies":  len(s.order),
		"draws":       s.draws,
		"clamps":      s.clamps,
		"duration_ms": time.Since(started).Milliseconds(),
	}).Info("analytics store built")

	return s, nil
}

func buildRecord(
	gen *series.Generator,
	agg *stats.Aggregator,
	src random.Source,
	e catalog.Entry,
	h Horizons,
	endYear int,
) (Record, error) {
	live, err := gen.Generate(e.Behavior, h.Live)
	if err != nil {
		return Record{}, fmt.Errorf("live series: %w", err)
	}
	historical, err := gen.Generate(e.Behavior, h.Historical)
	if err != nil {
		return Record{}, fmt.Errorf("historical series: %w", err)
	}

	histValues := series.Values(historical)
	bundle := agg.Aggregate(declared(e.Identity), histValues)
	heatmap := stats.Heatmap(src, endYear)
	annual := stats.AnnualReturns(src, endYear)

	// 이력이 없으면 선언된 MDD 기반 placeholder
	var top []drawdown.Episode
	if len(historical) == 0 {
		top = drawdown.Placeholder(e.Identity.MaxDrawdownPct, drawdown.TopK)
	} else {
		top = drawdown.Complete(drawdown.Extract(histValues, drawdown.TopK), drawdown.TopK)
	}

	return Record{
		Identity:       e.Identity,
		LiveData:       live,
		HistoricalData: historical,
		Heatmap:        heatmap,
		TopDrawdowns:   top,
		AnnualReturns:  annual,
		Stats:          bundle,
		Measured:       stats.Measure(series.Values(live)),
	}, nil
}

// RunID identifies this build
func (s *Store) RunID() string {
	return s.runID
}

// BuiltAt is when the build finished
func (s *Store) BuiltAt() time.Time {
	return s.builtAt
}

// CatalogHash is the sha256 of the catalog the store was built from
func (s *Store) CatalogHash() string {
	return s.catalogHash
}

// DrawdownMode used for per-point drawdowns
func (s *Store) DrawdownMode() series.DrawdownMode {
	return s.drawdownMode
}

// StatsMode used for the statistics bundles
func (s *Store) StatsMode() stats.Mode {
	return s.statsMode
}

// Draws is the number of random draws the build consumed
func (s *Store) Draws() int {
	return s.draws
}

// Clamps is the number of steps clamped to a horizon floor
func (s *Store) Clamps() int {
	return s.clamps
}

// IDs returns strategy ids in catalog order
func (s *Store) IDs() []string {
	return append([]string(nil), s.order...)
}

// Len returns the number of records
func (s *Store) Len() int {
	return len(s.order)
}

// Record returns a copy of the record for id
func (s *Store) Record(id string) (Record, bool) {
	rec, ok := s.records[id]
	if !ok {
		return Record{}, false
	}
	return rec.clone(), true
}

// Records returns copies of every record in catalog order
func (s *Store) Records() []Record {
	out := make([]Record, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.records[id].clone())
	}
	return out
}

// Benchmark returns a copy of the lockstep benchmark rows
func (s *Store) Benchmark() []series.BenchmarkRow {
	out := make([]series.BenchmarkRow, len(s.benchmark))
	for i, row := range s.benchmark {
		values := make(map[string]float64, len(row.Values))
		for k, v := range row.Values {
			values[k] = v
		}
		out[i] = series.BenchmarkRow{Date: row.Date, Values: values}
	}
	return out
}

// Rankings returns the SRS table, best first
func (s *Store) Rankings() []ranking.Row {
	return append([]ranking.Row(nil), s.rankings...)
}
