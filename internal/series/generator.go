package series

import (
	"fmt"
	"math"
	"time"

	"github.com/sentquant/analytics/internal/drawdown"
	"github.com/sentquant/analytics/internal/random"
)

// Generator builds synthetic value series from a shared random source.
// Not safe for concurrent use: draws are consumed in call order, which is what
// makes a seeded build reproducible.
type Generator struct {
	sampler *Sampler
	mode    DrawdownMode
	clamps  int
}

// NewGenerator creates a generator
func NewGenerator(src random.Source, mode DrawdownMode) *Generator {
	return &Generator{
		sampler: NewSampler(src),
		mode:    mode,
	}
}

// Sampler exposes the underlying sampler so downstream aggregation draws
// from the same ordered stream
func (g *Generator) Sampler() *Sampler {
	return g.sampler
}

// Clamps reports how many steps were clamped to a floor so far
func (g *Generator) Clamps() int {
	return g.clamps
}

// Generate builds one series over h
func (g *Generator) Generate(b Behavior, h Horizon) ([]Point, error) {
	if err := h.Validate(); err != nil {
		return nil, err
	}
	if b.Volatility < 0 {
		return nil, fmt.Errorf("%w: got %v", ErrNegativeVolatility, b.Volatility)
	}

	points := make([]Point, 0, h.Length)
	vol := b.Volatility * h.VolatilityScale
	value := h.StartValue

	for i := 0; i < h.Length; i++ {
		delta := g.sampler.Next(b.Drift, vol)
		value = g.step(value, delta, h)

		p := Point{Index: i, Value: value}
		if g.mode == DrawdownCosmetic {
			p.DrawdownPct = cosmetic(g.sampler.Uniform(), b.Volatility, h.DrawdownScale)
		}
		points = append(points, p)
	}

	if g.mode == DrawdownRunning {
		for i, dd := range drawdown.Running(Values(points)) {
			points[i].DrawdownPct = dd
		}
	}

	return points, nil
}

// step applies delta and clamps to the horizon floor
func (g *Generator) step(value, delta float64, h Horizon) float64 {
	switch h.Update {
	case Multiplicative:
		value = value * (1 + delta)
	default:
		value += value * delta
	}

	// NumericDegeneracy: 조용히 floor 로 복구
	if math.IsNaN(value) || value < h.Floor {
		g.clamps++
		return h.Floor
	}
	return value
}

func cosmetic(u, volatility, scale float64) float64 {
	dd := -math.Abs(u * volatility * scale)
	if dd == 0 {
		return 0
	}
	return dd
}

// BenchmarkRow is one lockstep step across all strategies
type BenchmarkRow struct {
	Date   string             `json:"date"`
	Values map[string]float64 `json:"values"`
}

// Lockstep runs every strategy over h in the same loop so row i of every
// strategy shares step index i. ids and behaviors are parallel slices.
func (g *Generator) Lockstep(ids []string, behaviors []Behavior, h Horizon, labels []string) ([]BenchmarkRow, error) {
	if len(ids) != len(behaviors) {
		return nil, fmt.Errorf("lockstep: %d ids but %d behaviors", len(ids), len(behaviors))
	}
	if err := h.Validate(); err != nil {
		return nil, err
	}
	if len(labels) != h.Length {
		return nil, fmt.Errorf("lockstep: %d labels for horizon length %d", len(labels), h.Length)
	}
	for i, b := range behaviors {
		if b.Volatility < 0 {
			return nil, fmt.Errorf("%w: %s got %v", ErrNegativeVolatility, ids[i], b.Volatility)
		}
	}

	values := make([]float64, len(ids))
	for i := range values {
		values[i] = h.StartValue
	}

	rows := make([]BenchmarkRow, 0, h.Length)
	for step := 0; step < h.Length; step++ {
		row := BenchmarkRow{
			Date:   labels[step],
			Values: make(map[string]float64, len(ids)),
		}
		for i, id := range ids {
			delta := g.sampler.Next(behaviors[i].Drift, behaviors[i].Volatility*h.VolatilityScale)
			values[i] = g.step(values[i], delta, h)
			row.Values[id] = values[i]
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// DateLabels returns n consecutive daily labels ending at end (inclusive)
func DateLabels(end time.Time, n int) []string {
	if n <= 0 {
		return []string{}
	}
	end = time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	labels := make([]string, n)
	for i := 0; i < n; i++ {
		labels[i] = end.AddDate(0, 0, i-(n-1)).Format("2006-01-02")
	}
	return labels
}
