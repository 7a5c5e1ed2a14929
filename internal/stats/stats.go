// Package stats derives the statistics bundle, calendar overlays and measured
// performance metrics for one strategy.
package stats

import (
	"fmt"
	"math"

	"github.com/sentquant/analytics/internal/random"
)

// SortinoMultiple sortino = sharpe × 1.5 (모든 모드 공통)
const SortinoMultiple = 1.5

// Reference constants for the declared mode
const (
	declaredExpectedValuePct = 0.15
	declaredVolatilityPct    = 15.5
	periodsPerYear           = 365
)

// Sampled ranges for the declared mode
var (
	winRateRange = [2]float64{50, 70}
	cagrRange    = [2]float64{20, 35}
	aprRange     = [2]float64{100, 600}
)

// Mode selects how non-headline statistics are produced
type Mode int

const (
	// ModeDeclared passes headline numbers through and samples the rest from fixed ranges
	ModeDeclared Mode = iota
	// ModeDerived measures CAGR, volatility, win rate and expected value from the historical series
	ModeDerived
)

// ParseMode maps a config string to a Mode
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "declared":
		return ModeDeclared, nil
	case "derived":
		return ModeDerived, nil
	default:
		return ModeDeclared, fmt.Errorf("unknown stats mode %q", s)
	}
}

func (m Mode) String() string {
	if m == ModeDerived {
		return "derived"
	}
	return "declared"
}

// Declared headline numbers of a strategy (from the catalog)
type Declared struct {
	TotalReturnPct float64
	MaxDrawdownPct float64
	Sharpe         float64
	AprPct         float64 // 0 = not declared
}

// Bundle 전략별 통계 묶음
type Bundle struct {
	TotalReturnPct   float64 `json:"totalReturnPct"`
	MaxDrawdownPct   float64 `json:"maxDrawdownPct"`
	Sharpe           float64 `json:"sharpe"`
	Sortino          float64 `json:"sortino"`
	WinRatePct       float64 `json:"winRatePct"`
	CAGRPct          float64 `json:"cagrPct"`
	AprPct           float64 `json:"aprPct"`
	ExpectedValuePct float64 `json:"expectedValuePct"`
	VolatilityPct    float64 `json:"volatilityPct"`
}

// Aggregator builds statistics bundles. One aggregator applies one mode to every strategy.
type Aggregator struct {
	mode Mode
	src  random.Source
}

// NewAggregator creates an aggregator; src is only consumed in ModeDeclared
func NewAggregator(mode Mode, src random.Source) *Aggregator {
	return &Aggregator{mode: mode, src: src}
}

// Mode returns the aggregator mode
func (a *Aggregator) Mode() Mode {
	return a.mode
}

// Aggregate derives the bundle from declared numbers and the historical value series
func (a *Aggregator) Aggregate(d Declared, historical []float64) Bundle {
	b := Bundle{
		TotalReturnPct: d.TotalReturnPct,
		MaxDrawdownPct: d.MaxDrawdownPct,
		Sharpe:         d.Sharpe,
		Sortino:        d.Sharpe * SortinoMultiple,
	}

	if a.mode == ModeDerived {
		a.derive(&b, d, historical)
		return b
	}

	b.WinRatePct = random.Uniform(a.src, winRateRange[0], winRateRange[1])
	b.CAGRPct = random.Uniform(a.src, cagrRange[0], cagrRange[1])
	apr := random.Uniform(a.src, aprRange[0], aprRange[1])
	if d.AprPct > 0 {
		apr = d.AprPct
	}
	b.AprPct = apr
	b.ExpectedValuePct = declaredExpectedValuePct
	b.VolatilityPct = declaredVolatilityPct
	return b
}

func (a *Aggregator) derive(b *Bundle, d Declared, historical []float64) {
	b.CAGRPct = CAGR(d.TotalReturnPct, len(historical))
	b.AprPct = d.AprPct

	returns := StepReturns(historical)
	if len(returns) == 0 {
		return
	}

	m := mean(returns)
	b.ExpectedValuePct = m * 100
	b.VolatilityPct = sampleStdDev(returns) * math.Sqrt(periodsPerYear) * 100
	if b.AprPct <= 0 {
		b.AprPct = m * periodsPerYear * 100
	}

	wins := 0
	for _, r := range returns {
		if r > 0 {
			wins++
		}
	}
	b.WinRatePct = float64(wins) / float64(len(returns)) * 100
}

// CAGR annualizes a total return earned over n daily steps
func CAGR(totalReturnPct float64, n int) float64 {
	if n < 2 {
		return 0
	}
	growth := 1 + totalReturnPct/100
	if growth <= 0 {
		return -100
	}
	years := float64(n) / periodsPerYear
	return (math.Pow(growth, 1/years) - 1) * 100
}

// StepReturns returns simple per-step returns
func StepReturns(values []float64) []float64 {
	if len(values) < 2 {
		return []float64{}
	}
	out := make([]float64, 0, len(values)-1)
	for i := 1; i < len(values); i++ {
		if values[i-1] == 0 {
			out = append(out, 0)
			continue
		}
		out = append(out, (values[i]-values[i-1])/values[i-1])
	}
	return out
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// populationStdDev divides by n
func populationStdDev(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	m := mean(xs)
	var variance float64
	for _, x := range xs {
		diff := x - m
		variance += diff * diff
	}
	return math.Sqrt(variance / float64(len(xs)))
}

// sampleStdDev divides by n-1
func sampleStdDev(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	m := mean(xs)
	var variance float64
	for _, x := range xs {
		diff := x - m
		variance += diff * diff
	}
	return math.Sqrt(variance / float64(len(xs)-1))
}
