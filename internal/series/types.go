package series

import (
	"errors"
	"fmt"
)

var (
	// ErrNegativeVolatility is returned for volatility < 0
	ErrNegativeVolatility = errors.New("volatility must be >= 0")
	// ErrInvalidHorizon is returned for a horizon that cannot produce a positive series
	ErrInvalidHorizon = errors.New("invalid horizon")
)

// Behavior random-walk 파라미터 (전략별 1:1)
type Behavior struct {
	Drift      float64 `json:"drift" yaml:"drift"`
	Volatility float64 `json:"volatility" yaml:"volatility" validate:"gte=0"`
}

// Point is one step of a generated series
// Value > 0 (floor clamp), DrawdownPct <= 0
type Point struct {
	Index       int     `json:"index"`
	Value       float64 `json:"value"`
	DrawdownPct float64 `json:"drawdownPct"`
}

// Update is how a step delta is applied to the running value
type Update int

const (
	// Additive: v += v * delta
	Additive Update = iota
	// Multiplicative: v = v * (1 + delta)
	Multiplicative
)

func (u Update) String() string {
	switch u {
	case Additive:
		return "additive"
	case Multiplicative:
		return "multiplicative"
	default:
		return fmt.Sprintf("update(%d)", int(u))
	}
}

// DrawdownMode selects what Point.DrawdownPct holds
type DrawdownMode int

const (
	// DrawdownRunning is the true running drawdown from peak
	DrawdownRunning DrawdownMode = iota
	// DrawdownCosmetic is -|u * volatility * scale|, independent of the path
	DrawdownCosmetic
)

// ParseDrawdownMode maps a config string to a mode
func ParseDrawdownMode(s string) (DrawdownMode, error) {
	switch s {
	case "", "running":
		return DrawdownRunning, nil
	case "cosmetic":
		return DrawdownCosmetic, nil
	default:
		return DrawdownRunning, fmt.Errorf("unknown drawdown mode %q", s)
	}
}

func (m DrawdownMode) String() string {
	if m == DrawdownCosmetic {
		return "cosmetic"
	}
	return "running"
}

// Horizon is a fixed-length generation window
type Horizon struct {
	Name            string
	Length          int
	StartValue      float64
	Floor           float64
	VolatilityScale float64 // multiplier on behavior volatility
	DrawdownScale   float64 // cosmetic drawdown scale
	Update          Update
}

// Horizons used by the analytics build
var (
	LiveHorizon = Horizon{
		Name:            "live",
		Length:          150,
		StartValue:      1000,
		Floor:           500,
		VolatilityScale: 1.5,
		DrawdownScale:   1000,
		Update:          Additive,
	}
	HistoricalHorizon = Horizon{
		Name:            "historical",
		Length:          365,
		StartValue:      1000,
		Floor:           100,
		VolatilityScale: 1,
		DrawdownScale:   800,
		Update:          Additive,
	}
	BenchmarkHorizon = Horizon{
		Name:            "benchmark",
		Length:          200,
		StartValue:      1000,
		Floor:           100,
		VolatilityScale: 1,
		Update:          Multiplicative,
	}
)

// WithLength returns a copy of h with a different length
func (h Horizon) WithLength(n int) Horizon {
	h.Length = n
	return h
}

// Validate checks the horizon can produce a strictly positive series
func (h Horizon) Validate() error {
	if h.Length < 0 {
		return fmt.Errorf("%w: %s length %d < 0", ErrInvalidHorizon, h.Name, h.Length)
	}
	if h.StartValue <= 0 {
		return fmt.Errorf("%w: %s start value must be > 0", ErrInvalidHorizon, h.Name)
	}
	if h.Floor <= 0 {
		return fmt.Errorf("%w: %s floor must be > 0", ErrInvalidHorizon, h.Name)
	}
	if h.VolatilityScale < 0 {
		return fmt.Errorf("%w: %s volatility scale must be >= 0", ErrInvalidHorizon, h.Name)
	}
	return nil
}

// Values extracts the value column
func Values(points []Point) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		out[i] = p.Value
	}
	return out
}
