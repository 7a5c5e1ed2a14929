package catalog

import (
	"bytes"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/sentquant/analytics/internal/series"
)

// file is the YAML layout of a catalog file
type file struct {
	Strategies []fileEntry `yaml:"strategies"`
}

type fileEntry struct {
	ID             string  `yaml:"id"`
	Name           string  `yaml:"name"`
	Color          string  `yaml:"color"`
	Protocol       string  `yaml:"protocol"`
	Status         string  `yaml:"status"`
	TotalReturnPct float64 `yaml:"total_return_pct"`
	MaxDrawdownPct float64 `yaml:"max_drawdown_pct"`
	Sharpe         float64 `yaml:"sharpe"`
	AprPct         float64 `yaml:"apr_pct"`
	TrackedCapital string  `yaml:"tracked_capital"`
	Drift          float64 `yaml:"drift"`
	Volatility     float64 `yaml:"volatility"`
}

// Load reads a YAML catalog file and returns the validated Catalog with raw bytes
// KnownFields(true): 오타/미사용 필드 즉시 실패
func Load(path string) (*Catalog, []byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}

	c, err := Parse(data)
	if err != nil {
		return nil, data, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, data, nil
}

// Parse decodes and validates YAML catalog bytes
func Parse(data []byte) (*Catalog, error) {
	var f file
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(f.Strategies))
	for i, fe := range f.Strategies {
		capital := decimal.Zero
		if fe.TrackedCapital != "" {
			d, err := decimal.NewFromString(fe.TrackedCapital)
			if err != nil {
				return nil, ConfigurationError{
					fmt.Sprintf("strategies[%d].tracked_capital", i),
					err.Error(),
					ErrInvalidIdentity,
				}
			}
			capital = d
		}

		status := Status(fe.Status)
		if status == "" {
			status = StatusLive
		}

		entries = append(entries, Entry{
			Identity: Identity{
				ID:             fe.ID,
				Name:           fe.Name,
				Color:          fe.Color,
				Protocol:       fe.Protocol,
				Status:         status,
				TotalReturnPct: fe.TotalReturnPct,
				MaxDrawdownPct: fe.MaxDrawdownPct,
				Sharpe:         fe.Sharpe,
				AprPct:         fe.AprPct,
				TrackedCapital: capital,
			},
			Behavior: series.Behavior{Drift: fe.Drift, Volatility: fe.Volatility},
		})
	}

	return New(entries...)
}
