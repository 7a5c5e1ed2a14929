package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/sentquant/analytics/internal/series"
)

// defaultEntries 대시보드 기본 6개 전략
var defaultEntries = []Entry{
	{
		Identity: Identity{
			ID: "sentquant", Name: "Sentquant", Color: "#f3f4f5", Protocol: "Lighter",
			Status: StatusLive, TotalReturnPct: 182.4, MaxDrawdownPct: -12.3, Sharpe: 2.41,
			TrackedCapital: decimal.RequireFromString("125000"),
		},
		Behavior: series.Behavior{Drift: 0.0035, Volatility: 0.04},
	},
	{
		Identity: Identity{
			ID: "systemic_hyper", Name: "Systemic Hyper", Color: "#3b1bccff", Protocol: "Hyperliquid",
			Status: StatusLive, TotalReturnPct: 96.7, MaxDrawdownPct: -18.9, Sharpe: 1.44,
			TrackedCapital: decimal.RequireFromString("48000"),
		},
		Behavior: series.Behavior{Drift: 0.0025, Volatility: 0.06},
	},
	{
		Identity: Identity{
			ID: "jlp_neutral", Name: "JLP Delta Neutral", Color: "#e9d5ff", Protocol: "Drift",
			Status: StatusLive, TotalReturnPct: 34.2, MaxDrawdownPct: -4.1, Sharpe: 3.12, AprPct: 38.5,
			TrackedCapital: decimal.RequireFromString("210000"),
		},
		Behavior: series.Behavior{Drift: 0.0009, Volatility: 0.01},
	},
	{
		Identity: Identity{
			ID: "guineapool", Name: "Guinea Pool", Color: "#9c69c5ff", Protocol: "Lighter",
			Status: StatusLive, TotalReturnPct: 58.9, MaxDrawdownPct: -9.6, Sharpe: 1.87,
			TrackedCapital: decimal.RequireFromString("36500"),
		},
		Behavior: series.Behavior{Drift: 0.0015, Volatility: 0.03},
	},
	{
		Identity: Identity{
			ID: "edgehedge", Name: "Edge and Hedge", Color: "#a54316", Protocol: "Lighter",
			Status: StatusOffline, TotalReturnPct: 21.5, MaxDrawdownPct: -15.2, Sharpe: 0.92,
			TrackedCapital: decimal.RequireFromString("12000"),
		},
		Behavior: series.Behavior{Drift: 0.0006, Volatility: 0.035},
	},
	{
		Identity: Identity{
			ID: "systemicls", Name: "Systemic L/S", Color: "#ebfd4a", Protocol: "Hyperliquid",
			Status: StatusLive, TotalReturnPct: 73.1, MaxDrawdownPct: -11.4, Sharpe: 1.65,
			TrackedCapital: decimal.RequireFromString("64000"),
		},
		Behavior: series.Behavior{Drift: 0.002, Volatility: 0.045},
	},
}

// Default returns the built-in catalog
func Default() *Catalog {
	c, err := New(defaultEntries...)
	if err != nil {
		panic("catalog: built-in entries invalid: " + err.Error())
	}
	return c
}
