package stats

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sentquant/analytics/internal/random"
)

func TestAggregate_Sortino(t *testing.T) {
	for _, mode := range []Mode{ModeDeclared, ModeDerived} {
		t.Run(mode.String(), func(t *testing.T) {
			a := NewAggregator(mode, random.New(1))
			b := a.Aggregate(Declared{Sharpe: 1.44}, []float64{1000, 1010, 1005})
			assert.InDelta(t, 2.16, b.Sortino, 1e-9)
		})
	}
}

func TestAggregate_Declared(t *testing.T) {
	a := NewAggregator(ModeDeclared, random.New(42))
	d := Declared{TotalReturnPct: 182.4, MaxDrawdownPct: -12.3, Sharpe: 2.1}

	b := a.Aggregate(d, nil)

	assert.Equal(t, 182.4, b.TotalReturnPct)
	assert.Equal(t, -12.3, b.MaxDrawdownPct)
	assert.Equal(t, 2.1, b.Sharpe)
	assert.GreaterOrEqual(t, b.WinRatePct, 50.0)
	assert.Less(t, b.WinRatePct, 70.0)
	assert.GreaterOrEqual(t, b.CAGRPct, 20.0)
	assert.Less(t, b.CAGRPct, 35.0)
	assert.GreaterOrEqual(t, b.AprPct, 100.0)
	assert.Less(t, b.AprPct, 600.0)
	assert.Equal(t, 0.15, b.ExpectedValuePct)
	assert.Equal(t, 15.5, b.VolatilityPct)
}

func TestAggregate_DeclaredAprOverridesSample(t *testing.T) {
	src := random.NewFixed(0.5)
	a := NewAggregator(ModeDeclared, src)

	b := a.Aggregate(Declared{AprPct: 42}, nil)

	assert.Equal(t, 42.0, b.AprPct)
	assert.Equal(t, 3, src.Draws(), "draw count does not depend on declared apr")
}

func TestAggregate_Derived(t *testing.T) {
	a := NewAggregator(ModeDerived, nil)

	// 365 points → one year, CAGR equals total return
	flat := make([]float64, 365)
	for i := range flat {
		flat[i] = 1000
	}
	b := a.Aggregate(Declared{TotalReturnPct: 25, Sharpe: 1}, flat)

	assert.InDelta(t, 25.0, b.CAGRPct, 1e-9)
	assert.Equal(t, 0.0, b.VolatilityPct)
	assert.Equal(t, 0.0, b.WinRatePct)
	assert.Equal(t, 0.0, b.ExpectedValuePct)

	b = a.Aggregate(Declared{TotalReturnPct: 10}, []float64{100, 110, 99, 121})
	assert.InDelta(t, 2.0/3.0*100, b.WinRatePct, 1e-9)
	assert.Greater(t, b.VolatilityPct, 0.0)
	assert.InDelta(t, (0.1-0.1+0.2222222222)/3*100, b.ExpectedValuePct, 1e-6)
}

func TestAggregate_DerivedEmptySeries(t *testing.T) {
	a := NewAggregator(ModeDerived, nil)

	b := a.Aggregate(Declared{TotalReturnPct: 50, MaxDrawdownPct: -8, Sharpe: 1.2}, nil)

	assert.Equal(t, Bundle{
		TotalReturnPct: 50,
		MaxDrawdownPct: -8,
		Sharpe:         1.2,
		Sortino:        1.2 * SortinoMultiple,
	}, b)
}

func TestCAGR(t *testing.T) {
	assert.Equal(t, 0.0, CAGR(50, 1))
	assert.Equal(t, -100.0, CAGR(-150, 365))
	assert.InDelta(t, 100.0, CAGR(300, 730), 1e-9, "300% over two years is 100%/yr")
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("derived")
	require.NoError(t, err)
	assert.Equal(t, ModeDerived, m)

	m, err = ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, ModeDeclared, m)

	_, err = ParseMode("measured")
	assert.Error(t, err)
}

func TestHeatmap(t *testing.T) {
	rows := Heatmap(random.New(9), 2025)

	require.Len(t, rows, HeatmapYears)
	for i, row := range rows {
		assert.Equal(t, strconv.Itoa(2025-i), row.Year, "most recent year first")
		require.Len(t, row.Months, MonthsInYear)
		for _, v := range row.Months {
			assert.False(t, math.IsNaN(v) || math.IsInf(v, 0))
			assert.GreaterOrEqual(t, v, -5.0)
			assert.LessOrEqual(t, v, 15.0)
		}
	}
}

func TestAnnualReturns(t *testing.T) {
	got := AnnualReturns(random.NewFixed(0), 2025)

	require.Len(t, got, HeatmapYears)
	years := make([]string, len(got))
	for i, ar := range got {
		years[i] = ar.Year
		assert.Equal(t, -10.0, ar.Value)
	}
	assert.Equal(t, []string{"2021", "2022", "2023", "2024", "2025"}, years)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 1.23, round2(1.2345))
	assert.Equal(t, -4.57, round2(-4.5678))
}

func TestMeasure(t *testing.T) {
	m := Measure([]float64{100, 110, 99, 121})

	assert.Equal(t, 4, m.Points)
	assert.InDelta(t, 0.21, m.ROI, 1e-9)
	assert.Equal(t, 0.0, m.Sortino, "single negative return has zero downside deviation")
	assert.InDelta(t, 2.1, m.Calmar, 1e-9)
	assert.Greater(t, m.Stability, 0.0)
}

func TestMeasure_NoDeclines(t *testing.T) {
	m := Measure([]float64{100, 200, 400})

	assert.InDelta(t, 3.0, m.ROI, 1e-9)
	assert.InDelta(t, 1/minDispersion, m.Sortino, 1e-6)
	assert.InDelta(t, 3/minDrawdown, m.Calmar, 1e-6)
	assert.InDelta(t, 1/minDispersion, m.Stability, 1e-6, "constant returns use the dispersion floor")
}

func TestMeasure_Short(t *testing.T) {
	assert.Equal(t, Measured{}, Measure(nil))
	assert.Equal(t, Measured{Points: 1}, Measure([]float64{1000}))
}
