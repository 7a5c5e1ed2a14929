package stats

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/sentquant/analytics/internal/random"
)

// Calendar overlays are cosmetic: sampled independently of the simulated series.
const (
	HeatmapYears = 5
	MonthsInYear = 12
)

var (
	monthRange  = [2]float64{-5, 15}
	annualRange = [2]float64{-10, 60}
)

// HeatmapRow 연도별 월간 수익률 (%)
type HeatmapRow struct {
	Year   string    `json:"year"`
	Months []float64 `json:"months"`
}

// AnnualReturn 연간 수익률 막대 (%)
type AnnualReturn struct {
	Year  string  `json:"year"`
	Value float64 `json:"value"`
}

// Heatmap samples 5 rows × 12 monthly returns, most recent year first
func Heatmap(src random.Source, endYear int) []HeatmapRow {
	rows := make([]HeatmapRow, HeatmapYears)
	for i := 0; i < HeatmapYears; i++ {
		months := make([]float64, MonthsInYear)
		for m := range months {
			months[m] = round2(random.Uniform(src, monthRange[0], monthRange[1]))
		}
		rows[i] = HeatmapRow{
			Year:   strconv.Itoa(endYear - i),
			Months: months,
		}
	}
	return rows
}

// AnnualReturns samples one return per year, oldest year first
func AnnualReturns(src random.Source, endYear int) []AnnualReturn {
	out := make([]AnnualReturn, HeatmapYears)
	for i := 0; i < HeatmapYears; i++ {
		out[i] = AnnualReturn{
			Year:  strconv.Itoa(endYear - (HeatmapYears - 1) + i),
			Value: round2(random.Uniform(src, annualRange[0], annualRange[1])),
		}
	}
	return out
}

func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
