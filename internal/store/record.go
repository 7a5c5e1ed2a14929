package store

import (
	"github.com/sentquant/analytics/internal/catalog"
	"github.com/sentquant/analytics/internal/drawdown"
	"github.com/sentquant/analytics/internal/series"
	"github.com/sentquant/analytics/internal/stats"
)

// Record 전략별 분석 결과
// 빌드 이후 변경되지 않음. 읽기 API 는 항상 복사본을 반환
type Record struct {
	Identity       catalog.Identity     `json:"identity"`
	LiveData       []series.Point       `json:"liveData"`
	HistoricalData []series.Point       `json:"historicalData"`
	Heatmap        []stats.HeatmapRow   `json:"heatmap"`
	TopDrawdowns   []drawdown.Episode   `json:"topDrawdowns"`
	AnnualReturns  []stats.AnnualReturn `json:"annualReturns"`
	Stats          stats.Bundle         `json:"stats"`
	Measured       stats.Measured       `json:"measured"`
}

func (r Record) clone() Record {
	out := r
	out.LiveData = append([]series.Point(nil), r.LiveData...)
	out.HistoricalData = append([]series.Point(nil), r.HistoricalData...)
	out.TopDrawdowns = append([]drawdown.Episode(nil), r.TopDrawdowns...)
	out.AnnualReturns = append([]stats.AnnualReturn(nil), r.AnnualReturns...)

	out.Heatmap = make([]stats.HeatmapRow, len(r.Heatmap))
	for i, row := range r.Heatmap {
		out.Heatmap[i] = stats.HeatmapRow{
			Year:   row.Year,
			Months: append([]float64(nil), row.Months...),
		}
	}
	return out
}

func declared(id catalog.Identity) stats.Declared {
	return stats.Declared{
		TotalReturnPct: id.TotalReturnPct,
		MaxDrawdownPct: id.MaxDrawdownPct,
		Sharpe:         id.Sharpe,
		AprPct:         id.AprPct,
	}
}
