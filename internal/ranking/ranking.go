// Package ranking orders strategies by the Sentquant Rating Score (SRS).
package ranking

import (
	"sort"

	"github.com/sentquant/analytics/internal/stats"
)

const (
	// MinPoints 이하 이력은 신규 진입 패널티
	MinPoints = 7
	// NewEntryPenalty multiplies the score of strategies with fewer than MinPoints points
	NewEntryPenalty = 0.2

	srsBase  = 100
	srsRange = 900
	normEps  = 1e-9
)

// Weights of the normalised metrics; they sum to 1
type Weights struct {
	ROI       float64
	Sortino   float64
	Calmar    float64
	Stability float64
}

// DefaultWeights 30-30-30-10
var DefaultWeights = Weights{ROI: 0.3, Sortino: 0.3, Calmar: 0.3, Stability: 0.1}

// Input is one strategy's measured metrics
type Input struct {
	ID       string
	Name     string
	Measured stats.Measured
}

// Row is one line of the ranking table
type Row struct {
	Rank      int     `json:"rank"`
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	ROI       float64 `json:"roi"`
	Sortino   float64 `json:"sortino"`
	Calmar    float64 `json:"calmar"`
	Stability float64 `json:"stability"`
	Points    int     `json:"points"`
	Score     float64 `json:"score"`
	SRS       int     `json:"srs"`
	Penalized bool    `json:"penalized"`
}

// Rank scores inputs with DefaultWeights
func Rank(inputs []Input) []Row {
	return RankWith(inputs, DefaultWeights)
}

// RankWith min-max normalises each metric across inputs, combines them with w,
// applies the new-entry penalty and sorts by score, then ROI, then history length.
// Ties beyond that keep input order.
func RankWith(inputs []Input, w Weights) []Row {
	if len(inputs) == 0 {
		return []Row{}
	}

	roi := normalise(inputs, func(m stats.Measured) float64 { return m.ROI })
	sortino := normalise(inputs, func(m stats.Measured) float64 { return m.Sortino })
	calmar := normalise(inputs, func(m stats.Measured) float64 { return m.Calmar })
	stability := normalise(inputs, func(m stats.Measured) float64 { return m.Stability })

	rows := make([]Row, len(inputs))
	for i, in := range inputs {
		score := roi[i]*w.ROI + sortino[i]*w.Sortino + calmar[i]*w.Calmar + stability[i]*w.Stability
		penalized := in.Measured.Points < MinPoints
		if penalized {
			score *= NewEntryPenalty
		}

		rows[i] = Row{
			ID:        in.ID,
			Name:      in.Name,
			ROI:       in.Measured.ROI,
			Sortino:   in.Measured.Sortino,
			Calmar:    in.Measured.Calmar,
			Stability: in.Measured.Stability,
			Points:    in.Measured.Points,
			Score:     score,
			SRS:       int(srsBase + score*srsRange),
			Penalized: penalized,
		}
	}

	sort.SliceStable(rows, func(a, b int) bool {
		if rows[a].Score != rows[b].Score {
			return rows[a].Score > rows[b].Score
		}
		if rows[a].ROI != rows[b].ROI {
			return rows[a].ROI > rows[b].ROI
		}
		return rows[a].Points > rows[b].Points
	})

	for i := range rows {
		rows[i].Rank = i + 1
	}
	return rows
}

func normalise(inputs []Input, metric func(stats.Measured) float64) []float64 {
	out := make([]float64, len(inputs))
	lo, hi := metric(inputs[0].Measured), metric(inputs[0].Measured)
	for _, in := range inputs[1:] {
		v := metric(in.Measured)
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	for i, in := range inputs {
		out[i] = (metric(in.Measured) - lo) / (hi - lo + normEps)
	}
	return out
}
