package stats

// Floors substituted for zero dispersion / zero drawdown so ratios stay finite
const (
	minDispersion = 0.0001
	minDrawdown   = 0.0001
)

// Measured 실측 성과 지표 (랭킹 입력)
type Measured struct {
	ROI       float64 `json:"roi"`       // fraction, not percent
	Sortino   float64 `json:"sortino"`   // mean return / downside deviation
	Calmar    float64 `json:"calmar"`    // ROI / max drawdown
	Stability float64 `json:"stability"` // 1 / volatility of returns
	Points    int     `json:"points"`
}

// Measure computes ranking metrics from a NAV series. Fewer than two points yields zeros.
func Measure(values []float64) Measured {
	m := Measured{Points: len(values)}
	if len(values) < 2 || values[0] == 0 {
		return m
	}

	returns := StepReturns(values)
	m.ROI = (values[len(values)-1] - values[0]) / values[0]

	var negatives []float64
	for _, r := range returns {
		if r < 0 {
			negatives = append(negatives, r)
		}
	}
	downside := minDispersion
	if len(negatives) > 0 {
		downside = populationStdDev(negatives)
	}
	if downside > 0 {
		m.Sortino = mean(returns) / downside
	}

	peak, mdd := values[0], minDrawdown
	for _, v := range values {
		if v > peak {
			peak = v
		}
		if dd := (peak - v) / peak; dd > mdd {
			mdd = dd
		}
	}
	m.Calmar = m.ROI / mdd

	vol := populationStdDev(returns)
	if vol == 0 {
		vol = minDispersion
	}
	m.Stability = 1 / vol

	return m
}
