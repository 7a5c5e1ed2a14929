// Package drawdown computes running drawdowns and ranked drawdown episodes.
package drawdown

import (
	"math"
	"sort"
)

// TopK is the number of episodes kept per strategy
const TopK = 5

// Episode is one peak-to-trough decline
type Episode struct {
	Rank          int     `json:"rank"`
	StartIndex    int     `json:"startIndex"`
	EndIndex      int     `json:"endIndex"`      // trough
	DepthPct      float64 `json:"depthPct"`      // <= 0
	DurationSteps int     `json:"durationSteps"` // end - start
	RecoverySteps int     `json:"recoverySteps"` // trough -> back at peak
	Recovered     bool    `json:"recovered"`
	Synthetic     bool    `json:"synthetic,omitempty"` // placeholder or padding row
}

// Running returns the drawdown from the running peak at every point, in percent (<= 0)
func Running(values []float64) []float64 {
	out := make([]float64, len(values))
	if len(values) == 0 {
		return out
	}

	peak := values[0]
	for i, v := range values {
		if v > peak {
			peak = v
		}
		if peak > 0 {
			out[i] = (v - peak) / peak * 100
		}
	}
	return out
}

// MaxDrawdown returns the most negative running drawdown in percent, 0 for empty input
func MaxDrawdown(values []float64) float64 {
	worst := 0.0
	for _, dd := range Running(values) {
		if dd < worst {
			worst = dd
		}
	}
	return worst
}

// Extract scans values once and returns the k deepest episodes, rank 1 the worst.
// An episode starts at the first index below a peak and ends at its trough;
// recovery counts steps from the trough until the value is back at the peak.
// Episodes never recovered report the steps remaining after the trough.
func Extract(values []float64, k int) []Episode {
	if len(values) == 0 || k <= 0 {
		return []Episode{}
	}

	var episodes []Episode
	var cur *Episode
	peak := values[0]

	for i := 1; i < len(values); i++ {
		v := values[i]
		if v >= peak {
			if cur != nil {
				cur.RecoverySteps = i - cur.EndIndex
				cur.Recovered = true
				episodes = append(episodes, *cur)
				cur = nil
			}
			peak = v
			continue
		}

		dd := (v - peak) / peak * 100
		if cur == nil {
			cur = &Episode{StartIndex: i, EndIndex: i, DepthPct: dd}
			continue
		}
		if dd < cur.DepthPct {
			cur.EndIndex = i
			cur.DepthPct = dd
		}
	}

	if cur != nil {
		cur.RecoverySteps = len(values) - 1 - cur.EndIndex
		episodes = append(episodes, *cur)
	}

	// 정렬: 깊이 오름차순 (가장 음수 먼저), 동률은 시작 인덱스 순
	sort.SliceStable(episodes, func(a, b int) bool {
		if episodes[a].DepthPct != episodes[b].DepthPct {
			return episodes[a].DepthPct < episodes[b].DepthPct
		}
		return episodes[a].StartIndex < episodes[b].StartIndex
	})

	if len(episodes) > k {
		episodes = episodes[:k]
	}
	for i := range episodes {
		episodes[i].Rank = i + 1
		episodes[i].DurationSteps = episodes[i].EndIndex - episodes[i].StartIndex
	}
	return episodes
}

var (
	placeholderFactors  = []float64{1, 0.75, 0.55, 0.4, 0.25}
	placeholderDuration = []int{21, 14, 9, 6, 4}
	placeholderRecovery = []int{30, 18, 12, 8, 5}
)

// Placeholder builds a fixed table scaled from a declared max drawdown.
// Only for strategies whose series is absent.
func Placeholder(declaredMaxDDPct float64, k int) []Episode {
	if k <= 0 {
		return []Episode{}
	}

	depth := -math.Abs(declaredMaxDDPct)
	out := make([]Episode, k)
	for i := 0; i < k; i++ {
		factor, dur, rec := 0.25*math.Pow(0.8, float64(i-4)), 3, 4
		if i < len(placeholderFactors) {
			factor, dur, rec = placeholderFactors[i], placeholderDuration[i], placeholderRecovery[i]
		}
		d := depth * factor
		if d == 0 {
			d = 0 // -0
		}
		out[i] = Episode{
			Rank:          i + 1,
			StartIndex:    0,
			EndIndex:      dur,
			DepthPct:      d,
			DurationSteps: dur,
			RecoverySteps: rec,
			Recovered:     true,
			Synthetic:     true,
		}
	}
	return out
}

// Complete returns exactly k episodes: truncates, or pads with flat zero-depth
// rows when the series had fewer declines than k.
func Complete(episodes []Episode, k int) []Episode {
	if k <= 0 {
		return []Episode{}
	}

	out := make([]Episode, 0, k)
	for i := 0; i < len(episodes) && i < k; i++ {
		out = append(out, episodes[i])
	}
	for len(out) < k {
		out = append(out, Episode{
			Rank:      len(out) + 1,
			Recovered: true,
			Synthetic: true,
		})
	}
	return out
}
