package assessment

import "math"

// scaleHalfRange normalizes the spread of dimension scores: half the range
// of the 7-point rating scale.
const scaleHalfRange = 3.5

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	s := 0.0
	for _, v := range xs {
		s += v
	}
	return s / float64(len(xs))
}

// popStdDev is the population standard deviation (divisor n, not n-1),
// matching the spread definition the composite indices are calibrated on.
func popStdDev(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	m := mean(xs)
	ss := 0.0
	for _, v := range xs {
		d := v - m
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(xs)))
}

// compositeIndex maps the spread of a score set into a balance/coherence
// index: 1 at zero spread, decreasing as scores diverge. Not clamped, so
// out-of-range ratings can push it outside [0,1].
func compositeIndex(scores []float64) float64 {
	return 1 - popStdDev(scores)/scaleHalfRange
}

// maxKey returns the first key in declared order whose score is maximal.
// Declared order is the documented tie-break for equal scores.
func maxKey(order []string, scores map[string]float64) string {
	best := order[0]
	for _, k := range order[1:] {
		if scores[k] > scores[best] {
			best = k
		}
	}
	return best
}

// minKey returns the first key in declared order whose score is minimal.
func minKey(order []string, scores map[string]float64) string {
	worst := order[0]
	for _, k := range order[1:] {
		if scores[k] < scores[worst] {
			worst = k
		}
	}
	return worst
}

// meanOf averages the ratings of one indicator group; absent indicators
// contribute 0.
func meanOf(r Ratings, indicators []string) float64 {
	vals := make([]float64, len(indicators))
	for i, key := range indicators {
		vals[i] = r[key]
	}
	return mean(vals)
}
