// Package stats provides the normalization helpers and the distribution
// service shared by the scoring, risk, and competitive engines. Everything
// here is a pure function over its arguments.
package stats

import (
	"math"
	"sort"

	"github.com/francesca-tabor-ai/MATURITY-OS-sub001/internal/model"
)

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 bounds v to [0, 1].
func Clamp01(v float64) float64 { return Clamp(v, 0, 1) }

// ClampScore bounds v to the canonical 0-100 score scale.
func ClampScore(v float64) float64 { return Clamp(v, 0, 100) }

// Round2 rounds to 2 decimal places.
func Round2(v float64) float64 { return math.Round(v*100) / 100 }

// WeightedMean computes sum(value*weight)/sum(weight). Returns 0 when the
// weight sum is 0 rather than dividing by zero.
func WeightedMean(values, weights []float64) float64 {
	var total, weightSum float64
	for i, v := range values {
		w := 1.0
		if i < len(weights) {
			w = weights[i]
		}
		total += v * w
		weightSum += w
	}
	if weightSum == 0 {
		return 0
	}
	return total / weightSum
}

// Percentile computes the p-th percentile (0-1) of a sorted sample using
// linear interpolation between order statistics (the R-7 method).
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n == 1 {
		return sorted[0]
	}
	p = Clamp01(p)
	idx := p * float64(n-1)
	lo := int(math.Floor(idx))
	hi := int(math.Ceil(idx))
	if lo == hi {
		return sorted[lo]
	}
	frac := idx - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}

// Analyze computes distribution statistics over a cohort of scores. Outliers
// are flagged by the 1.5xIQR fence rule. An empty sample returns zeroed stats
// with Count 0.
func Analyze(scores []float64) model.DistributionStats {
	n := len(scores)
	if n == 0 {
		return model.DistributionStats{}
	}

	sorted := make([]float64, n)
	copy(sorted, scores)
	sort.Float64s(sorted)

	var sum float64
	for _, v := range sorted {
		sum += v
	}
	mean := sum / float64(n)

	var variance float64
	for _, v := range sorted {
		d := v - mean
		variance += d * d
	}
	variance /= float64(n)

	q1 := Percentile(sorted, 0.25)
	median := Percentile(sorted, 0.5)
	q3 := Percentile(sorted, 0.75)

	iqr := q3 - q1
	lowFence := q1 - 1.5*iqr
	highFence := q3 + 1.5*iqr
	var outliers []float64
	for _, v := range sorted {
		if v < lowFence || v > highFence {
			outliers = append(outliers, v)
		}
	}

	return model.DistributionStats{
		Mean:     Round2(mean),
		Median:   Round2(median),
		StdDev:   Round2(math.Sqrt(variance)),
		Q1:       Round2(q1),
		Q3:       Round2(q3),
		Min:      sorted[0],
		Max:      sorted[n-1],
		Count:    n,
		Outliers: outliers,
	}
}
