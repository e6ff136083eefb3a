// Package scoring implements the data and AI maturity scoring services.
// Both services are total functions: out-of-range answers are clamped, missing
// categories score 0, and every returned score lies in [0,100].
package scoring

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/francesca-tabor-ai/MATURITY-OS-sub001/internal/model"
	"github.com/francesca-tabor-ai/MATURITY-OS-sub001/internal/stats"
)

// stageBand maps a composite-score threshold to an ordinal stage. Bands are
// contiguous, non-overlapping, and cover [0,100]; a composite at or above
// Threshold falls into Stage unless a later band also matches.
type stageBand struct {
	Threshold float64
	Stage     int
}

// scoreCategory normalizes one category's raw sub-answers to a 0-100 score.
// Each sub-answer is clamped to [0,100]; the category score is their mean.
// An absent or empty category scores 0.
func scoreCategory(answers map[string]float64) model.CategoryScore {
	if len(answers) == 0 {
		return model.CategoryScore{Score: 0}
	}

	details := make(map[string]float64, len(answers))
	var sum float64
	for key, raw := range answers {
		v := stats.ClampScore(raw)
		details[key] = v
		sum += v
	}

	return model.CategoryScore{
		Score:   stats.Round2(sum / float64(len(answers))),
		Details: details,
	}
}

// composite computes the weighted mean of category scores using the given
// weight vector. Categories absent from the weight vector contribute nothing.
func composite(scores map[string]model.CategoryScore, weights map[string]float64) float64 {
	var total, weightSum float64
	for cat, w := range weights {
		total += scores[cat].Score * w
		weightSum += w
	}
	if weightSum == 0 {
		return 0
	}
	return stats.ClampScore(total / weightSum)
}

// stageFor assigns the ordinal stage for a composite score given a band table
// sorted ascending by threshold.
func stageFor(compositeScore float64, bands []stageBand) int {
	stage := bands[0].Stage
	for _, b := range bands {
		if compositeScore >= b.Threshold {
			stage = b.Stage
		}
	}
	return stage
}

// confidence reports input completeness as the fraction of non-default
// (non-zero) sub-answers across the expected categories, 0-1. A category with
// no answers counts as a single default answer.
func confidence(inputs model.AuditInputs, categories []string) float64 {
	var answered, expected float64
	for _, cat := range categories {
		answers := inputs[cat]
		if len(answers) == 0 {
			expected++
			continue
		}
		for _, v := range answers {
			expected++
			if v != 0 {
				answered++
			}
		}
	}
	if expected == 0 {
		return 0
	}
	return stats.Round2(answered / expected)
}

// ValidateWeights checks that a weight vector covers exactly the expected
// categories with non-negative weights summing to 1 (within tolerance).
func ValidateWeights(weights map[string]float64, categories []string) error {
	var errs []string

	var sum float64
	for cat, w := range weights {
		if w < 0 {
			errs = append(errs, fmt.Sprintf("%s weight must be >= 0", cat))
		}
		sum += w
	}
	if math.Abs(sum-1) > 0.01 {
		errs = append(errs, fmt.Sprintf("weights must sum to 1, got %.3f", sum))
	}

	for _, cat := range categories {
		if _, ok := weights[cat]; !ok {
			errs = append(errs, fmt.Sprintf("missing weight for category %s", cat))
		}
	}
	var extra []string
	for cat := range weights {
		known := false
		for _, c := range categories {
			if c == cat {
				known = true
				break
			}
		}
		if !known {
			extra = append(extra, cat)
		}
	}
	if len(extra) > 0 {
		sort.Strings(extra)
		errs = append(errs, fmt.Sprintf("unknown categories: %s", strings.Join(extra, ", ")))
	}

	if len(errs) > 0 {
		return eris.Errorf("scoring: weight validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}
