// Package risk scores organisational transformation risk across four
// categories and models initiative-level probability of failure.
package risk

import (
	"fmt"

	"github.com/francesca-tabor-ai/MATURITY-OS-sub001/internal/model"
	"github.com/francesca-tabor-ai/MATURITY-OS-sub001/internal/stats"
)

// Categories is the canonical ordered set of risk categories.
var Categories = []string{
	"ai_misalignment", "infrastructure", "operational", "strategic",
}

// Risk level band edges.
const (
	mediumRiskThreshold = 35
	highRiskThreshold   = 65
)

// Inputs maps category -> sub-factor -> raw score (0-100, higher means more
// risk). Missing categories score 0.
type Inputs map[string]map[string]float64

// AssessmentResult is the output of the organisational risk assessment.
type AssessmentResult struct {
	CategoryScores map[string]float64 `json:"category_scores"`
	OverallScore   float64            `json:"overall_risk_score"`
	Level          model.RiskLevel    `json:"risk_level"`
	Summary        []string           `json:"summary"`
}

// DefaultWeights returns equal weights across the four categories.
func DefaultWeights() map[string]float64 {
	w := make(map[string]float64, len(Categories))
	for _, cat := range Categories {
		w[cat] = 1.0 / float64(len(Categories))
	}
	return w
}

// Assess scores each risk category as the mean of its clamped sub-factors,
// then combines them with the given weights (nil means equal). The overall
// score is clamped to [0,100].
func Assess(in Inputs, weights map[string]float64) AssessmentResult {
	if len(weights) == 0 {
		weights = DefaultWeights()
	}

	categoryScores := make(map[string]float64, len(Categories))
	for _, cat := range Categories {
		categoryScores[cat] = categoryScore(in[cat])
	}

	var total, weightSum float64
	for _, cat := range Categories {
		w := weights[cat]
		total += categoryScores[cat] * w
		weightSum += w
	}
	overall := 0.0
	if weightSum > 0 {
		overall = stats.ClampScore(total / weightSum)
	}
	overall = stats.Round2(overall)

	return AssessmentResult{
		CategoryScores: categoryScores,
		OverallScore:   overall,
		Level:          LevelFor(overall),
		Summary:        summarize(categoryScores),
	}
}

// LevelFor buckets an overall risk score: LOW below 35, MEDIUM 35-64, HIGH
// at 65 and above.
func LevelFor(score float64) model.RiskLevel {
	switch {
	case score >= highRiskThreshold:
		return model.RiskLevelHigh
	case score >= mediumRiskThreshold:
		return model.RiskLevelMedium
	default:
		return model.RiskLevelLow
	}
}

func categoryScore(factors map[string]float64) float64 {
	if len(factors) == 0 {
		return 0
	}
	var sum float64
	for _, v := range factors {
		sum += stats.ClampScore(v)
	}
	return stats.Round2(sum / float64(len(factors)))
}

// summarize emits one line per elevated category, in canonical order.
func summarize(scores map[string]float64) []string {
	var lines []string
	for _, cat := range Categories {
		score := scores[cat]
		switch {
		case score >= highRiskThreshold:
			lines = append(lines, fmt.Sprintf("%s risk is high (%.0f)", cat, score))
		case score >= mediumRiskThreshold:
			lines = append(lines, fmt.Sprintf("%s risk is elevated (%.0f)", cat, score))
		}
	}
	return lines
}
