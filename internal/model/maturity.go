// Package model defines the plain value records shared across the scoring
// engine packages. Every type here is an immutable snapshot constructed per
// request; the engine never mutates or caches them.
package model

// AuditInputs maps category name -> sub-question key -> raw answer.
// Raw answers are expected on a 0-100 scale but are clamped, never rejected.
// Missing categories score 0.
type AuditInputs map[string]map[string]float64

// CategoryScore holds the normalized 0-100 score for a single category.
type CategoryScore struct {
	Score   float64            `json:"score"`
	Details map[string]float64 `json:"details,omitempty"`
}

// MaturityResult is the output of a category scoring service.
type MaturityResult struct {
	CategoryScores  map[string]CategoryScore `json:"category_scores"`
	MaturityStage   int                      `json:"maturity_stage"`
	CompositeScore  float64                  `json:"composite_score"`
	ConfidenceScore *float64                 `json:"confidence_score,omitempty"` // data variant only, 0-1
}

// MaturitySummary is the slice of a MaturityResult downstream engines need:
// the stage plus per-dimension scores. Callers build it from stored results.
type MaturitySummary struct {
	Stage           int                `json:"stage"`
	CompositeScore  float64            `json:"composite_score"`
	DimensionScores map[string]float64 `json:"dimension_scores"`
}

// ScorePair carries an organisation's two headline scores.
type ScorePair struct {
	DataScore float64 `json:"data_score"`
	AIScore   float64 `json:"ai_score"`
}

// Avg returns the mean of the two scores.
func (p ScorePair) Avg() float64 {
	return (p.DataScore + p.AIScore) / 2
}

// PriorityLevel ranks a capability gap.
type PriorityLevel string

const (
	PriorityHigh   PriorityLevel = "high"
	PriorityMedium PriorityLevel = "medium"
	PriorityLow    PriorityLevel = "low"
)

// RiskLevel buckets an overall risk score.
type RiskLevel string

const (
	RiskLevelLow    RiskLevel = "LOW"
	RiskLevelMedium RiskLevel = "MEDIUM"
	RiskLevelHigh   RiskLevel = "HIGH"
)
