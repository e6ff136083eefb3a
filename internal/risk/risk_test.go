package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/francesca-tabor-ai/MATURITY-OS-sub001/internal/model"
)

func TestAssessEqualWeights(t *testing.T) {
	in := Inputs{
		"ai_misalignment": {"f1": 80},
		"infrastructure":  {"f1": 60},
		"operational":     {"f1": 40},
		"strategic":       {"f1": 20},
	}

	got := Assess(in, nil)

	assert.InDelta(t, 50, got.OverallScore, 0.01)
	assert.Equal(t, model.RiskLevelMedium, got.Level)
	assert.InDelta(t, 80, got.CategoryScores["ai_misalignment"], 0.01)
}

func TestAssessMissingCategoriesScoreZero(t *testing.T) {
	got := Assess(Inputs{"operational": {"f1": 100}}, nil)

	assert.InDelta(t, 25, got.OverallScore, 0.01)
	assert.Zero(t, got.CategoryScores["strategic"])
}

func TestAssessCustomWeights(t *testing.T) {
	in := Inputs{
		"ai_misalignment": {"f1": 100},
		"infrastructure":  {"f1": 0},
		"operational":     {"f1": 0},
		"strategic":       {"f1": 0},
	}
	weights := map[string]float64{
		"ai_misalignment": 0.7,
		"infrastructure":  0.1,
		"operational":     0.1,
		"strategic":       0.1,
	}

	got := Assess(in, weights)
	assert.InDelta(t, 70, got.OverallScore, 0.01)
}

func TestAssessClampsSubFactors(t *testing.T) {
	got := Assess(Inputs{"operational": {"f1": 900, "f2": -100}}, nil)
	assert.InDelta(t, 50, got.CategoryScores["operational"], 0.01)
	assert.GreaterOrEqual(t, got.OverallScore, 0.0)
	assert.LessOrEqual(t, got.OverallScore, 100.0)
}

func TestLevelBands(t *testing.T) {
	tests := []struct {
		score float64
		want  model.RiskLevel
	}{
		{0, model.RiskLevelLow},
		{34.99, model.RiskLevelLow},
		{35, model.RiskLevelMedium},
		{64.99, model.RiskLevelMedium},
		{65, model.RiskLevelHigh},
		{100, model.RiskLevelHigh},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, LevelFor(tt.score), "score %f", tt.score)
	}
}

func TestAssessSummaryMentionsElevatedCategories(t *testing.T) {
	in := Inputs{
		"ai_misalignment": {"f1": 90},
		"infrastructure":  {"f1": 50},
		"operational":     {"f1": 10},
		"strategic":       {"f1": 10},
	}

	got := Assess(in, nil)

	require.Len(t, got.Summary, 2)
	assert.Contains(t, got.Summary[0], "ai_misalignment")
	assert.Contains(t, got.Summary[0], "high")
	assert.Contains(t, got.Summary[1], "infrastructure")
}

func TestEvaluateProjectOrdering(t *testing.T) {
	risky := EvaluateProject(ProjectInputs{
		Complexity:            ComplexityHigh,
		TeamExperience:        1,
		InfraStability:        1,
		HistoricalFailureRate: 0.8,
		ScopeUncertainty:      0.9,
	})
	safe := EvaluateProject(ProjectInputs{
		Complexity:            ComplexityLow,
		TeamExperience:        5,
		InfraStability:        5,
		HistoricalFailureRate: 0.05,
		ScopeUncertainty:      0.1,
	})

	assert.Greater(t, risky.FailureProbability, safe.FailureProbability)
	assert.Greater(t, risky.FailureProbability, 0.8)
	assert.Less(t, safe.FailureProbability, 0.15)
}

func TestEvaluateProjectBandWidensWithUncertainty(t *testing.T) {
	base := ProjectInputs{
		Complexity:     ComplexityMedium,
		TeamExperience: 3,
		InfraStability: 3,
	}

	narrow := base
	narrow.ScopeUncertainty = 0.1
	wide := base
	wide.ScopeUncertainty = 0.9

	n := EvaluateProject(narrow)
	w := EvaluateProject(wide)

	assert.Greater(t, w.ProbabilityHigh-w.ProbabilityLow, n.ProbabilityHigh-n.ProbabilityLow)
	assert.GreaterOrEqual(t, n.ProbabilityLow, 0.0)
	assert.LessOrEqual(t, n.ProbabilityHigh, 1.0)
}

func TestEvaluateProjectExpectedLoss(t *testing.T) {
	got := EvaluateProject(ProjectInputs{
		Complexity:              ComplexityMedium,
		TeamExperience:          3,
		InfraStability:          3,
		HistoricalFailureRate:   0.3,
		ScopeUncertainty:        0.3,
		DirectCost:              500_000,
		IndirectCost:            300_000,
		ReputationalCost:        200_000,
		MitigationEffectiveness: 0.5,
	})

	assert.InDelta(t, got.FailureProbability*1_000_000, got.ExpectedLoss, 100)
	assert.InDelta(t, got.ExpectedLoss*0.5, got.ExpectedLossMitigated, 100)
}

func TestEvaluateProjectClampsInputs(t *testing.T) {
	got := EvaluateProject(ProjectInputs{
		Complexity:            "unknown",
		TeamExperience:        99,
		InfraStability:        -4,
		HistoricalFailureRate: 7,
		ScopeUncertainty:      -2,
	})

	assert.GreaterOrEqual(t, got.FailureProbability, 0.0)
	assert.LessOrEqual(t, got.FailureProbability, 1.0)
}
