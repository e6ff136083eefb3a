package scoring

import (
	"github.com/francesca-tabor-ai/MATURITY-OS-sub001/internal/model"
)

// AICategories is the canonical set of AI-maturity categories, in reporting
// order.
var AICategories = []string{
	"strategy", "data_readiness", "talent", "adoption", "automation", "governance",
}

// AIMaxStage is the highest AI maturity stage.
const AIMaxStage = 7

// aiStageBands maps composite score thresholds to the seven AI maturity
// stages.
var aiStageBands = []stageBand{
	{0, 1},
	{15, 2},
	{30, 3},
	{45, 4},
	{60, 5},
	{70, 6},
	{85, 7},
}

// DefaultAIWeights returns the default category weight vector for the AI
// maturity score. Strategy and data readiness carry slightly more weight than
// the execution categories. Weights sum to 1.
func DefaultAIWeights() map[string]float64 {
	return map[string]float64{
		"strategy":       0.20,
		"data_readiness": 0.20,
		"talent":         0.15,
		"adoption":       0.15,
		"automation":     0.15,
		"governance":     0.15,
	}
}

// CalculateAI scores an AI-maturity audit. Weights may be nil, in which case
// the defaults apply. The AI variant carries no confidence score.
func CalculateAI(inputs model.AuditInputs, weights map[string]float64) model.MaturityResult {
	if len(weights) == 0 {
		weights = DefaultAIWeights()
	}

	categoryScores := make(map[string]model.CategoryScore, len(AICategories))
	for _, cat := range AICategories {
		categoryScores[cat] = scoreCategory(inputs[cat])
	}

	score := composite(categoryScores, weights)

	return model.MaturityResult{
		CategoryScores: categoryScores,
		MaturityStage:  stageFor(score, aiStageBands),
		CompositeScore: score,
	}
}

// AIStageFor exposes the stage band lookup for a bare composite score.
func AIStageFor(compositeScore float64) int {
	return stageFor(compositeScore, aiStageBands)
}
