package scoring

import (
	"github.com/francesca-tabor-ai/MATURITY-OS-sub001/internal/model"
)

// DataCategories is the canonical set of data-maturity categories, in
// reporting order.
var DataCategories = []string{
	"collection", "storage", "integration", "governance", "accessibility",
}

// DataMaxStage is the highest data maturity stage.
const DataMaxStage = 6

// dataStageBands maps composite index thresholds to the six data maturity
// stages. Bands are contiguous and cover [0,100].
var dataStageBands = []stageBand{
	{0, 1},
	{20, 2},
	{35, 3},
	{50, 4},
	{65, 5},
	{80, 6},
}

// DefaultDataWeights returns the default category weight vector for the data
// maturity index. Weights sum to 1.
func DefaultDataWeights() map[string]float64 {
	return map[string]float64{
		"collection":    0.2,
		"storage":       0.2,
		"integration":   0.2,
		"governance":    0.2,
		"accessibility": 0.2,
	}
}

// CalculateData scores a data-maturity audit. Weights may be nil, in which
// case the defaults apply. The result's confidence score reflects input
// completeness (fraction of non-default sub-answers).
func CalculateData(inputs model.AuditInputs, weights map[string]float64) model.MaturityResult {
	if len(weights) == 0 {
		weights = DefaultDataWeights()
	}

	categoryScores := make(map[string]model.CategoryScore, len(DataCategories))
	for _, cat := range DataCategories {
		categoryScores[cat] = scoreCategory(inputs[cat])
	}

	idx := composite(categoryScores, weights)
	conf := confidence(inputs, DataCategories)

	return model.MaturityResult{
		CategoryScores:  categoryScores,
		MaturityStage:   stageFor(idx, dataStageBands),
		CompositeScore:  idx,
		ConfidenceScore: &conf,
	}
}

// DataStageFor exposes the stage band lookup for callers that only hold a
// composite index (e.g., gap targets derived from a stored result).
func DataStageFor(compositeScore float64) int {
	return stageFor(compositeScore, dataStageBands)
}
