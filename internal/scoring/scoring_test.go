package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/francesca-tabor-ai/MATURITY-OS-sub001/internal/model"
)

func TestScoreCategory(t *testing.T) {
	tests := []struct {
		name    string
		answers map[string]float64
		want    float64
	}{
		{"empty category", nil, 0},
		{"single answer", map[string]float64{"q1": 70}, 70},
		{"mean of answers", map[string]float64{"q1": 80, "q2": 60}, 70},
		{"clamps above 100", map[string]float64{"q1": 150}, 100},
		{"clamps below 0", map[string]float64{"q1": -20, "q2": 40}, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scoreCategory(tt.answers)
			assert.InDelta(t, tt.want, got.Score, 0.01)
		})
	}
}

func TestCalculateDataEqualWeights(t *testing.T) {
	inputs := model.AuditInputs{
		"collection":    {"q1": 80, "q2": 80},
		"storage":       {"q1": 60},
		"integration":   {"q1": 40},
		"governance":    {"q1": 50},
		"accessibility": {"q1": 70},
	}

	got := CalculateData(inputs, nil)

	assert.InDelta(t, 60, got.CompositeScore, 0.01)
	assert.Equal(t, 4, got.MaturityStage) // 60 falls in the 50-65 band
	assert.InDelta(t, 80, got.CategoryScores["collection"].Score, 0.01)
	require.NotNil(t, got.ConfidenceScore)
	assert.InDelta(t, 1.0, *got.ConfidenceScore, 0.01)
}

func TestCalculateDataMissingCategories(t *testing.T) {
	got := CalculateData(model.AuditInputs{"collection": {"q1": 100}}, nil)

	assert.InDelta(t, 20, got.CompositeScore, 0.01)
	assert.Equal(t, 2, got.MaturityStage)
	assert.Zero(t, got.CategoryScores["storage"].Score)
	require.NotNil(t, got.ConfidenceScore)
	assert.InDelta(t, 0.2, *got.ConfidenceScore, 0.01)
}

func TestCalculateDataEmpty(t *testing.T) {
	got := CalculateData(model.AuditInputs{}, nil)

	assert.Zero(t, got.CompositeScore)
	assert.Equal(t, 1, got.MaturityStage)
	require.NotNil(t, got.ConfidenceScore)
	assert.Zero(t, *got.ConfidenceScore)
}

func TestDataStageMonotonic(t *testing.T) {
	prev := 0
	for score := 0.0; score <= 100; score++ {
		stage := DataStageFor(score)
		assert.GreaterOrEqual(t, stage, prev, "stage must not decrease at %f", score)
		assert.GreaterOrEqual(t, stage, 1)
		assert.LessOrEqual(t, stage, DataMaxStage)
		prev = stage
	}
	assert.Equal(t, DataMaxStage, DataStageFor(100))
}

func TestAIStageMonotonic(t *testing.T) {
	prev := 0
	for score := 0.0; score <= 100; score++ {
		stage := AIStageFor(score)
		assert.GreaterOrEqual(t, stage, prev)
		assert.GreaterOrEqual(t, stage, 1)
		assert.LessOrEqual(t, stage, AIMaxStage)
		prev = stage
	}
	assert.Equal(t, AIMaxStage, AIStageFor(100))
}

func TestCalculateAI(t *testing.T) {
	inputs := model.AuditInputs{
		"strategy":       {"q1": 70},
		"data_readiness": {"q1": 70},
		"talent":         {"q1": 70},
		"adoption":       {"q1": 70},
		"automation":     {"q1": 70},
		"governance":     {"q1": 70},
	}

	got := CalculateAI(inputs, nil)

	assert.InDelta(t, 70, got.CompositeScore, 0.01)
	assert.Equal(t, 6, got.MaturityStage)
	assert.Nil(t, got.ConfidenceScore)
}

func TestCalculateAIOutOfRangeClamped(t *testing.T) {
	inputs := model.AuditInputs{
		"strategy": {"q1": 500, "q2": -300},
	}

	got := CalculateAI(inputs, nil)

	assert.InDelta(t, 50, got.CategoryScores["strategy"].Score, 0.01)
	assert.GreaterOrEqual(t, got.CompositeScore, 0.0)
	assert.LessOrEqual(t, got.CompositeScore, 100.0)
}

func TestScoresAlwaysBounded(t *testing.T) {
	inputs := model.AuditInputs{
		"collection":    {"q1": 1e9},
		"storage":       {"q1": -1e9},
		"integration":   {"q1": 12345},
		"governance":    {"q1": 99},
		"accessibility": {"q1": 100.0001},
	}

	got := CalculateData(inputs, nil)

	for cat, cs := range got.CategoryScores {
		assert.GreaterOrEqual(t, cs.Score, 0.0, cat)
		assert.LessOrEqual(t, cs.Score, 100.0, cat)
	}
	assert.GreaterOrEqual(t, got.CompositeScore, 0.0)
	assert.LessOrEqual(t, got.CompositeScore, 100.0)
}

func TestValidateWeights(t *testing.T) {
	t.Run("defaults are valid", func(t *testing.T) {
		assert.NoError(t, ValidateWeights(DefaultDataWeights(), DataCategories))
		assert.NoError(t, ValidateWeights(DefaultAIWeights(), AICategories))
	})

	t.Run("rejects bad sum", func(t *testing.T) {
		w := DefaultDataWeights()
		w["collection"] = 0.5
		assert.Error(t, ValidateWeights(w, DataCategories))
	})

	t.Run("rejects negative weight", func(t *testing.T) {
		w := DefaultDataWeights()
		w["collection"] = -0.2
		w["storage"] = 0.6
		assert.Error(t, ValidateWeights(w, DataCategories))
	})

	t.Run("rejects missing category", func(t *testing.T) {
		w := DefaultDataWeights()
		delete(w, "governance")
		w["collection"] = 0.4
		assert.Error(t, ValidateWeights(w, DataCategories))
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		w := DefaultDataWeights()
		w["collection"] = 0.1
		w["blockchain"] = 0.1
		assert.Error(t, ValidateWeights(w, DataCategories))
	})
}
