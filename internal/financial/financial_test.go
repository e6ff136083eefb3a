package financial

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/francesca-tabor-ai/MATURITY-OS-sub001/internal/benchmark"
)

func TestEstimateImpactHeadroomScalesUpside(t *testing.T) {
	bm := benchmark.Default()

	immature := EstimateImpact(Inputs{Revenue: 10_000_000, DataScore: 10, AIScore: 10}, bm)
	mature := EstimateImpact(Inputs{Revenue: 10_000_000, DataScore: 90, AIScore: 90}, bm)

	assert.Greater(t, immature.RevenueUpside, mature.RevenueUpside)
	// Full maturity leaves no upside.
	full := EstimateImpact(Inputs{Revenue: 10_000_000, DataScore: 100, AIScore: 100}, bm)
	assert.Zero(t, full.RevenueUpside)
}

func TestEstimateImpactNeverNegative(t *testing.T) {
	bm := benchmark.Default()
	tests := []struct {
		name string
		in   Inputs
	}{
		{"zero revenue", Inputs{DataScore: 50, AIScore: 50}},
		{"out of range scores", Inputs{Revenue: 1_000_000, DataScore: 900, AIScore: -50}},
		{"above benchmark maturity", Inputs{Revenue: 1_000_000, DataScore: 95, AIScore: 95}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimateImpact(tt.in, bm)
			assert.GreaterOrEqual(t, got.RevenueUpside, 0.0)
			assert.GreaterOrEqual(t, got.MarginExpansionPct, 0.0)
			assert.GreaterOrEqual(t, got.MarginExpansionValue, 0.0)
			assert.GreaterOrEqual(t, got.CostReduction, 0.0)
		})
	}
}

func TestEstimateImpactMarginValue(t *testing.T) {
	bm := benchmark.Default()
	got := EstimateImpact(Inputs{Revenue: 2_000_000, DataScore: 20, AIScore: 20}, bm)

	// value = revenue * pct / 100, by definition.
	assert.InDelta(t, 2_000_000*got.MarginExpansionPct/100, got.MarginExpansionValue, 0.5)
	assert.LessOrEqual(t, got.MarginExpansionPct, bm.EfficiencyGain)
}

func TestEstimateImpactCostBasis(t *testing.T) {
	bm := benchmark.Default()

	t.Run("operational cost preferred", func(t *testing.T) {
		got := EstimateImpact(Inputs{Revenue: 1, OperationalCost: 1_000_000, Headcount: 500, DataScore: 50, AIScore: 50}, bm)
		assert.InDelta(t, 1_000_000*operationalReductionRate*0.5, got.CostReduction, 0.5)
	})

	t.Run("headcount fallback", func(t *testing.T) {
		got := EstimateImpact(Inputs{Revenue: 1, Headcount: 100, DataScore: 50, AIScore: 50}, bm)
		assert.InDelta(t, 100*bm.CostPerEmployee*headcountReductionRate*0.5, got.CostReduction, 0.5)
	})

	t.Run("neither yields zero", func(t *testing.T) {
		got := EstimateImpact(Inputs{Revenue: 1, DataScore: 50, AIScore: 50}, bm)
		assert.Zero(t, got.CostReduction)
	})
}

func TestRunModelComplete(t *testing.T) {
	got := RunModel(Inputs{
		Revenue:         5_000_000,
		ProfitMarginPct: 15,
		OperationalCost: 2_000_000,
		DataScore:       40,
		AIScore:         30,
	}, benchmark.Default())

	require.NotNil(t, got.Revenue)
	require.NotNil(t, got.Cost)
	require.NotNil(t, got.Profit)
	assert.Empty(t, got.Errors)

	assert.InDelta(t, got.Revenue.Baseline+got.Revenue.Upside, got.Revenue.Projected, 0.01)
	assert.Equal(t, "operational_cost", got.Cost.Basis)
	assert.Greater(t, got.Profit.ProjectedMarginPct, got.Profit.BaselineMarginPct)
	assert.InDelta(t, got.Summary.TotalUpside+got.Summary.TotalReduction, got.Summary.NetAnnualImpact, 0.01)
}

func TestRunModelPartial(t *testing.T) {
	// No revenue: the revenue and profit sub-models cannot run, but the call
	// still returns a report with diagnostics.
	got := RunModel(Inputs{Headcount: 50, DataScore: 40, AIScore: 30}, benchmark.Default())

	assert.Nil(t, got.Revenue)
	assert.Nil(t, got.Profit)
	require.NotNil(t, got.Cost)
	assert.Equal(t, "headcount", got.Cost.Basis)
	assert.Len(t, got.Errors, 2)
}

func TestRunModelEmptyInputs(t *testing.T) {
	got := RunModel(Inputs{}, benchmark.Default())

	assert.Nil(t, got.Revenue)
	assert.Nil(t, got.Cost)
	assert.Nil(t, got.Profit)
	assert.Len(t, got.Errors, 3)
	assert.Zero(t, got.Summary.NetAnnualImpact)
}
