package simulate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/francesca-tabor-ai/MATURITY-OS-sub001/internal/benchmark"
	"github.com/francesca-tabor-ai/MATURITY-OS-sub001/internal/model"
)

func testContext() Context {
	return Context{
		DataScore:        40,
		AIScore:          30,
		Revenue:          5_000_000,
		ProfitMarginPct:  12,
		CompetitiveScore: 45,
		RiskScore:        55,
		Benchmark:        benchmark.Default(),
		Smoothing:        0.4,
	}
}

func TestRunIsDeterministic(t *testing.T) {
	scenario := Scenario{
		Name:             "aggressive",
		HorizonYears:     5,
		DataGrowthRate:   12,
		AIGrowthRate:     15,
		RevenueGrowthPct: 6,
		AnnualInvestment: 250_000,
	}
	ctx := testContext()

	first := Run(scenario, ctx)
	second := Run(scenario, ctx)
	assert.Equal(t, first, second)
}

func TestRunTrajectoryShape(t *testing.T) {
	scenario := Scenario{
		Name:             "steady",
		HorizonYears:     5,
		DataGrowthRate:   10,
		AIGrowthRate:     10,
		RevenueGrowthPct: 5,
	}
	out := Run(scenario, testContext())

	require.Len(t, out.Yearly, 5)
	for i := 1; i < len(out.Yearly); i++ {
		prev, cur := out.Yearly[i-1], out.Yearly[i]
		assert.Greater(t, cur.DataMaturity, prev.DataMaturity, "year %d", cur.Year)
		assert.Greater(t, cur.AIMaturity, prev.AIMaturity, "year %d", cur.Year)
		assert.Greater(t, cur.Revenue, prev.Revenue, "year %d", cur.Year)
		assert.Less(t, cur.RiskScore, prev.RiskScore, "risk should fall as maturity rises")
	}
	assert.Equal(t, out.Yearly[4].Valuation, out.EndValuation)
	assert.LessOrEqual(t, out.EndDataMaturity, 100.0)
}

func TestRunClampsHorizon(t *testing.T) {
	out := Run(Scenario{Name: "long", HorizonYears: 50, DataGrowthRate: 5}, testContext())
	assert.Len(t, out.Yearly, maxHorizonYears)

	out = Run(Scenario{Name: "zero", HorizonYears: 0, DataGrowthRate: 5}, testContext())
	assert.Len(t, out.Yearly, 1)
}

func TestRunMaturitySaturates(t *testing.T) {
	ctx := testContext()
	ctx.DataScore = 99
	ctx.AIScore = 99
	out := Run(Scenario{Name: "cap", HorizonYears: 10, DataGrowthRate: 50, AIGrowthRate: 50}, ctx)
	for _, p := range out.Yearly {
		assert.LessOrEqual(t, p.DataMaturity, 100.0)
		assert.LessOrEqual(t, p.AIMaturity, 100.0)
	}
}

func TestRunNegativeProfitZeroValuation(t *testing.T) {
	ctx := testContext()
	ctx.Revenue = 100_000
	out := Run(Scenario{
		Name:             "overinvested",
		HorizonYears:     2,
		AnnualInvestment: 1_000_000,
	}, ctx)
	for _, p := range out.Yearly {
		assert.Negative(t, p.Profit)
		assert.Zero(t, p.Valuation)
	}
}

func TestCompareRanksByValuation(t *testing.T) {
	ctx := testContext()
	slow := Run(Scenario{Name: "slow", HorizonYears: 5, DataGrowthRate: 2, AIGrowthRate: 2, RevenueGrowthPct: 2}, ctx)
	fast := Run(Scenario{Name: "fast", HorizonYears: 5, DataGrowthRate: 15, AIGrowthRate: 15, RevenueGrowthPct: 8}, ctx)

	cmp := Compare([]Outcome{slow, fast})
	require.Len(t, cmp.Ranked, 2)
	assert.Equal(t, "fast", cmp.Best)
	assert.Equal(t, 1, cmp.Ranked[0].Rank)
	assert.Equal(t, "fast", cmp.Ranked[0].Outcome.ScenarioName)
	assert.Equal(t, 2, cmp.Ranked[1].Rank)
}

func TestCompareTieBreaks(t *testing.T) {
	a := Outcome{ScenarioName: "a", EndValuation: 100, TotalProfit: 50, AvgRisk: 40}
	b := Outcome{ScenarioName: "b", EndValuation: 100, TotalProfit: 60, AvgRisk: 40}
	c := Outcome{ScenarioName: "c", EndValuation: 100, TotalProfit: 60, AvgRisk: 30}
	d := Outcome{ScenarioName: "d", EndValuation: 100, TotalProfit: 60, AvgRisk: 30}

	cmp := Compare([]Outcome{a, b, c, d})
	names := make([]string, len(cmp.Ranked))
	for i, r := range cmp.Ranked {
		names[i] = r.Outcome.ScenarioName
	}
	// Profit beats a; lower risk beats b; c and d tie so input order holds.
	assert.Equal(t, []string{"c", "d", "b", "a"}, names)
}

func TestCompareEmpty(t *testing.T) {
	cmp := Compare(nil)
	assert.Empty(t, cmp.Ranked)
	assert.Empty(t, cmp.Best)
}

func TestValuationUplift(t *testing.T) {
	bm := benchmark.Default()
	adj := ValuationUplift(
		model.ScorePair{DataScore: 30, AIScore: 30},
		model.ScorePair{DataScore: 70, AIScore: 70},
		1_000_000,
		bm,
	)
	assert.Greater(t, adj.ProjectedValuation, adj.CurrentValuation)
	assert.InDelta(t, adj.ProjectedValuation-adj.CurrentValuation, adj.Uplift, 0.01)
	assert.Positive(t, adj.UpliftPct)
}

func TestValuationUpliftZeroProfit(t *testing.T) {
	adj := ValuationUplift(
		model.ScorePair{DataScore: 30, AIScore: 30},
		model.ScorePair{DataScore: 70, AIScore: 70},
		0,
		benchmark.Default(),
	)
	assert.Zero(t, adj.CurrentValuation)
	assert.Zero(t, adj.ProjectedValuation)
	assert.Zero(t, adj.UpliftPct)
}
