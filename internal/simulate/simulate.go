// Package simulate projects multi-year trajectories of maturity, revenue,
// profit, valuation, competitive position, and risk under scenario
// parameters. The simulator is a deterministic discrete-time loop: identical
// parameters always reproduce identical yearly series.
package simulate

import (
	"github.com/francesca-tabor-ai/MATURITY-OS-sub001/internal/benchmark"
	"github.com/francesca-tabor-ai/MATURITY-OS-sub001/internal/stats"
)

// Default horizon bounds; horizons outside this range are clamped.
const (
	minHorizonYears = 1
	maxHorizonYears = 10
)

// Scenario names a set of simulation parameters.
type Scenario struct {
	Name             string  `json:"name"`
	HorizonYears     int     `json:"horizon_years"`
	DataGrowthRate   float64 `json:"data_growth_rate"`   // maturity points per year at zero maturity
	AIGrowthRate     float64 `json:"ai_growth_rate"`     // maturity points per year at zero maturity
	RevenueGrowthPct float64 `json:"revenue_growth_pct"` // base annual revenue growth
	AnnualInvestment float64 `json:"annual_investment"`
}

// Context is the organisation's starting state.
type Context struct {
	DataScore        float64             `json:"data_score"`
	AIScore          float64             `json:"ai_score"`
	Revenue          float64             `json:"revenue"`
	ProfitMarginPct  float64             `json:"profit_margin_pct"`
	CompetitiveScore float64             `json:"competitive_score"`
	RiskScore        float64             `json:"risk_score"`
	Benchmark        benchmark.Benchmark `json:"benchmark"`
	Smoothing        float64             `json:"smoothing"` // 0-1 trajectory smoothing factor
}

// YearPoint is the simulated state at the end of one year.
type YearPoint struct {
	Year             int     `json:"year"`
	DataMaturity     float64 `json:"data_maturity"`
	AIMaturity       float64 `json:"ai_maturity"`
	Revenue          float64 `json:"revenue"`
	Profit           float64 `json:"profit"`
	Valuation        float64 `json:"valuation"`
	CompetitiveScore float64 `json:"competitive_score"`
	RiskScore        float64 `json:"risk_score"`
}

// Outcome is the full simulated trajectory plus end-state summaries.
type Outcome struct {
	ScenarioName string      `json:"scenario_name"`
	Parameters   Scenario    `json:"parameters"`
	Yearly       []YearPoint `json:"yearly"`

	EndDataMaturity float64 `json:"end_data_maturity"`
	EndAIMaturity   float64 `json:"end_ai_maturity"`
	EndRevenue      float64 `json:"end_revenue"`
	EndValuation    float64 `json:"end_valuation"`
	TotalProfit     float64 `json:"total_profit_over_horizon"`
	AvgRisk         float64 `json:"avg_risk_over_horizon"`
}

// Run executes one scenario. Maturity growth has diminishing returns as the
// score approaches 100; competitive and risk scores follow the maturity
// trajectory as smoothed series.
func Run(scenario Scenario, ctx Context) Outcome {
	horizon := scenario.HorizonYears
	if horizon < minHorizonYears {
		horizon = minHorizonYears
	}
	if horizon > maxHorizonYears {
		horizon = maxHorizonYears
	}

	data := stats.ClampScore(ctx.DataScore)
	ai := stats.ClampScore(ctx.AIScore)
	revenue := ctx.Revenue
	competitive := stats.ClampScore(ctx.CompetitiveScore)
	risk := stats.ClampScore(ctx.RiskScore)
	smoothing := stats.Clamp01(ctx.Smoothing)
	bm := ctx.Benchmark

	outcome := Outcome{
		ScenarioName: scenario.Name,
		Parameters:   scenario,
		Yearly:       make([]YearPoint, 0, horizon),
	}

	var totalProfit, totalRisk float64
	for year := 1; year <= horizon; year++ {
		// Diminishing returns: growth shrinks as maturity approaches 100.
		data = stats.ClampScore(data + scenario.DataGrowthRate*(100-data)/100)
		ai = stats.ClampScore(ai + scenario.AIGrowthRate*(100-ai)/100)
		maturity := (data + ai) / 2

		// Revenue growth accelerates with maturity.
		growthPct := scenario.RevenueGrowthPct * (0.5 + maturity/100)
		revenue *= 1 + growthPct/100

		// Margin expands with maturity toward the benchmark efficiency gain.
		margin := ctx.ProfitMarginPct + bm.EfficiencyGain*maturity/100*0.5
		profit := revenue*margin/100 - scenario.AnnualInvestment

		valuation := ValuationOf(profit, maturity, bm)

		// Competitive and risk scores trail the maturity trajectory.
		competitive += smoothing * (maturity - competitive)
		risk += smoothing * ((100 - maturity) - risk)

		totalProfit += profit
		totalRisk += risk

		outcome.Yearly = append(outcome.Yearly, YearPoint{
			Year:             year,
			DataMaturity:     stats.Round2(data),
			AIMaturity:       stats.Round2(ai),
			Revenue:          stats.Round2(revenue),
			Profit:           stats.Round2(profit),
			Valuation:        stats.Round2(valuation),
			CompetitiveScore: stats.Round2(competitive),
			RiskScore:        stats.Round2(risk),
		})
	}

	last := outcome.Yearly[len(outcome.Yearly)-1]
	outcome.EndDataMaturity = last.DataMaturity
	outcome.EndAIMaturity = last.AIMaturity
	outcome.EndRevenue = last.Revenue
	outcome.EndValuation = last.Valuation
	outcome.TotalProfit = stats.Round2(totalProfit)
	outcome.AvgRisk = stats.Round2(totalRisk / float64(horizon))
	return outcome
}

// ValuationOf derives an enterprise valuation from profit and maturity: the
// benchmark profit multiple, scaled between 0.8x and 1.2x by maturity.
func ValuationOf(profit, maturity float64, bm benchmark.Benchmark) float64 {
	if profit <= 0 {
		return 0
	}
	return profit * bm.ValuationMultiple * (0.8 + 0.4*stats.ClampScore(maturity)/100)
}
