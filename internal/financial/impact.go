// Package financial projects revenue upside, margin expansion, and cost
// reduction from maturity scores and an industry benchmark.
package financial

import (
	"github.com/francesca-tabor-ai/MATURITY-OS-sub001/internal/benchmark"
	"github.com/francesca-tabor-ai/MATURITY-OS-sub001/internal/model"
	"github.com/francesca-tabor-ai/MATURITY-OS-sub001/internal/stats"
)

// Efficiency multipliers for cost reduction. Operational spend compresses
// faster than headcount-derived cost.
const (
	operationalReductionRate = 0.12
	headcountReductionRate   = 0.04
)

// Inputs carries the organisation's financial profile alongside its maturity
// scores. Zero-valued optional fields mean "not supplied".
type Inputs struct {
	Revenue         float64 `json:"revenue"`
	ProfitMarginPct float64 `json:"profit_margin_pct"`
	Headcount       int     `json:"headcount"`
	OperationalCost float64 `json:"operational_cost"`
	DataScore       float64 `json:"data_score"`
	AIScore         float64 `json:"ai_score"`
}

// ImpactResult is the projected financial impact of closing the maturity gap.
type ImpactResult struct {
	RevenueUpside        float64            `json:"revenue_upside"`
	MarginExpansionPct   float64            `json:"profit_margin_expansion_pct"`
	MarginExpansionValue float64            `json:"profit_margin_expansion_value"`
	CostReduction        float64            `json:"cost_reduction"`
	Details              map[string]float64 `json:"details"`
}

// EstimateImpact projects the upside of maturing to full capability against
// the given industry benchmark. All outputs are floored at zero; the
// projection never produces a negative impact.
func EstimateImpact(in Inputs, bm benchmark.Benchmark) ImpactResult {
	scores := model.ScorePair{
		DataScore: stats.ClampScore(in.DataScore),
		AIScore:   stats.ClampScore(in.AIScore),
	}
	maturity := scores.Avg()
	headroom := (100 - maturity) / 100

	// Revenue upside: the benchmark uplift rate applied to the unrealized
	// share of maturity.
	revenueUpside := in.Revenue * bm.RevenueUpliftRate * headroom
	if revenueUpside < 0 {
		revenueUpside = 0
	}

	// Margin expansion: proportional to the shortfall against the benchmark
	// average maturity, capped at the benchmark's efficiency gain ceiling.
	bmAvg := (bm.AvgDataScore + bm.AvgAIScore) / 2
	shortfall := bmAvg - maturity
	if shortfall < 0 {
		shortfall = 0
	}
	marginPct := bm.EfficiencyGain * stats.Clamp01(shortfall/50)
	marginValue := in.Revenue * marginPct / 100
	if marginValue < 0 {
		marginValue = 0
	}

	// Cost reduction: operational cost when supplied, otherwise a
	// headcount-derived baseline; maturity headroom scales both.
	var costReduction float64
	switch {
	case in.OperationalCost > 0:
		costReduction = in.OperationalCost * operationalReductionRate * headroom
	case in.Headcount > 0:
		costReduction = float64(in.Headcount) * bm.CostPerEmployee * headcountReductionRate * headroom
	}
	if costReduction < 0 {
		costReduction = 0
	}

	return ImpactResult{
		RevenueUpside:        stats.Round2(revenueUpside),
		MarginExpansionPct:   stats.Round2(marginPct),
		MarginExpansionValue: stats.Round2(marginValue),
		CostReduction:        stats.Round2(costReduction),
		Details: map[string]float64{
			"maturity_avg":        stats.Round2(maturity),
			"maturity_headroom":   stats.Round2(headroom),
			"benchmark_avg":       stats.Round2(bmAvg),
			"benchmark_shortfall": stats.Round2(shortfall),
			"uplift_rate":         bm.RevenueUpliftRate,
		},
	}
}
