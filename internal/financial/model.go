package financial

import (
	"github.com/francesca-tabor-ai/MATURITY-OS-sub001/internal/benchmark"
	"github.com/francesca-tabor-ai/MATURITY-OS-sub001/internal/stats"
)

// RevenueProjection is the revenue sub-model output.
type RevenueProjection struct {
	Baseline  float64 `json:"baseline"`
	Upside    float64 `json:"upside"`
	Projected float64 `json:"projected"`
}

// CostProjection is the cost sub-model output.
type CostProjection struct {
	Baseline  float64 `json:"baseline"`
	Reduction float64 `json:"reduction"`
	Projected float64 `json:"projected"`
	Basis     string  `json:"basis"` // "operational_cost" or "headcount"
}

// ProfitProjection is the profit sub-model output.
type ProfitProjection struct {
	BaselineMarginPct  float64 `json:"baseline_margin_pct"`
	ProjectedMarginPct float64 `json:"projected_margin_pct"`
	BaselineProfit     float64 `json:"baseline_profit"`
	ProjectedProfit    float64 `json:"projected_profit"`
}

// ModelSummary aggregates the sub-model outputs that ran.
type ModelSummary struct {
	TotalUpside     float64 `json:"total_upside"`
	TotalReduction  float64 `json:"total_reduction"`
	NetAnnualImpact float64 `json:"net_annual_impact"`
}

// ModelReport is the financial model orchestrator output. Sub-models that
// could not run leave their slot nil and append a diagnostic to Errors; the
// report itself always returns.
type ModelReport struct {
	Revenue *RevenueProjection `json:"revenue,omitempty"`
	Cost    *CostProjection    `json:"cost,omitempty"`
	Profit  *ProfitProjection  `json:"profit,omitempty"`
	Summary ModelSummary       `json:"summary"`
	Errors  []string           `json:"errors,omitempty"`
}

// RunModel composes the revenue, cost, and profit sub-calculations. Partial
// inputs produce partial reports with diagnostics rather than a failure.
func RunModel(in Inputs, bm benchmark.Benchmark) ModelReport {
	impact := EstimateImpact(in, bm)

	var report ModelReport

	if in.Revenue > 0 {
		report.Revenue = &RevenueProjection{
			Baseline:  in.Revenue,
			Upside:    impact.RevenueUpside,
			Projected: stats.Round2(in.Revenue + impact.RevenueUpside),
		}
	} else {
		report.Errors = append(report.Errors, "revenue projection skipped: revenue not supplied")
	}

	switch {
	case in.OperationalCost > 0:
		report.Cost = &CostProjection{
			Baseline:  in.OperationalCost,
			Reduction: impact.CostReduction,
			Projected: stats.Round2(in.OperationalCost - impact.CostReduction),
			Basis:     "operational_cost",
		}
	case in.Headcount > 0:
		baseline := float64(in.Headcount) * bm.CostPerEmployee
		report.Cost = &CostProjection{
			Baseline:  stats.Round2(baseline),
			Reduction: impact.CostReduction,
			Projected: stats.Round2(baseline - impact.CostReduction),
			Basis:     "headcount",
		}
	default:
		report.Errors = append(report.Errors, "cost projection skipped: neither operational cost nor headcount supplied")
	}

	if in.Revenue > 0 && in.ProfitMarginPct > 0 {
		baselineProfit := in.Revenue * in.ProfitMarginPct / 100
		projectedMargin := in.ProfitMarginPct + impact.MarginExpansionPct
		report.Profit = &ProfitProjection{
			BaselineMarginPct:  in.ProfitMarginPct,
			ProjectedMarginPct: stats.Round2(projectedMargin),
			BaselineProfit:     stats.Round2(baselineProfit),
			ProjectedProfit:    stats.Round2(in.Revenue * projectedMargin / 100),
		}
	} else {
		report.Errors = append(report.Errors, "profit projection skipped: revenue and profit margin required")
	}

	report.Summary = ModelSummary{
		TotalUpside:     stats.Round2(impact.RevenueUpside + impact.MarginExpansionValue),
		TotalReduction:  impact.CostReduction,
		NetAnnualImpact: stats.Round2(impact.RevenueUpside + impact.MarginExpansionValue + impact.CostReduction),
	}

	return report
}
