// Package invest converts maturity gaps into required investment and
// computes ROI and payback against projected benefits.
//
// Zero-denominator metrics (ROI with no investment, payback with no
// benefits) are reported as nil: an undefined metric is neither a zero nor
// an error.
package invest

import (
	"github.com/francesca-tabor-ai/MATURITY-OS-sub001/internal/model"
	"github.com/francesca-tabor-ai/MATURITY-OS-sub001/internal/stats"
)

// Requirement is the investment needed to close a maturity gap.
type Requirement struct {
	DataInvestment  float64 `json:"required_data_investment"`
	AIInvestment    float64 `json:"required_ai_investment"`
	TotalInvestment float64 `json:"total_investment"`
}

// ROIMetrics holds the derived return metrics. Nil fields mean the metric is
// undefined for the given denominators.
type ROIMetrics struct {
	ROIPct        *float64 `json:"expected_roi_pct"`
	ROIMultiplier *float64 `json:"expected_roi_multiplier"`
}

// Payback holds the payback horizon. Nil fields mean annual benefits were
// zero, leaving the horizon undefined.
type Payback struct {
	Years  *float64 `json:"payback_period_years"`
	Months *float64 `json:"payback_period_months"`
}

// Result is the combined ROI & investment engine output.
type Result struct {
	Requirement
	ROIMetrics
	Payback
}

// RequiredInvestment prices the per-dimension gap between current and target
// scores. Data and AI carry separate cost-per-point constants. The single
// hard precondition of the engine lives here: each target must be at or
// above its current score.
func RequiredInvestment(current, target model.ScorePair, dataCostPerPoint, aiCostPerPoint float64) (Requirement, error) {
	cur := model.ScorePair{
		DataScore: stats.ClampScore(current.DataScore),
		AIScore:   stats.ClampScore(current.AIScore),
	}
	tgt := model.ScorePair{
		DataScore: stats.ClampScore(target.DataScore),
		AIScore:   stats.ClampScore(target.AIScore),
	}

	if err := ValidateOrdering(cur, tgt); err != nil {
		return Requirement{}, err
	}

	dataInvestment := (tgt.DataScore - cur.DataScore) * dataCostPerPoint
	aiInvestment := (tgt.AIScore - cur.AIScore) * aiCostPerPoint

	return Requirement{
		DataInvestment:  stats.Round2(dataInvestment),
		AIInvestment:    stats.Round2(aiInvestment),
		TotalInvestment: stats.Round2(dataInvestment + aiInvestment),
	}, nil
}

// ExpectedROI computes ROI percentage and multiplier. A zero investment
// leaves both undefined (nil).
func ExpectedROI(benefits, investment float64) ROIMetrics {
	if investment == 0 {
		return ROIMetrics{}
	}
	multiplier := benefits / investment
	pct := (multiplier - 1) * 100
	return ROIMetrics{
		ROIPct:        ptr(stats.Round2(pct)),
		ROIMultiplier: ptr(stats.Round2(multiplier)),
	}
}

// PaybackPeriod computes investment / annual benefits in years and months.
// Zero annual benefits leave the horizon undefined (nil).
func PaybackPeriod(investment, annualBenefits float64) Payback {
	if annualBenefits == 0 {
		return Payback{}
	}
	years := investment / annualBenefits
	return Payback{
		Years:  ptr(stats.Round2(years)),
		Months: ptr(stats.Round2(years * 12)),
	}
}

// Calculate runs the full ROI & investment flow: investment requirement,
// ROI against expected annual benefits, and payback horizon.
func Calculate(current, target model.ScorePair, annualBenefits, dataCostPerPoint, aiCostPerPoint float64) (Result, error) {
	req, err := RequiredInvestment(current, target, dataCostPerPoint, aiCostPerPoint)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Requirement: req,
		ROIMetrics:  ExpectedROI(annualBenefits, req.TotalInvestment),
		Payback:     PaybackPeriod(req.TotalInvestment, annualBenefits),
	}, nil
}

func ptr(v float64) *float64 { return &v }
