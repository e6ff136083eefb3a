package risk

import (
	"math"
	"strings"

	"github.com/francesca-tabor-ai/MATURITY-OS-sub001/internal/stats"
)

// ComplexityTier buckets initiative complexity.
type ComplexityTier string

const (
	ComplexityLow    ComplexityTier = "low"
	ComplexityMedium ComplexityTier = "medium"
	ComplexityHigh   ComplexityTier = "high"
)

// ProjectInputs describes a single transformation initiative. Scale inputs
// outside their ranges are clamped, never rejected.
type ProjectInputs struct {
	Complexity            ComplexityTier `json:"complexity"`
	TeamExperience        float64        `json:"team_experience"`         // 1-5
	InfraStability        float64        `json:"infra_stability"`         // 1-5
	HistoricalFailureRate float64        `json:"historical_failure_rate"` // 0-1
	ScopeUncertainty      float64        `json:"scope_uncertainty"`       // 0-1

	DirectCost       float64 `json:"direct_cost"`
	IndirectCost     float64 `json:"indirect_cost"`
	ReputationalCost float64 `json:"reputational_cost"`

	MitigationEffectiveness float64 `json:"mitigation_effectiveness"` // 0-1
}

// ProjectResult reports probability of failure with a confidence band and
// expected financial loss before and after mitigation.
type ProjectResult struct {
	FailureProbability float64 `json:"failure_probability"`
	ProbabilityLow     float64 `json:"probability_low"`
	ProbabilityHigh    float64 `json:"probability_high"`

	ExpectedLoss          float64 `json:"expected_loss"`
	ExpectedLossMitigated float64 `json:"expected_loss_mitigated"`
}

// Logistic coefficients for the failure model. Centered so a medium-complexity
// initiative with average experience, stability, and history lands near the
// base failure rate.
const (
	coefIntercept   = -0.60
	coefComplexity  = 0.50
	coefExperience  = 0.40
	coefStability   = 0.35
	coefHistory     = 2.00
	coefUncertainty = 1.50
)

// EvaluateProject estimates an initiative's probability of failure via a
// logistic combination of its risk drivers, then derives expected financial
// loss pre- and post-mitigation.
func EvaluateProject(in ProjectInputs) ProjectResult {
	experience := stats.Clamp(in.TeamExperience, 1, 5)
	stability := stats.Clamp(in.InfraStability, 1, 5)
	history := stats.Clamp01(in.HistoricalFailureRate)
	uncertainty := stats.Clamp01(in.ScopeUncertainty)
	mitigation := stats.Clamp01(in.MitigationEffectiveness)

	z := coefIntercept +
		coefComplexity*complexityScore(in.Complexity) +
		coefExperience*(3-experience) +
		coefStability*(3-stability) +
		coefHistory*(history-0.3) +
		coefUncertainty*(uncertainty-0.3)

	p := 1 / (1 + math.Exp(-z))

	// The band widens with scope uncertainty.
	band := 0.05 + 0.15*uncertainty
	low := stats.Clamp01(p - band)
	high := stats.Clamp01(p + band)

	totalCost := in.DirectCost + in.IndirectCost + in.ReputationalCost
	if totalCost < 0 {
		totalCost = 0
	}
	expectedLoss := p * totalCost

	return ProjectResult{
		FailureProbability:    round4(p),
		ProbabilityLow:        round4(low),
		ProbabilityHigh:       round4(high),
		ExpectedLoss:          stats.Round2(expectedLoss),
		ExpectedLossMitigated: stats.Round2(expectedLoss * (1 - mitigation)),
	}
}

// complexityScore maps the tier to 0/1/2. Unknown tiers are treated as
// medium.
func complexityScore(tier ComplexityTier) float64 {
	switch ComplexityTier(strings.ToLower(string(tier))) {
	case ComplexityLow:
		return 0
	case ComplexityHigh:
		return 2
	default:
		return 1
	}
}

func round4(v float64) float64 { return math.Round(v*10000) / 10000 }
