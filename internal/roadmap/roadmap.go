// Package roadmap sequences capability gaps into cost/impact-weighted phases
// under a prioritization policy.
package roadmap

import (
	"fmt"
	"sort"

	"github.com/rotisserie/eris"

	"github.com/francesca-tabor-ai/MATURITY-OS-sub001/internal/gaps"
	"github.com/francesca-tabor-ai/MATURITY-OS-sub001/internal/model"
	"github.com/francesca-tabor-ai/MATURITY-OS-sub001/internal/stats"
)

// Strategy is a total ordering over phases.
type Strategy string

const (
	StrategyHighestROIFirst    Strategy = "highest_roi_first"
	StrategyLowestCostFirst    Strategy = "lowest_cost_first"
	StrategyStrategicAlignment Strategy = "strategic_alignment"
)

// themeOrder is the fixed topological order for strategic alignment:
// foundation work precedes integration, which precedes intelligence. Not
// user-overridable. It is also the base order phases are built in, so the
// stable cost/ROI sorts break ties by theme precedence rather than map
// iteration order.
var themeOrder = []gaps.Theme{
	gaps.ThemeFoundation,
	gaps.ThemeIntegration,
	gaps.ThemeIntelligence,
}

// themeTitles names the generated phases.
var themeTitles = map[gaps.Theme]string{
	gaps.ThemeFoundation:   "Data Foundation",
	gaps.ThemeIntegration:  "Integration & Access",
	gaps.ThemeIntelligence: "Intelligence & Automation",
}

// Inputs drives roadmap generation. Gaps may be empty, in which case
// synthetic gaps are derived from the maturity deltas. FinancialImpact is
// optional; without it impact is reported in relative terms only.
type Inputs struct {
	Gaps     []gaps.CapabilityGap `json:"gaps"`
	Strategy Strategy             `json:"prioritization"`

	Current model.ScorePair `json:"current"`
	Target  model.ScorePair `json:"target"`

	DataCostPerPoint float64 `json:"data_cost_per_point"`
	AICostPerPoint   float64 `json:"ai_cost_per_point"`

	TotalImpactValue float64 `json:"total_impact_value,omitempty"` // from a financial-impact summary
	HasImpactSummary bool    `json:"has_impact_summary"`
}

// Phase is one ordered stage of the transformation.
type Phase struct {
	Name                 string   `json:"name"`
	Actions              []string `json:"actions"`
	EstimatedCost        float64  `json:"estimated_cost"`
	ProjectedImpactValue float64  `json:"projected_impact_value"`
	RelativeImpact       float64  `json:"relative_impact"` // share of total gap severity, 0-1
}

// Roadmap is the generated transformation plan.
type Roadmap struct {
	Strategy             Strategy `json:"prioritization"`
	Phases               []Phase  `json:"phases"`
	TotalEstimatedCost   float64  `json:"total_estimated_cost"`
	TotalProjectedImpact float64  `json:"total_projected_impact"`
}

// Generate groups gaps into themed phases and orders them by the chosen
// strategy. Unknown strategies are rejected.
func Generate(in Inputs) (Roadmap, error) {
	switch in.Strategy {
	case StrategyHighestROIFirst, StrategyLowestCostFirst, StrategyStrategicAlignment:
	case "":
		in.Strategy = StrategyStrategicAlignment
	default:
		return Roadmap{}, eris.Errorf("roadmap: unknown prioritization %q", in.Strategy)
	}

	gs := in.Gaps
	if len(gs) == 0 {
		gs = syntheticGaps(in.Current, in.Target)
	}

	phases := buildPhases(gs, in)
	orderPhases(phases, in.Strategy)

	rm := Roadmap{Strategy: in.Strategy, Phases: phases}
	for _, p := range phases {
		rm.TotalEstimatedCost += p.EstimatedCost
		rm.TotalProjectedImpact += p.ProjectedImpactValue
	}
	rm.TotalEstimatedCost = stats.Round2(rm.TotalEstimatedCost)
	rm.TotalProjectedImpact = stats.Round2(rm.TotalProjectedImpact)
	return rm, nil
}

// syntheticGaps derives coarse gaps from the maturity deltas when no gap
// analysis is supplied.
func syntheticGaps(current, target model.ScorePair) []gaps.CapabilityGap {
	var out []gaps.CapabilityGap
	if d := stats.ClampScore(target.DataScore) - stats.ClampScore(current.DataScore); d > 0 {
		out = append(out, gaps.CapabilityGap{
			Description: fmt.Sprintf("Raise data maturity from %.0f to %.0f", current.DataScore, target.DataScore),
			Dimension:   "governance",
			Theme:       gaps.ThemeFoundation,
			Gap:         d,
		})
	}
	if d := stats.ClampScore(target.AIScore) - stats.ClampScore(current.AIScore); d > 0 {
		out = append(out, gaps.CapabilityGap{
			Description: fmt.Sprintf("Raise AI maturity from %.0f to %.0f", current.AIScore, target.AIScore),
			Dimension:   "ai_usage",
			Theme:       gaps.ThemeIntelligence,
			Gap:         d,
		})
	}
	return out
}

// buildPhases groups gaps by theme, prices each phase from the per-point
// cost constants, and apportions impact by share of total gap severity.
func buildPhases(gs []gaps.CapabilityGap, in Inputs) []Phase {
	type agg struct {
		actions  []string
		cost     float64
		severity float64
	}
	byTheme := map[gaps.Theme]*agg{}
	var totalSeverity float64

	for _, g := range gs {
		a := byTheme[g.Theme]
		if a == nil {
			a = &agg{}
			byTheme[g.Theme] = a
		}
		costPerPoint := in.DataCostPerPoint
		if gaps.VariantFor(g.Dimension) == model.AuditVariantAI {
			costPerPoint = in.AICostPerPoint
		}
		a.actions = append(a.actions, g.Description)
		a.cost += g.Gap * costPerPoint
		a.severity += g.Gap
		totalSeverity += g.Gap
	}

	var phases []Phase
	for _, theme := range themeOrder {
		a := byTheme[theme]
		if a == nil {
			continue
		}
		share := 0.0
		if totalSeverity > 0 {
			share = a.severity / totalSeverity
		}
		impact := 0.0
		if in.HasImpactSummary {
			impact = stats.Round2(in.TotalImpactValue * share)
		}
		phases = append(phases, Phase{
			Name:                 themeTitles[theme],
			Actions:              a.actions,
			EstimatedCost:        stats.Round2(a.cost),
			ProjectedImpactValue: impact,
			RelativeImpact:       stats.Round2(share),
		})
	}
	return phases
}

// orderPhases applies the chosen total ordering. Strategic alignment uses
// the fixed theme precedence regardless of cost or impact.
func orderPhases(phases []Phase, strategy Strategy) {
	switch strategy {
	case StrategyLowestCostFirst:
		sort.SliceStable(phases, func(i, j int) bool {
			return phases[i].EstimatedCost < phases[j].EstimatedCost
		})
	case StrategyHighestROIFirst:
		sort.SliceStable(phases, func(i, j int) bool {
			return roiRatio(phases[i]) > roiRatio(phases[j])
		})
	default:
		// Strategic alignment: phases are already built in theme
		// precedence order.
	}
}

// roiRatio is impact per unit cost; when no monetary impact is present the
// relative share stands in, keeping the ordering total.
func roiRatio(p Phase) float64 {
	impact := p.ProjectedImpactValue
	if impact == 0 {
		impact = p.RelativeImpact
	}
	if p.EstimatedCost == 0 {
		return impact
	}
	return impact / p.EstimatedCost
}
