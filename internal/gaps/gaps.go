// Package gaps compares current dimension scores against stage-dependent
// ideals and emits ranked capability gaps for roadmap consumption.
package gaps

import (
	"fmt"
	"sort"

	"github.com/francesca-tabor-ai/MATURITY-OS-sub001/internal/model"
	"github.com/francesca-tabor-ai/MATURITY-OS-sub001/internal/scoring"
	"github.com/francesca-tabor-ai/MATURITY-OS-sub001/internal/stats"
)

// Gap priority thresholds on the ideal-minus-current delta.
const (
	highGapThreshold   = 40
	mediumGapThreshold = 20
)

// Theme groups related dimensions for phase construction.
type Theme string

const (
	ThemeFoundation   Theme = "foundation"
	ThemeIntegration  Theme = "integration"
	ThemeIntelligence Theme = "intelligence"
)

// dimension describes one tracked capability dimension: where its current
// score comes from and which theme it belongs to.
type dimension struct {
	Name    string
	Variant model.AuditVariant
	Source  string // category key in the owning summary; "" means composite
	Theme   Theme
}

// dimensions is the canonical tracked set, in reporting order. Foundation
// dimensions precede advanced ones; the roadmap engine's strategic-alignment
// ordering relies on theme membership, not on this slice order.
var dimensions = []dimension{
	{"collection", model.AuditVariantData, "collection", ThemeFoundation},
	{"storage", model.AuditVariantData, "storage", ThemeFoundation},
	{"governance", model.AuditVariantData, "governance", ThemeFoundation},
	{"integration", model.AuditVariantData, "integration", ThemeIntegration},
	{"accessibility", model.AuditVariantData, "accessibility", ThemeIntegration},
	{"automation", model.AuditVariantAI, "automation", ThemeIntelligence},
	{"ai_usage", model.AuditVariantAI, "adoption", ThemeIntelligence},
	{"deployment", model.AuditVariantAI, "", ThemeIntelligence},
}

// Targets optionally overrides the target stage per variant. Zero means
// "default to the maximum stage".
type Targets struct {
	DataStage int `json:"data_stage,omitempty"`
	AIStage   int `json:"ai_stage,omitempty"`
}

// CapabilityGap is one identified shortfall. IDs and timestamps are
// caller-assigned.
type CapabilityGap struct {
	Description string              `json:"description"`
	Dimension   string              `json:"dimension"`
	Priority    model.PriorityLevel `json:"priority_level"`
	Theme       Theme               `json:"grouped_theme"`
	Current     float64             `json:"current"`
	Ideal       float64             `json:"ideal"`
	Gap         float64             `json:"gap"`
}

// DimensionScore reports current vs ideal for every tracked dimension,
// including ones with no gap.
type DimensionScore struct {
	Dimension string  `json:"dimension"`
	Current   float64 `json:"current"`
	Ideal     float64 `json:"ideal"`
	Gap       float64 `json:"gap"`
}

// Analysis is the gap engine output.
type Analysis struct {
	Gaps            []CapabilityGap  `json:"gaps"`
	DimensionScores []DimensionScore `json:"dimension_scores"`
}

// idealFor maps a target stage to the ideal dimension score: a monotonically
// increasing fraction of the stage range.
func idealFor(targetStage, maxStage int) float64 {
	if targetStage <= 0 || targetStage > maxStage {
		targetStage = maxStage
	}
	return stats.Round2(float64(targetStage) / float64(maxStage) * 100)
}

// Analyze compares current dimension scores from the two maturity summaries
// against stage-dependent ideals. Gaps are sorted by magnitude descending.
func Analyze(data, ai model.MaturitySummary, targets *Targets) Analysis {
	dataIdeal := idealFor(targetStage(targets, model.AuditVariantData), scoring.DataMaxStage)
	aiIdeal := idealFor(targetStage(targets, model.AuditVariantAI), scoring.AIMaxStage)

	var analysis Analysis
	for _, dim := range dimensions {
		current := currentScore(dim, data, ai)
		ideal := dataIdeal
		if dim.Variant == model.AuditVariantAI {
			ideal = aiIdeal
		}

		gap := stats.Round2(ideal - current)
		if gap < 0 {
			gap = 0
		}

		analysis.DimensionScores = append(analysis.DimensionScores, DimensionScore{
			Dimension: dim.Name,
			Current:   current,
			Ideal:     ideal,
			Gap:       gap,
		})

		if gap <= 0 {
			continue
		}
		analysis.Gaps = append(analysis.Gaps, CapabilityGap{
			Description: fmt.Sprintf("Raise %s capability from %.0f to %.0f", dim.Name, current, ideal),
			Dimension:   dim.Name,
			Priority:    priorityFor(gap),
			Theme:       dim.Theme,
			Current:     current,
			Ideal:       ideal,
			Gap:         gap,
		})
	}

	sortGaps(analysis.Gaps)
	return analysis
}

func targetStage(t *Targets, variant model.AuditVariant) int {
	if t == nil {
		return 0
	}
	if variant == model.AuditVariantData {
		return t.DataStage
	}
	return t.AIStage
}

func currentScore(dim dimension, data, ai model.MaturitySummary) float64 {
	summary := data
	if dim.Variant == model.AuditVariantAI {
		summary = ai
	}
	if dim.Source == "" {
		return stats.ClampScore(summary.CompositeScore)
	}
	if v, ok := summary.DimensionScores[dim.Source]; ok {
		return stats.ClampScore(v)
	}
	return stats.ClampScore(summary.CompositeScore)
}

// VariantFor reports which audit variant owns a tracked dimension. Unknown
// dimensions default to the data variant.
func VariantFor(name string) model.AuditVariant {
	for _, d := range dimensions {
		if d.Name == name {
			return d.Variant
		}
	}
	return model.AuditVariantData
}

// ThemeFor reports the grouped theme for a tracked dimension. Unknown
// dimensions default to the foundation theme.
func ThemeFor(name string) Theme {
	for _, d := range dimensions {
		if d.Name == name {
			return d.Theme
		}
	}
	return ThemeFoundation
}

func priorityFor(gap float64) model.PriorityLevel {
	switch {
	case gap >= highGapThreshold:
		return model.PriorityHigh
	case gap >= mediumGapThreshold:
		return model.PriorityMedium
	default:
		return model.PriorityLow
	}
}

// sortGaps orders by gap magnitude descending, dimension name as tie-break
// for stable output.
func sortGaps(gs []CapabilityGap) {
	sort.SliceStable(gs, func(i, j int) bool {
		if gs[i].Gap != gs[j].Gap {
			return gs[i].Gap > gs[j].Gap
		}
		return gs[i].Dimension < gs[j].Dimension
	})
}
