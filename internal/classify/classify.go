// Package classify maps a (data index, AI score) pair to a matrix
// classification via an ordered rule table with a quadrant fallback.
package classify

import (
	"github.com/francesca-tabor-ai/MATURITY-OS-sub001/internal/stats"
)

// Rule is one rectangular region of the classification matrix. Ranges are
// inclusive on both ends.
type Rule struct {
	DataMin        float64 `yaml:"data_min" json:"data_min"`
	DataMax        float64 `yaml:"data_max" json:"data_max"`
	AIMin          float64 `yaml:"ai_min" json:"ai_min"`
	AIMax          float64 `yaml:"ai_max" json:"ai_max"`
	Classification string  `yaml:"classification" json:"classification"`
	Risk           string  `yaml:"risk" json:"risk"`
	Opportunity    string  `yaml:"opportunity" json:"opportunity"`
}

// matches reports whether the point falls inside the rule's region.
func (r Rule) matches(dataIndex, aiScore float64) bool {
	return dataIndex >= r.DataMin && dataIndex <= r.DataMax &&
		aiScore >= r.AIMin && aiScore <= r.AIMax
}

// RuleTable is an ordered list of rules. Order is a semantic invariant: the
// FIRST matching rule wins, so overlap resolution depends on declaration
// order. Never convert this to a keyed lookup.
type RuleTable []Rule

// Result is the classification output. MatrixX/MatrixY echo the clamped
// inputs for plotting.
type Result struct {
	Classification string  `json:"classification"`
	MatrixX        float64 `json:"matrix_x"`
	MatrixY        float64 `json:"matrix_y"`
	Risk           string  `json:"risk_classification"`
	Opportunity    string  `json:"opportunity_classification"`
}

// Classify resolves a (data index, AI score) pair against the table. Inputs
// are clamped to [0,100]. When no rule matches, a midpoint quadrant split
// supplies the fallback classification. Pure and idempotent.
func Classify(dataIndex, aiScore float64, table RuleTable) Result {
	x := stats.ClampScore(dataIndex)
	y := stats.ClampScore(aiScore)

	for _, rule := range table {
		if rule.matches(x, y) {
			return Result{
				Classification: rule.Classification,
				MatrixX:        x,
				MatrixY:        y,
				Risk:           rule.Risk,
				Opportunity:    rule.Opportunity,
			}
		}
	}

	return quadrantFallback(x, y)
}

// quadrantFallback splits the matrix at the 50/50 midpoint into four named
// quadrants.
func quadrantFallback(x, y float64) Result {
	res := Result{MatrixX: x, MatrixY: y}
	switch {
	case x < 50 && y < 50:
		res.Classification = "Digital Laggard"
		res.Risk = "High"
		res.Opportunity = "Foundational data modernization"
	case x >= 50 && y < 50:
		res.Classification = "Data-Rich, AI-Poor"
		res.Risk = "Medium"
		res.Opportunity = "Activate AI on existing data assets"
	case x < 50 && y >= 50:
		res.Classification = "AI-Ambitious, Data-Constrained"
		res.Risk = "High"
		res.Opportunity = "Shore up the data foundation"
	default:
		res.Classification = "Digital Leader"
		res.Risk = "Low"
		res.Opportunity = "Compound the lead with scaled automation"
	}
	return res
}

// DefaultRuleTable returns the built-in classification matrix. More specific
// regions come first; the coarse quadrant rules close out the table.
func DefaultRuleTable() RuleTable {
	return RuleTable{
		{DataMin: 80, DataMax: 100, AIMin: 80, AIMax: 100,
			Classification: "Transformation Leader", Risk: "Low",
			Opportunity: "Defend position; productize data and AI capabilities"},
		{DataMin: 0, DataMax: 30, AIMin: 0, AIMax: 30,
			Classification: "Early Explorer", Risk: "High",
			Opportunity: "Establish data collection and governance basics"},
		{DataMin: 60, DataMax: 100, AIMin: 0, AIMax: 40,
			Classification: "Untapped Data Asset", Risk: "Medium",
			Opportunity: "Pilot AI use cases against the existing data estate"},
		{DataMin: 0, DataMax: 40, AIMin: 60, AIMax: 100,
			Classification: "AI Overreach", Risk: "High",
			Opportunity: "Rebalance investment toward data infrastructure"},
		{DataMin: 50, DataMax: 100, AIMin: 50, AIMax: 100,
			Classification: "Scaling Adopter", Risk: "Low",
			Opportunity: "Industrialize model deployment and measurement"},
		{DataMin: 30, DataMax: 70, AIMin: 30, AIMax: 70,
			Classification: "Emerging Adopter", Risk: "Medium",
			Opportunity: "Close integration and automation gaps"},
	}
}
