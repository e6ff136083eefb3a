package simulate

import "sort"

// RankedOutcome pairs an outcome with its comparison rank, 1 being best.
type RankedOutcome struct {
	Rank    int     `json:"rank"`
	Outcome Outcome `json:"outcome"`
}

// Comparison is the result of ranking several scenario outcomes.
type Comparison struct {
	Ranked []RankedOutcome `json:"ranked"`
	Best   string          `json:"best_scenario"`
}

// Compare ranks outcomes: highest end valuation first, ties broken by total
// profit, then by lower average risk, then by input order. The sort is stable
// so equal outcomes keep their submission order.
func Compare(outcomes []Outcome) Comparison {
	ranked := make([]RankedOutcome, len(outcomes))
	for i, o := range outcomes {
		ranked[i] = RankedOutcome{Outcome: o}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i].Outcome, ranked[j].Outcome
		if a.EndValuation != b.EndValuation {
			return a.EndValuation > b.EndValuation
		}
		if a.TotalProfit != b.TotalProfit {
			return a.TotalProfit > b.TotalProfit
		}
		return a.AvgRisk < b.AvgRisk
	})
	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	cmp := Comparison{Ranked: ranked}
	if len(ranked) > 0 {
		cmp.Best = ranked[0].Outcome.ScenarioName
	}
	return cmp
}
