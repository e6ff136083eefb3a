package simulate

import (
	"github.com/francesca-tabor-ai/MATURITY-OS-sub001/internal/benchmark"
	"github.com/francesca-tabor-ai/MATURITY-OS-sub001/internal/model"
	"github.com/francesca-tabor-ai/MATURITY-OS-sub001/internal/stats"
)

// ValuationAdjustment quantifies the valuation uplift from moving between
// two maturity states at a given profit level.
type ValuationAdjustment struct {
	CurrentValuation   float64 `json:"current_valuation"`
	ProjectedValuation float64 `json:"projected_valuation"`
	Uplift             float64 `json:"uplift"`
	UpliftPct          float64 `json:"uplift_pct"`
}

// ValuationUplift prices the maturity improvement from current to projected
// scores against the benchmark multiple. Profit is held constant so the
// uplift isolates the maturity effect.
func ValuationUplift(current, projected model.ScorePair, profit float64, bm benchmark.Benchmark) ValuationAdjustment {
	cur := ValuationOf(profit, current.Avg(), bm)
	proj := ValuationOf(profit, projected.Avg(), bm)
	adj := ValuationAdjustment{
		CurrentValuation:   stats.Round2(cur),
		ProjectedValuation: stats.Round2(proj),
		Uplift:             stats.Round2(proj - cur),
	}
	if cur > 0 {
		adj.UpliftPct = stats.Round2((proj - cur) / cur * 100)
	}
	return adj
}
