package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/francesca-tabor-ai/MATURITY-OS-sub001/internal/model"
	"github.com/francesca-tabor-ai/MATURITY-OS-sub001/internal/simulate"
)

// simulateInput is the JSON shape the simulate command consumes.
type simulateInput struct {
	Context   simulate.Context    `json:"context"`
	Scenarios []simulate.Scenario `json:"scenarios"`
}

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Simulate multi-year transformation scenarios",
	Long: `Run deterministic multi-year simulations of maturity, revenue,
profit, valuation, competitive position, and risk under one or more
scenarios. With --compare the outcomes are ranked by end valuation.

  {"context": {"data_score": 40, "ai_score": 30, "revenue": 5000000,
               "profit_margin_pct": 12},
   "scenarios": [{"name": "steady", "horizon_years": 5,
                  "data_growth_rate": 8, "ai_growth_rate": 10,
                  "revenue_growth_pct": 5}]}`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		input, _ := cmd.Flags().GetString("input")
		bmID, _ := cmd.Flags().GetString("benchmark")
		compareFlag, _ := cmd.Flags().GetBool("compare")
		orgID, _ := cmd.Flags().GetString("org")
		save, _ := cmd.Flags().GetBool("save")

		var in simulateInput
		if err := readJSONFile(input, &in); err != nil {
			return err
		}
		if len(in.Scenarios) == 0 {
			return eris.New("at least one scenario is required")
		}

		simCtx := in.Context
		simCtx.Benchmark = resolveBenchmark(bmID)
		if simCtx.Smoothing == 0 {
			simCtx.Smoothing = cfg.Simulation.Smoothing
		}
		for i := range in.Scenarios {
			if in.Scenarios[i].HorizonYears == 0 {
				in.Scenarios[i].HorizonYears = cfg.Simulation.DefaultHorizonYears
			}
		}

		// Scenarios are independent; run them in parallel and collect in
		// submission order.
		outcomes := make([]simulate.Outcome, len(in.Scenarios))
		g, gctx := errgroup.WithContext(cmd.Context())
		g.SetLimit(4)
		for i, scenario := range in.Scenarios {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				outcomes[i] = simulate.Run(scenario, simCtx)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return eris.Wrap(err, "simulate scenarios")
		}
		zap.L().Info("simulation complete", zap.Int("scenarios", len(outcomes)))

		if compareFlag {
			cmp := simulate.Compare(outcomes)
			if err := saveResult(cmd.Context(), save, orgID, model.ResultKindSimulation, cmp); err != nil {
				return err
			}
			return printJSON(cmp)
		}

		if err := saveResult(cmd.Context(), save, orgID, model.ResultKindSimulation, outcomes); err != nil {
			return err
		}
		return printJSON(outcomes)
	},
}

var valuationCmd = &cobra.Command{
	Use:   "valuation",
	Short: "Price the valuation uplift of a maturity improvement",
	RunE: func(cmd *cobra.Command, _ []string) error {
		dataCurrent, _ := cmd.Flags().GetFloat64("data-current")
		dataTarget, _ := cmd.Flags().GetFloat64("data-target")
		aiCurrent, _ := cmd.Flags().GetFloat64("ai-current")
		aiTarget, _ := cmd.Flags().GetFloat64("ai-target")
		profit, _ := cmd.Flags().GetFloat64("profit")
		bmID, _ := cmd.Flags().GetString("benchmark")
		orgID, _ := cmd.Flags().GetString("org")
		save, _ := cmd.Flags().GetBool("save")

		adj := simulate.ValuationUplift(
			model.ScorePair{DataScore: dataCurrent, AIScore: aiCurrent},
			model.ScorePair{DataScore: dataTarget, AIScore: aiTarget},
			profit,
			resolveBenchmark(bmID),
		)

		if err := saveResult(cmd.Context(), save, orgID, model.ResultKindValuation, adj); err != nil {
			return err
		}
		return printJSON(adj)
	},
}

func init() {
	f := simulateCmd.Flags()
	f.String("input", "", "simulation inputs JSON file (use - for stdin)")
	f.String("benchmark", "", "industry benchmark id (default from config)")
	f.Bool("compare", false, "rank scenario outcomes")
	f.String("org", "", "organisation identifier")
	f.Bool("save", false, "persist the result")
	simulateCmd.MarkFlagRequired("input") //nolint:errcheck
	rootCmd.AddCommand(simulateCmd)

	vf := valuationCmd.Flags()
	vf.Float64("data-current", 0, "current data maturity score")
	vf.Float64("data-target", 0, "projected data maturity score")
	vf.Float64("ai-current", 0, "current AI maturity score")
	vf.Float64("ai-target", 0, "projected AI maturity score")
	vf.Float64("profit", 0, "annual profit the multiple applies to")
	vf.String("benchmark", "", "industry benchmark id (default from config)")
	vf.String("org", "", "organisation identifier")
	vf.Bool("save", false, "persist the result")
	rootCmd.AddCommand(valuationCmd)
}
