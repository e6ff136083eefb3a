package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/francesca-tabor-ai/MATURITY-OS-sub001/internal/invest"
	"github.com/francesca-tabor-ai/MATURITY-OS-sub001/internal/model"
)

var investCmd = &cobra.Command{
	Use:   "invest",
	Short: "Price the investment to close a maturity gap",
	Long: `Price the investment required to move from current to target scores,
with expected ROI against annual benefits and the payback horizon.

Targets must be at or above current scores. Zero investment leaves ROI
undefined; zero benefits leave payback undefined.

Example:
  maturity invest --data-current 40 --data-target 70 \
      --ai-current 25 --ai-target 60 --benefits 800000`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		dataCurrent, _ := cmd.Flags().GetFloat64("data-current")
		dataTarget, _ := cmd.Flags().GetFloat64("data-target")
		aiCurrent, _ := cmd.Flags().GetFloat64("ai-current")
		aiTarget, _ := cmd.Flags().GetFloat64("ai-target")
		benefits, _ := cmd.Flags().GetFloat64("benefits")
		orgID, _ := cmd.Flags().GetString("org")
		save, _ := cmd.Flags().GetBool("save")

		current := model.ScorePair{DataScore: dataCurrent, AIScore: aiCurrent}
		target := model.ScorePair{DataScore: dataTarget, AIScore: aiTarget}

		result, err := invest.Calculate(current, target, benefits,
			cfg.Investment.DataCostPerPoint, cfg.Investment.AICostPerPoint)
		if err != nil {
			return err
		}
		zap.L().Info("investment priced", zap.Float64("total", result.TotalInvestment))

		if err := saveResult(cmd.Context(), save, orgID, model.ResultKindInvestment, result); err != nil {
			return err
		}
		return printJSON(result)
	},
}

func init() {
	f := investCmd.Flags()
	f.Float64("data-current", 0, "current data maturity score")
	f.Float64("data-target", 0, "target data maturity score")
	f.Float64("ai-current", 0, "current AI maturity score")
	f.Float64("ai-target", 0, "target AI maturity score")
	f.Float64("benefits", 0, "expected annual benefits")
	f.String("org", "", "organisation identifier")
	f.Bool("save", false, "persist the result")
	rootCmd.AddCommand(investCmd)
}
