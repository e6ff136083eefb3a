package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/francesca-tabor-ai/MATURITY-OS-sub001/internal/model"
	"github.com/francesca-tabor-ai/MATURITY-OS-sub001/internal/roadmap"
)

var roadmapCmd = &cobra.Command{
	Use:   "roadmap",
	Short: "Generate a transformation roadmap",
	Long: `Sequence capability gaps into themed, costed phases under a
prioritization strategy: strategic_alignment (default), highest_roi_first,
or lowest_cost_first.

The input file carries roadmap inputs; gaps may be omitted, in which case
synthetic gaps are derived from the current/target score deltas:

  {"gaps": [...], "prioritization": "strategic_alignment",
   "current": {"data_score": 40, "ai_score": 25},
   "target":  {"data_score": 70, "ai_score": 60},
   "total_impact_value": 800000, "has_impact_summary": true}`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		input, _ := cmd.Flags().GetString("input")
		strategy, _ := cmd.Flags().GetString("strategy")
		orgID, _ := cmd.Flags().GetString("org")
		save, _ := cmd.Flags().GetBool("save")

		var in roadmap.Inputs
		if err := readJSONFile(input, &in); err != nil {
			return err
		}
		if strategy != "" {
			in.Strategy = roadmap.Strategy(strategy)
		}
		if in.DataCostPerPoint == 0 {
			in.DataCostPerPoint = cfg.Investment.DataCostPerPoint
		}
		if in.AICostPerPoint == 0 {
			in.AICostPerPoint = cfg.Investment.AICostPerPoint
		}

		rm, err := roadmap.Generate(in)
		if err != nil {
			return err
		}
		zap.L().Info("roadmap generated",
			zap.String("strategy", string(rm.Strategy)),
			zap.Int("phases", len(rm.Phases)),
			zap.Float64("total_cost", rm.TotalEstimatedCost),
		)

		if err := saveResult(cmd.Context(), save, orgID, model.ResultKindRoadmap, rm); err != nil {
			return err
		}
		return printJSON(rm)
	},
}

func init() {
	f := roadmapCmd.Flags()
	f.String("input", "", "roadmap inputs JSON file (use - for stdin)")
	f.String("strategy", "", "prioritization strategy (overrides input file)")
	f.String("org", "", "organisation identifier")
	f.Bool("save", false, "persist the result")
	roadmapCmd.MarkFlagRequired("input") //nolint:errcheck
	rootCmd.AddCommand(roadmapCmd)
}
