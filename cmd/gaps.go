package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/francesca-tabor-ai/MATURITY-OS-sub001/internal/gaps"
	"github.com/francesca-tabor-ai/MATURITY-OS-sub001/internal/model"
)

// gapsInput is the JSON shape the gaps command consumes: the two maturity
// summaries plus optional target stages.
type gapsInput struct {
	Data    model.MaturitySummary `json:"data"`
	AI      model.MaturitySummary `json:"ai"`
	Targets *gaps.Targets         `json:"targets,omitempty"`
}

var gapsCmd = &cobra.Command{
	Use:   "gaps",
	Short: "Identify capability gaps",
	Long: `Compare current dimension scores against the ideal profile for a
target stage and list prioritized capability gaps grouped by theme.

The input file carries the data and AI maturity summaries:

  {"data": {"stage": 3, "composite_score": 48, "dimension_scores": {...}},
   "ai":   {"stage": 2, "composite_score": 30, "dimension_scores": {...}},
   "targets": {"data_stage": 5, "ai_stage": 5}}

Example:
  maturity gaps --input summaries.json`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		input, _ := cmd.Flags().GetString("input")
		orgID, _ := cmd.Flags().GetString("org")
		save, _ := cmd.Flags().GetBool("save")

		var in gapsInput
		if err := readJSONFile(input, &in); err != nil {
			return err
		}

		analysis := gaps.Analyze(in.Data, in.AI, in.Targets)
		zap.L().Info("gap analysis complete", zap.Int("gaps", len(analysis.Gaps)))

		if err := saveResult(cmd.Context(), save, orgID, model.ResultKindGapAnalysis, analysis); err != nil {
			return err
		}
		return printJSON(analysis)
	},
}

func init() {
	f := gapsCmd.Flags()
	f.String("input", "", "maturity summaries JSON file (use - for stdin)")
	f.String("org", "", "organisation identifier")
	f.Bool("save", false, "persist the result")
	gapsCmd.MarkFlagRequired("input") //nolint:errcheck
	rootCmd.AddCommand(gapsCmd)
}
