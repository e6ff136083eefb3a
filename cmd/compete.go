package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/francesca-tabor-ai/MATURITY-OS-sub001/internal/compete"
	"github.com/francesca-tabor-ai/MATURITY-OS-sub001/internal/model"
)

// competeInput is the JSON shape the compete command consumes.
type competeInput struct {
	Org         model.ScorePair      `json:"org"`
	Competitors []compete.Competitor `json:"competitors"`
}

var competeCmd = &cobra.Command{
	Use:   "compete",
	Short: "Analyze competitive position",
	Long: `Compare the organisation's maturity against a peer set and report
competitive risk and advantage scores with narrative strengths and
weaknesses. An empty peer set yields neutral defaults.

  {"org": {"data_score": 55, "ai_score": 40},
   "competitors": [{"name": "Peer A", "data_score": 70, "ai_score": 60}]}`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		input, _ := cmd.Flags().GetString("input")
		orgID, _ := cmd.Flags().GetString("org")
		save, _ := cmd.Flags().GetBool("save")

		var in competeInput
		if err := readJSONFile(input, &in); err != nil {
			return err
		}

		report := compete.Analyze(in.Org, in.Competitors)
		zap.L().Info("competitive position analyzed",
			zap.Float64("risk", report.RiskScore),
			zap.Float64("advantage", report.AdvantageScore),
			zap.Int("peers", len(in.Competitors)),
		)

		if err := saveResult(cmd.Context(), save, orgID, model.ResultKindCompetitive, report); err != nil {
			return err
		}
		return printJSON(report)
	},
}

func init() {
	f := competeCmd.Flags()
	f.String("input", "", "scores and peer set JSON file (use - for stdin)")
	f.String("org", "", "organisation identifier")
	f.Bool("save", false, "persist the result")
	competeCmd.MarkFlagRequired("input") //nolint:errcheck
	rootCmd.AddCommand(competeCmd)
}
