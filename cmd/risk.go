package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/francesca-tabor-ai/MATURITY-OS-sub001/internal/model"
	"github.com/francesca-tabor-ai/MATURITY-OS-sub001/internal/risk"
)

var riskCmd = &cobra.Command{
	Use:   "risk",
	Short: "Risk assessment calculations",
}

var riskAssessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Assess organisational transformation risk",
	Long: `Score the four risk categories (ai_misalignment, infrastructure,
operational, strategic) from sub-factor inputs and combine them into an
overall weighted risk score with level bands.

Input maps category -> factor -> score (0-100, higher is riskier):

  {"infrastructure": {"legacy_systems": 70, "scalability": 45}}`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		input, _ := cmd.Flags().GetString("input")
		orgID, _ := cmd.Flags().GetString("org")
		save, _ := cmd.Flags().GetBool("save")

		var in risk.Inputs
		if err := readJSONFile(input, &in); err != nil {
			return err
		}

		result := risk.Assess(in, cfg.Risk.Weights)
		zap.L().Info("risk assessed",
			zap.Float64("overall", result.OverallScore),
			zap.String("level", string(result.Level)),
		)

		if err := saveResult(cmd.Context(), save, orgID, model.ResultKindRisk, result); err != nil {
			return err
		}
		return printJSON(result)
	},
}

var riskProjectCmd = &cobra.Command{
	Use:   "project",
	Short: "Estimate a single initiative's failure risk and expected loss",
	Long: `Estimate an initiative's probability of failure from complexity,
team experience, infrastructure stability, historical failure rate, and
scope uncertainty, then derive expected loss before and after mitigation.

  {"complexity": "high", "team_experience": 2, "infra_stability": 3,
   "historical_failure_rate": 0.4, "scope_uncertainty": 0.5,
   "direct_cost": 500000, "mitigation_effectiveness": 0.3}`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		input, _ := cmd.Flags().GetString("input")
		orgID, _ := cmd.Flags().GetString("org")
		save, _ := cmd.Flags().GetBool("save")

		var in risk.ProjectInputs
		if err := readJSONFile(input, &in); err != nil {
			return err
		}

		result := risk.EvaluateProject(in)
		zap.L().Info("project risk evaluated",
			zap.Float64("failure_probability", result.FailureProbability),
			zap.Float64("expected_loss", result.ExpectedLoss),
		)

		if err := saveResult(cmd.Context(), save, orgID, model.ResultKindProjectRisk, result); err != nil {
			return err
		}
		return printJSON(result)
	},
}

func init() {
	for _, c := range []*cobra.Command{riskAssessCmd, riskProjectCmd} {
		f := c.Flags()
		f.String("input", "", "risk inputs JSON file (use - for stdin)")
		f.String("org", "", "organisation identifier")
		f.Bool("save", false, "persist the result")
		c.MarkFlagRequired("input") //nolint:errcheck
		riskCmd.AddCommand(c)
	}
	rootCmd.AddCommand(riskCmd)
}
