package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/francesca-tabor-ai/MATURITY-OS-sub001/internal/model"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a maturity audit",
	Long: `Score a data or AI maturity self-assessment.

The input file holds category -> question -> answer scores (0-100):

  {"collection": {"q1": 60, "q2": 40}, "storage": {"q1": 80}}

Examples:
  # Score a data maturity audit
  maturity score data --input audit.json

  # Score an AI audit and persist the result
  maturity score ai --input audit.json --org acme --save`,
}

var scoreDataCmd = &cobra.Command{
	Use:   "data",
	Short: "Score a data maturity audit",
	RunE:  func(cmd *cobra.Command, _ []string) error { return runScore(cmd, model.AuditVariantData) },
}

var scoreAICmd = &cobra.Command{
	Use:   "ai",
	Short: "Score an AI maturity audit",
	RunE:  func(cmd *cobra.Command, _ []string) error { return runScore(cmd, model.AuditVariantAI) },
}

func init() {
	for _, c := range []*cobra.Command{scoreDataCmd, scoreAICmd} {
		f := c.Flags()
		f.String("input", "", "audit JSON file (use - for stdin)")
		f.String("org", "", "organisation identifier")
		f.Bool("save", false, "persist the audit and result")
		c.MarkFlagRequired("input") //nolint:errcheck
		scoreCmd.AddCommand(c)
	}
	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, variant model.AuditVariant) error {
	ctx := cmd.Context()
	input, _ := cmd.Flags().GetString("input")
	orgID, _ := cmd.Flags().GetString("org")
	save, _ := cmd.Flags().GetBool("save")

	var inputs model.AuditInputs
	if err := readJSONFile(input, &inputs); err != nil {
		return err
	}

	result, kind, err := scoreAudit(inputs, variant)
	if err != nil {
		return err
	}

	zap.L().Info("audit scored",
		zap.String("variant", string(variant)),
		zap.Float64("composite", result.CompositeScore),
		zap.Int("stage", result.MaturityStage),
	)

	if save {
		if orgID == "" {
			return eris.New("--org is required with --save")
		}
		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		if _, err := st.SaveAudit(ctx, orgID, variant, inputs); err != nil {
			return err
		}
		if _, err := st.SaveResult(ctx, orgID, kind, result); err != nil {
			return err
		}
	}

	return printJSON(result)
}
