package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/francesca-tabor-ai/MATURITY-OS-sub001/internal/classify"
	"github.com/francesca-tabor-ai/MATURITY-OS-sub001/internal/model"
)

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify an organisation on the data/AI matrix",
	Long: `Place an organisation on the data-maturity / AI-adoption matrix and
resolve its classification, risk, and opportunity labels against the rule
table. Rules are evaluated in order; the first match wins. When no rule
matches, the quadrant around the (50,50) midpoint decides.

Examples:
  maturity classify --data-index 72 --ai-score 35
  maturity classify --data-index 72 --ai-score 35 --org acme --save`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		dataIndex, _ := cmd.Flags().GetFloat64("data-index")
		aiScore, _ := cmd.Flags().GetFloat64("ai-score")
		orgID, _ := cmd.Flags().GetString("org")
		save, _ := cmd.Flags().GetBool("save")

		table, err := loadRuleTable()
		if err != nil {
			return err
		}

		result := classify.Classify(dataIndex, aiScore, table)
		zap.L().Info("organisation classified",
			zap.String("classification", result.Classification),
			zap.Float64("x", result.MatrixX),
			zap.Float64("y", result.MatrixY),
		)

		if err := saveResult(cmd.Context(), save, orgID, model.ResultKindClassification, result); err != nil {
			return err
		}
		return printJSON(result)
	},
}

func init() {
	f := classifyCmd.Flags()
	f.Float64("data-index", 0, "data maturity index (0-100)")
	f.Float64("ai-score", 0, "AI adoption score (0-100)")
	f.String("org", "", "organisation identifier")
	f.Bool("save", false, "persist the result")
	classifyCmd.MarkFlagRequired("data-index") //nolint:errcheck
	classifyCmd.MarkFlagRequired("ai-score")   //nolint:errcheck
	rootCmd.AddCommand(classifyCmd)
}
