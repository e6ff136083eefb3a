package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/francesca-tabor-ai/MATURITY-OS-sub001/internal/benchmark"
	"github.com/francesca-tabor-ai/MATURITY-OS-sub001/internal/financial"
	"github.com/francesca-tabor-ai/MATURITY-OS-sub001/internal/model"
)

var financialCmd = &cobra.Command{
	Use:   "financial",
	Short: "Estimate financial impact of maturity improvement",
	Long: `Financial impact calculations against an industry benchmark.

The input file carries the organisation's financial profile:

  {"revenue": 5000000, "profit_margin_pct": 12, "headcount": 40,
   "operational_cost": 2000000, "data_score": 45, "ai_score": 30}`,
}

var financialImpactCmd = &cobra.Command{
	Use:   "impact",
	Short: "Estimate annual revenue upside, margin expansion, and cost reduction",
	RunE: func(cmd *cobra.Command, _ []string) error {
		in, bm, err := financialInputs(cmd)
		if err != nil {
			return err
		}

		result := financial.EstimateImpact(in, bm)
		zap.L().Info("impact estimated",
			zap.Float64("revenue_upside", result.RevenueUpside),
			zap.Float64("cost_reduction", result.CostReduction),
		)

		orgID, _ := cmd.Flags().GetString("org")
		save, _ := cmd.Flags().GetBool("save")
		if err := saveResult(cmd.Context(), save, orgID, model.ResultKindFinancial, result); err != nil {
			return err
		}
		return printJSON(result)
	},
}

var financialModelCmd = &cobra.Command{
	Use:   "model",
	Short: "Run the composed revenue, cost, and profit model",
	Long:  "Runs every sub-model the inputs support. Missing inputs skip that sub-model and add a diagnostic instead of failing the report.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		in, bm, err := financialInputs(cmd)
		if err != nil {
			return err
		}

		report := financial.RunModel(in, bm)
		zap.L().Info("financial model complete",
			zap.Float64("net_annual_impact", report.Summary.NetAnnualImpact),
			zap.Int("diagnostics", len(report.Errors)),
		)

		orgID, _ := cmd.Flags().GetString("org")
		save, _ := cmd.Flags().GetBool("save")
		if err := saveResult(cmd.Context(), save, orgID, model.ResultKindFinancialModel, report); err != nil {
			return err
		}
		return printJSON(report)
	},
}

func financialInputs(cmd *cobra.Command) (financial.Inputs, benchmark.Benchmark, error) {
	input, _ := cmd.Flags().GetString("input")
	bmID, _ := cmd.Flags().GetString("benchmark")

	var in financial.Inputs
	if err := readJSONFile(input, &in); err != nil {
		return financial.Inputs{}, benchmark.Benchmark{}, err
	}
	return in, resolveBenchmark(bmID), nil
}

func init() {
	for _, c := range []*cobra.Command{financialImpactCmd, financialModelCmd} {
		f := c.Flags()
		f.String("input", "", "financial profile JSON file (use - for stdin)")
		f.String("benchmark", "", "industry benchmark id (default from config)")
		f.String("org", "", "organisation identifier")
		f.Bool("save", false, "persist the result")
		c.MarkFlagRequired("input") //nolint:errcheck
		financialCmd.AddCommand(c)
	}
	rootCmd.AddCommand(financialCmd)
}
