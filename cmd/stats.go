package main

import (
	"github.com/spf13/cobra"

	"github.com/francesca-tabor-ai/MATURITY-OS-sub001/internal/model"
	"github.com/francesca-tabor-ai/MATURITY-OS-sub001/internal/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarise a score distribution",
	Long: `Compute distribution statistics (mean, median, quartiles, standard
deviation, outliers) over a JSON array of scores.

Example:
  maturity stats --input scores.json`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		input, _ := cmd.Flags().GetString("input")
		orgID, _ := cmd.Flags().GetString("org")
		save, _ := cmd.Flags().GetBool("save")

		var scores []float64
		if err := readJSONFile(input, &scores); err != nil {
			return err
		}

		result := stats.Analyze(scores)

		if err := saveResult(cmd.Context(), save, orgID, model.ResultKindDistribution, result); err != nil {
			return err
		}
		return printJSON(result)
	},
}

func init() {
	f := statsCmd.Flags()
	f.String("input", "", "JSON array of scores (use - for stdin)")
	f.String("org", "", "organisation identifier")
	f.Bool("save", false, "persist the result")
	statsCmd.MarkFlagRequired("input") //nolint:errcheck
	rootCmd.AddCommand(statsCmd)
}
