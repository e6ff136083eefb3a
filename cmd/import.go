package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/francesca-tabor-ai/MATURITY-OS-sub001/internal/model"
)

var importInputPath string

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Bulk-import result rows into the store",
	Long: `Load result rows from a JSON file into the configured store,
for migrating results between installations or restoring an export.

The input is an array of stored result rows. Rows whose id already exists
are overwritten; missing ids and timestamps are filled in.

Example:
  maturity import --input results.json`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		var results []model.Result
		if err := readJSONFile(importInputPath, &results); err != nil {
			return err
		}

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		n, err := st.ImportResults(ctx, results)
		if err != nil {
			return err
		}

		zap.L().Info("import complete",
			zap.Int64("imported", n),
			zap.String("input", importInputPath),
		)
		return nil
	},
}

func init() {
	importCmd.Flags().StringVar(&importInputPath, "input", "", "path to results JSON file (required)")
	_ = importCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(importCmd)
}
