package main

import (
	"context"
	"encoding/json"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/francesca-tabor-ai/MATURITY-OS-sub001/internal/export"
	"github.com/francesca-tabor-ai/MATURITY-OS-sub001/internal/model"
	"github.com/francesca-tabor-ai/MATURITY-OS-sub001/internal/simulate"
	"github.com/francesca-tabor-ai/MATURITY-OS-sub001/internal/store"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export an organisation's latest results as an XLSX workbook",
	Long: `Assemble the organisation's most recent stored result of each kind
into a report workbook with Summary, Capability Gaps, Financial Impact,
Roadmap, and Simulation sheets. Kinds with no stored result are skipped.

Example:
  maturity export --org acme --output acme-report.xlsx`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		orgID, _ := cmd.Flags().GetString("org")
		output, _ := cmd.Flags().GetString("output")

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		report := export.Report{OrgID: orgID}

		if err := latestPayload(ctx, st, orgID, model.ResultKindDataMaturity, &report.Data); err != nil {
			return err
		}
		if err := latestPayload(ctx, st, orgID, model.ResultKindAIMaturity, &report.AI); err != nil {
			return err
		}
		if err := latestPayload(ctx, st, orgID, model.ResultKindClassification, &report.Classification); err != nil {
			return err
		}
		if err := latestPayload(ctx, st, orgID, model.ResultKindGapAnalysis, &report.Gaps); err != nil {
			return err
		}
		if err := latestPayload(ctx, st, orgID, model.ResultKindFinancialModel, &report.Financial); err != nil {
			return err
		}
		if err := latestPayload(ctx, st, orgID, model.ResultKindRoadmap, &report.Roadmap); err != nil {
			return err
		}
		if err := latestSimulation(ctx, st, orgID, &report.Simulation); err != nil {
			return err
		}

		if report.Data == nil && report.AI == nil {
			return eris.Errorf("no stored maturity results for %q; run score --save first", orgID)
		}

		if err := export.WriteWorkbook(output, report); err != nil {
			return err
		}
		zap.L().Info("workbook exported",
			zap.String("org", orgID),
			zap.String("path", output),
		)
		return nil
	},
}

// latestPayload decodes the newest stored result of a kind into out (one of
// the report's section pointers). No stored result leaves out untouched.
func latestPayload[T any](ctx context.Context, st store.Store, orgID string, kind model.ResultKind, out **T) error {
	results, err := st.ListResults(ctx, store.ResultFilter{OrgID: orgID, Kind: kind, Limit: 1})
	if err != nil {
		return err
	}
	if len(results) == 0 {
		return nil
	}

	var v T
	if err := json.Unmarshal(results[0].Payload, &v); err != nil {
		return eris.Wrapf(err, "decode stored %s result", kind)
	}
	*out = &v
	return nil
}

// latestSimulation handles the two stored simulation payload shapes: a plain
// outcome list, or a comparison when the run used --compare. The workbook
// takes the first (best-ranked) outcome either way.
func latestSimulation(ctx context.Context, st store.Store, orgID string, out **simulate.Outcome) error {
	results, err := st.ListResults(ctx, store.ResultFilter{OrgID: orgID, Kind: model.ResultKindSimulation, Limit: 1})
	if err != nil {
		return err
	}
	if len(results) == 0 {
		return nil
	}

	var outcomes []simulate.Outcome
	if err := json.Unmarshal(results[0].Payload, &outcomes); err == nil && len(outcomes) > 0 {
		*out = &outcomes[0]
		return nil
	}

	var cmp simulate.Comparison
	if err := json.Unmarshal(results[0].Payload, &cmp); err != nil {
		return eris.Wrap(err, "decode stored simulation result")
	}
	if len(cmp.Ranked) > 0 {
		*out = &cmp.Ranked[0].Outcome
	}
	return nil
}

func init() {
	f := exportCmd.Flags()
	f.String("org", "", "organisation identifier")
	f.String("output", "report.xlsx", "output workbook path")
	exportCmd.MarkFlagRequired("org") //nolint:errcheck
	rootCmd.AddCommand(exportCmd)
}
