package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/francesca-tabor-ai/MATURITY-OS-sub001/internal/model"
	"github.com/francesca-tabor-ai/MATURITY-OS-sub001/internal/store"
)

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Inspect stored assessment results",
}

var resultsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored results",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		orgID, _ := cmd.Flags().GetString("org")
		kind, _ := cmd.Flags().GetString("kind")
		limit, _ := cmd.Flags().GetInt("limit")

		results, err := st.ListResults(ctx, store.ResultFilter{
			OrgID: orgID,
			Kind:  model.ResultKind(kind),
			Limit: limit,
		})
		if err != nil {
			return eris.Wrap(err, "results list")
		}

		if len(results) == 0 {
			fmt.Fprintln(os.Stderr, "No results found.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tORG\tKIND\tCREATED")
		for _, r := range results {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				r.ID, r.OrgID, r.Kind, r.CreatedAt.Format("2006-01-02 15:04:05"))
		}
		return w.Flush()
	},
}

var resultsShowCmd = &cobra.Command{
	Use:   "show <result-id>",
	Short: "Show a stored result payload",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		r, err := st.GetResult(ctx, args[0])
		if err != nil {
			return err
		}

		fmt.Printf("ID:      %s\nOrg:     %s\nKind:    %s\nCreated: %s\n\n",
			r.ID, r.OrgID, r.Kind, r.CreatedAt.Format("2006-01-02 15:04:05"))
		fmt.Println(string(r.Payload))
		return nil
	},
}

func init() {
	f := resultsListCmd.Flags()
	f.String("org", "", "filter by organisation")
	f.String("kind", "", "filter by result kind")
	f.Int("limit", 0, "maximum rows (default 100)")

	resultsCmd.AddCommand(resultsListCmd, resultsShowCmd)
	rootCmd.AddCommand(resultsCmd)
}
