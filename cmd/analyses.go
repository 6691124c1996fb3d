package main

import (
	"encoding/json"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/market-intel/internal/store"
)

var (
	listSegment string
	listLimit   int
)

var analysesCmd = &cobra.Command{
	Use:   "analyses",
	Short: "Manage saved analyses",
}

var analysesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved analyses",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		st, err := store.Open(ctx, cfg.Store)
		if err != nil {
			return err
		}
		defer st.Close()

		recs, err := st.ListAnalyses(ctx, store.Filter{Segment: listSegment, Limit: listLimit})
		if err != nil {
			return err
		}

		for _, r := range recs {
			cmd.Printf("%s  %-30s  score=%5.1f  %s\n",
				r.ID, r.Segment, r.Score, r.CreatedAt.Format("2006-01-02 15:04"))
		}
		cmd.Printf("%d analyses\n", len(recs))
		return nil
	},
}

var analysesGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Print one analysis as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		st, err := store.Open(ctx, cfg.Store)
		if err != nil {
			return err
		}
		defer st.Close()

		rec, err := st.GetAnalysis(ctx, args[0])
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(rec, "", "  ")
		if err != nil {
			return eris.Wrap(err, "marshal analysis")
		}
		cmd.Println(string(out))
		return nil
	},
}

var analysesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a saved analysis",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		st, err := store.Open(ctx, cfg.Store)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.DeleteAnalysis(ctx, args[0]); err != nil {
			return err
		}
		cmd.Printf("deleted %s\n", args[0])
		return nil
	},
}

func init() {
	analysesListCmd.Flags().StringVar(&listSegment, "segment", "", "filter by segment")
	analysesListCmd.Flags().IntVar(&listLimit, "limit", 50, "maximum results")
	analysesCmd.AddCommand(analysesListCmd, analysesGetCmd, analysesDeleteCmd)
	rootCmd.AddCommand(analysesCmd)
}
