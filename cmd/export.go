package main

import (
	"github.com/spf13/cobra"

	"github.com/sells-group/market-intel/internal/export"
	"github.com/sells-group/market-intel/internal/store"
)

var exportDir string

var exportCmd = &cobra.Command{
	Use:   "export <id>",
	Short: "Export a saved analysis to section files",
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

		baseDir := exportDir
		if baseDir == "" {
			baseDir = cfg.Export.BaseDir
		}

		dir, err := export.New(baseDir).Export(ctx, &rec.Document)
		if err != nil {
			return err
		}
		cmd.Printf("exported to %s\n", dir)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportDir, "dir", "", "export base directory (default from config)")
	rootCmd.AddCommand(exportCmd)
}
