package main

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/market-intel/internal/engine"
	"github.com/sells-group/market-intel/internal/model"
	"github.com/sells-group/market-intel/internal/store"
)

var (
	analyzeFile    string
	analyzeExport  bool
	analyzeRequest model.AnalysisRequest
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run a full market analysis",
	Long:  "Runs the complete pipeline (research, AI analysis, derived content, consolidation) for one request and prints the scored document as JSON.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		req := analyzeRequest
		if analyzeFile != "" {
			data, err := os.ReadFile(analyzeFile)
			if err != nil {
				return eris.Wrapf(err, "read request file %s", analyzeFile)
			}
			if err := json.Unmarshal(data, &req); err != nil {
				return eris.Wrapf(err, "parse request file %s", analyzeFile)
			}
		}

		env, err := initEngine(ctx)
		if err != nil {
			return err
		}
		defer env.Close()

		doc, err := env.Engine.Run(ctx, req, engine.LogReporter{})
		if err != nil {
			return err
		}

		rec, err := env.Store.SaveAnalysis(ctx, store.AnalysisRecord{
			SessionID: doc.Request.SessionID,
			Segment:   doc.Request.TrimmedSegment(),
			Score:     doc.Metadata.QualityScore,
			Document:  *doc,
		})
		if err != nil {
			zap.L().Error("save analysis failed, printing result anyway", zap.Error(err))
		} else {
			zap.L().Info("analysis saved", zap.String("id", rec.ID))
		}

		if analyzeExport {
			dir, err := env.Exporter.Export(ctx, doc)
			if err != nil {
				zap.L().Error("export failed", zap.Error(err))
			} else {
				zap.L().Info("analysis exported", zap.String("dir", dir))
			}
		}

		out, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return eris.Wrap(err, "marshal document")
		}
		cmd.Println(string(out))
		return nil
	},
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeFile, "file", "f", "", "JSON file with the analysis request")
	analyzeCmd.Flags().BoolVar(&analyzeExport, "export", false, "also export the document to section files")
	analyzeCmd.Flags().StringVar(&analyzeRequest.Segment, "segment", "", "market segment (required unless --file)")
	analyzeCmd.Flags().StringVar(&analyzeRequest.Product, "product", "", "product or service name")
	analyzeCmd.Flags().StringVar(&analyzeRequest.Audience, "audience", "", "target audience")
	analyzeCmd.Flags().StringVar(&analyzeRequest.Price, "price", "", "price point")
	analyzeCmd.Flags().StringVar(&analyzeRequest.Competitors, "competitors", "", "known competitors")
	analyzeCmd.Flags().StringVar(&analyzeRequest.Query, "query", "", "search query override")
	rootCmd.AddCommand(analyzeCmd)
}
