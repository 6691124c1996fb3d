// Package export writes a consolidated analysis to local files, one file per
// section plus the full document, mirroring the layout users expect from the
// text exports.
package export

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/market-intel/internal/model"
)

// Exporter writes analyses under a base directory.
type Exporter struct {
	baseDir string
}

// New creates an Exporter rooted at baseDir.
func New(baseDir string) *Exporter {
	return &Exporter{baseDir: baseDir}
}

// section pairs a file stem with the value serialized into it.
type section struct {
	name  string
	value any
}

// Export writes one directory per analysis containing the full document and
// a file per section. Section files are written concurrently. Returns the
// directory path.
func (e *Exporter) Export(ctx context.Context, doc *model.ConsolidatedAnalysis) (string, error) {
	dir := filepath.Join(e.baseDir, exportDirName(doc))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", eris.Wrapf(err, "export: create dir %s", dir)
	}

	sections := []section{
		{"analise_completa", doc},
		{"projeto_dados", doc.Request},
		{"pesquisa_massiva", doc.Research},
		{"analise_ia", doc.AI},
		{"drivers_mentais_customizados", doc.MentalTriggers},
		{"provas_visuais_instantaneas", doc.VisualProofs},
		{"sistema_anti_objecao", doc.Objections},
		{"pre_pitch_invisivel", doc.PrePitch},
		{"predicoes_futuro", doc.Predictions},
		{"metadata", doc.Metadata},
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, sec := range sections {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return writeSection(dir, sec)
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}

	zap.L().Info("analysis exported",
		zap.String("dir", dir),
		zap.Int("sections", len(sections)),
	)
	return dir, nil
}

func writeSection(dir string, sec section) error {
	data, err := json.MarshalIndent(sec.value, "", "  ")
	if err != nil {
		return eris.Wrapf(err, "export: marshal %s", sec.name)
	}
	path := filepath.Join(dir, sec.name+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return eris.Wrapf(err, "export: write %s", path)
	}
	return nil
}

// exportDirName builds a stable, filesystem-safe directory name from the
// session and timestamp.
func exportDirName(doc *model.ConsolidatedAnalysis) string {
	ts := doc.ConsolidatedAt
	if ts.IsZero() {
		ts = time.Now().UTC()
	}
	session := doc.Request.SessionID
	if session == "" {
		session = "sem_sessao"
	}
	return fmt.Sprintf("analise_%s_%s", ts.Format("20060102_150405"), session)
}
