package extract

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/sells-group/market-intel/pkg/jina"
)

// JinaExtractor adapts the Jina AI Reader to the Extractor interface. It
// handles JavaScript-heavy pages the plain HTTP extractor cannot.
type JinaExtractor struct {
	client jina.Client
}

// NewJinaExtractor creates an extractor backed by Jina AI Reader.
func NewJinaExtractor(client jina.Client) *JinaExtractor {
	return &JinaExtractor{client: client}
}

func (e *JinaExtractor) Name() string { return "jina_reader" }

func (e *JinaExtractor) Extract(ctx context.Context, url string) (string, error) {
	resp, err := e.client.Read(ctx, url)
	if err != nil {
		return "", eris.Wrap(err, "jina reader")
	}
	return resp.Data.Content, nil
}
