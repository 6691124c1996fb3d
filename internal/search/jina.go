package search

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/sells-group/market-intel/internal/model"
	"github.com/sells-group/market-intel/pkg/jina"
)

// JinaProvider adapts the Jina AI search API to the Provider interface. It
// sits behind Serper in the waterfall as the fallback engine.
type JinaProvider struct {
	client jina.Client
}

// NewJinaProvider creates a provider backed by Jina AI Search.
func NewJinaProvider(client jina.Client) *JinaProvider {
	return &JinaProvider{client: client}
}

func (p *JinaProvider) Name() string { return "jina" }

func (p *JinaProvider) Search(ctx context.Context, query string, maxResults int) ([]model.SearchHit, error) {
	resp, err := p.client.Search(ctx, query)
	if err != nil {
		return nil, eris.Wrap(err, "jina search")
	}

	hits := make([]model.SearchHit, 0, len(resp.Data))
	for _, r := range resp.Data {
		if r.URL == "" {
			continue
		}
		snippet := r.Description
		if snippet == "" {
			snippet = r.Content
		}
		hits = append(hits, model.SearchHit{
			URL:     r.URL,
			Title:   r.Title,
			Snippet: snippet,
		})
		if len(hits) >= maxResults {
			break
		}
	}
	return hits, nil
}
