package search

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/sells-group/market-intel/internal/model"
	"github.com/sells-group/market-intel/pkg/serper"
)

// SerperProvider adapts the Serper.dev client to the Provider interface.
type SerperProvider struct {
	client   serper.Client
	country  string
	language string
}

// NewSerperProvider creates a provider backed by Serper.dev, localized for
// Brazilian Portuguese results.
func NewSerperProvider(client serper.Client) *SerperProvider {
	return &SerperProvider{
		client:   client,
		country:  "br",
		language: "pt-br",
	}
}

func (p *SerperProvider) Name() string { return "serper" }

func (p *SerperProvider) Search(ctx context.Context, query string, maxResults int) ([]model.SearchHit, error) {
	resp, err := p.client.Search(ctx, serper.SearchRequest{
		Query:    query,
		Num:      maxResults,
		Country:  p.country,
		Language: p.language,
	})
	if err != nil {
		return nil, eris.Wrap(err, "serper search")
	}

	hits := make([]model.SearchHit, 0, len(resp.Organic))
	for _, r := range resp.Organic {
		if r.Link == "" {
			continue
		}
		hits = append(hits, model.SearchHit{
			URL:     r.Link,
			Title:   r.Title,
			Snippet: r.Snippet,
		})
	}
	return hits, nil
}
