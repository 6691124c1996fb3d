package search

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/market-intel/pkg/jina"
	"github.com/sells-group/market-intel/pkg/serper"
)

type fakeSerperClient struct {
	req  serper.SearchRequest
	resp *serper.SearchResponse
	err  error
}

func (f *fakeSerperClient) Search(_ context.Context, req serper.SearchRequest) (*serper.SearchResponse, error) {
	f.req = req
	return f.resp, f.err
}

func TestSerperProvider_MapsHits(t *testing.T) {
	client := &fakeSerperClient{resp: &serper.SearchResponse{
		Organic: []serper.OrganicResult{
			{Title: "Fonte A", Link: "https://a.com.br", Snippet: "resumo A"},
			{Title: "Sem link"},
			{Title: "Fonte B", Link: "https://b.com.br", Snippet: "resumo B"},
		},
	}}
	p := NewSerperProvider(client)

	hits, err := p.Search(context.Background(), "mercado fitness", 10)
	require.NoError(t, err)
	require.Len(t, hits, 2, "results without a link are dropped")
	assert.Equal(t, "https://a.com.br", hits[0].URL)
	assert.Equal(t, "resumo A", hits[0].Snippet)

	assert.Equal(t, "mercado fitness", client.req.Query)
	assert.Equal(t, 10, client.req.Num)
	assert.Equal(t, "br", client.req.Country)
	assert.Equal(t, "pt-br", client.req.Language)
}

func TestSerperProvider_Error(t *testing.T) {
	p := NewSerperProvider(&fakeSerperClient{err: assert.AnError})
	_, err := p.Search(context.Background(), "q", 5)
	assert.Error(t, err)
}

type fakeJinaClient struct {
	searchResp *jina.SearchResponse
	searchErr  error
}

func (f *fakeJinaClient) Read(context.Context, string) (*jina.ReadResponse, error) {
	return nil, nil
}

func (f *fakeJinaClient) Search(context.Context, string) (*jina.SearchResponse, error) {
	return f.searchResp, f.searchErr
}

func TestJinaProvider_MapsHitsAndCaps(t *testing.T) {
	client := &fakeJinaClient{searchResp: &jina.SearchResponse{
		Data: []jina.SearchResult{
			{Title: "A", URL: "https://a.com.br", Description: "descrição"},
			{Title: "B", URL: "https://b.com.br", Content: "só conteúdo"},
			{Title: "C", URL: "https://c.com.br"},
		},
	}}
	p := NewJinaProvider(client)

	hits, err := p.Search(context.Background(), "mercado fitness", 2)
	require.NoError(t, err)
	require.Len(t, hits, 2)
	assert.Equal(t, "descrição", hits[0].Snippet)
	assert.Equal(t, "só conteúdo", hits[1].Snippet, "falls back to content when description is empty")
}

func TestJinaProvider_EmptyResults(t *testing.T) {
	p := NewJinaProvider(&fakeJinaClient{searchResp: &jina.SearchResponse{Code: 422}})
	hits, err := p.Search(context.Background(), "nicho obscuro", 5)
	require.NoError(t, err)
	assert.Empty(t, hits)
}
