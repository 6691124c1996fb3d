package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResearchCorpus_Stats(t *testing.T) {
	corpus := ResearchCorpus{
		Queries: []string{"q1", "q2", "q3"},
		Hits: []SearchHit{
			{URL: "https://a.com.br"},
			{URL: "https://a.com.br"},
			{URL: "https://b.com.br"},
		},
		Pages: []ExtractedPage{
			{URL: "https://a.com.br", Title: "A", Content: "abcde"},
			{URL: "https://b.com.br", Title: "B", Content: "fghij"},
		},
	}

	stats := corpus.Stats()
	assert.Equal(t, 3, stats.TotalQueries)
	assert.Equal(t, 3, stats.TotalResults)
	assert.Equal(t, 2, stats.UniqueSources)
	assert.Equal(t, 10, stats.TotalContentLength)
}

func TestResearchCorpus_Sources(t *testing.T) {
	corpus := ResearchCorpus{
		Pages: []ExtractedPage{
			{URL: "https://a.com.br", Title: "A", Content: "conteúdo"},
		},
	}

	sources := corpus.Sources()
	assert.Equal(t, []Source{{URL: "https://a.com.br", Title: "A"}}, sources)
}

func TestResearchCorpus_Empty(t *testing.T) {
	var corpus ResearchCorpus
	assert.Zero(t, corpus.UniqueSources())
	assert.Zero(t, corpus.TotalContentLength())
	assert.Empty(t, corpus.Sources())
}
