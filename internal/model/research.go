package model

import "time"

// SearchHit is a single result from a search provider. The same URL may
// appear in hits for multiple queries.
type SearchHit struct {
	URL     string `json:"url"`
	Title   string `json:"title"`
	Snippet string `json:"snippet,omitempty"`
}

// ExtractedPage is a page whose text survived extraction. Content is already
// truncated to the configured cap by the aggregator.
type ExtractedPage struct {
	URL     string `json:"url"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Snippet string `json:"snippet,omitempty"`
}

// Source identifies an extracted page without its content.
type Source struct {
	URL   string `json:"url"`
	Title string `json:"title"`
}

// ResearchCorpus accumulates one run's web research. Pages is unique by URL
// (first occurrence wins); aggregate statistics are always derived from Pages
// rather than tracked independently.
type ResearchCorpus struct {
	Queries   []string        `json:"queries_executed"`
	Hits      []SearchHit     `json:"-"`
	Pages     []ExtractedPage `json:"extracted_content"`
	Timestamp time.Time       `json:"research_timestamp"`
}

// UniqueSources returns the number of deduplicated pages.
func (c *ResearchCorpus) UniqueSources() int {
	return len(c.Pages)
}

// TotalContentLength returns the sum of content lengths over unique pages.
func (c *ResearchCorpus) TotalContentLength() int {
	total := 0
	for _, p := range c.Pages {
		total += len(p.Content)
	}
	return total
}

// Sources lists the corpus pages as url/title pairs for the final document.
func (c *ResearchCorpus) Sources() []Source {
	sources := make([]Source, 0, len(c.Pages))
	for _, p := range c.Pages {
		sources = append(sources, Source{URL: p.URL, Title: p.Title})
	}
	return sources
}

// Stats summarizes the corpus for consolidation.
func (c *ResearchCorpus) Stats() ResearchStats {
	return ResearchStats{
		TotalQueries:       len(c.Queries),
		TotalResults:       len(c.Hits),
		UniqueSources:      c.UniqueSources(),
		TotalContentLength: c.TotalContentLength(),
	}
}

// ResearchStats holds the corpus summary counts embedded in the final document.
type ResearchStats struct {
	TotalQueries       int `json:"total_queries"`
	TotalResults       int `json:"total_resultados"`
	UniqueSources      int `json:"fontes_unicas"`
	TotalContentLength int `json:"total_conteudo"`
}

// ResearchSummary is the research view carried into the consolidated
// document: counts and the source list, never the full extracted text.
type ResearchSummary struct {
	Stats   ResearchStats `json:"estatisticas"`
	Sources []Source      `json:"fontes"`
}
