package engine

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/sells-group/market-intel/internal/model"
)

// runResearch drives the search provider and the content extractor across
// the planned queries and accumulates the corpus. No hard failure path
// exists here: provider errors, empty queries and empty extractions are all
// logged and skipped, and even a fully empty corpus is returned rather than
// raised.
func (e *Engine) runResearch(ctx context.Context, queries []string, rep Reporter) *model.ResearchCorpus {
	corpus := &model.ResearchCorpus{
		Queries:   queries,
		Timestamp: time.Now().UTC(),
	}
	seen := make(map[string]bool)

	for i, query := range queries {
		report(rep, 2, fmt.Sprintf("Pesquisando: %.50s", query), fmt.Sprintf("Query %d/%d", i+1, len(queries)))

		// Pacing between queries to respect provider rate limits. Blocking
		// wait; nothing else proceeds during it.
		if i > 0 {
			if err := e.limiter.Wait(ctx); err != nil {
				zap.L().Warn("engine: query pacing interrupted", zap.Error(err))
			}
		}

		hits, err := e.search.Search(ctx, query, e.cfg.MaxHitsPerQuery)
		if err != nil {
			zap.L().Error("engine: search failed for query",
				zap.String("query", query),
				zap.Error(err),
			)
			continue
		}
		if len(hits) == 0 {
			zap.L().Warn("engine: query returned no results", zap.String("query", query))
			continue
		}
		corpus.Hits = append(corpus.Hits, hits...)

		kept := 0
		for _, hit := range hits {
			if seen[hit.URL] {
				// First occurrence wins across queries.
				continue
			}
			content, err := e.extract.Extract(ctx, hit.URL)
			if err != nil {
				zap.L().Debug("engine: extraction failed",
					zap.String("url", hit.URL),
					zap.Error(err),
				)
				continue
			}
			// Floors and caps count characters, not bytes; Portuguese
			// content is full of multi-byte runes.
			length := utf8.RuneCountInString(content)
			if length < e.cfg.MinPageChars {
				zap.L().Debug("engine: extracted content below floor",
					zap.String("url", hit.URL),
					zap.Int("length", length),
					zap.Int("floor", e.cfg.MinPageChars),
				)
				continue
			}
			content = truncate(content, e.cfg.MaxPageChars)
			seen[hit.URL] = true
			corpus.Pages = append(corpus.Pages, model.ExtractedPage{
				URL:     hit.URL,
				Title:   hit.Title,
				Content: content,
				Snippet: hit.Snippet,
			})
			kept++
		}

		if kept == 0 {
			zap.L().Warn("engine: no usable content extracted for query",
				zap.String("query", query),
			)
		}
	}

	zap.L().Info("engine: research complete",
		zap.Int("queries", len(queries)),
		zap.Int("total_hits", len(corpus.Hits)),
		zap.Int("unique_sources", corpus.UniqueSources()),
		zap.Int("total_content", corpus.TotalContentLength()),
	)
	return corpus
}

// assessResearch evaluates the corpus against the advisory soft floors.
// The returned boolean is logged by the caller but deliberately not wired to
// an abort: by current policy the pipeline always continues with whatever
// corpus was collected, even an empty one.
func (e *Engine) assessResearch(corpus *model.ResearchCorpus) bool {
	content := corpus.TotalContentLength()
	sources := corpus.UniqueSources()

	minContent := max(1000, e.cfg.MinContentChars/6)
	minSources := max(3, e.cfg.MinSources/3)

	ideal := true
	if content < minContent {
		zap.L().Warn("engine: content below ideal floor",
			zap.Int("content", content),
			zap.Int("floor", minContent),
		)
		ideal = false
	}
	if sources < minSources {
		zap.L().Warn("engine: sources below ideal floor",
			zap.Int("sources", sources),
			zap.Int("floor", minSources),
		)
		ideal = false
	}

	if ideal {
		zap.L().Info("engine: research quality ok",
			zap.Int("content", content),
			zap.Int("sources", sources),
		)
	}

	// Minimal acceptance check, also advisory only.
	return content > 0 && sources > 0
}
