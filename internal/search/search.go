// Package search provides web search across providers with fallback. The
// waterfall tries providers in priority order and keeps per-provider
// availability counters, replacing any notion of global provider registries.
package search

import (
	"context"
	"sync"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/market-intel/internal/model"
	"github.com/sells-group/market-intel/internal/resilience"
)

// Provider performs a single web search. An empty result set is valid.
type Provider interface {
	Search(ctx context.Context, query string, maxResults int) ([]model.SearchHit, error)
	Name() string
}

// ProviderStatus reports one provider's observed health.
type ProviderStatus struct {
	Name      string `json:"name"`
	Available bool   `json:"available"`
	Searches  int    `json:"searches"`
	Errors    int    `json:"errors"`
}

// Waterfall tries providers in order, returning the first non-empty result
// set. Provider failures are absorbed; only a full miss across all
// providers is an error.
type Waterfall struct {
	providers []Provider
	retry     resilience.RetryConfig

	mu    sync.Mutex
	stats map[string]*providerStats
}

type providerStats struct {
	searches int
	errors   int
}

// NewWaterfall creates a Waterfall over the given providers, tried in order.
func NewWaterfall(providers ...Provider) *Waterfall {
	stats := make(map[string]*providerStats, len(providers))
	for _, p := range providers {
		stats[p.Name()] = &providerStats{}
	}
	retry := resilience.DefaultRetryConfig()
	retry.MaxAttempts = 2
	return &Waterfall{
		providers: providers,
		retry:     retry,
		stats:     stats,
	}
}

// Search queries providers in priority order and returns the first
// non-empty hit list, capped at maxResults. An empty list with nil error
// means every provider answered but none had results.
func (w *Waterfall) Search(ctx context.Context, query string, maxResults int) ([]model.SearchHit, error) {
	if len(w.providers) == 0 {
		return nil, eris.New("search: no providers configured")
	}

	var lastErr error
	for _, p := range w.providers {
		retry := w.retry
		retry.OnRetry = resilience.RetryLogger(p.Name(), "search")

		hits, err := resilience.DoVal(ctx, retry, func(ctx context.Context) ([]model.SearchHit, error) {
			return p.Search(ctx, query, maxResults)
		})
		w.record(p.Name(), err)
		if err != nil {
			zap.L().Warn("search: provider failed, trying next",
				zap.String("provider", p.Name()),
				zap.String("query", query),
				zap.Error(err),
			)
			lastErr = err
			continue
		}
		if len(hits) == 0 {
			zap.L().Debug("search: provider returned no hits",
				zap.String("provider", p.Name()),
				zap.String("query", query),
			)
			continue
		}
		if len(hits) > maxResults {
			hits = hits[:maxResults]
		}
		return hits, nil
	}

	if lastErr != nil {
		return nil, eris.Wrap(lastErr, "search: all providers failed")
	}
	return nil, nil
}

func (w *Waterfall) record(name string, err error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	s := w.stats[name]
	if s == nil {
		s = &providerStats{}
		w.stats[name] = s
	}
	s.searches++
	if err != nil {
		s.errors++
	}
}

// Status reports the observed health of each provider in priority order. A
// provider is considered available until every search it served has failed.
func (w *Waterfall) Status() []ProviderStatus {
	w.mu.Lock()
	defer w.mu.Unlock()

	out := make([]ProviderStatus, 0, len(w.providers))
	for _, p := range w.providers {
		s := w.stats[p.Name()]
		out = append(out, ProviderStatus{
			Name:      p.Name(),
			Available: s.searches == 0 || s.errors < s.searches,
			Searches:  s.searches,
			Errors:    s.errors,
		})
	}
	return out
}
