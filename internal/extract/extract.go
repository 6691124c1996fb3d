// Package extract turns URLs into plaintext content for research. Extractors
// form a chain: the first one to return usable content wins.
package extract

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/market-intel/internal/resilience"
)

// Extractor fetches the readable text of a single page.
type Extractor interface {
	Extract(ctx context.Context, url string) (string, error)
	Name() string
}

// Chain tries extractors in order and returns the first non-empty content.
type Chain struct {
	extractors []Extractor
	retry      resilience.RetryConfig
}

// NewChain creates an extraction chain over the given extractors, tried in
// order.
func NewChain(extractors ...Extractor) *Chain {
	retry := resilience.DefaultRetryConfig()
	retry.MaxAttempts = 2
	return &Chain{
		extractors: extractors,
		retry:      retry,
	}
}

// Extract runs the chain for one URL. Every extractor failing is an error;
// an extractor succeeding with empty content falls through to the next.
func (c *Chain) Extract(ctx context.Context, url string) (string, error) {
	if len(c.extractors) == 0 {
		return "", eris.New("extract: no extractors configured")
	}

	var lastErr error
	for _, e := range c.extractors {
		retry := c.retry
		retry.OnRetry = resilience.RetryLogger(e.Name(), "extract")

		content, err := resilience.DoVal(ctx, retry, func(ctx context.Context) (string, error) {
			return e.Extract(ctx, url)
		})
		if err != nil {
			zap.L().Debug("extract: extractor failed, trying next",
				zap.String("extractor", e.Name()),
				zap.String("url", url),
				zap.Error(err),
			)
			lastErr = err
			continue
		}
		if content == "" {
			continue
		}
		return content, nil
	}

	if lastErr != nil {
		return "", eris.Wrapf(lastErr, "extract: all extractors failed for %s", url)
	}
	return "", eris.Errorf("extract: no content for %s", url)
}
