package generator

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/sells-group/market-intel/internal/config"
	"github.com/sells-group/market-intel/internal/resilience"
	"github.com/sells-group/market-intel/pkg/anthropic"
)

// Analyst runs the main market-analysis completion. It is a thin inference
// provider: prompt construction and response validation belong to the engine.
type Analyst struct {
	client anthropic.Client
	model  string
	retry  resilience.RetryConfig
}

// NewAnalyst creates the main inference provider.
func NewAnalyst(client anthropic.Client, cfg config.AnthropicConfig) *Analyst {
	return &Analyst{
		client: client,
		model:  cfg.AnalysisModel,
		retry:  resilience.DefaultRetryConfig(),
	}
}

// Infer sends the prompt and returns the raw completion text.
func (a *Analyst) Infer(ctx context.Context, prompt string, maxTokens int) (string, error) {
	retry := a.retry
	retry.OnRetry = resilience.RetryLogger("anthropic", "analysis")

	resp, err := resilience.DoVal(ctx, retry, func(ctx context.Context) (*anthropic.MessageResponse, error) {
		return a.client.CreateMessage(ctx, anthropic.MessageRequest{
			Model:     a.model,
			MaxTokens: int64(maxTokens),
			Messages: []anthropic.Message{
				{Role: "user", Content: prompt},
			},
		})
	})
	if err != nil {
		return "", eris.Wrap(err, "analyst: create message")
	}
	resp.Usage.LogUsage(a.model, "analysis")

	return resp.Text(), nil
}
