// Package generator holds the AI-backed content builders: the main analysis
// inference provider and the five specialized generators that enrich an
// analysis (mental triggers, visual proofs, objection handling, pre-pitch,
// future predictions).
package generator

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/market-intel/internal/config"
	"github.com/sells-group/market-intel/internal/resilience"
	"github.com/sells-group/market-intel/pkg/anthropic"
)

const generatorMaxTokens = 4096

// Generator is the shared base for the specialized builders. Each builder
// sends a single Portuguese prompt and expects a JSON object back.
type Generator struct {
	client anthropic.Client
	model  string
	retry  resilience.RetryConfig
}

// NewGenerator creates the shared builder base.
func NewGenerator(client anthropic.Client, cfg config.AnthropicConfig) *Generator {
	model := cfg.GeneratorModel
	if model == "" {
		model = cfg.AnalysisModel
	}
	return &Generator{
		client: client,
		model:  model,
		retry:  resilience.DefaultRetryConfig(),
	}
}

// completeJSON sends one prompt and parses the JSON object in the reply.
func (g *Generator) completeJSON(ctx context.Context, phase, system, prompt string) (map[string]any, error) {
	resp, err := resilience.DoVal(ctx, g.withLogger(phase), func(ctx context.Context) (*anthropic.MessageResponse, error) {
		return g.client.CreateMessage(ctx, anthropic.MessageRequest{
			Model:     g.model,
			MaxTokens: generatorMaxTokens,
			System:    system,
			Messages: []anthropic.Message{
				{Role: "user", Content: prompt},
			},
		})
	})
	if err != nil {
		return nil, eris.Wrapf(err, "generator: %s completion", phase)
	}
	resp.Usage.LogUsage(g.model, phase)

	text := stripFences(resp.Text())
	if text == "" {
		return nil, eris.Errorf("generator: %s returned empty response", phase)
	}

	var out map[string]any
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		return nil, eris.Wrapf(err, "generator: %s returned invalid JSON", phase)
	}
	return out, nil
}

func (g *Generator) withLogger(phase string) resilience.RetryConfig {
	retry := g.retry
	retry.OnRetry = resilience.RetryLogger("anthropic", phase)
	return retry
}

// stripFences removes a surrounding markdown code fence, if present.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// jsonBlock renders a value as indented JSON for prompt embedding.
func jsonBlock(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(b)
}
