package generator

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/market-intel/internal/config"
	"github.com/sells-group/market-intel/internal/model"
	"github.com/sells-group/market-intel/pkg/anthropic"
)

type fakeAnthropicClient struct {
	req  anthropic.MessageRequest
	text string
	err  error
}

func (f *fakeAnthropicClient) CreateMessage(_ context.Context, req anthropic.MessageRequest) (*anthropic.MessageResponse, error) {
	f.req = req
	if f.err != nil {
		return nil, f.err
	}
	return &anthropic.MessageResponse{
		Content: []anthropic.ContentBlock{{Type: "text", Text: f.text}},
	}, nil
}

func testAnthropicConfig() config.AnthropicConfig {
	return config.AnthropicConfig{
		AnalysisModel:  "model-analysis",
		GeneratorModel: "model-generator",
	}
}

func TestStripFences(t *testing.T) {
	want := `{"k": "v"}`
	for _, in := range []string{
		want,
		"```json\n" + want + "\n```",
		"```\n" + want + "\n```",
		"  " + want + "  ",
	} {
		assert.Equal(t, want, stripFences(in))
	}
}

func TestGenerator_CompleteJSON(t *testing.T) {
	client := &fakeAnthropicClient{text: "```json\n{\"drivers_customizados\": []}\n```"}
	g := NewGenerator(client, testAnthropicConfig())

	out, err := g.completeJSON(context.Background(), "teste", "sistema", "prompt")
	require.NoError(t, err)
	assert.Contains(t, out, "drivers_customizados")
	assert.Equal(t, "model-generator", client.req.Model)
	assert.Equal(t, "sistema", client.req.System)
}

func TestGenerator_CompleteJSONInvalid(t *testing.T) {
	client := &fakeAnthropicClient{text: "não é json"}
	g := NewGenerator(client, testAnthropicConfig())

	_, err := g.completeJSON(context.Background(), "teste", "sistema", "prompt")
	assert.Error(t, err)
}

func TestGenerator_CompleteJSONEmpty(t *testing.T) {
	client := &fakeAnthropicClient{text: "   "}
	g := NewGenerator(client, testAnthropicConfig())

	_, err := g.completeJSON(context.Background(), "teste", "sistema", "prompt")
	assert.Error(t, err)
}

func TestGenerator_FallsBackToAnalysisModel(t *testing.T) {
	client := &fakeAnthropicClient{text: "{}"}
	g := NewGenerator(client, config.AnthropicConfig{AnalysisModel: "only-model"})

	_, _ = g.completeJSON(context.Background(), "teste", "sistema", "prompt")
	assert.Equal(t, "only-model", client.req.Model)
}

func TestAnalyst_Infer(t *testing.T) {
	client := &fakeAnthropicClient{text: "resposta do modelo"}
	a := NewAnalyst(client, testAnthropicConfig())

	text, err := a.Infer(context.Background(), "prompt de análise", 8192)
	require.NoError(t, err)
	assert.Equal(t, "resposta do modelo", text)
	assert.Equal(t, "model-analysis", client.req.Model)
	assert.Equal(t, int64(8192), client.req.MaxTokens)
	require.Len(t, client.req.Messages, 1)
	assert.Equal(t, "prompt de análise", client.req.Messages[0].Content)
}

func TestAnalyst_InferError(t *testing.T) {
	a := NewAnalyst(&fakeAnthropicClient{err: errors.New("api down")}, testAnthropicConfig())
	_, err := a.Infer(context.Background(), "prompt", 100)
	assert.Error(t, err)
}

func TestBuilders_PromptsCarryContext(t *testing.T) {
	client := &fakeAnthropicClient{text: "{}"}
	g := NewGenerator(client, testAnthropicConfig())
	req := model.AnalysisRequest{Segment: "fitness", Product: "App Treino", Price: "R$ 97"}

	_, err := NewTriggerBuilder(g).BuildTriggers(context.Background(),
		map[string]any{"dores_viscerais": []string{"sem tempo"}}, req)
	require.NoError(t, err)
	assert.Contains(t, client.req.Messages[0].Content, "fitness")
	assert.Contains(t, client.req.Messages[0].Content, "sem tempo")

	_, err = NewProofBuilder(g).BuildProofs(context.Background(),
		[]string{"conceito um", "conceito dois"}, model.AIAnalysis{}, req)
	require.NoError(t, err)
	assert.Contains(t, client.req.Messages[0].Content, "conceito um")

	_, err = NewObjectionBuilder(g).BuildObjections(context.Background(),
		[]string{"está caro"}, model.AIAnalysis{}, req)
	require.NoError(t, err)
	assert.Contains(t, client.req.Messages[0].Content, "está caro")
	assert.Contains(t, client.req.Messages[0].Content, "R$ 97")

	_, err = NewPitchBuilder(g).BuildPrePitch(context.Background(),
		model.AIAnalysis{}, model.DerivedPayload{}, req)
	require.NoError(t, err)
	assert.Contains(t, client.req.Messages[0].Content, "nenhum driver disponível")

	_, err = NewPredictionBuilder(g).BuildPredictions(context.Background(),
		req, model.ResearchSummary{Sources: []model.Source{{URL: "https://a.com.br", Title: "A"}}})
	require.NoError(t, err)
	assert.Contains(t, client.req.Messages[0].Content, "https://a.com.br")
}
