package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/market-intel/internal/model"
)

func analysisWithAvatar(t *testing.T) model.AIAnalysis {
	t.Helper()
	analysis, err := parseAnalysis(completeAnalysisJSON(t))
	require.NoError(t, err)
	return analysis
}

func derivedDeps(builder *fakeBuilder) Deps {
	return Deps{
		Triggers:    builder,
		Proofs:      builder,
		Objections:  builder,
		PrePitch:    builder,
		Predictions: builder,
	}
}

func TestRunDerived_SuccessPassthrough(t *testing.T) {
	builder := &fakeBuilder{out: map[string]any{"resultado": "real"}}
	eng := New(testEngineConfig(), derivedDeps(builder))

	set := eng.runDerived(context.Background(), analysisWithAvatar(t), model.AnalysisRequest{Segment: "fitness"}, model.ResearchSummary{}, nil)

	for _, payload := range []model.DerivedPayload{set.triggers, set.proofs, set.objections, set.prePitch, set.predictions} {
		assert.False(t, payload.Degraded())
		assert.Equal(t, map[string]any{"resultado": "real"}, payload.Content)
	}
	assert.Equal(t, 5, builder.calls)
}

func TestRunDerived_ErrorDegradesToFallback(t *testing.T) {
	builder := &fakeBuilder{err: errors.New("api quota")}
	eng := New(testEngineConfig(), derivedDeps(builder))

	set := eng.runDerived(context.Background(), analysisWithAvatar(t), model.AnalysisRequest{}, model.ResearchSummary{}, nil)

	assert.Equal(t, model.PayloadStatusError, set.triggers.Status)
	assert.Contains(t, set.triggers.Message, "api quota")
	assert.Equal(t, fallbackTriggers, set.triggers.Content)
	assert.Equal(t, fallbackObjections, set.objections.Content)
}

func TestRunDerived_PanicIsolated(t *testing.T) {
	builder := &fakeBuilder{panics: true}
	eng := New(testEngineConfig(), derivedDeps(builder))

	set := eng.runDerived(context.Background(), analysisWithAvatar(t), model.AnalysisRequest{}, model.ResearchSummary{}, nil)

	for _, payload := range []model.DerivedPayload{set.triggers, set.proofs, set.objections, set.prePitch, set.predictions} {
		assert.Equal(t, model.PayloadStatusError, payload.Status)
		assert.NotNil(t, payload.Content)
	}
}

func TestRunDerived_EmptyResultDegradesToFallback(t *testing.T) {
	builder := &fakeBuilder{out: map[string]any{}}
	eng := New(testEngineConfig(), derivedDeps(builder))

	set := eng.runDerived(context.Background(), analysisWithAvatar(t), model.AnalysisRequest{}, model.ResearchSummary{}, nil)

	assert.Equal(t, model.PayloadStatusFallback, set.triggers.Status)
}

func TestRunDerived_MissingAvatarSkipsTriggerCall(t *testing.T) {
	builder := &fakeBuilder{out: map[string]any{"resultado": "real"}}
	triggers := &fakeBuilder{out: map[string]any{"resultado": "real"}}
	deps := derivedDeps(builder)
	deps.Triggers = triggers
	eng := New(testEngineConfig(), deps)

	analysis := model.AIAnalysis{model.SectionInsights: []any{"a", "b", "c"}}
	set := eng.runDerived(context.Background(), analysis, model.AnalysisRequest{}, model.ResearchSummary{}, nil)

	assert.Zero(t, triggers.calls, "no collaborator call when avatar is absent")
	assert.Equal(t, model.PayloadStatusFallback, set.triggers.Status)
	assert.Equal(t, fallbackTriggers, set.triggers.Content)
}

func TestRunDerived_MissingObjectionsSkipsCall(t *testing.T) {
	builder := &fakeBuilder{out: map[string]any{"resultado": "real"}}
	objections := &fakeBuilder{out: map[string]any{"resultado": "real"}}
	deps := derivedDeps(builder)
	deps.Objections = objections
	eng := New(testEngineConfig(), deps)

	analysis := model.AIAnalysis{
		model.SectionAvatar: map[string]any{"nome_ficticio_perfil": "Ana"},
	}
	set := eng.runDerived(context.Background(), analysis, model.AnalysisRequest{}, model.ResearchSummary{}, nil)

	assert.Zero(t, objections.calls)
	assert.Equal(t, model.PayloadStatusFallback, set.objections.Status)
}

func TestConceptsForProofs(t *testing.T) {
	analysis := analysisWithAvatar(t)
	concepts := conceptsForProofs(analysis)

	assert.NotEmpty(t, concepts)
	assert.LessOrEqual(t, len(concepts), 10)
	assert.Contains(t, concepts, "trabalha demais sem crescer")
	assert.Contains(t, concepts, "metodologia proprietária")
}

func TestRealObjections(t *testing.T) {
	analysis := analysisWithAvatar(t)
	objections := realObjections(analysis)

	assert.Equal(t, []string{"não tenho tempo para implementar", "já tentei algo parecido"}, objections)
}

func TestEmptyResult(t *testing.T) {
	assert.True(t, emptyResult(nil))
	assert.True(t, emptyResult(map[string]any{}))
	assert.True(t, emptyResult([]any{}))
	assert.True(t, emptyResult(""))
	assert.False(t, emptyResult(map[string]any{"k": "v"}))
	assert.False(t, emptyResult("texto"))
	assert.False(t, emptyResult(42))
}
