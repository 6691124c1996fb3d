package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/market-intel/internal/model"
)

func TestPlanQueries_Deterministic(t *testing.T) {
	req := model.AnalysisRequest{Segment: "fitness", Product: "App Treino", Audience: "mulheres 30-45"}

	a := planQueries(req, 12)
	b := planQueries(req, 12)
	assert.Equal(t, a, b)
}

func TestPlanQueries_WithProduct(t *testing.T) {
	req := model.AnalysisRequest{Segment: "fitness", Product: "App Treino"}
	queries := planQueries(req, 12)

	require.Len(t, queries, 8) // 3 overview + 5 intelligence
	assert.Contains(t, queries[0], "fitness")
	assert.Contains(t, queries[0], "App Treino")
	for _, q := range queries {
		assert.Contains(t, q, "fitness")
	}
}

func TestPlanQueries_WithoutProduct(t *testing.T) {
	req := model.AnalysisRequest{Segment: "fitness"}
	queries := planQueries(req, 12)

	require.Len(t, queries, 8)
	for _, q := range queries[:3] {
		assert.NotContains(t, q, "App Treino")
	}
}

func TestPlanQueries_AudienceAddsQueries(t *testing.T) {
	base := planQueries(model.AnalysisRequest{Segment: "fitness"}, 12)
	withAudience := planQueries(model.AnalysisRequest{Segment: "fitness", Audience: "mulheres 30-45"}, 12)

	assert.Len(t, withAudience, len(base)+2)

	found := false
	for _, q := range withAudience {
		if strings.Contains(q, "mulheres 30-45") {
			found = true
		}
	}
	assert.True(t, found, "audience queries should mention the audience")
}

func TestPlanQueries_TruncatesAtTail(t *testing.T) {
	req := model.AnalysisRequest{Segment: "fitness", Product: "App", Audience: "mulheres"}

	queries := planQueries(req, 6)
	require.Len(t, queries, 6)

	// Overview and audience queries survive; intelligence queries drop first.
	assert.Contains(t, queries[3], "mulheres")
}

func TestPlanQueries_SegmentTrimmed(t *testing.T) {
	queries := planQueries(model.AnalysisRequest{Segment: "  fitness  "}, 12)
	for _, q := range queries {
		assert.NotContains(t, q, "  fitness")
	}
}
