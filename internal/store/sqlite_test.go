package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/market-intel/internal/model"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	st, err := NewSQLite(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() }) //nolint:errcheck
	require.NoError(t, st.Migrate(context.Background()))
	return st
}

func sampleRecord() AnalysisRecord {
	return AnalysisRecord{
		SessionID: "session_abc",
		Segment:   "fitness",
		Score:     87.5,
		Document: model.ConsolidatedAnalysis{
			Request: model.AnalysisRequest{Segment: "fitness", SessionID: "session_abc"},
			AI:      model.AIAnalysis{"insights_exclusivos": []any{"um", "dois", "três"}},
		},
	}
}

func TestSQLite_SaveAndGet(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	saved, err := st.SaveAnalysis(ctx, sampleRecord())
	require.NoError(t, err)
	require.NotEmpty(t, saved.ID)
	assert.False(t, saved.CreatedAt.IsZero())

	got, err := st.GetAnalysis(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "fitness", got.Segment)
	assert.Equal(t, 87.5, got.Score)
	assert.Equal(t, "session_abc", got.Document.Request.SessionID)
	assert.Len(t, got.Document.AI.Insights(), 3)
}

func TestSQLite_GetMissing(t *testing.T) {
	st := newTestSQLiteStore(t)
	_, err := st.GetAnalysis(context.Background(), "inexistente")
	assert.Error(t, err)
}

func TestSQLite_List(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	for i, segment := range []string{"fitness", "fitness", "consultoria"} {
		rec := sampleRecord()
		rec.Segment = segment
		rec.CreatedAt = time.Now().UTC().Add(time.Duration(i) * time.Second)
		_, err := st.SaveAnalysis(ctx, rec)
		require.NoError(t, err)
	}

	all, err := st.ListAnalyses(ctx, Filter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	fitness, err := st.ListAnalyses(ctx, Filter{Segment: "fitness"})
	require.NoError(t, err)
	assert.Len(t, fitness, 2)

	limited, err := st.ListAnalyses(ctx, Filter{Limit: 1})
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, "consultoria", limited[0].Segment, "newest first")
}

func TestSQLite_ListEmpty(t *testing.T) {
	st := newTestSQLiteStore(t)
	recs, err := st.ListAnalyses(context.Background(), Filter{})
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestSQLite_Delete(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	saved, err := st.SaveAnalysis(ctx, sampleRecord())
	require.NoError(t, err)

	require.NoError(t, st.DeleteAnalysis(ctx, saved.ID))

	_, err = st.GetAnalysis(ctx, saved.ID)
	assert.Error(t, err)

	assert.Error(t, st.DeleteAnalysis(ctx, saved.ID), "double delete reports not found")
}

func TestSQLite_PreservesProvidedID(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	rec := sampleRecord()
	rec.ID = "id-fixo"
	saved, err := st.SaveAnalysis(ctx, rec)
	require.NoError(t, err)
	assert.Equal(t, "id-fixo", saved.ID)
}
