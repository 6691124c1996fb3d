// Package store persists completed analyses. Two drivers are provided:
// SQLite for single-machine use and Postgres for shared deployments.
package store

import (
	"context"
	"time"

	"github.com/sells-group/market-intel/internal/model"
)

// AnalysisRecord is a persisted analysis with its identifying metadata.
type AnalysisRecord struct {
	ID        string                     `json:"id"`
	SessionID string                     `json:"session_id"`
	Segment   string                     `json:"segmento"`
	Score     float64                    `json:"score"`
	Document  model.ConsolidatedAnalysis `json:"documento"`
	CreatedAt time.Time                  `json:"created_at"`
}

// Filter specifies criteria for listing analyses.
type Filter struct {
	Segment string `json:"segmento,omitempty"`
	Limit   int    `json:"limit,omitempty"`
	Offset  int    `json:"offset,omitempty"`
}

// Store defines the persistence interface for completed analyses.
type Store interface {
	SaveAnalysis(ctx context.Context, rec AnalysisRecord) (*AnalysisRecord, error)
	GetAnalysis(ctx context.Context, id string) (*AnalysisRecord, error)
	ListAnalyses(ctx context.Context, filter Filter) ([]AnalysisRecord, error)
	DeleteAnalysis(ctx context.Context, id string) error

	// Lifecycle
	Migrate(ctx context.Context) error
	Close() error
}
