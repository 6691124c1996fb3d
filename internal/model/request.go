// Package model defines the entities shared across the analysis pipeline.
package model

import (
	"strings"

	"github.com/google/uuid"
)

// AnalysisRequest carries the business parameters for one pipeline run.
// It is immutable once the pipeline starts; only EnsureSession mutates it,
// and only before the run begins.
type AnalysisRequest struct {
	Segment         string `json:"segmento"`
	Product         string `json:"produto,omitempty"`
	Audience        string `json:"publico,omitempty"`
	Price           string `json:"preco,omitempty"`
	RevenueGoal     string `json:"objetivo_receita,omitempty"`
	MarketingBudget string `json:"orcamento_marketing,omitempty"`
	LaunchTimeline  string `json:"prazo_lancamento,omitempty"`
	Competitors     string `json:"concorrentes,omitempty"`
	Notes           string `json:"dados_adicionais,omitempty"`
	SessionID       string `json:"session_id,omitempty"`
	Query           string `json:"query,omitempty"` // search query override
}

// EnsureSession assigns a fresh session identifier when none was provided.
// Session IDs must be unique per run for progress tracking.
func (r *AnalysisRequest) EnsureSession() {
	if r.SessionID == "" {
		r.SessionID = "session_" + uuid.New().String()
	}
}

// TrimmedSegment returns the segment with surrounding whitespace removed.
func (r AnalysisRequest) TrimmedSegment() string {
	return strings.TrimSpace(r.Segment)
}
