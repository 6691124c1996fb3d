package engine

import (
	"context"

	"github.com/sells-group/market-intel/internal/model"
)

// SearchProvider returns up to maxResults hits for a query. An empty slice is
// a valid response, not an error.
type SearchProvider interface {
	Search(ctx context.Context, query string, maxResults int) ([]model.SearchHit, error)
}

// ContentExtractor fetches the readable text of a URL. Empty text is a valid
// response for pages with nothing to extract.
type ContentExtractor interface {
	Extract(ctx context.Context, url string) (string, error)
}

// InferenceProvider runs a single model completion. An empty string signals
// provider unavailability.
type InferenceProvider interface {
	Infer(ctx context.Context, prompt string, maxTokens int) (string, error)
}

// TriggerBuilder generates customized mental triggers from the avatar profile.
type TriggerBuilder interface {
	BuildTriggers(ctx context.Context, avatar map[string]any, req model.AnalysisRequest) (any, error)
}

// ProofBuilder generates visual proofs for the given concepts.
type ProofBuilder interface {
	BuildProofs(ctx context.Context, concepts []string, analysis model.AIAnalysis, req model.AnalysisRequest) (any, error)
}

// ObjectionBuilder generates an objection-handling system from real objections.
type ObjectionBuilder interface {
	BuildObjections(ctx context.Context, objections []string, analysis model.AIAnalysis, req model.AnalysisRequest) (any, error)
}

// PitchBuilder generates a pre-pitch script from the analysis and triggers.
type PitchBuilder interface {
	BuildPrePitch(ctx context.Context, analysis model.AIAnalysis, triggers model.DerivedPayload, req model.AnalysisRequest) (any, error)
}

// PredictionBuilder generates market future predictions.
type PredictionBuilder interface {
	BuildPredictions(ctx context.Context, req model.AnalysisRequest, research model.ResearchSummary) (any, error)
}
