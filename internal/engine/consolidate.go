package engine

import (
	"time"

	"github.com/sells-group/market-intel/internal/model"
)

// consolidate merges the stage outputs into the final document. Pure
// structural composition: no validation and no failure path. Ownership of
// the result passes to the caller once the pipeline returns.
func consolidate(req model.AnalysisRequest, research model.ResearchSummary, analysis model.AIAnalysis, derived derivedSet) *model.ConsolidatedAnalysis {
	return &model.ConsolidatedAnalysis{
		Request:        req,
		Research:       research,
		AI:             analysis,
		MentalTriggers: derived.triggers,
		VisualProofs:   derived.proofs,
		Objections:     derived.objections,
		PrePitch:       derived.prePitch,
		Predictions:    derived.predictions,
		ConsolidatedAt: time.Now().UTC(),
	}
}
