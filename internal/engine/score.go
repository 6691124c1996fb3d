package engine

import (
	"github.com/sells-group/market-intel/internal/model"
)

// Score computes the completeness score of a consolidated document on a
// 0-100 scale. The rubric is additive with weighted partial credit: each
// criterion contributes independently and is never negative, and the sum is
// clamped at 100. The score only annotates metadata; it never blocks output.
func Score(doc *model.ConsolidatedAnalysis) float64 {
	score := 0.0

	// Research volume and breadth.
	stats := doc.Research.Stats
	if stats.UniqueSources >= 1 {
		score += 5
	}
	if stats.UniqueSources >= 3 {
		score += 5
	}
	if stats.TotalContentLength >= 500 {
		score += 5
	}
	if stats.TotalContentLength >= 1000 {
		score += 5
	}

	// AI analysis presence.
	if doc.AI.HasSection(model.SectionAvatar) {
		score += 10
	}
	if len(doc.AI.Insights()) >= 3 {
		score += 10
	}
	if doc.AI.HasSection(model.SectionCompetition) {
		score += 10
	}

	// Derived payloads: full credit on success, partial credit for a
	// degraded stand-in, nothing for an absent slot.
	for _, payload := range doc.Payloads() {
		switch {
		case !payload.Present():
		case payload.Degraded():
			score += 5
		default:
			score += 10
		}
	}

	// Research quality bonus.
	if stats.UniqueSources >= 5 {
		score += 2.5
	}
	if stats.TotalContentLength >= 5000 {
		score += 2.5
	}

	if score > 100 {
		score = 100
	}
	return score
}
