package engine

import (
	"github.com/rotisserie/eris"

	"github.com/sells-group/market-intel/internal/model"
)

// minSegmentChars is the minimum trimmed length of the segment field.
const minSegmentChars = 3

// validateRequest enforces the pipeline's only unconditionally hard
// precondition: a usable segment field. On failure no further stage runs.
func validateRequest(req model.AnalysisRequest) error {
	segment := req.TrimmedSegment()
	if segment == "" {
		return eris.Wrap(ErrInvalidInput, "required field missing: segmento")
	}
	if len([]rune(segment)) < minSegmentChars {
		return eris.Wrapf(ErrInvalidInput, "segmento must have at least %d characters", minSegmentChars)
	}
	return nil
}
