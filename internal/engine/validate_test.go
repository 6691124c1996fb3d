package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sells-group/market-intel/internal/model"
)

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name    string
		segment string
		wantErr bool
	}{
		{"valid segment", "consultoria empresarial", false},
		{"exactly three chars", "spa", false},
		{"three chars after trim", "  spa  ", false},
		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"too short", "ab", true},
		{"too short after trim", " ab ", true},
		{"multibyte counts runes not bytes", "pão", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateRequest(model.AnalysisRequest{Segment: tt.segment})
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidInput))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateRequest_OtherFieldsOptional(t *testing.T) {
	err := validateRequest(model.AnalysisRequest{Segment: "fitness"})
	assert.NoError(t, err)
}
