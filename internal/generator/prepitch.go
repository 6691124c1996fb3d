package generator

import (
	"context"
	"fmt"

	"github.com/sells-group/market-intel/internal/model"
)

const prePitchSystem = `Você é um mestre em pré-pitch invisível, a arte de ` +
	`preparar a venda antes da oferta. Responda sempre com um objeto JSON ` +
	`válido, sem texto fora do JSON.`

// PitchBuilder generates the invisible pre-pitch orchestration script.
type PitchBuilder struct {
	*Generator
}

// NewPitchBuilder creates a pitch builder sharing the base generator.
func NewPitchBuilder(g *Generator) *PitchBuilder {
	return &PitchBuilder{Generator: g}
}

// BuildPrePitch creates the pre-pitch script from the analysis and the
// previously generated mental triggers.
func (b *PitchBuilder) BuildPrePitch(ctx context.Context, analysis model.AIAnalysis, triggers model.DerivedPayload, req model.AnalysisRequest) (any, error) {
	triggerContext := "nenhum driver disponível"
	if triggers.Present() {
		triggerContext = jsonBlock(triggers.Content)
	}

	prompt := fmt.Sprintf(`Orquestre um pré-pitch invisível para o lançamento abaixo.

SEGMENTO: %s
PRODUTO: %s

AVATAR:
%s

DRIVERS MENTAIS DISPONÍVEIS:
%s

Gere um JSON com a chave "orquestracao": uma lista de fases na ordem
quebra, exposicao, indignacao, vislumbre, tensao, necessidade. Cada fase tem
"fase", "objetivo", "tempo_sugerido", "driver_usado" e "roteiro". Inclua
também "transicao_pitch": o roteiro da ponte entre o pré-pitch e a oferta.`,
		req.Segment, req.Product, jsonBlock(analysis.Avatar()), triggerContext)

	return b.completeJSON(ctx, "pre_pitch", prePitchSystem, prompt)
}
