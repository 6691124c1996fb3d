package generator

import (
	"context"
	"fmt"

	"github.com/sells-group/market-intel/internal/model"
)

const predictionsSystem = `Você é um analista de tendências de mercado com foco ` +
	`em previsões acionáveis. Responda sempre com um objeto JSON válido, sem ` +
	`texto fora do JSON.`

// PredictionBuilder generates market future predictions grounded in the
// research corpus.
type PredictionBuilder struct {
	*Generator
}

// NewPredictionBuilder creates a prediction builder sharing the base generator.
func NewPredictionBuilder(g *Generator) *PredictionBuilder {
	return &PredictionBuilder{Generator: g}
}

// BuildPredictions creates future-market predictions for the segment.
func (b *PredictionBuilder) BuildPredictions(ctx context.Context, req model.AnalysisRequest, research model.ResearchSummary) (any, error) {
	prompt := fmt.Sprintf(`Preveja o futuro do mercado abaixo nos horizontes de 6, 12, 24 e 36 meses.

SEGMENTO: %s
PRODUTO: %s

BASE DE PESQUISA (fontes reais coletadas):
%s

Gere um JSON com as chaves "tendencias_emergentes" (lista de tendências com
"nome", "probabilidade", "impacto", "janela_oportunidade"), "cenarios"
(objeto com "conservador", "provavel", "agressivo", cada um com "descricao" e
"implicacoes") e "pontos_inflexao" (lista de eventos que mudariam o jogo).
Baseie cada previsão nas fontes fornecidas, nunca em especulação genérica.`,
		req.Segment, req.Product, jsonBlock(research))

	return b.completeJSON(ctx, "future_predictions", predictionsSystem, prompt)
}
