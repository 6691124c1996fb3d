package generator

import (
	"context"
	"fmt"

	"github.com/sells-group/market-intel/internal/model"
)

const triggersSystem = `Você é um arquiteto de drivers mentais, especialista em ` +
	`gatilhos psicológicos para vendas consultivas. Responda sempre com um ` +
	`objeto JSON válido, sem texto fora do JSON.`

// TriggerBuilder generates mental triggers customized to the avatar profile.
type TriggerBuilder struct {
	*Generator
}

// NewTriggerBuilder creates a trigger builder sharing the base generator.
func NewTriggerBuilder(g *Generator) *TriggerBuilder {
	return &TriggerBuilder{Generator: g}
}

// BuildTriggers creates customized mental triggers from the avatar profile.
func (b *TriggerBuilder) BuildTriggers(ctx context.Context, avatar map[string]any, req model.AnalysisRequest) (any, error) {
	prompt := fmt.Sprintf(`Crie drivers mentais customizados para o seguinte contexto de lançamento.

SEGMENTO: %s
PRODUTO: %s

AVATAR:
%s

Gere um JSON com a chave "drivers_customizados": uma lista de 5 a 7 drivers,
cada um com "nome", "gatilho_central", "definicao_visceral", "roteiro_ativacao"
(objeto com "pergunta_abertura", "historia_analogia", "comando_acao") e
"frases_ancoragem" (lista de 3 frases). Os drivers devem atacar as dores e
desejos específicos deste avatar, nunca genéricos.`,
		req.Segment, req.Product, jsonBlock(avatar))

	return b.completeJSON(ctx, "mental_triggers", triggersSystem, prompt)
}
