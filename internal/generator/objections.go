package generator

import (
	"context"
	"fmt"
	"strings"

	"github.com/sells-group/market-intel/internal/model"
)

const objectionsSystem = `Você é um especialista em psicologia de vendas e ` +
	`neutralização de objeções. Responda sempre com um objeto JSON válido, sem ` +
	`texto fora do JSON.`

// ObjectionBuilder generates an objection-handling system from the real
// objections surfaced by the avatar analysis.
type ObjectionBuilder struct {
	*Generator
}

// NewObjectionBuilder creates an objection builder sharing the base generator.
func NewObjectionBuilder(g *Generator) *ObjectionBuilder {
	return &ObjectionBuilder{Generator: g}
}

// BuildObjections creates the anti-objection system.
func (b *ObjectionBuilder) BuildObjections(ctx context.Context, objections []string, analysis model.AIAnalysis, req model.AnalysisRequest) (any, error) {
	prompt := fmt.Sprintf(`Crie um sistema anti-objeção completo para o contexto abaixo.

SEGMENTO: %s
PRODUTO: %s
PREÇO: %s

OBJEÇÕES REAIS DO AVATAR:
- %s

Gere um JSON com a chave "sistema_anti_objecao": um objeto que mapeia cada
objeção para um tratamento com "tipo" (tempo, dinheiro, confiança, necessidade),
"raiz_emocional", "contra_ataque" (argumento principal), "historia_prova" e
"reframe". Inclua também a chave "arsenal_emergencia": lista de 5 respostas
rápidas para objeções de última hora.`,
		req.Segment, req.Product, req.Price, strings.Join(objections, "\n- "))

	return b.completeJSON(ctx, "anti_objection", objectionsSystem, prompt)
}
