package generator

import (
	"context"
	"fmt"
	"strings"

	"github.com/sells-group/market-intel/internal/model"
)

const proofsSystem = `Você é um diretor de experiências, especialista em provas ` +
	`visuais que tornam conceitos abstratos tangíveis. Responda sempre com um ` +
	`objeto JSON válido, sem texto fora do JSON.`

// ProofBuilder generates visual proof experiments for abstract concepts.
type ProofBuilder struct {
	*Generator
}

// NewProofBuilder creates a proof builder sharing the base generator.
func NewProofBuilder(g *Generator) *ProofBuilder {
	return &ProofBuilder{Generator: g}
}

// BuildProofs creates visual demonstrations for the given concepts.
func (b *ProofBuilder) BuildProofs(ctx context.Context, concepts []string, analysis model.AIAnalysis, req model.AnalysisRequest) (any, error) {
	prompt := fmt.Sprintf(`Crie provas visuais instantâneas para os conceitos abaixo.

SEGMENTO: %s
PRODUTO: %s

CONCEITOS A PROVAR:
- %s

Gere um JSON com a chave "provas_visuais": uma lista com uma prova por
conceito, cada uma com "nome", "conceito_alvo", "experimento" (descrição
física demonstrável), "analogia_perfeita", "materiais" (lista) e
"roteiro_completo". Cada experimento deve ser executável ao vivo em menos de
dois minutos.`,
		req.Segment, req.Product, strings.Join(concepts, "\n- "))

	return b.completeJSON(ctx, "visual_proofs", proofsSystem, prompt)
}
