package engine

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/sells-group/market-intel/internal/model"
)

// Fixed generic fallback blocks, one per payload kind. The orchestrator only
// ever produces these degraded stand-ins; a collaborator's successful output
// is passed through untouched.
var (
	fallbackTriggers = map[string]any{
		"drivers_genericos": []string{
			"Urgência: janelas de oportunidade reais do mercado",
			"Prova social: resultados documentados de clientes",
			"Autoridade: credenciais e dados do segmento",
			"Escassez: limites genuínos de capacidade ou oferta",
		},
	}
	fallbackProofs = map[string]any{
		"provas_genericas": []string{
			"Demonstração antes/depois com métricas reais",
			"Comparativo visual com alternativas do mercado",
			"Depoimentos gravados de clientes verificáveis",
		},
	}
	fallbackObjections = map[string]any{
		"fallback_strategies": []string{
			"Implementar validação social através de depoimentos",
			"Criar garantias robustas para reduzir risco percebido",
			"Desenvolver FAQ detalhado com objeções comuns",
			"Usar prova social e autoridade para aumentar credibilidade",
		},
	}
	fallbackPrePitch = map[string]any{
		"fallback_structure": map[string]any{
			"abertura_impacto":    "Criar abertura que gere curiosidade imediata",
			"construcao_problema": "Amplificar dor antes de apresentar solução",
			"ancoragem_valor":     "Estabelecer valor antes de revelar preço",
			"prova_social":        "Usar casos de sucesso para validar proposta",
		},
	}
	fallbackPredictions = map[string]any{
		"fallback_trends": map[string]any{
			"digitalizacao_acelerada": "Crescimento contínuo da digitalização",
			"personalizacao_massa":    "Demanda por soluções personalizadas",
			"sustentabilidade_foco":   "Maior foco em práticas sustentáveis",
			"experiencia_cliente":     "Priorização da experiência do cliente",
		},
	}
)

// runDerived invokes the five sub-generators sequentially, each behind the
// same failure-isolation boundary: an error, panic or empty result becomes a
// structured fallback payload and the pipeline proceeds. None of them can
// abort the run.
func (e *Engine) runDerived(ctx context.Context, analysis model.AIAnalysis, req model.AnalysisRequest, research model.ResearchSummary, rep Reporter) derivedSet {
	var set derivedSet

	report(rep, 6, "Gerando drivers mentais customizados...", "")
	avatar := analysis.Avatar()
	if len(avatar) == 0 {
		// Required input absent: degrade without a wasted collaborator call.
		set.triggers = degradedPayload(model.PayloadMentalTriggers, model.PayloadStatusFallback,
			"avatar ausente na análise, usando drivers genéricos")
	} else {
		set.triggers = e.invoke(model.PayloadMentalTriggers, func() (any, error) {
			return e.triggers.BuildTriggers(ctx, avatar, req)
		})
	}

	report(rep, 7, "Criando provas visuais instantâneas...", "")
	concepts := conceptsForProofs(analysis)
	set.proofs = e.invoke(model.PayloadVisualProofs, func() (any, error) {
		return e.proofs.BuildProofs(ctx, concepts, analysis, req)
	})

	report(rep, 8, "Construindo sistema anti-objeção...", "")
	objections := realObjections(analysis)
	if len(objections) == 0 {
		set.objections = degradedPayload(model.PayloadObjections, model.PayloadStatusFallback,
			"objeções reais insuficientes no avatar, usando estratégias genéricas")
	} else {
		set.objections = e.invoke(model.PayloadObjections, func() (any, error) {
			return e.objections.BuildObjections(ctx, objections, analysis, req)
		})
	}

	report(rep, 9, "Arquitetando pré-pitch invisível...", "")
	set.prePitch = e.invoke(model.PayloadPrePitch, func() (any, error) {
		return e.prePitch.BuildPrePitch(ctx, analysis, set.triggers, req)
	})

	report(rep, 10, "Predizendo futuro do mercado...", "")
	set.predictions = e.invoke(model.PayloadPredictions, func() (any, error) {
		return e.predictions.BuildPredictions(ctx, req, research)
	})

	return set
}

type derivedSet struct {
	triggers    model.DerivedPayload
	proofs      model.DerivedPayload
	objections  model.DerivedPayload
	prePitch    model.DerivedPayload
	predictions model.DerivedPayload
}

// invoke runs one sub-generator behind the uniform isolation boundary. A
// panic or error degrades to status "error"; an empty result degrades to
// status "fallback".
func (e *Engine) invoke(kind model.PayloadKind, fn func() (any, error)) (payload model.DerivedPayload) {
	defer func() {
		if rec := recover(); rec != nil {
			zap.L().Warn("engine: sub-generator panicked",
				zap.String("kind", string(kind)),
				zap.Any("panic", rec),
			)
			payload = degradedPayload(kind, model.PayloadStatusError, fmt.Sprintf("falha durante a geração: %v", rec))
		}
	}()

	out, err := fn()
	if err != nil {
		zap.L().Warn("engine: sub-generator failed",
			zap.String("kind", string(kind)),
			zap.Error(err),
		)
		return degradedPayload(kind, model.PayloadStatusError, fmt.Sprintf("falha durante a geração: %v", err))
	}
	if emptyResult(out) {
		zap.L().Warn("engine: sub-generator returned empty result",
			zap.String("kind", string(kind)),
		)
		return degradedPayload(kind, model.PayloadStatusFallback, "gerador retornou resultado vazio, usando conteúdo genérico")
	}
	return model.DerivedPayload{Kind: kind, Content: out}
}

func degradedPayload(kind model.PayloadKind, status model.PayloadStatus, message string) model.DerivedPayload {
	var content any
	switch kind {
	case model.PayloadMentalTriggers:
		content = fallbackTriggers
	case model.PayloadVisualProofs:
		content = fallbackProofs
	case model.PayloadObjections:
		content = fallbackObjections
	case model.PayloadPrePitch:
		content = fallbackPrePitch
	case model.PayloadPredictions:
		content = fallbackPredictions
	}
	return model.DerivedPayload{
		Kind:    kind,
		Status:  status,
		Message: message,
		Content: content,
	}
}

func emptyResult(out any) bool {
	switch t := out.(type) {
	case nil:
		return true
	case map[string]any:
		return len(t) == 0
	case []any:
		return len(t) == 0
	case []map[string]any:
		return len(t) == 0
	case string:
		return t == ""
	}
	return false
}

// conceptsForProofs pulls up to ten concepts worth proving visually from the
// avatar pains/desires and the competitive differentials.
func conceptsForProofs(analysis model.AIAnalysis) []string {
	var concepts []string

	avatar := analysis.Avatar()
	concepts = append(concepts, stringList(avatar["dores_viscerais"], 5)...)
	concepts = append(concepts, stringList(avatar["desejos_secretos"], 5)...)

	if scope, ok := analysis[model.SectionScope].(map[string]any); ok {
		concepts = append(concepts, stringList(scope["diferenciais_competitivos"], 3)...)
	}

	if len(concepts) > 10 {
		concepts = concepts[:10]
	}
	return concepts
}

// realObjections pulls the avatar's documented objections.
func realObjections(analysis model.AIAnalysis) []string {
	return stringList(analysis.Avatar()["objecoes_reais"], 0)
}

// stringList coerces a []any of strings, keeping at most limit entries
// (0 = unlimited).
func stringList(v any, limit int) []string {
	raw, _ := v.([]any)
	var out []string
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}
