package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/market-intel/internal/model"
)

// placeholderMarkers flag a model response as templated or simulated. The
// scan is a case-insensitive substring match over the serialized structure.
var placeholderMarkers = []string{
	"exemplo", "example", "simulado", "simulated", "fictício", "fictitious",
	"genérico", "generic", "placeholder", "lorem ipsum", "dados de teste",
	"mockup", "template",
}

// runInference builds the consolidated prompt, invokes the AI provider once
// and parses the structured response. This is the single most
// failure-intolerant stage: an unreachable provider, unparsable output or
// placeholder content each aborts the whole pipeline. No synthetic data may
// substitute for a real inference result.
func (e *Engine) runInference(ctx context.Context, req model.AnalysisRequest, corpus *model.ResearchCorpus) (model.AIAnalysis, error) {
	prompt := e.buildPrompt(req, corpus)

	zap.L().Info("engine: running inference",
		zap.Int("prompt_chars", len(prompt)),
		zap.Int("max_tokens", e.cfg.MaxTokens),
	)

	text, err := e.ai.Infer(ctx, prompt, e.cfg.MaxTokens)
	if err != nil {
		return nil, eris.Wrap(ErrInferenceUnavailable, err.Error())
	}
	if strings.TrimSpace(text) == "" {
		return nil, eris.Wrap(ErrInferenceUnavailable, "provider returned empty response")
	}

	analysis, err := parseAnalysis(text)
	if err != nil {
		zap.L().Error("engine: unparsable inference response",
			zap.String("head", truncate(text, 500)),
			zap.Error(err),
		)
		return nil, err
	}

	if marker := findPlaceholder(analysis); marker != "" {
		zap.L().Error("engine: placeholder marker in analysis", zap.String("marker", marker))
		return nil, eris.Wrapf(ErrSimulatedContent, "marker %q", marker)
	}

	missing := 0
	for _, section := range model.RequiredSections() {
		if !analysis.HasSection(section) {
			zap.L().Warn("engine: recommended section absent", zap.String("section", section))
			missing++
		}
	}
	// Extra or missing sections are tolerated, but a document with none of
	// the declared schema is not an analysis at all.
	if missing == len(model.RequiredSections()) {
		return nil, eris.Wrap(ErrMalformedResponse, "analysis carries none of the required sections")
	}

	if insights := analysis.Insights(); len(insights) < 3 {
		zap.L().Warn("engine: insights below ideal", zap.Int("count", len(insights)))
	}

	return analysis, nil
}

// parseAnalysis strips optional markdown code fences and decodes the JSON
// document.
func parseAnalysis(text string) (model.AIAnalysis, error) {
	clean := strings.TrimSpace(text)

	if idx := strings.Index(clean, "```json"); idx >= 0 {
		clean = clean[idx+len("```json"):]
		if end := strings.LastIndex(clean, "```"); end >= 0 {
			clean = clean[:end]
		}
	} else if idx := strings.Index(clean, "```"); idx >= 0 {
		clean = clean[idx+len("```"):]
		if end := strings.LastIndex(clean, "```"); end >= 0 {
			clean = clean[:end]
		}
	}
	clean = strings.TrimSpace(clean)

	var analysis model.AIAnalysis
	if err := json.Unmarshal([]byte(clean), &analysis); err != nil {
		return nil, eris.Wrap(ErrMalformedResponse, err.Error())
	}
	return analysis, nil
}

// findPlaceholder returns the first placeholder marker found anywhere in the
// serialized analysis, or "" when the document is clean.
func findPlaceholder(analysis model.AIAnalysis) string {
	raw, err := json.Marshal(analysis)
	if err != nil {
		return ""
	}
	serialized := strings.ToLower(string(raw))
	for _, marker := range placeholderMarkers {
		if strings.Contains(serialized, marker) {
			return marker
		}
	}
	return ""
}

// buildPrompt concatenates the role preamble, the request parameters, the
// research excerpt and the output schema specification.
func (e *Engine) buildPrompt(req model.AnalysisRequest, corpus *model.ResearchCorpus) string {
	var b strings.Builder

	b.WriteString(promptPreamble)

	b.WriteString("\n## DADOS DO PROJETO:\n")
	writeParam(&b, "Segmento", req.Segment)
	writeParam(&b, "Produto/Serviço", req.Product)
	writeParam(&b, "Público-Alvo", req.Audience)
	writeParam(&b, "Preço", req.Price)
	writeParam(&b, "Objetivo de Receita", req.RevenueGoal)
	writeParam(&b, "Orçamento Marketing", req.MarketingBudget)
	writeParam(&b, "Prazo de Lançamento", req.LaunchTimeline)
	writeParam(&b, "Concorrentes", req.Competitors)

	b.WriteString("\n")
	b.WriteString(e.buildResearchContext(corpus))
	b.WriteString("\n")
	b.WriteString(promptSchema)

	return b.String()
}

// buildResearchContext serializes a bounded corpus excerpt plus aggregate
// statistics for the prompt.
func (e *Engine) buildResearchContext(corpus *model.ResearchCorpus) string {
	var b strings.Builder
	b.WriteString("PESQUISA WEB EXECUTADA:\n")

	if len(corpus.Pages) == 0 {
		b.WriteString("Nenhum conteúdo textual extraído das fontes encontradas.\n")
	} else {
		pages := corpus.Pages
		if len(pages) > e.cfg.PromptPages {
			pages = pages[:e.cfg.PromptPages]
		}
		for i, page := range pages {
			fmt.Fprintf(&b, "--- FONTE %d: %s ---\n", i+1, page.Title)
			fmt.Fprintf(&b, "URL: %s\n", page.URL)
			fmt.Fprintf(&b, "Conteúdo: %s\n\n", truncate(page.Content, e.cfg.PromptPageChars))
		}
	}

	stats := corpus.Stats()
	b.WriteString("=== ESTATÍSTICAS DA PESQUISA ===\n")
	fmt.Fprintf(&b, "Total de queries executadas: %d\n", stats.TotalQueries)
	fmt.Fprintf(&b, "Total de resultados encontrados: %d\n", stats.TotalResults)
	fmt.Fprintf(&b, "Páginas únicas analisadas: %d\n", stats.UniqueSources)
	fmt.Fprintf(&b, "Total de caracteres extraídos: %d\n", stats.TotalContentLength)
	return b.String()
}

func writeParam(b *strings.Builder, name, value string) {
	if value == "" {
		value = "Não informado"
	}
	fmt.Fprintf(b, "- **%s**: %s\n", name, value)
}

// truncate cuts s to at most n characters without splitting a multi-byte
// rune mid-sequence.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
