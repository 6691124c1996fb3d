package model

import "time"

// AIAnalysis is the semi-structured document parsed from the model's JSON
// response. The pipeline declares a minimum schema through the accessors
// below and tolerates extra or missing sections; hard validation is limited
// to parsability and the placeholder-content scan.
type AIAnalysis map[string]any

// Section names of the declared minimum schema.
const (
	SectionAvatar      = "avatar_ultra_detalhado"
	SectionScope       = "escopo"
	SectionCompetition = "analise_concorrencia_detalhada"
	SectionKeywords    = "estrategia_palavras_chave"
	SectionMetrics     = "metricas_performance_detalhadas"
	SectionFunnel      = "funil_vendas_detalhado"
	SectionActionPlan  = "plano_acao_detalhado"
	SectionInsights    = "insights_exclusivos"
)

// RequiredSections lists the top-level sections a complete analysis carries.
func RequiredSections() []string {
	return []string{
		SectionAvatar, SectionScope, SectionCompetition, SectionKeywords,
		SectionMetrics, SectionFunnel, SectionActionPlan, SectionInsights,
	}
}

// Avatar returns the avatar profile section, or nil when absent.
func (a AIAnalysis) Avatar() map[string]any {
	m, _ := a[SectionAvatar].(map[string]any)
	return m
}

// Insights returns the exclusive-insights list. Entries that are not strings
// are skipped.
func (a AIAnalysis) Insights() []string {
	raw, _ := a[SectionInsights].([]any)
	insights := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			insights = append(insights, s)
		}
	}
	return insights
}

// HasSection reports whether the named section is present and non-empty.
func (a AIAnalysis) HasSection(name string) bool {
	v, ok := a[name]
	if !ok || v == nil {
		return false
	}
	switch t := v.(type) {
	case map[string]any:
		return len(t) > 0
	case []any:
		return len(t) > 0
	case string:
		return t != ""
	}
	return true
}

// PayloadKind identifies one of the five derived-content payloads.
type PayloadKind string

const (
	PayloadMentalTriggers PayloadKind = "drivers_mentais"
	PayloadVisualProofs   PayloadKind = "provas_visuais"
	PayloadObjections     PayloadKind = "anti_objecao"
	PayloadPrePitch       PayloadKind = "pre_pitch"
	PayloadPredictions    PayloadKind = "predicoes_futuro"
)

// PayloadStatus tags a degraded payload. A successful payload carries no
// status.
type PayloadStatus string

const (
	PayloadStatusFallback PayloadStatus = "fallback"
	PayloadStatusError    PayloadStatus = "error"
)

// DerivedPayload is the output slot of one sub-generator. On success Content
// holds the generator's native output untouched; on degradation Status and
// Message are set and Content holds the kind's fixed fallback block.
type DerivedPayload struct {
	Kind    PayloadKind   `json:"kind"`
	Status  PayloadStatus `json:"status,omitempty"`
	Message string        `json:"message,omitempty"`
	Content any           `json:"content,omitempty"`
}

// Degraded reports whether the payload is a fallback or error stand-in.
func (p DerivedPayload) Degraded() bool {
	return p.Status == PayloadStatusFallback || p.Status == PayloadStatusError
}

// Present reports whether the payload slot holds anything at all.
func (p DerivedPayload) Present() bool {
	return p.Kind != "" && (p.Content != nil || p.Degraded())
}

// Metadata annotates the consolidated document. Purely informational; the
// quality score never blocks output.
type Metadata struct {
	ProcessingSeconds float64   `json:"processing_time_seconds"`
	QualityScore      float64   `json:"quality_score"`
	Engine            string    `json:"analysis_engine"`
	GeneratedAt       time.Time `json:"generated_at"`
	SourceCount       int       `json:"real_data_sources"`
	ContentAnalyzed   int       `json:"total_content_analyzed"`
}

// ConsolidatedAnalysis is the pipeline's sole externally visible output.
type ConsolidatedAnalysis struct {
	Request        AnalysisRequest `json:"projeto_dados"`
	Research       ResearchSummary `json:"pesquisa_massiva"`
	AI             AIAnalysis      `json:"analise_ia"`
	MentalTriggers DerivedPayload  `json:"drivers_mentais_customizados"`
	VisualProofs   DerivedPayload  `json:"provas_visuais_instantaneas"`
	Objections     DerivedPayload  `json:"sistema_anti_objecao"`
	PrePitch       DerivedPayload  `json:"pre_pitch_invisivel"`
	Predictions    DerivedPayload  `json:"predicoes_futuro"`
	ConsolidatedAt time.Time       `json:"consolidacao_timestamp"`
	Metadata       Metadata        `json:"metadata"`
}

// Payloads returns the five derived slots in consolidation order.
func (c *ConsolidatedAnalysis) Payloads() []DerivedPayload {
	return []DerivedPayload{
		c.MentalTriggers, c.VisualProofs, c.Objections, c.PrePitch, c.Predictions,
	}
}
