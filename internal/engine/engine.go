// Package engine implements the market-analysis orchestration pipeline:
// research, AI inference, derived-content generation, consolidation and
// scoring, with the degradation policy that decides at each stage whether a
// partial result is acceptable or a hard failure.
package engine

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/sells-group/market-intel/internal/config"
	"github.com/sells-group/market-intel/internal/model"
)

// engineName identifies this engine in output metadata.
const engineName = "market-intel analysis engine v2"

// Deps carries the engine's collaborators. Search, extraction, inference and
// the five generators are external services consumed through narrow
// contracts; the engine owns only the sequencing and degradation policy.
type Deps struct {
	Search      SearchProvider
	Extract     ContentExtractor
	AI          InferenceProvider
	Triggers    TriggerBuilder
	Proofs      ProofBuilder
	Objections  ObjectionBuilder
	PrePitch    PitchBuilder
	Predictions PredictionBuilder
}

// Engine runs analysis pipelines. Safe for concurrent use: every run builds
// its own corpus and documents, and no state is shared across runs except
// the pacing limiter.
type Engine struct {
	cfg     config.EngineConfig
	search  SearchProvider
	extract ContentExtractor
	ai      InferenceProvider

	triggers    TriggerBuilder
	proofs      ProofBuilder
	objections  ObjectionBuilder
	prePitch    PitchBuilder
	predictions PredictionBuilder

	limiter *rate.Limiter
}

// New creates an Engine with the given configuration and collaborators.
func New(cfg config.EngineConfig, deps Deps) *Engine {
	pacing := cfg.QueryPacing
	if pacing <= 0 {
		pacing = time.Second
	}
	return &Engine{
		cfg:         cfg,
		search:      deps.Search,
		extract:     deps.Extract,
		ai:          deps.AI,
		triggers:    deps.Triggers,
		proofs:      deps.Proofs,
		objections:  deps.Objections,
		prePitch:    deps.PrePitch,
		predictions: deps.Predictions,
		limiter:     rate.NewLimiter(rate.Every(pacing), 1),
	}
}

// Run executes the full pipeline for one request. The request is not
// mutated beyond session-ID assignment before the pipeline starts. Hard
// failures (ErrInvalidInput, ErrInferenceUnavailable, ErrMalformedResponse,
// ErrSimulatedContent) abort with no partial document; every other failure
// degrades and the run completes.
//
// rep may be nil; progress reporting is advisory and failure-isolated.
func (e *Engine) Run(ctx context.Context, req model.AnalysisRequest, rep Reporter) (*model.ConsolidatedAnalysis, error) {
	start := time.Now()
	req.EnsureSession()

	log := zap.L().With(
		zap.String("segment", req.Segment),
		zap.String("session_id", req.SessionID),
	)
	log.Info("engine: starting analysis")

	report(rep, 1, "Validando dados de entrada...", "")
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	report(rep, 2, "Executando pesquisa web...", "")
	queries := planQueries(req, e.cfg.MaxQueries)
	corpus := e.runResearch(ctx, queries, rep)

	// Advisory only: the result is logged and deliberately discarded. By
	// current policy the pipeline continues even below the soft floors.
	if !e.assessResearch(corpus) {
		log.Warn("engine: research below minimal floors, continuing with available data")
	}

	report(rep, 4, "Analisando com IA...", "")
	analysis, err := e.runInference(ctx, req, corpus)
	if err != nil {
		log.Error("engine: inference failed", zap.Error(err))
		return nil, err
	}

	research := model.ResearchSummary{
		Stats:   corpus.Stats(),
		Sources: corpus.Sources(),
	}

	derived := e.runDerived(ctx, analysis, req, research, rep)

	report(rep, 12, "Consolidando análise final...", "")
	doc := consolidate(req, research, analysis, derived)

	score := Score(doc)
	if score < e.cfg.QualityTarget {
		log.Warn("engine: quality below target, continuing",
			zap.Float64("score", score),
			zap.Float64("target", e.cfg.QualityTarget),
		)
	}

	doc.Metadata = model.Metadata{
		ProcessingSeconds: time.Since(start).Seconds(),
		QualityScore:      score,
		Engine:            engineName,
		GeneratedAt:       time.Now().UTC(),
		SourceCount:       corpus.UniqueSources(),
		ContentAnalyzed:   corpus.TotalContentLength(),
	}

	report(rep, 13, "Análise concluída com sucesso!", "")
	log.Info("engine: analysis complete",
		zap.Float64("quality_score", score),
		zap.Duration("elapsed", time.Since(start)),
	)
	return doc, nil
}
