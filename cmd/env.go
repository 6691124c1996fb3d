package main

import (
	"context"

	"go.uber.org/zap"

	"github.com/sells-group/market-intel/internal/engine"
	"github.com/sells-group/market-intel/internal/export"
	"github.com/sells-group/market-intel/internal/extract"
	"github.com/sells-group/market-intel/internal/generator"
	"github.com/sells-group/market-intel/internal/search"
	"github.com/sells-group/market-intel/internal/store"
	anthropicpkg "github.com/sells-group/market-intel/pkg/anthropic"
	"github.com/sells-group/market-intel/pkg/jina"
	"github.com/sells-group/market-intel/pkg/serper"
)

// engineEnv holds the initialized store, clients and engine needed by the
// analyze/serve commands.
type engineEnv struct {
	Store    store.Store
	Engine   *engine.Engine
	Search   *search.Waterfall
	Exporter *export.Exporter
	Tracker  *engine.Tracker
}

// Close releases resources held by the environment.
func (e *engineEnv) Close() {
	if e.Store != nil {
		_ = e.Store.Close()
	}
}

// initEngine sets up the store, API clients, the search waterfall, the
// extraction chain, the generators and the engine. Callers should defer
// env.Close().
func initEngine(ctx context.Context) (*engineEnv, error) {
	st, err := store.Open(ctx, cfg.Store)
	if err != nil {
		return nil, err
	}

	anthropicClient := anthropicpkg.NewClient(cfg.Anthropic.Key)

	jinaOpts := []jina.Option{jina.WithBaseURL(cfg.Jina.BaseURL)}
	if cfg.Jina.SearchBaseURL != "" {
		jinaOpts = append(jinaOpts, jina.WithSearchBaseURL(cfg.Jina.SearchBaseURL))
	}
	jinaClient := jina.NewClient(cfg.Jina.Key, jinaOpts...)

	// Search waterfall: Serper primary when configured, Jina fallback.
	var providers []search.Provider
	if cfg.Serper.Key != "" {
		serperClient := serper.NewClient(cfg.Serper.Key, serper.WithBaseURL(cfg.Serper.BaseURL))
		providers = append(providers, search.NewSerperProvider(serperClient))
	} else {
		zap.L().Warn("MARKET_SERPER_KEY not set, searching via Jina only")
	}
	providers = append(providers, search.NewJinaProvider(jinaClient))
	waterfall := search.NewWaterfall(providers...)

	// Extraction chain: plain HTTP first, Jina Reader for pages it cannot
	// handle.
	chain := extract.NewChain(
		extract.NewLocalExtractor(),
		extract.NewJinaExtractor(jinaClient),
	)

	gen := generator.NewGenerator(anthropicClient, cfg.Anthropic)

	eng := engine.New(cfg.Engine, engine.Deps{
		Search:      waterfall,
		Extract:     chain,
		AI:          generator.NewAnalyst(anthropicClient, cfg.Anthropic),
		Triggers:    generator.NewTriggerBuilder(gen),
		Proofs:      generator.NewProofBuilder(gen),
		Objections:  generator.NewObjectionBuilder(gen),
		PrePitch:    generator.NewPitchBuilder(gen),
		Predictions: generator.NewPredictionBuilder(gen),
	})

	return &engineEnv{
		Store:    st,
		Engine:   eng,
		Search:   waterfall,
		Exporter: export.New(cfg.Export.BaseDir),
		Tracker:  engine.NewTracker(),
	}, nil
}
