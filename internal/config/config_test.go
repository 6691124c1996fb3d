package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Store.Driver)
	assert.Equal(t, "market-intel.db", cfg.Store.DatabaseURL)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 8080, cfg.Server.Port)

	assert.Equal(t, 30000, cfg.Engine.MinContentChars)
	assert.Equal(t, 10, cfg.Engine.MinSources)
	assert.Equal(t, 85.0, cfg.Engine.QualityTarget)
	assert.Equal(t, 12, cfg.Engine.MaxQueries)
	assert.Equal(t, 15, cfg.Engine.MaxHitsPerQuery)
	assert.Equal(t, 100, cfg.Engine.MinPageChars)
	assert.Equal(t, 3000, cfg.Engine.MaxPageChars)
	assert.Equal(t, 15, cfg.Engine.PromptPages)
	assert.Equal(t, 2000, cfg.Engine.PromptPageChars)
	assert.Equal(t, 8192, cfg.Engine.MaxTokens)
	assert.Equal(t, time.Second, cfg.Engine.QueryPacing)

	assert.Equal(t, "https://r.jina.ai", cfg.Jina.BaseURL)
	assert.Equal(t, "https://google.serper.dev", cfg.Serper.BaseURL)
	assert.Equal(t, "analyses_output", cfg.Export.BaseDir)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("MARKET_ENGINE_MAX_QUERIES", "5")
	t.Setenv("MARKET_STORE_DRIVER", "postgres")
	t.Setenv("MARKET_ANTHROPIC_KEY", "sk-test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Engine.MaxQueries)
	assert.Equal(t, "postgres", cfg.Store.Driver)
	assert.Equal(t, "sk-test", cfg.Anthropic.Key)
}

func TestInitLogger(t *testing.T) {
	assert.NoError(t, InitLogger(LogConfig{Level: "debug", Format: "console"}))
	assert.NoError(t, InitLogger(LogConfig{Level: "info", Format: "json"}))
	assert.Error(t, InitLogger(LogConfig{Level: "nonsense"}))
}
