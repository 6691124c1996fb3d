// Package config loads application configuration from file and environment.
package config

import (
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Store     StoreConfig     `yaml:"store" mapstructure:"store"`
	Anthropic AnthropicConfig `yaml:"anthropic" mapstructure:"anthropic"`
	Jina      JinaConfig      `yaml:"jina" mapstructure:"jina"`
	Serper    SerperConfig    `yaml:"serper" mapstructure:"serper"`
	Engine    EngineConfig    `yaml:"engine" mapstructure:"engine"`
	Export    ExportConfig    `yaml:"export" mapstructure:"export"`
	Server    ServerConfig    `yaml:"server" mapstructure:"server"`
	Log       LogConfig       `yaml:"log" mapstructure:"log"`
}

// StoreConfig configures the database backend.
type StoreConfig struct {
	Driver      string `yaml:"driver" mapstructure:"driver"`
	DatabaseURL string `yaml:"database_url" mapstructure:"database_url"`
}

// AnthropicConfig holds Anthropic API settings.
type AnthropicConfig struct {
	Key            string `yaml:"key" mapstructure:"key"`
	AnalysisModel  string `yaml:"analysis_model" mapstructure:"analysis_model"`
	GeneratorModel string `yaml:"generator_model" mapstructure:"generator_model"`
}

// JinaConfig holds Jina AI Reader and Search settings.
type JinaConfig struct {
	Key           string `yaml:"key" mapstructure:"key"`
	BaseURL       string `yaml:"base_url" mapstructure:"base_url"`
	SearchBaseURL string `yaml:"search_base_url" mapstructure:"search_base_url"`
}

// SerperConfig holds Serper.dev search API settings.
type SerperConfig struct {
	Key     string `yaml:"key" mapstructure:"key"`
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`
}

// EngineConfig holds the analysis engine thresholds and limits.
type EngineConfig struct {
	// Ideal research volume. The advisory gate derives its soft floors from
	// these: max(1000, MinContentChars/6) and max(3, MinSources/3).
	MinContentChars int `yaml:"min_content_chars" mapstructure:"min_content_chars"`
	MinSources      int `yaml:"min_sources" mapstructure:"min_sources"`

	// QualityTarget is the ideal final score. Scores below it are logged,
	// never enforced.
	QualityTarget float64 `yaml:"quality_target" mapstructure:"quality_target"`

	MaxQueries      int `yaml:"max_queries" mapstructure:"max_queries"`
	MaxHitsPerQuery int `yaml:"max_hits_per_query" mapstructure:"max_hits_per_query"`
	MinPageChars    int `yaml:"min_page_chars" mapstructure:"min_page_chars"`
	MaxPageChars    int `yaml:"max_page_chars" mapstructure:"max_page_chars"`

	// Prompt excerpt limits.
	PromptPages     int `yaml:"prompt_pages" mapstructure:"prompt_pages"`
	PromptPageChars int `yaml:"prompt_page_chars" mapstructure:"prompt_page_chars"`

	// MaxTokens caps the main inference completion.
	MaxTokens int `yaml:"max_tokens" mapstructure:"max_tokens"`

	// QueryPacing is the minimum interval between search queries.
	QueryPacing time.Duration `yaml:"query_pacing" mapstructure:"query_pacing"`
}

// ExportConfig configures local file export of analyses.
type ExportConfig struct {
	BaseDir string `yaml:"base_dir" mapstructure:"base_dir"`
}

// ServerConfig configures the HTTP API server.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("MARKET")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults. Secrets default to empty so env-only values bind on
	// Unmarshal.
	v.SetDefault("anthropic.key", "")
	v.SetDefault("jina.key", "")
	v.SetDefault("serper.key", "")
	v.SetDefault("store.driver", "sqlite")
	v.SetDefault("store.database_url", "market-intel.db")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("server.port", 8080)
	v.SetDefault("anthropic.analysis_model", "claude-sonnet-4-5-20250929")
	v.SetDefault("anthropic.generator_model", "claude-haiku-4-5-20251001")
	v.SetDefault("engine.max_tokens", 8192)
	v.SetDefault("jina.base_url", "https://r.jina.ai")
	v.SetDefault("jina.search_base_url", "https://s.jina.ai")
	v.SetDefault("serper.base_url", "https://google.serper.dev")
	v.SetDefault("engine.min_content_chars", 30000)
	v.SetDefault("engine.min_sources", 10)
	v.SetDefault("engine.quality_target", 85.0)
	v.SetDefault("engine.max_queries", 12)
	v.SetDefault("engine.max_hits_per_query", 15)
	v.SetDefault("engine.min_page_chars", 100)
	v.SetDefault("engine.max_page_chars", 3000)
	v.SetDefault("engine.prompt_pages", 15)
	v.SetDefault("engine.prompt_page_chars", 2000)
	v.SetDefault("engine.query_pacing", "1s")
	v.SetDefault("export.base_dir", "analyses_output")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
