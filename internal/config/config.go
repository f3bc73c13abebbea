package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// SafetyMode controls how content-safety verdicts affect the pipeline.
type SafetyMode string

const (
	SafetyModeOff    SafetyMode = "off"
	SafetyModeLog    SafetyMode = "log"
	SafetyModeStrict SafetyMode = "strict"
)

// Config holds all environment backed configuration for order-api.
type Config struct {
	// HTTP Server
	HTTPPort    int    `env:"HTTP_PORT" envDefault:"8080"`
	MetricsPort int    `env:"METRICS_PORT" envDefault:"9091"`
	DatabaseURL string `env:"DATABASE_URL,notEmpty"`

	// OpenAI provider (transcription + extraction)
	OpenAIAPIKey          string        `env:"OPENAI_API_KEY,notEmpty"`
	OpenAIBaseURL         string        `env:"OPENAI_BASE_URL"`
	OpenAIModel           string        `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	OpenAITranscribeModel string        `env:"OPENAI_TRANSCRIBE_MODEL" envDefault:"whisper-1"`
	OpenAITimeout         time.Duration `env:"OPENAI_TIMEOUT" envDefault:"45s"`

	// Content safety provider
	SafetyMode         SafetyMode    `env:"SAFETY_MODE" envDefault:"log"`
	WhiteCircleAPIKey  string        `env:"WHITE_CIRCLE_API_KEY"`
	WhiteCircleBaseURL string        `env:"WHITE_CIRCLE_BASE_URL" envDefault:"https://api.whitecircle.ai"`
	WhiteCircleTimeout time.Duration `env:"WHITE_CIRCLE_TIMEOUT" envDefault:"15s"`

	// Observability / Logging
	OTLPEndpoint     string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName      string `env:"SERVICE_NAME" envDefault:"order-api"`
	ServiceNamespace string `env:"SERVICE_NAMESPACE" envDefault:"ordervoice"`
	Environment      string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel         string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat        string `env:"LOG_FORMAT" envDefault:"console"`

	// Features
	AutoMigrate                 bool `env:"AUTO_MIGRATE" envDefault:"true"`
	QuoteMonitorEnabled         bool `env:"QUOTE_MONITOR_ENABLED" envDefault:"true"`
	QuoteMonitorIntervalMinutes int  `env:"QUOTE_MONITOR_INTERVAL_MINUTES" envDefault:"15"`
}

// Load parses environment variables into Config and performs minimal validation.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	cfg.SafetyMode = SafetyMode(strings.ToLower(strings.TrimSpace(string(cfg.SafetyMode))))
	switch cfg.SafetyMode {
	case SafetyModeOff, SafetyModeLog, SafetyModeStrict:
	default:
		return nil, fmt.Errorf("invalid SAFETY_MODE %q: must be off, log or strict", cfg.SafetyMode)
	}

	return cfg, nil
}

// HasSafetyCredential reports whether a safety-provider credential is configured.
func (c *Config) HasSafetyCredential() bool {
	return strings.TrimSpace(c.WhiteCircleAPIKey) != ""
}
