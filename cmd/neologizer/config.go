package main

import (
	"fmt"

	"github.com/cliffjones/neologizer/pkg/config"
	"github.com/cliffjones/neologizer/pkg/generator"
	"github.com/cliffjones/neologizer/pkg/httpserver"
	"github.com/cliffjones/neologizer/pkg/logger"
	"github.com/cliffjones/neologizer/pkg/ratelimiter"
)

// AppConfig is read from NEOLOGIZER_* environment variables and an optional
// .env file.
type AppConfig struct {
	Env       string `env:"NEOLOGIZER_ENV" envDefault:"development"`
	LogLevel  string `env:"NEOLOGIZER_LOG_LEVEL"`
	LogFormat string `env:"NEOLOGIZER_LOG_FORMAT"`

	Generator generator.Config  `envPrefix:"NEOLOGIZER_"`
	HTTP      httpserver.Config `envPrefix:"NEOLOGIZER_HTTP_"`

	RateLimitEnabled bool               `env:"NEOLOGIZER_RATE_LIMIT_ENABLED" envDefault:"true"`
	RateLimit        ratelimiter.Config `envPrefix:"NEOLOGIZER_RATE_LIMIT_"`
	// TrustProxy makes the server read the client IP from proxy headers.
	TrustProxy bool `env:"NEOLOGIZER_TRUST_PROXY"`
	// MaxInputLength caps source text, in runes.
	MaxInputLength int `env:"NEOLOGIZER_MAX_INPUT_LENGTH" envDefault:"100000"`
}

func loadConfig() (AppConfig, error) {
	var cfg AppConfig
	if err := config.Load(&cfg); err != nil {
		return cfg, err
	}

	switch logger.Format(cfg.LogFormat) {
	case "", logger.FormatJSON, logger.FormatText:
	default:
		return cfg, fmt.Errorf("%w: NEOLOGIZER_LOG_FORMAT must be json or text, got %q", config.ErrParsingConfig, cfg.LogFormat)
	}
	return cfg, nil
}
