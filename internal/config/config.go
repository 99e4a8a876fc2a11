// Package config loads process-wide configuration from the environment.
// The credential for the selected provider is resolved once at startup;
// its absence is a fatal configuration error, never a per-request one.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"gistify/internal/errortypes"
	"gistify/internal/summarizer/providers"
)

type Config struct {
	Addr               string        `env:"ADDR"                 envDefault:":8080"`
	Provider           string        `env:"SUMMARIZER_PROVIDER"  envDefault:"google"`
	GoogleAPIKey       string        `env:"GOOGLE_API_KEY"`
	OpenAIAPIKey       string        `env:"OPENAI_API_KEY"`
	Model              string        `env:"SUMMARIZER_MODEL"`
	RequestTimeout     time.Duration `env:"REQUEST_TIMEOUT"      envDefault:"60s"`
	DefaultTargetWords int           `env:"DEFAULT_TARGET_WORDS" envDefault:"50"`
}

// Load parses and validates configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) validate() error {
	if _, err := c.APIKey(); err != nil {
		return err
	}

	if c.DefaultTargetWords <= 0 {
		return errortypes.New(errortypes.KindConfiguration, "DEFAULT_TARGET_WORDS must be positive")
	}

	if c.RequestTimeout <= 0 {
		return errortypes.New(errortypes.KindConfiguration, "REQUEST_TIMEOUT must be positive")
	}

	return nil
}

// APIKey returns the credential for the selected provider.
func (c Config) APIKey() (string, error) {
	switch c.Provider {
	case providers.ProviderGoogle:
		key := strings.TrimSpace(c.GoogleAPIKey)
		if key == "" {
			return "", errortypes.New(errortypes.KindConfiguration,
				"GOOGLE_API_KEY is required when SUMMARIZER_PROVIDER=google")
		}

		return key, nil
	case providers.ProviderOpenAI:
		key := strings.TrimSpace(c.OpenAIAPIKey)
		if key == "" {
			return "", errortypes.New(errortypes.KindConfiguration,
				"OPENAI_API_KEY is required when SUMMARIZER_PROVIDER=openai")
		}

		return key, nil
	default:
		return "", errortypes.New(errortypes.KindConfiguration,
			fmt.Sprintf("unknown SUMMARIZER_PROVIDER: %q", c.Provider))
	}
}
