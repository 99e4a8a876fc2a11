// Package providers contains the generative-text service integrations
// behind the summarization pipeline.
package providers

import (
	"time"
)

const (
	// ProviderGoogle selects the Gemini generateContent API.
	ProviderGoogle = "google"
	// ProviderOpenAI selects the OpenAI Responses API.
	ProviderOpenAI = "openai"

	// DefaultTimeout bounds a single outbound call when no timeout is
	// configured.
	DefaultTimeout = 60 * time.Second
)

// Config holds common settings for a provider.
type Config struct {
	APIKey string
	// Model overrides the provider's default model when non-empty.
	Model string
	// Timeout bounds one outbound call; zero means DefaultTimeout.
	Timeout time.Duration
}

func (c Config) timeout() time.Duration {
	if c.Timeout <= 0 {
		return DefaultTimeout
	}

	return c.Timeout
}
