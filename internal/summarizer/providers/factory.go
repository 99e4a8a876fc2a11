package providers

import (
	"fmt"

	"gistify/internal/summarizer"
)

// New returns an initialized provider for the given name.
func New(name string, cfg Config) (summarizer.Provider, error) {
	switch name {
	case ProviderGoogle:
		return NewGoogleProvider(cfg), nil
	case ProviderOpenAI:
		return NewOpenAIProvider(cfg), nil
	default:
		return nil, fmt.Errorf("unknown summarization provider: %q", name)
	}
}
