package summarizer

import (
	"context"
)

// Request describes the payload for a summary request.
type Request struct {
	// Text contains the original plain text to summarise.
	Text string
	// TargetWords is the requested approximate length of the summary.
	// Zero means "use the default"; the target is advisory, the model's
	// actual output length is not validated against it.
	TargetWords int
}

// Summary is a successfully produced summary.
type Summary struct {
	Text     string
	Provider string
}

// Provider sends a single prompt to a generative-text service and returns
// its textual output. Implementations hold no mutable state and are safe
// for concurrent use.
type Provider interface {
	Name() string
	Generate(ctx context.Context, prompt string) (string, error)
}
