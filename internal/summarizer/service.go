package summarizer

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"gistify/internal/errortypes"
	"gistify/internal/prompt"
)

// Service is the summarization request pipeline: it builds the prompt,
// issues exactly one provider call, and classifies the outcome. It holds
// no per-request state and is safe for concurrent use.
type Service struct {
	provider Provider
	log      *slog.Logger
}

// NewService builds a new pipeline around the given provider.
func NewService(provider Provider, log *slog.Logger) *Service {
	return &Service{
		provider: provider,
		log:      log,
	}
}

// Provider returns the name of the configured provider.
func (s *Service) Provider() string {
	return s.provider.Name()
}

// Summarize runs one request through the pipeline. Validation failures
// surface before any network activity; a summary is never returned empty.
// No retries are performed, resubmission is the caller's decision.
func (s *Service) Summarize(ctx context.Context, req Request) (*Summary, error) {
	p, err := prompt.Build(req.Text, req.TargetWords)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(p) == "" {
		return nil, errortypes.New(errortypes.KindValidation, "prompt is empty")
	}

	start := time.Now()

	out, err := s.provider.Generate(ctx, p)
	if err != nil {
		if _, ok := errortypes.KindOf(err); ok {
			return nil, err
		}

		return nil, errortypes.Wrap(errortypes.KindRemote, "generate summary", err)
	}

	summary := strings.TrimSpace(out)
	if summary == "" {
		return nil, errortypes.New(errortypes.KindEmptyResponse, "provider returned no usable content")
	}

	s.log.InfoContext(ctx, "Summary is generated",
		"provider", s.provider.Name(),
		"elapsedSeconds", time.Since(start).Seconds(),
		"summaryWords", len(strings.Fields(summary)))

	return &Summary{
		Text:     summary,
		Provider: s.provider.Name(),
	}, nil
}
