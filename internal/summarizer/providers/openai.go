package providers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/responses"

	"gistify/internal/errortypes"
)

const (
	defaultOpenAIModel = openai.ChatModelGPT5Mini2025_08_07

	openAIMaxOutputTokens int64 = 1024
)

// OpenAIProvider calls OpenAI's Responses API.
type OpenAIProvider struct {
	client openai.Client
	model  string
}

// NewOpenAIProvider builds an OpenAI-backed provider.
func NewOpenAIProvider(cfg Config) *OpenAIProvider {
	model := cfg.Model
	if model == "" {
		model = defaultOpenAIModel
	}

	return &OpenAIProvider{
		client: openai.NewClient(
			option.WithAPIKey(cfg.APIKey),
			option.WithRequestTimeout(cfg.timeout()),
		),
		model: model,
	}
}

// Name returns the provider name.
func (p *OpenAIProvider) Name() string {
	return ProviderOpenAI
}

// Generate issues one Responses API call. The prompt is self-contained, so
// it is sent as the input without separate instructions.
func (p *OpenAIProvider) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := p.client.Responses.New(ctx, responses.ResponseNewParams{
		Model:           p.model,
		MaxOutputTokens: openai.Int(openAIMaxOutputTokens),
		Reasoning: responses.ReasoningParam{
			Effort: openai.ReasoningEffortLow,
		},
		Input: responses.ResponseNewParamsInputUnion{
			OfString: openai.String(prompt),
		},
	})
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			if apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden {
				return "", errortypes.Wrap(errortypes.KindConfiguration,
					fmt.Sprintf("openai API rejected the credential (status %d)", apiErr.StatusCode), err)
			}

			return "", errortypes.Wrap(errortypes.KindRemote,
				fmt.Sprintf("openai API error (status %d)", apiErr.StatusCode), err)
		}

		return "", errortypes.Wrap(errortypes.KindTransport, "call openai API", err)
	}

	if resp.Status == "incomplete" {
		return "", errortypes.New(errortypes.KindRemote,
			fmt.Sprintf("response is incomplete (reason = %s)", resp.IncompleteDetails.Reason))
	}

	return resp.OutputText(), nil
}
