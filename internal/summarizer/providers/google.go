package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"gistify/internal/errortypes"
)

const (
	googleAPIBaseURL   = "https://generativelanguage.googleapis.com/v1beta/models"
	defaultGoogleModel = "gemini-1.5-flash-latest"

	// Slightly lowered temperature keeps summaries factual.
	googleTemperature = 0.7
)

type googlePart struct {
	Text string `json:"text"`
}

type googleContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []googlePart `json:"parts"`
}

type googleGenerationConfig struct {
	Temperature float64 `json:"temperature"`
}

type googleRequest struct {
	Contents         []googleContent        `json:"contents"`
	GenerationConfig googleGenerationConfig `json:"generationConfig"`
}

type googleResponse struct {
	Candidates []struct {
		Content struct {
			Parts []googlePart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	PromptFeedback *struct {
		BlockReason string `json:"blockReason"`
	} `json:"promptFeedback,omitempty"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error,omitempty"`
}

// GoogleProvider calls the Gemini generateContent API over HTTP.
type GoogleProvider struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
}

// NewGoogleProvider builds a Gemini-backed provider.
func NewGoogleProvider(cfg Config) *GoogleProvider {
	return newGoogleProvider(cfg, "")
}

// NewGoogleProviderWithEndpoint builds a provider pointing at a custom API
// endpoint (for testing).
func NewGoogleProviderWithEndpoint(cfg Config, endpoint string) *GoogleProvider {
	return newGoogleProvider(cfg, endpoint)
}

func newGoogleProvider(cfg Config, endpoint string) *GoogleProvider {
	model := cfg.Model
	if model == "" {
		model = defaultGoogleModel
	}

	if endpoint == "" {
		endpoint = fmt.Sprintf("%s/%s:generateContent", googleAPIBaseURL, model)
	}

	return &GoogleProvider{
		apiKey:   cfg.APIKey,
		model:    model,
		endpoint: endpoint,
		client:   &http.Client{Timeout: cfg.timeout()},
	}
}

// Name returns the provider name.
func (p *GoogleProvider) Name() string {
	return ProviderGoogle
}

// Generate issues one generateContent call and returns the candidate text.
// A missing candidate is returned as an empty string with a nil error; the
// pipeline classifies that case.
func (p *GoogleProvider) Generate(ctx context.Context, prompt string) (string, error) {
	reqBody := googleRequest{
		Contents: []googleContent{
			{
				Role:  "user",
				Parts: []googlePart{{Text: prompt}},
			},
		},
		GenerationConfig: googleGenerationConfig{
			Temperature: googleTemperature,
		},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return "", errortypes.Wrap(errortypes.KindTransport, "call google API", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errortypes.Wrap(errortypes.KindTransport, "read response", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return "", errortypes.New(errortypes.KindConfiguration,
			fmt.Sprintf("google API rejected the credential (status %d)", resp.StatusCode))
	case resp.StatusCode != http.StatusOK:
		return "", errortypes.New(errortypes.KindRemote,
			fmt.Sprintf("google API error (status %d): %s", resp.StatusCode, strings.TrimSpace(string(respBody))))
	}

	var parsed googleResponse
	if err = json.Unmarshal(respBody, &parsed); err != nil {
		return "", errortypes.Wrap(errortypes.KindRemote, "decode response", err)
	}

	if parsed.Error != nil {
		return "", errortypes.New(errortypes.KindRemote,
			fmt.Sprintf("google API error (status %s): %s", parsed.Error.Status, parsed.Error.Message))
	}

	if parsed.PromptFeedback != nil && parsed.PromptFeedback.BlockReason != "" {
		return "", errortypes.New(errortypes.KindRemote,
			fmt.Sprintf("content blocked by google (reason = %s)", parsed.PromptFeedback.BlockReason))
	}

	if len(parsed.Candidates) == 0 {
		return "", nil
	}

	var textBuilder strings.Builder
	for _, part := range parsed.Candidates[0].Content.Parts {
		textBuilder.WriteString(part.Text)
	}

	return textBuilder.String(), nil
}
