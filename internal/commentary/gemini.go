package commentary

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"
)

const promptTemplate = "You are a sarcastic 8-bit duck. The player just lost a runner game " +
	"with a score of %d. Give one short, punchy comment about their performance. " +
	"Keep it under 15 words. No emojis."

// GeminiOptions configures a GeminiClient. Empty BaseURL and APIVersion
// keep the SDK defaults.
type GeminiOptions struct {
	BaseURL    string
	APIVersion string
	Model      string
	APIKey     string
	HTTPClient *http.Client // nil uses the SDK default
}

// GeminiClient asks the Gemini API for commentary.
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient creates a client. An empty API key is rejected with
// ErrNoCredentials.
func NewGeminiClient(ctx context.Context, opts GeminiOptions) (*GeminiClient, error) {
	if strings.TrimSpace(opts.APIKey) == "" {
		return nil, ErrNoCredentials
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     opts.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: opts.HTTPClient,
		HTTPOptions: genai.HTTPOptions{
			BaseURL:    opts.BaseURL,
			APIVersion: opts.APIVersion,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("commentary: new client: %w", err)
	}
	return &GeminiClient{client: client, model: opts.Model}, nil
}

// Prompt returns the request text for score.
func Prompt(score int) string {
	return fmt.Sprintf(promptTemplate, score)
}

// Commentary implements Provider.
func (c *GeminiClient) Commentary(ctx context.Context, score int) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(Prompt(score)), nil)
	if err != nil {
		return "", fmt.Errorf("commentary: generate: %w", err)
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}
