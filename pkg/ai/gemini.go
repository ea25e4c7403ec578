package ai

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/johnquangdev/meeting-scribe/pkg/config"
)

// GeminiClient generates text with Google Gemini
type GeminiClient struct {
	client *genai.Client
	model  string
}

var _ Generator = (*GeminiClient)(nil)

// NewGeminiClient creates a Gemini client. It fails with ErrMissingAPIKey when
// GOOGLE_API_KEY is not configured.
func NewGeminiClient(ctx context.Context, cfg *config.GeminiConfig) (*GeminiClient, error) {
	client, err := newGenAIClient(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &GeminiClient{client: client, model: cfg.Model}, nil
}

func newGenAIClient(ctx context.Context, cfg *config.GeminiConfig) (*genai.Client, error) {
	if cfg == nil || cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini: %w (set GOOGLE_API_KEY)", ErrMissingAPIKey)
	}
	clientCfg := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientCfg.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}
	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}
	return client, nil
}

// Name returns the provider key
func (g *GeminiClient) Name() string {
	return "gemini"
}

// Generate sends the prompt and concatenates the text parts of the first candidate
func (g *GeminiClient) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	var genCfg *genai.GenerateContentConfig
	if req.SystemPrompt != "" {
		genCfg = &genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: req.SystemPrompt}}},
		}
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(req.Prompt), genCfg)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	return candidateText(result)
}

// candidateText concatenates the text parts of the first candidate
func candidateText(result *genai.GenerateContentResponse) (string, error) {
	if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
		var sb strings.Builder
		for _, part := range result.Candidates[0].Content.Parts {
			if part != nil && part.Text != "" {
				sb.WriteString(part.Text)
			}
		}
		if sb.Len() > 0 {
			return sb.String(), nil
		}
	}
	return "", fmt.Errorf("gemini: %w", ErrEmptyResponse)
}
