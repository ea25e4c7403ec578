package ai

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/johnquangdev/meeting-scribe/pkg/config"
)

// OpenAIClient generates text with OpenAI chat completions
type OpenAIClient struct {
	client *openai.Client
	model  string
}

var _ Generator = (*OpenAIClient)(nil)

// newOpenAIAPI builds the shared API client for chat and audio
func newOpenAIAPI(cfg *config.OpenAIConfig) (*openai.Client, error) {
	if cfg == nil || cfg.APIKey == "" {
		return nil, fmt.Errorf("openai: %w (set OPENAI_API_KEY)", ErrMissingAPIKey)
	}
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	return openai.NewClientWithConfig(clientCfg), nil
}

// NewOpenAIClient creates an OpenAI client. It fails with ErrMissingAPIKey when
// OPENAI_API_KEY is not configured.
func NewOpenAIClient(cfg *config.OpenAIConfig) (*OpenAIClient, error) {
	client, err := newOpenAIAPI(cfg)
	if err != nil {
		return nil, err
	}
	return &OpenAIClient{client: client, model: cfg.Model}, nil
}

// Name returns the provider key
func (c *OpenAIClient) Name() string {
	return "openai"
}

// Generate sends a system and a user message and returns the first choice
func (c *OpenAIClient) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if req.SystemPrompt != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.SystemPrompt,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: req.Prompt,
	})

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    c.model,
		Messages: messages,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("openai: %w", ErrEmptyResponse)
	}
	return resp.Choices[0].Message.Content, nil
}
