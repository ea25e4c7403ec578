package ai

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/johnquangdev/meeting-scribe/pkg/config"
)

// WhisperTranscriber transcribes audio with the OpenAI audio API
type WhisperTranscriber struct {
	client *openai.Client
	model  string
}

var _ Transcriber = (*WhisperTranscriber)(nil)

// NewWhisperTranscriber uses the OpenAI credential for transcription
func NewWhisperTranscriber(openaiCfg *config.OpenAIConfig, cfg *config.TranscribeConfig) (*WhisperTranscriber, error) {
	client, err := newOpenAIAPI(openaiCfg)
	if err != nil {
		return nil, fmt.Errorf("whisper: %w", err)
	}
	model := openai.Whisper1
	if cfg != nil && cfg.WhisperModel != "" {
		model = cfg.WhisperModel
	}
	return &WhisperTranscriber{client: client, model: model}, nil
}

// Name returns the backend name
func (w *WhisperTranscriber) Name() string {
	return "whisper"
}

// Transcribe uploads the file and returns the full transcript text
func (w *WhisperTranscriber) Transcribe(ctx context.Context, audioPath string) (string, error) {
	resp, err := w.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    w.model,
		FilePath: audioPath,
		Format:   openai.AudioResponseFormatJSON,
	})
	if err != nil {
		return "", fmt.Errorf("whisper transcription: %w", err)
	}
	return resp.Text, nil
}
