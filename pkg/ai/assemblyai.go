package ai

import (
	"context"
	"fmt"
	"os"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"

	"github.com/johnquangdev/meeting-scribe/pkg/config"
)

// AssemblyAITranscriber transcribes audio with the official AssemblyAI SDK
type AssemblyAITranscriber struct {
	client *aai.Client
}

var _ Transcriber = (*AssemblyAITranscriber)(nil)

// NewAssemblyAITranscriber creates a transcriber. It fails with ErrMissingAPIKey
// when ASSEMBLYAI_API_KEY is not configured.
func NewAssemblyAITranscriber(cfg *config.TranscribeConfig) (*AssemblyAITranscriber, error) {
	if cfg == nil || cfg.AssemblyAIAPIKey == "" {
		return nil, fmt.Errorf("assemblyai: %w (set ASSEMBLYAI_API_KEY)", ErrMissingAPIKey)
	}
	return &AssemblyAITranscriber{client: aai.NewClient(cfg.AssemblyAIAPIKey)}, nil
}

// Name returns the backend name
func (a *AssemblyAITranscriber) Name() string {
	return "assemblyai"
}

// Transcribe uploads the file and waits until the transcript is ready
func (a *AssemblyAITranscriber) Transcribe(ctx context.Context, audioPath string) (string, error) {
	f, err := os.Open(audioPath)
	if err != nil {
		return "", fmt.Errorf("opening audio file: %w", err)
	}
	defer f.Close()

	params := &aai.TranscriptOptionalParams{
		SpeakerLabels: aai.Bool(true),
	}
	transcript, err := a.client.Transcripts.TranscribeFromReader(ctx, f, params)
	if err != nil {
		return "", fmt.Errorf("assemblyai transcription: %w", err)
	}
	if transcript.Status == aai.TranscriptStatusError {
		msg := "unknown error"
		if transcript.Error != nil {
			msg = *transcript.Error
		}
		return "", fmt.Errorf("assemblyai transcription: %s", msg)
	}
	if transcript.Text == nil {
		return "", nil
	}
	return *transcript.Text, nil
}
