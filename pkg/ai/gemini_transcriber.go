package ai

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"google.golang.org/genai"

	"github.com/johnquangdev/meeting-scribe/pkg/config"
)

// GeminiTranscriptionPrompt asks for a plain transcript of the attached recording
const GeminiTranscriptionPrompt = "Transcribe this meeting recording verbatim. " +
	"Return only the transcript text, without timestamps, headings or commentary."

// geminiInlineLimit is the largest file sent inside the request. Bigger files
// go through the Files API.
const geminiInlineLimit = 18 << 20

const (
	geminiFilePollInterval = 2 * time.Second
	geminiFilePollRetries  = 150
)

var audioMIMETypes = map[string]string{
	".wav": "audio/wav",
	".mp3": "audio/mp3",
	".m4a": "audio/mp4",
	".ogg": "audio/ogg",
	".mp4": "video/mp4",
}

var errFileNotReady = errors.New("uploaded file is still processing")

// GeminiTranscriber transcribes audio with a multimodal Gemini model
type GeminiTranscriber struct {
	client *genai.Client
	model  string
}

var _ Transcriber = (*GeminiTranscriber)(nil)

// NewGeminiTranscriber uses the GOOGLE_API_KEY credential for transcription
func NewGeminiTranscriber(ctx context.Context, cfg *config.GeminiConfig) (*GeminiTranscriber, error) {
	client, err := newGenAIClient(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &GeminiTranscriber{client: client, model: cfg.Model}, nil
}

// Name returns the backend name
func (g *GeminiTranscriber) Name() string {
	return "gemini"
}

// Transcribe sends the recording with a transcription instruction and returns the text
func (g *GeminiTranscriber) Transcribe(ctx context.Context, audioPath string) (string, error) {
	info, err := os.Stat(audioPath)
	if err != nil {
		return "", fmt.Errorf("gemini transcription: %w", err)
	}
	mimeType := audioMIMEType(audioPath)

	var audio *genai.Part
	if info.Size() <= geminiInlineLimit {
		data, err := os.ReadFile(audioPath)
		if err != nil {
			return "", fmt.Errorf("gemini transcription: %w", err)
		}
		audio = genai.NewPartFromBytes(data, mimeType)
	} else {
		file, err := g.upload(ctx, audioPath, mimeType)
		if err != nil {
			return "", fmt.Errorf("gemini transcription: %w", err)
		}
		defer g.client.Files.Delete(context.WithoutCancel(ctx), file.Name, nil)
		audio = genai.NewPartFromURI(file.URI, file.MIMEType)
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(GeminiTranscriptionPrompt),
			audio,
		}, genai.RoleUser),
	}
	result, err := g.client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("gemini transcription: %w", err)
	}
	text, err := candidateText(result)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// upload sends a large recording to the Files API and waits until it is usable
func (g *GeminiTranscriber) upload(ctx context.Context, path, mimeType string) (*genai.File, error) {
	file, err := g.client.Files.UploadFromPath(ctx, path, &genai.UploadFileConfig{MIMEType: mimeType})
	if err != nil {
		return nil, fmt.Errorf("upload: %w", err)
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(geminiFilePollInterval), geminiFilePollRetries),
		ctx,
	)
	err = backoff.Retry(func() error {
		current, err := g.client.Files.Get(ctx, file.Name, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		switch current.State {
		case genai.FileStateActive:
			file = current
			return nil
		case genai.FileStateFailed:
			return backoff.Permanent(fmt.Errorf("file %s failed processing", file.Name))
		}
		return errFileNotReady
	}, policy)
	if err != nil {
		return nil, err
	}
	return file, nil
}

func audioMIMEType(path string) string {
	if t, ok := audioMIMETypes[strings.ToLower(filepath.Ext(path))]; ok {
		return t
	}
	return "application/octet-stream"
}
