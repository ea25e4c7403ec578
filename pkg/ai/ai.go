// Package ai holds the clients of the external speech-to-text and
// language-model services.
package ai

import (
	"context"
	"errors"
)

var (
	// ErrMissingAPIKey is returned by constructors when no credential is configured
	ErrMissingAPIKey = errors.New("api key is not set")
	// ErrEmptyResponse is returned when a service answers without any text
	ErrEmptyResponse = errors.New("empty response")
)

// GenerateRequest is one single-turn exchange with a language model
type GenerateRequest struct {
	SystemPrompt string
	Prompt       string
}

// Generator produces text from a prompt
type Generator interface {
	Generate(ctx context.Context, req GenerateRequest) (string, error)
	Name() string
}

// Transcriber converts a local audio file to text
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (string, error)
	Name() string
}
