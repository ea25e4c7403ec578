package errors

import "errors"

// Provider errors
var (
	ErrProviderNotConfigured = errors.New("provider is not configured")
	ErrUnknownProvider       = errors.New("unknown provider")
)

// Pipeline errors
var (
	ErrTranscriberNotConfigured = errors.New("transcriber is not configured")
	ErrNoTranscript             = errors.New("meeting has no transcript")
)
