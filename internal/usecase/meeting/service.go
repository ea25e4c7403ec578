package meeting

import (
	"context"
	"io"

	"github.com/johnquangdev/meeting-scribe/internal/domain/entities"
)

// Service defines the interface for meeting use case
type Service interface {
	// Process runs an upload through transcription and summarization and
	// persists the resulting meeting
	Process(ctx context.Context, input ProcessInput) (*ProcessOutput, error)

	// List returns meetings, optionally filtered by a search term
	List(ctx context.Context, query string) ([]*entities.Meeting, error)

	// Get returns a finished meeting
	Get(ctx context.Context, id string) (*entities.Meeting, error)

	// Ask answers a question about a meeting's transcript
	Ask(ctx context.Context, input AskInput) (*AskOutput, error)

	// Providers lists the configured summary/chat back-ends
	Providers() []entities.Provider
}

// ProcessInput represents one uploaded recording
type ProcessInput struct {
	Filename string
	Content  io.Reader
	// Provider is the requested summary back-end, empty for the default
	Provider string
}

// ProcessOutput represents a persisted meeting
type ProcessOutput struct {
	JobID    string
	Title    string
	Provider entities.Provider
}

// AskInput represents a chat question
type AskInput struct {
	MeetingID string
	Question  string
	Provider  string
}

// AskOutput represents a chat answer
type AskOutput struct {
	Reply    string
	Provider entities.Provider
}

// Ensure MeetingService implements Service interface
var _ Service = (*MeetingService)(nil)
