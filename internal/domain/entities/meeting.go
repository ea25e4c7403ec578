package entities

import (
	"fmt"
	"time"
)

// Artifact names one independently stored piece of a meeting
type Artifact string

const (
	ArtifactTitle      Artifact = "title"
	ArtifactSummary    Artifact = "summary"
	ArtifactTranscript Artifact = "transcript"
	ArtifactProvider   Artifact = "provider"
)

// Artifacts lists every artifact in persistence order. The summary is written
// last because its presence is what marks a meeting as finished.
var Artifacts = []Artifact{ArtifactTranscript, ArtifactProvider, ArtifactTitle, ArtifactSummary}

// Meeting is one processed upload. Fields that were never written hold
// their defaults, see NewMeeting.
type Meeting struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	CreatedAt  *time.Time `json:"created_at,omitempty"`
	Transcript string     `json:"transcript"`
	Summary    string     `json:"summary"`
	Provider   Provider   `json:"provider"`
}

// NewMeeting returns the record of an id whose artifacts are all missing
func NewMeeting(id string) *Meeting {
	return &Meeting{
		ID:       id,
		Title:    id,
		Provider: DefaultProvider,
	}
}

// Exists reports whether the storage location of the meeting exists
func (m *Meeting) Exists() bool {
	return m.CreatedAt != nil
}

// HasSummary reports whether the meeting can be shown as a result
func (m *Meeting) HasSummary() bool {
	return m.Summary != ""
}

// IsComplete reports whether the meeting has every artifact the pipeline
// writes, so it can no longer change.
func (m *Meeting) IsComplete() bool {
	return m.Exists() && m.Summary != "" && m.Transcript != ""
}

// PlaceholderTitle is the title used when the model did not return one
func PlaceholderTitle(jobID string) string {
	short := jobID
	if len(short) > 8 {
		short = short[:8]
	}
	return fmt.Sprintf("Meeting - %s", short)
}
