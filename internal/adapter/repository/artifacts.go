package repository

import (
	"fmt"
	"strings"

	"github.com/johnquangdev/meeting-scribe/internal/domain/entities"
)

// artifactFiles is the persisted layout of a meeting. The names are a durable
// contract shared by every backend.
var artifactFiles = map[entities.Artifact]string{
	entities.ArtifactTitle:      "title.txt",
	entities.ArtifactSummary:    "summary.md",
	entities.ArtifactTranscript: "transcript.txt",
	entities.ArtifactProvider:   "provider.txt",
}

func artifactFile(a entities.Artifact) (string, error) {
	name, ok := artifactFiles[a]
	if !ok {
		return "", fmt.Errorf("%w: %q", entities.ErrUnknownField, a)
	}
	return name, nil
}

// validID rejects ids that could escape the storage root
func validID(id string) error {
	switch {
	case id == "":
		return entities.ErrEmptyMeetingID
	case id == "." || id == "..", strings.ContainsAny(id, `/\`), strings.HasPrefix(id, "."):
		return fmt.Errorf("invalid meeting id %q", id)
	}
	return nil
}

// applyArtifact sets one field of m from stored content, normalising the way
// every backend must.
func applyArtifact(m *entities.Meeting, a entities.Artifact, content string) {
	switch a {
	case entities.ArtifactTitle:
		m.Title = strings.TrimSpace(content)
	case entities.ArtifactSummary:
		m.Summary = content
	case entities.ArtifactTranscript:
		m.Transcript = content
	case entities.ArtifactProvider:
		if p := strings.TrimSpace(content); p != "" {
			m.Provider = entities.Provider(p)
		}
	}
}
