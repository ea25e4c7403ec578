package repositories

import (
	"context"
	"errors"

	"github.com/johnquangdev/meeting-scribe/internal/domain/entities"
)

// ErrArtifactExists is returned when an artifact of a meeting is written twice
var ErrArtifactExists = errors.New("meeting artifact already written")

// MeetingRepository reads and writes the artifacts of meetings.
//
// Get never fails because a meeting or one of its artifacts is missing: absent
// artifacts take their defaults and an absent location leaves CreatedAt nil.
type MeetingRepository interface {
	// Create makes the storage location of a meeting. Creating an existing
	// location is not an error.
	Create(ctx context.Context, id string) error
	// Write stores one artifact. Each artifact can be written once.
	Write(ctx context.Context, id string, artifact entities.Artifact, content string) error
	// Get loads a meeting by id.
	Get(ctx context.Context, id string) (*entities.Meeting, error)
	// ListIDs returns the ids of all known meetings in no particular order.
	ListIDs(ctx context.Context) ([]string, error)
}
