package repository

import (
	"context"
	"fmt"
	"path"
	"time"

	"github.com/johnquangdev/meeting-scribe/internal/domain/entities"
	"github.com/johnquangdev/meeting-scribe/internal/domain/repositories"
)

// markerObject is created by Create so that an empty meeting is discoverable
const markerObject = ".meeting"

// ObjectStore is the subset of the object storage client the repository needs
type ObjectStore interface {
	UploadText(ctx context.Context, objectName string, content string) error
	DownloadText(ctx context.Context, objectName string) (string, bool, error)
	Stat(ctx context.Context, objectName string) (time.Time, bool, error)
	ListPrefixes(ctx context.Context, prefix string) ([]string, error)
}

// MeetingObjectRepository stores meetings as <prefix><id>/<artifact> objects
type MeetingObjectRepository struct {
	store  ObjectStore
	prefix string
}

var _ repositories.MeetingRepository = (*MeetingObjectRepository)(nil)

// NewMeetingObjectRepository creates an object-storage backed repository
func NewMeetingObjectRepository(store ObjectStore, prefix string) *MeetingObjectRepository {
	return &MeetingObjectRepository{store: store, prefix: prefix}
}

func (r *MeetingObjectRepository) key(id, name string) string {
	return r.prefix + path.Join(id, name)
}

// Create writes the marker object unless it already exists
func (r *MeetingObjectRepository) Create(ctx context.Context, id string) error {
	if err := validID(id); err != nil {
		return err
	}
	_, exists, err := r.store.Stat(ctx, r.key(id, markerObject))
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return r.store.UploadText(ctx, r.key(id, markerObject), "")
}

// Write uploads one artifact. The existence check and the upload are two
// requests, so two writers racing on the same artifact are not detected.
func (r *MeetingObjectRepository) Write(ctx context.Context, id string, artifact entities.Artifact, content string) error {
	if err := validID(id); err != nil {
		return err
	}
	name, err := artifactFile(artifact)
	if err != nil {
		return err
	}
	key := r.key(id, name)
	_, exists, err := r.store.Stat(ctx, key)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%s of %s: %w", artifact, id, repositories.ErrArtifactExists)
	}
	return r.store.UploadText(ctx, key, content)
}

// Get loads a meeting; CreatedAt comes from the marker object
func (r *MeetingObjectRepository) Get(ctx context.Context, id string) (*entities.Meeting, error) {
	m := entities.NewMeeting(id)
	if validID(id) != nil {
		return m, nil
	}

	created, exists, err := r.store.Stat(ctx, r.key(id, markerObject))
	if err != nil {
		return nil, err
	}
	if !exists {
		return m, nil
	}
	m.CreatedAt = &created

	for _, artifact := range entities.Artifacts {
		name, _ := artifactFile(artifact)
		content, ok, err := r.store.DownloadText(ctx, r.key(id, name))
		if err != nil {
			return nil, err
		}
		if ok {
			applyArtifact(m, artifact, content)
		}
	}
	return m, nil
}

// ListIDs lists the meeting prefixes
func (r *MeetingObjectRepository) ListIDs(ctx context.Context) ([]string, error) {
	return r.store.ListPrefixes(ctx, r.prefix)
}
