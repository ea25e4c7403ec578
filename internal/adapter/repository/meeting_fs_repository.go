package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/johnquangdev/meeting-scribe/internal/domain/entities"
	"github.com/johnquangdev/meeting-scribe/internal/domain/repositories"
)

// MeetingFSRepository stores each meeting as a directory of text files under root
type MeetingFSRepository struct {
	root string
}

var _ repositories.MeetingRepository = (*MeetingFSRepository)(nil)

// NewMeetingFSRepository creates the repository, creating root if needed
func NewMeetingFSRepository(root string) (*MeetingFSRepository, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage root: %w", err)
	}
	return &MeetingFSRepository{root: root}, nil
}

// Root returns the storage root directory
func (r *MeetingFSRepository) Root() string {
	return r.root
}

func (r *MeetingFSRepository) dir(id string) string {
	return filepath.Join(r.root, id)
}

// Create creates the meeting directory
func (r *MeetingFSRepository) Create(ctx context.Context, id string) error {
	if err := validID(id); err != nil {
		return err
	}
	if err := os.MkdirAll(r.dir(id), 0o755); err != nil {
		return fmt.Errorf("failed to create meeting directory: %w", err)
	}
	return nil
}

// Write stores one artifact. Content goes to a hidden temp file first and is
// hard-linked into place, so readers see either nothing or the whole file and
// a second write fails with ErrArtifactExists.
func (r *MeetingFSRepository) Write(ctx context.Context, id string, artifact entities.Artifact, content string) error {
	if err := validID(id); err != nil {
		return err
	}
	name, err := artifactFile(artifact)
	if err != nil {
		return err
	}
	dir := r.dir(id)
	final := filepath.Join(dir, name)

	tmp, err := os.CreateTemp(dir, "."+name+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", name, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", name, err)
	}

	if err := os.Link(tmpName, final); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%s of %s: %w", artifact, id, repositories.ErrArtifactExists)
		}
		return fmt.Errorf("failed to publish %s: %w", name, err)
	}
	return nil
}

// Get loads a meeting. A missing directory or file is not an error.
func (r *MeetingFSRepository) Get(ctx context.Context, id string) (*entities.Meeting, error) {
	m := entities.NewMeeting(id)
	if validID(id) != nil {
		return m, nil
	}

	info, err := os.Stat(r.dir(id))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return m, nil
		}
		return nil, fmt.Errorf("failed to stat meeting %s: %w", id, err)
	}
	if !info.IsDir() {
		return m, nil
	}
	modTime := info.ModTime()
	m.CreatedAt = &modTime

	for _, artifact := range entities.Artifacts {
		name, _ := artifactFile(artifact)
		data, err := os.ReadFile(filepath.Join(r.dir(id), name))
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("failed to read %s of %s: %w", name, id, err)
		}
		applyArtifact(m, artifact, string(data))
	}
	return m, nil
}

// ListIDs returns the names of all meeting directories
func (r *MeetingFSRepository) ListIDs(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(r.root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list meetings: %w", err)
	}

	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		ids = append(ids, e.Name())
	}
	return ids, nil
}
