package repository

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/johnquangdev/meeting-scribe/internal/domain/entities"
	"github.com/johnquangdev/meeting-scribe/internal/domain/repositories"
)

// fakeObjectStore keeps objects in memory
type fakeObjectStore struct {
	mu      sync.Mutex
	objects map[string]string
	times   map[string]time.Time
}

func newFakeObjectStore() *fakeObjectStore {
	return &fakeObjectStore{objects: map[string]string{}, times: map[string]time.Time{}}
}

func (f *fakeObjectStore) UploadText(_ context.Context, name, content string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[name] = content
	f.times[name] = time.Now()
	return nil
}

func (f *fakeObjectStore) DownloadText(_ context.Context, name string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.objects[name]
	return c, ok, nil
}

func (f *fakeObjectStore) Stat(_ context.Context, name string) (time.Time, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ts, ok := f.times[name]
	return ts, ok, nil
}

func (f *fakeObjectStore) ListPrefixes(_ context.Context, prefix string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	seen := map[string]bool{}
	var out []string
	for k := range f.objects {
		rest := strings.TrimPrefix(k, prefix)
		if rest == k {
			continue
		}
		if i := strings.Index(rest, "/"); i > 0 && !seen[rest[:i]] {
			seen[rest[:i]] = true
			out = append(out, rest[:i])
		}
	}
	return out, nil
}

func TestObjectRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newFakeObjectStore()
	repo := NewMeetingObjectRepository(store, "processed/")

	if err := repo.Create(ctx, "m1"); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := repo.Create(ctx, "m1"); err != nil {
		t.Fatalf("second Create() error = %v", err)
	}
	_ = repo.Write(ctx, "m1", entities.ArtifactTranscript, "words")
	_ = repo.Write(ctx, "m1", entities.ArtifactTitle, " Roadmap \n")

	if _, ok := store.objects["processed/m1/title.txt"]; !ok {
		t.Fatalf("expected layout processed/<id>/title.txt, got %v", store.objects)
	}

	m, err := repo.Get(ctx, "m1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !m.Exists() || m.Title != "Roadmap" || m.Transcript != "words" || m.Summary != "" || m.Provider != entities.ProviderGemini {
		t.Fatalf("unexpected meeting %+v", m)
	}

	err = repo.Write(ctx, "m1", entities.ArtifactTitle, "again")
	if !errors.Is(err, repositories.ErrArtifactExists) {
		t.Fatalf("second Write() error = %v", err)
	}

	_ = repo.Create(ctx, "m2")
	ids, _ := repo.ListIDs(ctx)
	sort.Strings(ids)
	if len(ids) != 2 || ids[0] != "m1" || ids[1] != "m2" {
		t.Fatalf("ListIDs() = %v", ids)
	}
}

func TestObjectRepositoryMissingLocation(t *testing.T) {
	repo := NewMeetingObjectRepository(newFakeObjectStore(), "")
	m, err := repo.Get(context.Background(), "nope")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if m.Exists() || m.Title != "nope" {
		t.Fatalf("unexpected meeting %+v", m)
	}
}
