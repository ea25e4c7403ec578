package meeting

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/johnquangdev/meeting-scribe/internal/adapter/repository"
	"github.com/johnquangdev/meeting-scribe/internal/domain/entities"
	aiuc "github.com/johnquangdev/meeting-scribe/internal/usecase/ai"
	"github.com/johnquangdev/meeting-scribe/pkg/ai"
)

type fakeTranscriber struct {
	text string
	err  error
	// seen is the path passed to Transcribe and whether it existed then
	seen      string
	seenExist bool
}

func (f *fakeTranscriber) Name() string { return "fake" }

func (f *fakeTranscriber) Transcribe(ctx context.Context, audioPath string) (string, error) {
	f.seen = audioPath
	_, err := os.Stat(audioPath)
	f.seenExist = err == nil
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

type fakeGenerator struct {
	reply   string
	err     error
	prompts []string
}

func (f *fakeGenerator) Name() string { return "fake" }

func (f *fakeGenerator) Generate(ctx context.Context, req ai.GenerateRequest) (string, error) {
	f.prompts = append(f.prompts, req.Prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

type fixture struct {
	svc         *MeetingService
	repo        *repository.MeetingFSRepository
	transcriber *fakeTranscriber
	gemini      *fakeGenerator
	openai      *fakeGenerator
	uploadDir   string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	dir := t.TempDir()
	repo, err := repository.NewMeetingFSRepository(filepath.Join(dir, "processed"))
	if err != nil {
		t.Fatalf("NewMeetingFSRepository error: %v", err)
	}
	f := &fixture{
		repo:        repo,
		transcriber: &fakeTranscriber{text: "we reviewed the budget for next quarter"},
		gemini:      &fakeGenerator{reply: "Title: Budget Review\n**Key Discussion Points:**\n- budget"},
		openai:      &fakeGenerator{reply: "Title: From OpenAI\nbody"},
		uploadDir:   filepath.Join(dir, "uploads"),
	}
	gateway := aiuc.NewGateway(map[entities.Provider]ai.Generator{
		entities.ProviderGemini: f.gemini,
		entities.ProviderOpenAI: f.openai,
	}, nil)
	f.svc = NewMeetingService(Options{
		Repository:  repo,
		Transcriber: f.transcriber,
		Gateway:     gateway,
		UploadDir:   f.uploadDir,
	})
	return f
}

// seed writes a finished meeting directly through the repository
func seed(t *testing.T, repo *repository.MeetingFSRepository, id, title, summary, transcript string) {
	t.Helper()
	ctx := context.Background()
	if err := repo.Create(ctx, id); err != nil {
		t.Fatal(err)
	}
	values := map[entities.Artifact]string{
		entities.ArtifactTitle:      title,
		entities.ArtifactSummary:    summary,
		entities.ArtifactTranscript: transcript,
	}
	for artifact, content := range values {
		if content == "" {
			continue
		}
		if err := repo.Write(ctx, id, artifact, content); err != nil {
			t.Fatal(err)
		}
	}
}

func setMtime(t *testing.T, repo *repository.MeetingFSRepository, id string, when time.Time) {
	t.Helper()
	if err := os.Chtimes(filepath.Join(repo.Root(), id), when, when); err != nil {
		t.Fatal(err)
	}
}

func newGatewayWith(backends map[entities.Provider]ai.Generator) *aiuc.Gateway {
	return aiuc.NewGateway(backends, nil)
}
