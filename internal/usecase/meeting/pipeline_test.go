package meeting

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	apperrors "github.com/johnquangdev/meeting-scribe/errors"
	"github.com/johnquangdev/meeting-scribe/internal/domain/entities"
	ucerrors "github.com/johnquangdev/meeting-scribe/internal/usecase/errors"
)

func assertNoUploads(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil && !os.IsNotExist(err) {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Fatalf("upload dir not empty: %d entries remain", len(entries))
	}
}

func TestProcess_Success(t *testing.T) {
	f := newFixture(t)
	f.svc.newID = func() string { return "3f2a9c1e-7b44-4d0a-9a51-2b8f6e1c0d77" }

	out, err := f.svc.Process(context.Background(), ProcessInput{
		Filename: "Weekly Sync.MP3",
		Content:  strings.NewReader("audio bytes"),
	})
	if err != nil {
		t.Fatalf("Process error: %v", err)
	}
	if out.JobID != "3f2a9c1e-7b44-4d0a-9a51-2b8f6e1c0d77" || out.Title != "Budget Review" || out.Provider != entities.ProviderGemini {
		t.Fatalf("unexpected output %+v", out)
	}

	if !f.transcriber.seenExist {
		t.Error("upload did not exist during transcription")
	}
	if !strings.HasSuffix(f.transcriber.seen, "Weekly_Sync.MP3") {
		t.Errorf("upload path = %q", f.transcriber.seen)
	}
	assertNoUploads(t, f.uploadDir)

	if len(f.gemini.prompts) != 1 || !strings.Contains(f.gemini.prompts[0], "we reviewed the budget") {
		t.Fatalf("summary prompt not built from transcript: %v", f.gemini.prompts)
	}

	m, err := f.repo.Get(context.Background(), out.JobID)
	if err != nil {
		t.Fatal(err)
	}
	if m.Title != "Budget Review" || m.Summary != "**Key Discussion Points:**\n- budget" {
		t.Errorf("stored title/summary = %q / %q", m.Title, m.Summary)
	}
	if m.Transcript != "we reviewed the budget for next quarter" || m.Provider != entities.ProviderGemini {
		t.Errorf("stored transcript/provider = %q / %q", m.Transcript, m.Provider)
	}
}

func TestProcess_RecordsProviderUsed(t *testing.T) {
	f := newFixture(t)

	out, err := f.svc.Process(context.Background(), ProcessInput{
		Filename: "call.wav",
		Content:  strings.NewReader("audio"),
		Provider: "openai",
	})
	if err != nil {
		t.Fatal(err)
	}
	if out.Provider != entities.ProviderOpenAI {
		t.Fatalf("provider = %s", out.Provider)
	}
	m, _ := f.repo.Get(context.Background(), out.JobID)
	if m.Provider != entities.ProviderOpenAI || m.Title != "From OpenAI" {
		t.Errorf("stored %+v", m)
	}
}

func TestProcess_PlaceholderTitle(t *testing.T) {
	f := newFixture(t)
	f.svc.newID = func() string { return "abcdef12-0000-0000-0000-000000000000" }
	f.gemini.reply = "No title here\nJust a summary"

	out, err := f.svc.Process(context.Background(), ProcessInput{Filename: "a.ogg", Content: strings.NewReader("x")})
	if err != nil {
		t.Fatal(err)
	}
	m, _ := f.repo.Get(context.Background(), out.JobID)
	if m.Title != "Meeting - abcdef12" || m.Summary != "No title here\nJust a summary" {
		t.Errorf("stored title/summary = %q / %q", m.Title, m.Summary)
	}
}

func TestProcess_CleanupOnFailure(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(f *fixture)
		code    apperrors.ErrorCode
		wantErr error
	}{
		{
			name:    "transcription fails",
			setup:   func(f *fixture) { f.transcriber.err = errors.New("model crashed") },
			code:    apperrors.ErrorCode_AI_TRANSCRIPTION_FAILED,
		},
		{
			name:    "summary fails",
			setup:   func(f *fixture) { f.gemini.err = errors.New("quota exceeded") },
			code:    apperrors.ErrorCode_AI_SUMMARY_FAILED,
		},
		{
			name:    "no transcriber",
			setup:   func(f *fixture) { f.svc.transcriber = nil },
			code:    apperrors.ErrorCode_AI_TRANSCRIPTION_FAILED,
			wantErr: ucerrors.ErrTranscriberNotConfigured,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			_, err := f.svc.Process(context.Background(), ProcessInput{Filename: "call.m4a", Content: strings.NewReader("audio")})
			var appErr apperrors.AppError
			if !errors.As(err, &appErr) {
				t.Fatalf("expected AppError, got %v", err)
			}
			if appErr.Code != tt.code {
				t.Errorf("code = %s, want %s", appErr.Code, tt.code)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v in chain, got %v", tt.wantErr, err)
			}
			assertNoUploads(t, f.uploadDir)

			ids, _ := f.repo.ListIDs(context.Background())
			if len(ids) != 0 {
				t.Errorf("no meeting should be persisted, got %v", ids)
			}
		})
	}
}

func TestProcess_SummaryProviderUnavailable(t *testing.T) {
	f := newFixture(t)
	f.svc.gateway = newGatewayWith(nil)

	_, err := f.svc.Process(context.Background(), ProcessInput{Filename: "call.mp4", Content: strings.NewReader("audio")})
	var appErr apperrors.AppError
	if !errors.As(err, &appErr) || appErr.Code != apperrors.ErrorCode_AI_PROVIDER_UNAVAILABLE {
		t.Fatalf("expected provider unavailable, got %v", err)
	}
	if !errors.Is(err, ucerrors.ErrProviderNotConfigured) {
		t.Errorf("expected ErrProviderNotConfigured in chain, got %v", err)
	}
	assertNoUploads(t, f.uploadDir)
}

func TestProcess_Validation(t *testing.T) {
	f := newFixture(t)
	tests := []struct {
		name  string
		input ProcessInput
		code  apperrors.ErrorCode
	}{
		{name: "no filename", input: ProcessInput{Content: strings.NewReader("x")}, code: apperrors.ErrorCode_UPLOAD_NO_SELECTED_FILE},
		{name: "bad extension", input: ProcessInput{Filename: "notes.txt", Content: strings.NewReader("x")}, code: apperrors.ErrorCode_UPLOAD_FILE_TYPE_REJECTED},
		{name: "no content", input: ProcessInput{Filename: "a.mp3"}, code: apperrors.ErrorCode_UPLOAD_NO_FILE_PART},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.Process(context.Background(), tt.input)
			var appErr apperrors.AppError
			if !errors.As(err, &appErr) || appErr.Code != tt.code {
				t.Fatalf("expected %s, got %v", tt.code, err)
			}
		})
	}
	if f.transcriber.seen != "" {
		t.Error("transcriber must not run for invalid uploads")
	}
}
