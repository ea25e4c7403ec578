package meeting

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	apperrors "github.com/johnquangdev/meeting-scribe/errors"
	"github.com/johnquangdev/meeting-scribe/internal/domain/entities"
	aiuc "github.com/johnquangdev/meeting-scribe/internal/usecase/ai"
	ucerrors "github.com/johnquangdev/meeting-scribe/internal/usecase/errors"
	"github.com/johnquangdev/meeting-scribe/pkg/jobcontext"
)

// Pipeline stages
const (
	StageSave       = "save"
	StageTranscribe = "transcribe"
	StageSummarize  = "summarize"
	StagePersist    = "persist"
	StageCleanup    = "cleanup"
)

// Process saves the upload to a temporary file, transcribes it, summarizes the
// transcript, and writes the meeting. The temporary file is removed on every
// path once it has been created.
func (s *MeetingService) Process(ctx context.Context, input ProcessInput) (*ProcessOutput, error) {
	if input.Filename == "" {
		return nil, apperrors.ErrNoSelectedFile()
	}
	if !IsAllowed(input.Filename) {
		return nil, apperrors.ErrFileTypeNotAllowed(input.Filename)
	}
	if input.Content == nil {
		return nil, apperrors.ErrNoFilePart()
	}

	jobID := s.newID()
	ctx = jobcontext.JobBegin(ctx, jobID, "upload")
	filename := SanitizeFilename(input.Filename, jobID)
	uploadPath := filepath.Join(s.uploadDir, filename)

	ctx = jobcontext.WithStage(ctx, StageSave)
	if err := s.saveUpload(uploadPath, input.Content); err != nil {
		s.logger.Error("failed to save upload", append(jobcontext.LogFields(ctx), zap.Error(err))...)
		return nil, apperrors.ErrUploadSaveFailed(err)
	}
	defer s.cleanup(ctx, uploadPath)

	s.logger.Info("processing upload", append(jobcontext.LogFields(ctx),
		zap.String("filename", filename),
		zap.String("provider", input.Provider),
	)...)

	out, err := s.run(ctx, jobID, uploadPath, input.Provider)
	if err != nil {
		s.logger.Error("pipeline failed", append(jobcontext.LogFields(ctx), zap.Error(err))...)
		return nil, err
	}

	s.logger.Info("pipeline complete", append(jobcontext.LogFields(ctx),
		zap.String("title", out.Title),
		zap.String("provider", out.Provider.String()),
	)...)
	return out, nil
}

func (s *MeetingService) run(ctx context.Context, jobID, uploadPath, providerKey string) (*ProcessOutput, error) {
	ctx = jobcontext.WithStage(ctx, StageTranscribe)
	if s.transcriber == nil {
		return nil, apperrors.ErrTranscriptionFailed(ucerrors.ErrTranscriberNotConfigured)
	}
	transcript, err := s.transcriber.Transcribe(ctx, uploadPath)
	if err != nil {
		return nil, apperrors.ErrTranscriptionFailed(err)
	}
	s.logger.Info("transcription complete", append(jobcontext.LogFields(ctx),
		zap.String("transcriber", s.transcriber.Name()),
		zap.Int("transcript_length", len(transcript)),
	)...)

	ctx = jobcontext.WithStage(ctx, StageSummarize)
	response, provider, err := s.gateway.Summarize(ctx, aiuc.BuildSummaryPrompt(transcript), providerKey)
	if err != nil {
		if errors.Is(err, ucerrors.ErrProviderNotConfigured) {
			return nil, apperrors.ErrProviderUnavailable(provider.String(), err)
		}
		return nil, apperrors.ErrSummaryFailed(provider.String(), err)
	}
	parsed := aiuc.ParseTitleAndSummary(response, jobID)
	if !parsed.HasTitle {
		s.logger.Warn("summary has no title line, using placeholder", jobcontext.LogFields(ctx)...)
	}

	ctx = jobcontext.WithStage(ctx, StagePersist)
	if err := s.persist(ctx, jobID, transcript, provider, parsed); err != nil {
		return nil, err
	}

	return &ProcessOutput{JobID: jobID, Title: parsed.Title, Provider: provider}, nil
}

func (s *MeetingService) persist(ctx context.Context, jobID, transcript string, provider entities.Provider, parsed aiuc.ParsedSummary) error {
	if err := s.repo.Create(ctx, jobID); err != nil {
		return apperrors.ErrStorageFailed("create", err)
	}
	contents := map[entities.Artifact]string{
		entities.ArtifactTranscript: transcript,
		entities.ArtifactProvider:   provider.String(),
		entities.ArtifactTitle:      parsed.Title,
		entities.ArtifactSummary:    parsed.Summary,
	}
	for _, artifact := range entities.Artifacts {
		if err := s.repo.Write(ctx, jobID, artifact, contents[artifact]); err != nil {
			return apperrors.ErrStorageFailed(fmt.Sprintf("write %s", artifact), err)
		}
	}
	return nil
}

func (s *MeetingService) saveUpload(path string, content io.Reader) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create upload dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create upload file: %w", err)
	}
	if _, err := io.Copy(f, content); err != nil {
		f.Close()
		s.cleanup(context.Background(), path)
		return fmt.Errorf("write upload file: %w", err)
	}
	if err := f.Close(); err != nil {
		s.cleanup(context.Background(), path)
		return fmt.Errorf("close upload file: %w", err)
	}
	return nil
}

func (s *MeetingService) cleanup(ctx context.Context, path string) {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		s.logger.Warn("failed to remove upload", append(jobcontext.LogFields(jobcontext.WithStage(ctx, StageCleanup)),
			zap.String("path", path),
			zap.Error(err),
		)...)
	}
}
