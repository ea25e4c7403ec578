package meeting

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	apperrors "github.com/johnquangdev/meeting-scribe/errors"
	aiuc "github.com/johnquangdev/meeting-scribe/internal/usecase/ai"
	ucerrors "github.com/johnquangdev/meeting-scribe/internal/usecase/errors"
)

// Ask answers one question from the meeting's transcript. Nothing is kept
// between calls.
func (s *MeetingService) Ask(ctx context.Context, input AskInput) (*AskOutput, error) {
	if strings.TrimSpace(input.Question) == "" {
		return nil, apperrors.ErrMissingMessage()
	}

	m, err := s.repo.Get(ctx, input.MeetingID)
	if err != nil {
		return nil, apperrors.ErrStorageFailed("get", err)
	}
	if m.Transcript == "" {
		return nil, apperrors.ErrTranscriptNotFound(input.MeetingID).
			WithDetail("reason", ucerrors.ErrNoTranscript.Error())
	}

	prompt := aiuc.BuildChatPrompt(m.Transcript, input.Question)
	reply, provider, err := s.gateway.Chat(ctx, prompt, input.Provider)
	if err != nil {
		if errors.Is(err, ucerrors.ErrProviderNotConfigured) || errors.Is(err, ucerrors.ErrUnknownProvider) {
			return nil, apperrors.ErrProviderUnavailable(provider.String(), err)
		}
		return nil, apperrors.ErrChatFailed(provider.String(), err)
	}

	s.logger.Info("chat answered",
		zap.String("meeting_id", input.MeetingID),
		zap.String("provider", provider.String()),
		zap.Int("reply_length", len(reply)),
	)
	return &AskOutput{Reply: reply, Provider: provider}, nil
}
