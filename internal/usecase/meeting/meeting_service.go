package meeting

import (
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-scribe/internal/domain/entities"
	"github.com/johnquangdev/meeting-scribe/internal/domain/repositories"
	aiuc "github.com/johnquangdev/meeting-scribe/internal/usecase/ai"
	"github.com/johnquangdev/meeting-scribe/pkg/ai"
	"github.com/johnquangdev/meeting-scribe/pkg/config"
)

// MeetingService implements the meeting use cases over a repository, a
// transcriber and the provider gateway
type MeetingService struct {
	repo        repositories.MeetingRepository
	transcriber ai.Transcriber
	gateway     *aiuc.Gateway
	uploadDir   string
	order       string
	logger      *zap.Logger

	newID func() string
}

// Options configures a MeetingService
type Options struct {
	Repository repositories.MeetingRepository
	// Transcriber may be nil when no speech-to-text back-end is configured
	Transcriber ai.Transcriber
	Gateway     *aiuc.Gateway
	UploadDir   string
	// Order is config.OrderByID (default) or config.OrderByCreated
	Order  string
	Logger *zap.Logger
}

// NewMeetingService creates a new meeting service
func NewMeetingService(opts Options) *MeetingService {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	gateway := opts.Gateway
	if gateway == nil {
		gateway = aiuc.NewGateway(nil, logger)
	}
	order := opts.Order
	if order == "" {
		order = config.OrderByID
	}
	uploadDir := opts.UploadDir
	if uploadDir == "" {
		uploadDir = os.TempDir()
	}
	return &MeetingService{
		repo:        opts.Repository,
		transcriber: opts.Transcriber,
		gateway:     gateway,
		uploadDir:   uploadDir,
		order:       order,
		logger:      logger,
		newID:       uuid.NewString,
	}
}

// Providers lists the configured summary/chat back-ends
func (s *MeetingService) Providers() []entities.Provider {
	return s.gateway.Available()
}

// Transcriber returns the name of the configured speech-to-text back-end, or
// an empty string
func (s *MeetingService) Transcriber() string {
	if s.transcriber == nil {
		return ""
	}
	return s.transcriber.Name()
}
