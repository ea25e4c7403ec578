// Package app wires configuration into the storage, AI and meeting services
// shared by the HTTP server and the CLI.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/johnquangdev/meeting-scribe/internal/adapter/repository"
	"github.com/johnquangdev/meeting-scribe/internal/domain/entities"
	"github.com/johnquangdev/meeting-scribe/internal/domain/repositories"
	"github.com/johnquangdev/meeting-scribe/internal/infrastructure/cache"
	"github.com/johnquangdev/meeting-scribe/internal/infrastructure/database"
	"github.com/johnquangdev/meeting-scribe/internal/infrastructure/storage"
	aiuc "github.com/johnquangdev/meeting-scribe/internal/usecase/ai"
	"github.com/johnquangdev/meeting-scribe/internal/usecase/meeting"
	"github.com/johnquangdev/meeting-scribe/pkg/ai"
	"github.com/johnquangdev/meeting-scribe/pkg/config"
)

// memorySweepInterval is how often expired in-memory cache entries are dropped
const memorySweepInterval = time.Minute

// App holds the initialised services
type App struct {
	Config      *config.Config
	Logger      *zap.Logger
	Repository  repositories.MeetingRepository
	Gateway     *aiuc.Gateway
	Transcriber ai.Transcriber
	Service     *meeting.MeetingService

	closers []func() error
}

// NewLogger builds the process logger for the configured environment
func NewLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// New initialises every dependency. Missing AI credentials only disable the
// affected back-end; storage and cache failures are fatal.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	a := &App{Config: cfg, Logger: logger}

	repo, err := a.openRepository(ctx)
	if err != nil {
		a.Close()
		return nil, err
	}
	repo, err = a.wrapCache(ctx, repo)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.Repository = repo

	a.Gateway = aiuc.NewGateway(a.initProviders(ctx), logger)
	a.Transcriber = a.initTranscriber(ctx)

	a.Service = meeting.NewMeetingService(meeting.Options{
		Repository:  a.Repository,
		Transcriber: a.Transcriber,
		Gateway:     a.Gateway,
		UploadDir:   cfg.Paths.UploadDir,
		Order:       cfg.Listing.Order,
		Logger:      logger,
	})
	return a, nil
}

// Close releases connections in reverse order of creation
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

func (a *App) openRepository(ctx context.Context) (repositories.MeetingRepository, error) {
	cfg := a.Config
	switch cfg.Storage.Type {
	case config.StorageMinIO:
		client, err := storage.NewMinIOClient(ctx, &cfg.Storage, a.Logger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize MinIO: %w", err)
		}
		a.Logger.Info("meeting storage ready",
			zap.String("type", cfg.Storage.Type),
			zap.String("bucket", cfg.Storage.BucketName),
		)
		return repository.NewMeetingObjectRepository(client, cfg.Storage.Prefix), nil

	case config.StoragePostgres:
		db, err := a.OpenDatabase(ctx)
		if err != nil {
			return nil, err
		}
		if cfg.Database.AutoMigrate {
			if _, err := database.Migrate(db, a.Logger); err != nil {
				return nil, fmt.Errorf("failed to apply migrations: %w", err)
			}
		}
		a.Logger.Info("meeting storage ready", zap.String("type", cfg.Storage.Type))
		return repository.NewMeetingPostgresRepository(db), nil

	default:
		repo, err := repository.NewMeetingFSRepository(cfg.Paths.ProcessedDir)
		if err != nil {
			return nil, fmt.Errorf("failed to prepare %s: %w", cfg.Paths.ProcessedDir, err)
		}
		a.Logger.Info("meeting storage ready",
			zap.String("type", config.StorageFilesystem),
			zap.String("root", repo.Root()),
		)
		return repo, nil
	}
}

// OpenDatabase connects to Postgres and registers the connection for Close
func (a *App) OpenDatabase(ctx context.Context) (*gorm.DB, error) {
	db, err := database.NewPostgresDB(ctx, a.Config, a.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	a.closers = append(a.closers, func() error { return database.CloseDB(db) })
	return db, nil
}

// Migrate applies the schema migrations to the configured database
func (a *App) Migrate(ctx context.Context) (int, error) {
	db, err := a.OpenDatabase(ctx)
	if err != nil {
		return 0, err
	}
	return database.Migrate(db, a.Logger)
}

func (a *App) wrapCache(ctx context.Context, repo repositories.MeetingRepository) (repositories.MeetingRepository, error) {
	cfg := a.Config
	var store cache.Store
	switch cfg.Cache.Type {
	case config.CacheMemory:
		mem := cache.NewMemoryStore(memorySweepInterval)
		a.closers = append(a.closers, mem.Close)
		store = mem
	case config.CacheRedis:
		client, err := cache.NewRedisClient(ctx, cfg, a.Logger)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		a.closers = append(a.closers, client.Close)
		store = cache.NewRedisStore(client)
	default:
		return repo, nil
	}
	a.Logger.Info("meeting cache enabled",
		zap.String("type", cfg.Cache.Type),
		zap.Duration("ttl", cfg.Cache.TTL),
	)
	return repository.NewCachedMeetingRepository(repo, store, cfg.Cache.TTL, a.Logger), nil
}

func (a *App) initProviders(ctx context.Context) map[entities.Provider]ai.Generator {
	backends := make(map[entities.Provider]ai.Generator, 2)

	if gemini, err := ai.NewGeminiClient(ctx, &a.Config.Gemini); err != nil {
		a.Logger.Warn("gemini disabled", zap.Error(err))
	} else {
		backends[entities.ProviderGemini] = gemini
		a.Logger.Info("gemini configured", zap.String("model", a.Config.Gemini.Model))
	}

	if openai, err := ai.NewOpenAIClient(&a.Config.OpenAI); err != nil {
		a.Logger.Warn("openai disabled", zap.Error(err))
	} else {
		backends[entities.ProviderOpenAI] = openai
		a.Logger.Info("openai configured", zap.String("model", a.Config.OpenAI.Model))
	}

	return backends
}

func (a *App) initTranscriber(ctx context.Context) ai.Transcriber {
	cfg := a.Config
	backend := cfg.TranscriberBackend()
	var (
		t   ai.Transcriber
		err error
	)
	switch backend {
	case config.TranscriberAssemblyAI:
		t, err = ai.NewAssemblyAITranscriber(&cfg.Transcribe)
	case config.TranscriberGemini:
		t, err = ai.NewGeminiTranscriber(ctx, &cfg.Gemini)
	default:
		t, err = ai.NewWhisperTranscriber(&cfg.OpenAI, &cfg.Transcribe)
	}
	if err != nil {
		a.Logger.Warn("transcription disabled, uploads will fail until it is configured",
			zap.String("transcriber", backend),
			zap.Error(err),
		)
		return nil
	}
	a.Logger.Info("transcriber configured", zap.String("transcriber", t.Name()))
	return t
}
