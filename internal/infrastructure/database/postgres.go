package database

import (
	"context"
	"embed"
	"fmt"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	migrate "github.com/rubenv/sql-migrate"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/johnquangdev/meeting-scribe/pkg/config"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// NewPostgresDB creates a new PostgreSQL database connection using GORM.
// The first ping is retried briefly so the server can start alongside the database.
func NewPostgresDB(ctx context.Context, cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	if log == nil {
		log = zap.NewNop()
	}

	gormLogger := logger.Default.LogMode(logger.Warn)
	if cfg.IsProduction() {
		gormLogger = logger.Default.LogMode(logger.Error)
	}

	db, err := gorm.Open(postgres.Open(cfg.GetDatabaseDSN()), &gorm.Config{
		Logger: gormLogger,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.Database.MaxConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MinConns)
	sqlDB.SetConnMaxLifetime(time.Hour)

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = 30 * time.Second
	ping := func() error { return sqlDB.PingContext(ctx) }
	notify := func(err error, wait time.Duration) {
		log.Warn("database not ready, retrying", zap.Duration("wait", wait), zap.Error(err))
	}
	if err := backoff.RetryNotify(ping, backoff.WithContext(bo, ctx), notify); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Info("✅ Database connected", zap.String("host", cfg.Database.Host), zap.String("name", cfg.Database.Name))
	return db, nil
}

// Migrate applies the embedded migrations with sql-migrate
func Migrate(db *gorm.DB, log *zap.Logger) (int, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return 0, fmt.Errorf("failed to get db connection during migrate up: %w", err)
	}

	source := &migrate.EmbedFileSystemMigrationSource{
		FileSystem: migrationFiles,
		Root:       "migrations",
	}
	n, err := migrate.Exec(sqlDB, "postgres", source, migrate.Up)
	if err != nil {
		return 0, fmt.Errorf("failed to apply migrations: %w", err)
	}
	if log != nil {
		log.Info("applied migrations", zap.Int("count", n))
	}
	return n, nil
}

// CloseDB closes the database connection
func CloseDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	return nil
}
