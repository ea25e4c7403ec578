package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-scribe/internal/app"
	"github.com/johnquangdev/meeting-scribe/internal/cli"
	"github.com/johnquangdev/meeting-scribe/internal/output"
	"github.com/johnquangdev/meeting-scribe/pkg/config"
)

func main() {
	if err := run(); err != nil {
		formatter := output.NewFormatter(os.Stderr)
		formatter.Error(err.Error())
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Only warnings reach the terminal so command output stays readable
	logCfg := zap.NewDevelopmentConfig()
	logCfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	logger, err := logCfg.Build()
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application, err := app.New(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("initializing app: %w", err)
	}
	defer application.Close()

	deps := &cli.Dependencies{
		Service:     application.Service,
		Config:      cfg,
		Transcriber: application.Service.Transcriber(),
		Migrate:     application.Migrate,
	}

	return cli.NewRootCmd(deps).ExecuteContext(ctx)
}
