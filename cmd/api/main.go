package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/johnquangdev/meeting-scribe/pkg/validator"

	"github.com/johnquangdev/meeting-scribe/internal/adapter/handler"
	"github.com/johnquangdev/meeting-scribe/internal/app"
	"github.com/johnquangdev/meeting-scribe/pkg/config"
)

// @title           Meeting Scribe
// @version         1.0
// @description     Upload meeting recordings, get AI summaries, search them and ask follow-up questions.

// @BasePath  /

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := app.NewLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	renderer, err := handler.NewTemplateRenderer()
	if err != nil {
		logger.Fatal("Failed to parse templates", zap.Error(err))
	}
	e.Renderer = renderer

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human} | ${id}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.BodyLimit(cfg.Server.MaxUploadSize))

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	// Initialize dependencies
	logger.Info("Initializing dependencies",
		zap.String("storage", cfg.Storage.Type),
		zap.String("cache", cfg.Cache.Type),
		zap.String("transcriber", cfg.Transcribe.Backend),
	)
	startCtx, cancelStart := context.WithTimeout(context.Background(), time.Minute)
	deps, err := app.New(startCtx, cfg, logger)
	cancelStart()
	if err != nil {
		logger.Fatal("Failed to initialize dependencies", zap.Error(err))
	}
	defer deps.Close()

	if len(deps.Gateway.Available()) == 0 {
		logger.Warn("No AI provider configured; set GOOGLE_API_KEY or OPENAI_API_KEY")
	}

	// Setup router with handlers
	meetingHandler := handler.NewMeeting(deps.Service, logger)
	router := handler.NewRouter(cfg, meetingHandler, deps.Service.Transcriber())
	router.Setup(e)

	// Start server
	go func() {
		addr := cfg.GetServerAddr()
		logger.Info("Starting server",
			zap.String("addr", addr),
			zap.String("environment", cfg.Server.Environment),
		)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
		return
	}

	logger.Info("Server stopped gracefully")
}
