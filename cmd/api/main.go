package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"certifytrack-go/internal/config"
	"certifytrack-go/internal/database"
	"certifytrack-go/internal/database/migrate"
	"certifytrack-go/internal/logger"
	"certifytrack-go/internal/server"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("CertifyTrack %s\n", formatVersionInfo())
		return
	}

	// Initialize logger first
	env := os.Getenv("APP_ENV")
	switch env {
	case "local", "development":
		logger.Init("development")
	case "production":
		logger.Init("production")
	default:
		logger.Init("development")
	}

	log.Info().
		Str("environment", env).
		Str("log_level", zerolog.GlobalLevel().String()).
		Str("version", version).
		Str("commit", commit).
		Msg("starting CertifyTrack admin API")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Error loading configuration")
	}

	// Update logger with correct environment
	logger.Init(cfg.Env)
	cfg.Log()

	db, err := database.NewFromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error().Err(err).Msg("Error closing database connection")
		}
	}()

	if health := db.Health(ctx); health["status"] != "up" {
		log.Fatal().
			Interface("error", health["error"]).
			Msg("Database health check failed")
	}

	if err := migrate.RunMigrations(db.DB); err != nil {
		log.Error().Err(err).Msg("Failed to run migrations")
		log.Info().Msg("Attempting to rollback migrations...")

		if rbErr := migrate.RollbackMigrations(db.DB); rbErr != nil {
			log.Fatal().
				Err(rbErr).
				Str("original_error", err.Error()).
				Msg("Failed to rollback migrations after error")
		}

		log.Fatal().Err(err).Msg("Migrations rolled back due to error")
	}

	srv, err := server.NewServer(cfg, db)
	if err != nil {
		log.Fatal().Err(err).Msg("Error creating server")
	}

	httpServer, err := srv.Start()
	if err != nil {
		log.Fatal().Err(err).Msg("Error starting server")
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-shutdown
		log.Info().Msg("Shutdown signal received")

		shutdownCtx, shutdownCancel := context.WithTimeout(ctx, 30*time.Second)
		defer shutdownCancel()

		httpServer.SetKeepAlivesEnabled(false)

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("HTTP server shutdown error")
		}

		cancel()
	}()

	log.Info().
		Str("url", cfg.BaseURL).
		Msg("Server is ready to handle requests")

	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error().Err(err).Msg("HTTP server error")
	}

	<-ctx.Done()
	log.Info().Msg("Server shutdown completed")
}

func formatVersionInfo() string {
	return fmt.Sprintf(`Version: %s
Commit: %s
Built: %s`, version, commit, date)
}
