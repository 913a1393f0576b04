package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"logistics/api"
	"logistics/cmd"
	httpin "logistics/internal/adapters/in/http"
	"logistics/migrations"

	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	config, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: config.LogLevel}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB := mustOpenDatabase(ctx, config, logger)

	app, err := cmd.NewCompositionRoot(ctx, config, gormDB, logger)
	if err != nil {
		log.Fatalf("Error building application: %v", err)
	}

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}

	server := newWebServer(ctx, app, config, logger)
	go func() {
		logger.InfoContext(ctx, "HTTP server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("HTTP server failed: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
	jobManager.StopAll(shutdownCtx)
	if err := app.Runner().Wait(shutdownCtx); err != nil {
		logger.Error("Background tasks did not finish", "error", err)
	}
	if err := app.Close(); err != nil {
		logger.Error("Failed to close connections", "error", err)
	}
	if sqlDB, err := gormDB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func mustOpenDatabase(ctx context.Context, config cmd.Config, logger *slog.Logger) *gorm.DB {
	gormDB, err := gorm.Open(postgres.Open(config.PostgresDSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		log.Fatalf("Error getting database handle: %v", err)
	}

	applied, err := migrations.Up(ctx, sqlDB)
	if err != nil {
		log.Fatalf("Error applying migrations: %v", err)
	}
	logger.InfoContext(ctx, "Database ready", "migrationsApplied", applied)

	return gormDB
}

func newWebServer(ctx context.Context, app *cmd.CompositionRoot, config cmd.Config, logger *slog.Logger) *http.Server {
	docs, err := api.Load(ctx)
	if err != nil {
		log.Fatalf("Error loading API docs: %v", err)
	}

	e, err := httpin.NewRouter(httpin.NewServer(app.HTTPHandlers(), logger), httpin.RouterConfig{
		Logger:  logger,
		Metrics: app.Metrics(),
		Docs:    docs,
	})
	if err != nil {
		log.Fatalf("Error building router: %v", err)
	}

	return &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%s", config.HTTPPort),
		Handler:      e,
		ReadTimeout:  config.HTTPReadTimeout,
		WriteTimeout: config.HTTPWriteTimeout,
		IdleTimeout:  config.HTTPIdleTimeout,
	}
}
