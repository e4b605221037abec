// Package main implements the entry point for the bookstore API server:
// it loads configuration, sets up logging, connects to the database, runs
// migrations, wires dependencies and starts the HTTP server.
package main

import (
	"log"
	"log/slog"

	"github.com/jhonfrank/bookstore-api/internal/config"
	"github.com/jhonfrank/bookstore-api/internal/platform/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	appLogger := logger.Setup(cfg.Server)
	appLogger.Info("configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel))

	db, err := setupDatabase(cfg, appLogger)
	if err != nil {
		appLogger.Error("failed to set up database", slog.String("error", err.Error()))
		log.Fatalf("failed to set up database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			appLogger.Error("failed to close database", slog.String("error", err.Error()))
		}
	}()

	if err := runMigrations(db, appLogger); err != nil {
		appLogger.Error("failed to run migrations", slog.String("error", err.Error()))
		log.Fatalf("failed to run migrations: %v", err)
	}

	app, err := newApplication(cfg, appLogger, db)
	if err != nil {
		appLogger.Error("failed to initialize application", slog.String("error", err.Error()))
		log.Fatalf("failed to initialize application: %v", err)
	}

	if err := app.serve(); err != nil {
		appLogger.Error("server terminated", slog.String("error", err.Error()))
		log.Fatalf("server terminated: %v", err)
	}
}
