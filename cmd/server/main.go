// Package main implements the entry point for the library API server,
// which manages customers, book categories and books over a JSON REST API.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"

	"github.com/phrazzld/library-api/internal/platform/database"
)

// main is the entry point for the library API server.
// With -migrate it runs a single migration command and exits; otherwise it
// starts the HTTP server and blocks until shutdown.
func main() {
	migrateCmd := flag.String("migrate", "", "run a migration command (up, down, status) and exit")
	flag.Parse()

	if err := run(context.Background(), *migrateCmd); err != nil {
		log.Fatalf("Library API server failed: %v", err)
	}
}

// run loads configuration, sets up logging and the database, then either
// executes a migration command or serves HTTP until a shutdown signal.
func run(ctx context.Context, migrateCmd string) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	logger, err := setupAppLogger(cfg)
	if err != nil {
		return err
	}

	if migrateCmd != "" && cfg.Database.InMemory {
		return errors.New("migration commands require a persistent database")
	}

	db, err := setupAppDatabase(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			logger.Error("failed to close database", slog.String("error", closeErr.Error()))
		}
	}()

	if migrateCmd != "" {
		if err := database.RunMigration(ctx, db, migrateCmd, logger); err != nil {
			return err
		}
		logger.Info("migration command completed", slog.String("command", migrateCmd))
		return nil
	}

	// Schema is always brought up to date before serving.
	if err := database.Migrate(ctx, db, logger); err != nil {
		return err
	}

	app, err := newApplication(cfg, logger, db)
	if err != nil {
		return err
	}

	return app.startHTTPServer(ctx, app.setupRouter())
}
