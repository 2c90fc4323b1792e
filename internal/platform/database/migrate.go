package database

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/postgres/*.sql migrations/sqlite3/*.sql
var embeddedMigrations embed.FS

// Migration commands accepted by RunMigration.
const (
	MigrateUp     = "up"
	MigrateDown   = "down"
	MigrateStatus = "status"
)

// newProvider builds a goose provider for the dialect of db. Providers carry
// no global state, so tests can migrate many databases in parallel.
func newProvider(db *sqlx.DB) (*goose.Provider, error) {
	dialect := DialectForDriver(db.DriverName())

	gooseDialect := goose.DialectPostgres
	if dialect == DialectSQLite {
		gooseDialect = goose.DialectSQLite3
	}

	migrations, err := fs.Sub(embeddedMigrations, "migrations/"+string(dialect))
	if err != nil {
		return nil, fmt.Errorf("failed to locate %s migrations: %w", dialect, err)
	}

	provider, err := goose.NewProvider(gooseDialect, db.DB, migrations)
	if err != nil {
		return nil, fmt.Errorf("failed to create migration provider: %w", err)
	}
	return provider, nil
}

// Migrate applies every pending migration.
func Migrate(ctx context.Context, db *sqlx.DB, logger *slog.Logger) error {
	return RunMigration(ctx, db, MigrateUp, logger)
}

// RunMigration executes one migration command ("up", "down" or "status")
// against db, logging each step.
func RunMigration(ctx context.Context, db *sqlx.DB, command string, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	log := logger.With(slog.String("component", "migrations"))

	provider, err := newProvider(db)
	if err != nil {
		return err
	}

	switch command {
	case MigrateUp:
		results, err := provider.Up(ctx)
		for _, r := range results {
			log.Info("applied migration",
				slog.Int64("version", r.Source.Version),
				slog.String("path", r.Source.Path),
				slog.Duration("duration", r.Duration))
		}
		if err != nil {
			return fmt.Errorf("failed to apply migrations: %w", err)
		}
		if len(results) == 0 {
			log.Debug("no pending migrations")
		}
	case MigrateDown:
		result, err := provider.Down(ctx)
		if errors.Is(err, goose.ErrNoNextVersion) {
			log.Info("no migrations to roll back")
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to roll back migration: %w", err)
		}
		log.Info("rolled back migration",
			slog.Int64("version", result.Source.Version),
			slog.String("path", result.Source.Path))
	case MigrateStatus:
		statuses, err := provider.Status(ctx)
		if err != nil {
			return fmt.Errorf("failed to read migration status: %w", err)
		}
		for _, s := range statuses {
			log.Info("migration status",
				slog.Int64("version", s.Source.Version),
				slog.String("path", s.Source.Path),
				slog.String("state", string(s.State)),
				slog.Time("applied_at", s.AppliedAt))
		}
	default:
		return fmt.Errorf("unknown migration command %q", command)
	}

	return nil
}
