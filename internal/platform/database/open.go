package database

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/google/uuid"
	// Registers the "pgx" database/sql driver.
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	// Registers the "sqlite3" database/sql driver.
	_ "github.com/mattn/go-sqlite3"
	"github.com/phrazzld/library-api/internal/config"
)

const pingTimeout = 5 * time.Second

// Open establishes the database connection pool described by cfg and
// verifies it with a ping. In in-memory mode it returns a private SQLite
// database pinned to a single connection, so that the data survives for as
// long as the pool is open.
func Open(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*sqlx.DB, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var (
		db  *sqlx.DB
		err error
	)
	if cfg.InMemory {
		db, err = sqlx.Open(DriverSQLite, InMemoryDSN(uuid.NewString()))
		if err != nil {
			return nil, fmt.Errorf("failed to open in-memory database: %w", err)
		}
		// The database is destroyed when its last connection closes.
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		db.SetConnMaxLifetime(0)
		db.SetConnMaxIdleTime(0)
	} else {
		dsn, dsnErr := PostgresDSN(cfg)
		if dsnErr != nil {
			return nil, dsnErr
		}
		db, err = sqlx.Open(DriverPostgres, dsn)
		if err != nil {
			return nil, fmt.Errorf("failed to open database connection: %w", err)
		}
		db.SetMaxOpenConns(cfg.MaxOpenConns)
		db.SetMaxIdleConns(cfg.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetimeMinutes) * time.Minute)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("database connection established",
		slog.String("driver", db.DriverName()),
		slog.Bool("in_memory", cfg.InMemory))
	return db, nil
}

// InMemoryDSN returns the go-sqlite3 DSN for a named in-memory database with
// foreign key enforcement switched on.
func InMemoryDSN(name string) string {
	return fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", url.PathEscape(name))
}

// PostgresDSN returns cfg.URL with the configured user and password applied.
// Credentials already present in the URL are overridden only by non-empty settings.
func PostgresDSN(cfg config.DatabaseConfig) (string, error) {
	if cfg.URL == "" {
		return "", fmt.Errorf("database URL is required")
	}
	if cfg.User == "" && cfg.Password == "" {
		return cfg.URL, nil
	}

	u, err := url.Parse(cfg.URL)
	if err != nil {
		return "", fmt.Errorf("invalid database URL: %w", err)
	}

	user := cfg.User
	if user == "" && u.User != nil {
		user = u.User.Username()
	}
	password := cfg.Password
	if password == "" && u.User != nil {
		password, _ = u.User.Password()
	}

	if password != "" {
		u.User = url.UserPassword(user, password)
	} else {
		u.User = url.User(user)
	}
	return u.String(), nil
}
