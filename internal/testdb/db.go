package testdb

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/library-api/internal/config"
	"github.com/phrazzld/library-api/internal/platform/database"
	"github.com/stretchr/testify/require"
)

// TestTimeout bounds the setup work done by the helpers in this package.
const TestTimeout = 5 * time.Second

// IsIntegrationTestEnvironment reports whether a Postgres database is
// configured for integration tests.
func IsIntegrationTestEnvironment() bool {
	return GetTestDatabaseURL() != ""
}

// GetTestDatabaseURL returns DATABASE_URL, falling back to
// LIBRARY_TEST_DB_URL.
func GetTestDatabaseURL() string {
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		return dbURL
	}
	return os.Getenv("LIBRARY_TEST_DB_URL")
}

// New returns a migrated in-memory database that is closed when the test
// ends. Every call yields an isolated database.
func New(t testing.TB) *sqlx.DB {
	t.Helper()
	return open(t, config.DatabaseConfig{InMemory: true})
}

// NewPostgres returns a migrated connection to the integration database, or
// skips the test if none is configured. Each call migrates into its own
// schema, dropped when the test ends, so parallel tests never share rows.
func NewPostgres(t testing.TB) *sqlx.DB {
	t.Helper()

	dbURL := GetTestDatabaseURL()
	if dbURL == "" {
		t.Skip("DATABASE_URL or LIBRARY_TEST_DB_URL not set - skipping integration test")
	}

	schema := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	createSchema(t, dbURL, schema)

	scopedURL, err := withSearchPath(dbURL, schema)
	require.NoError(t, err, "Failed to scope database URL to test schema")

	return open(t, config.DatabaseConfig{
		URL:                    scopedURL,
		MaxOpenConns:           10,
		MaxIdleConns:           5,
		ConnMaxLifetimeMinutes: 5,
	})
}

// createSchema creates schema and registers its removal. The cleanup is
// registered before the scoped pool opens, so it runs after that pool closes.
func createSchema(t testing.TB, dbURL, schema string) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()

	admin, err := database.Open(ctx, config.DatabaseConfig{URL: dbURL, MaxOpenConns: 1, MaxIdleConns: 1}, nil)
	require.NoError(t, err, "Failed to open admin connection")

	_, err = admin.ExecContext(ctx, "CREATE SCHEMA "+schema)
	require.NoError(t, err, "Failed to create test schema")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
		defer cancel()
		if _, err := admin.ExecContext(ctx, "DROP SCHEMA IF EXISTS "+schema+" CASCADE"); err != nil {
			t.Logf("Warning: failed to drop test schema %s: %v", schema, err)
		}
		if err := admin.Close(); err != nil {
			t.Logf("Warning: failed to close admin connection: %v", err)
		}
	})
}

// withSearchPath pins every connection opened from dbURL to schema. Both the
// URL and keyword/value connection string forms are accepted.
func withSearchPath(dbURL, schema string) (string, error) {
	if !strings.HasPrefix(dbURL, "postgres://") && !strings.HasPrefix(dbURL, "postgresql://") {
		return dbURL + " search_path=" + schema, nil
	}

	u, err := url.Parse(dbURL)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("search_path", schema)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func open(t testing.TB, cfg config.DatabaseConfig) *sqlx.DB {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()

	quiet := slog.New(slog.NewTextHandler(testWriter{t}, &slog.HandlerOptions{Level: slog.LevelWarn}))

	db, err := database.Open(ctx, cfg, quiet)
	require.NoError(t, err, "Failed to open test database")
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("Warning: failed to close database connection: %v", err)
		}
	})

	require.NoError(t, database.Migrate(ctx, db, quiet), "Failed to run migrations")
	return db
}

// WithTx runs fn inside a transaction that is rolled back afterwards, so
// nothing fn writes outlives the call.
func WithTx(t *testing.T, db *sqlx.DB, fn func(t *testing.T, tx *sqlx.Tx)) {
	t.Helper()

	tx, err := db.BeginTxx(context.Background(), nil)
	require.NoError(t, err, "Failed to begin transaction")

	defer func() {
		// sql.ErrTxDone is expected if fn already committed or rolled back
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			t.Logf("Warning: failed to rollback transaction: %v", err)
		}
	}()

	fn(t, tx)
}

// testWriter routes log output to the test log.
type testWriter struct {
	t testing.TB
}

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(string(p))
	return len(p), nil
}
