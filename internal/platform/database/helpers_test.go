package database

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/library-api/internal/config"
	"github.com/phrazzld/library-api/internal/domain"
	"github.com/stretchr/testify/require"
)

// newTestDB returns a migrated private in-memory database closed at test end.
func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	ctx := context.Background()

	db, err := Open(ctx, config.DatabaseConfig{InMemory: true}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, Migrate(ctx, db, nil))
	return db
}

func createCategory(t *testing.T, db *sqlx.DB, name string) *domain.Category {
	t.Helper()
	c := &domain.Category{Name: name, Description: name + " books"}
	require.NoError(t, NewSQLCategoryStore(db, nil).Create(context.Background(), c))
	return c
}
