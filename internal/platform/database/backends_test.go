package database_test

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/library-api/internal/domain"
	"github.com/phrazzld/library-api/internal/platform/database"
	"github.com/phrazzld/library-api/internal/testdb"
	"github.com/stretchr/testify/require"
)

// backends lists every database the stores run against. The postgres entry
// skips unless an integration database is configured.
var backends = []struct {
	name    string
	dialect database.Dialect
	open    func(testing.TB) *sqlx.DB
}{
	{name: "sqlite", dialect: database.DialectSQLite, open: testdb.New},
	{name: "postgres", dialect: database.DialectPostgres, open: testdb.NewPostgres},
}

// forEachBackend runs fn once per backend, each on a fresh migrated database.
func forEachBackend(t *testing.T, fn func(t *testing.T, db *sqlx.DB)) {
	t.Helper()

	for _, b := range backends {
		b := b
		t.Run(b.name, func(t *testing.T) {
			t.Parallel()

			db := b.open(t)
			require.Equal(t, b.dialect, database.DialectForDriver(db.DriverName()))
			fn(t, db)
		})
	}
}

func createCategory(t *testing.T, db *sqlx.DB, name string) *domain.Category {
	t.Helper()
	c := &domain.Category{Name: name, Description: name + " books"}
	require.NoError(t, database.NewSQLCategoryStore(db, nil).Create(context.Background(), c))
	return c
}

func createBook(t *testing.T, db *sqlx.DB, title string, categoryID int64) *domain.Book {
	t.Helper()
	b := &domain.Book{
		Title:          title,
		Author:         "Frank Herbert",
		Publisher:      "Chilton",
		PublishingYear: 1965,
		CategoryID:     categoryID,
	}
	require.NoError(t, database.NewSQLBookStore(db, nil).Create(context.Background(), b))
	return b
}
