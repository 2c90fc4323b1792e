package database

import (
	"context"
	"log/slog"

	"github.com/doug-martin/goqu/v9"
	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/library-api/internal/domain"
	"github.com/phrazzld/library-api/internal/platform/logger"
	"github.com/phrazzld/library-api/internal/redact"
	"github.com/phrazzld/library-api/internal/store"
)

const categoriesTable = "categories"

// SQLCategoryStore implements the store.CategoryStore interface.
// Book counts are computed with a LEFT JOIN so empty categories report zero.
type SQLCategoryStore struct {
	sqlBuilder
	db     store.DBTX
	logger *slog.Logger
}

// NewSQLCategoryStore creates a new SQL implementation of the CategoryStore interface.
// If logger is nil, a default logger will be used.
func NewSQLCategoryStore(db store.DBTX, logger *slog.Logger) *SQLCategoryStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &SQLCategoryStore{
		sqlBuilder: newSQLBuilder(db),
		db:         db,
		logger:     logger.With(slog.String("component", "category_store")),
	}
}

// Ensure SQLCategoryStore implements store.CategoryStore interface
var _ store.CategoryStore = (*SQLCategoryStore)(nil)

// WithTx implements store.CategoryStore.WithTx
func (s *SQLCategoryStore) WithTx(tx *sqlx.Tx) store.CategoryStore {
	return &SQLCategoryStore{
		sqlBuilder: s.sqlBuilder,
		db:         tx,
		logger:     s.logger,
	}
}

// selectWithCount is the shared read query: every category with the number
// of books that reference it.
func (s *SQLCategoryStore) selectWithCount() *goqu.SelectDataset {
	return s.goqu.From(goqu.T(categoriesTable).As("c")).
		LeftJoin(goqu.T(booksTable).As("b"), goqu.On(goqu.I("b.category_id").Eq(goqu.I("c.id")))).
		Select(
			goqu.I("c.id"),
			goqu.I("c.name"),
			goqu.I("c.description"),
			goqu.COUNT(goqu.I("b.id")).As("book_count"),
		).
		GroupBy(goqu.I("c.id"), goqu.I("c.name"), goqu.I("c.description"))
}

// Create implements store.CategoryStore.Create
func (s *SQLCategoryStore) Create(ctx context.Context, category *domain.Category) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	id, err := s.insertReturningID(ctx, s.db, categoriesTable, goqu.Record{
		"name":        category.Name,
		"description": category.Description,
	})
	if err != nil {
		err = MapError(err)
		log.Error("failed to create category", redact.Attr(err))
		return store.NewStoreError("category", "create", "insert failed", err)
	}

	category.ID = id
	category.BookCount = 0
	log.Info("category created", slog.Int64("category_id", id))
	return nil
}

// GetByID implements store.CategoryStore.GetByID
func (s *SQLCategoryStore) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query, args, err := build(s.selectWithCount().
		Where(goqu.I("c.id").Eq(id)).
		Prepared(true))
	if err != nil {
		return nil, err
	}

	var category domain.Category
	if err := sqlx.GetContext(ctx, s.db, &category, query, args...); err != nil {
		err = MapError(err)
		if store.IsNotFoundError(err) {
			return nil, store.ErrCategoryNotFound
		}
		log.Error("failed to get category",
			slog.Int64("category_id", id),
			redact.Attr(err))
		return nil, store.NewStoreError("category", "get", "select failed", err)
	}
	return &category, nil
}

// List implements store.CategoryStore.List
func (s *SQLCategoryStore) List(ctx context.Context) ([]domain.Category, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query, args, err := build(s.selectWithCount().
		Order(goqu.I("c.id").Asc()).
		Prepared(true))
	if err != nil {
		return nil, err
	}

	categories := []domain.Category{}
	if err := sqlx.SelectContext(ctx, s.db, &categories, query, args...); err != nil {
		log.Error("failed to list categories", redact.Attr(err))
		return nil, store.NewStoreError("category", "list", "select failed", MapError(err))
	}
	return categories, nil
}

// Update implements store.CategoryStore.Update
func (s *SQLCategoryStore) Update(ctx context.Context, category *domain.Category) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query, args, err := build(s.goqu.Update(categoriesTable).
		Set(goqu.Record{
			"name":        category.Name,
			"description": category.Description,
		}).
		Where(goqu.C("id").Eq(category.ID)).
		Prepared(true))
	if err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to update category",
			slog.Int64("category_id", category.ID),
			redact.Attr(err))
		return store.NewStoreError("category", "update", "update failed", MapError(err))
	}

	if err := CheckRowsAffected(result, store.ErrCategoryNotFound); err != nil {
		return err
	}

	log.Info("category updated", slog.Int64("category_id", category.ID))
	return nil
}

// Delete implements store.CategoryStore.Delete
func (s *SQLCategoryStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query, args, err := build(s.goqu.Delete(categoriesTable).
		Where(goqu.C("id").Eq(id)).
		Prepared(true))
	if err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		err = MapError(err)
		if store.IsReferenceError(err) {
			log.Debug("category still referenced by books", slog.Int64("category_id", id))
			return store.ErrCategoryInUse
		}
		log.Error("failed to delete category",
			slog.Int64("category_id", id),
			redact.Attr(err))
		return store.NewStoreError("category", "delete", "delete failed", err)
	}

	if err := CheckRowsAffected(result, store.ErrCategoryNotFound); err != nil {
		return err
	}

	log.Info("category deleted", slog.Int64("category_id", id))
	return nil
}

// Exists implements store.CategoryStore.Exists
func (s *SQLCategoryStore) Exists(ctx context.Context, id int64) (bool, error) {
	n, err := s.count(ctx, s.db, categoriesTable, goqu.C("id").Eq(id))
	if err != nil {
		return false, store.NewStoreError("category", "exists", "count failed", MapError(err))
	}
	return n > 0, nil
}
