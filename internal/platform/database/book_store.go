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

const booksTable = "books"

// SQLBookStore implements the store.BookStore interface.
type SQLBookStore struct {
	sqlBuilder
	db     store.DBTX
	logger *slog.Logger
}

// NewSQLBookStore creates a new SQL implementation of the BookStore interface.
// If logger is nil, a default logger will be used.
func NewSQLBookStore(db store.DBTX, logger *slog.Logger) *SQLBookStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &SQLBookStore{
		sqlBuilder: newSQLBuilder(db),
		db:         db,
		logger:     logger.With(slog.String("component", "book_store")),
	}
}

// Ensure SQLBookStore implements store.BookStore interface
var _ store.BookStore = (*SQLBookStore)(nil)

// WithTx implements store.BookStore.WithTx
func (s *SQLBookStore) WithTx(tx *sqlx.Tx) store.BookStore {
	return &SQLBookStore{
		sqlBuilder: s.sqlBuilder,
		db:         tx,
		logger:     s.logger,
	}
}

func bookRecord(book *domain.Book) goqu.Record {
	return goqu.Record{
		"title":           book.Title,
		"author":          book.Author,
		"publisher":       book.Publisher,
		"publishing_year": book.PublishingYear,
		"category_id":     book.CategoryID,
	}
}

// selectWithCategory joins each book with the name of its category.
func (s *SQLBookStore) selectWithCategory() *goqu.SelectDataset {
	return s.goqu.From(goqu.T(booksTable).As("b")).
		LeftJoin(goqu.T(categoriesTable).As("c"), goqu.On(goqu.I("c.id").Eq(goqu.I("b.category_id")))).
		Select(
			goqu.I("b.id"),
			goqu.I("b.title"),
			goqu.I("b.author"),
			goqu.I("b.publisher"),
			goqu.I("b.publishing_year"),
			goqu.I("b.category_id"),
			goqu.COALESCE(goqu.I("c.name"), "").As("category_name"),
		)
}

// Create implements store.BookStore.Create
func (s *SQLBookStore) Create(ctx context.Context, book *domain.Book) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	id, err := s.insertReturningID(ctx, s.db, booksTable, bookRecord(book))
	if err != nil {
		err = MapError(err)
		if store.IsReferenceError(err) {
			log.Debug("book references unknown category",
				slog.Int64("category_id", book.CategoryID))
			return store.ErrUnknownCategory
		}
		log.Error("failed to create book", redact.Attr(err))
		return store.NewStoreError("book", "create", "insert failed", err)
	}

	book.ID = id
	log.Info("book created",
		slog.Int64("book_id", id),
		slog.Int64("category_id", book.CategoryID))
	return nil
}

// GetByID implements store.BookStore.GetByID
func (s *SQLBookStore) GetByID(ctx context.Context, id int64) (*domain.Book, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query, args, err := build(s.selectWithCategory().
		Where(goqu.I("b.id").Eq(id)).
		Prepared(true))
	if err != nil {
		return nil, err
	}

	var book domain.Book
	if err := sqlx.GetContext(ctx, s.db, &book, query, args...); err != nil {
		err = MapError(err)
		if store.IsNotFoundError(err) {
			return nil, store.ErrBookNotFound
		}
		log.Error("failed to get book",
			slog.Int64("book_id", id),
			redact.Attr(err))
		return nil, store.NewStoreError("book", "get", "select failed", err)
	}
	return &book, nil
}

// List implements store.BookStore.List
func (s *SQLBookStore) List(ctx context.Context) ([]domain.Book, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query, args, err := build(s.selectWithCategory().
		Order(goqu.I("b.id").Asc()).
		Prepared(true))
	if err != nil {
		return nil, err
	}

	books := []domain.Book{}
	if err := sqlx.SelectContext(ctx, s.db, &books, query, args...); err != nil {
		log.Error("failed to list books", redact.Attr(err))
		return nil, store.NewStoreError("book", "list", "select failed", MapError(err))
	}
	return books, nil
}

// Update implements store.BookStore.Update
func (s *SQLBookStore) Update(ctx context.Context, book *domain.Book) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query, args, err := build(s.goqu.Update(booksTable).
		Set(bookRecord(book)).
		Where(goqu.C("id").Eq(book.ID)).
		Prepared(true))
	if err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		err = MapError(err)
		if store.IsReferenceError(err) {
			return store.ErrUnknownCategory
		}
		log.Error("failed to update book",
			slog.Int64("book_id", book.ID),
			redact.Attr(err))
		return store.NewStoreError("book", "update", "update failed", err)
	}

	if err := CheckRowsAffected(result, store.ErrBookNotFound); err != nil {
		return err
	}

	log.Info("book updated", slog.Int64("book_id", book.ID))
	return nil
}

// Delete implements store.BookStore.Delete
func (s *SQLBookStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query, args, err := build(s.goqu.Delete(booksTable).
		Where(goqu.C("id").Eq(id)).
		Prepared(true))
	if err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to delete book",
			slog.Int64("book_id", id),
			redact.Attr(err))
		return store.NewStoreError("book", "delete", "delete failed", MapError(err))
	}

	if err := CheckRowsAffected(result, store.ErrBookNotFound); err != nil {
		return err
	}

	log.Info("book deleted", slog.Int64("book_id", id))
	return nil
}

// CountByCategory implements store.BookStore.CountByCategory
func (s *SQLBookStore) CountByCategory(ctx context.Context, categoryID int64) (int64, error) {
	n, err := s.count(ctx, s.db, booksTable, goqu.C("category_id").Eq(categoryID))
	if err != nil {
		return 0, store.NewStoreError("book", "count", "count failed", MapError(err))
	}
	return n, nil
}
