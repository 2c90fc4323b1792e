package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/library-api/internal/domain"
	"github.com/phrazzld/library-api/internal/store"
)

// BookService manages the book catalogue.
type BookService interface {
	// Create stores a book in an existing category. The result has no
	// category name.
	Create(ctx context.Context, in domain.BookCreate) (*domain.Book, error)

	// Get retrieves a book by ID together with its category name.
	Get(ctx context.Context, id int64) (*domain.Book, error)

	// List returns every book together with its category name.
	List(ctx context.Context) ([]domain.Book, error)

	// Update applies the provided fields to an existing book. The result has
	// no category name.
	Update(ctx context.Context, id int64, in domain.BookUpdate) (*domain.Book, error)

	// Delete removes a book by ID.
	Delete(ctx context.Context, id int64) error
}

// BookServiceImpl implements the BookService interface
type BookServiceImpl struct {
	bookStore     store.BookStore
	categoryStore store.CategoryStore
	db            *sqlx.DB
	logger        *slog.Logger
}

// NewBookService creates a new BookService
func NewBookService(
	bookStore store.BookStore,
	categoryStore store.CategoryStore,
	db *sqlx.DB,
	logger *slog.Logger,
) BookService {
	if logger == nil {
		logger = slog.Default()
	}
	return &BookServiceImpl{
		bookStore:     bookStore,
		categoryStore: categoryStore,
		db:            db,
		logger:        logger.With("component", "book_service"),
	}
}

// requireCategory fails with a validation error unless the category exists.
func requireCategory(ctx context.Context, categories store.CategoryStore, id int64) error {
	exists, err := categories.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check category: %w", err)
	}
	if !exists {
		return domain.NewValidationError(domain.MsgCategoryDoesNotExist)
	}
	return nil
}

// Create verifies the category and inserts the book in one transaction.
func (s *BookServiceImpl) Create(ctx context.Context, in domain.BookCreate) (*domain.Book, error) {
	book := &domain.Book{
		Title:          in.Title,
		Author:         in.Author,
		Publisher:      in.Publisher,
		PublishingYear: in.PublishingYear,
		CategoryID:     in.CategoryID,
	}

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sqlx.Tx) error {
		if err := requireCategory(ctx, s.categoryStore.WithTx(tx), in.CategoryID); err != nil {
			return err
		}
		return s.bookStore.WithTx(tx).Create(ctx, book)
	})
	if err != nil {
		err = classify(err, "create book")
		logClassified(s.logger, "failed to create book", err,
			"title", in.Title,
			"category_id", in.CategoryID)
		return nil, err
	}

	s.logger.Info("book created successfully",
		"book_id", book.ID,
		"category_id", book.CategoryID)
	return book, nil
}

// Get retrieves a book by ID.
func (s *BookServiceImpl) Get(ctx context.Context, id int64) (*domain.Book, error) {
	book, err := s.bookStore.GetByID(ctx, id)
	if err != nil {
		err = classify(err, "retrieve book")
		logClassified(s.logger, "failed to retrieve book", err, "book_id", id)
		return nil, err
	}
	return book, nil
}

// List returns every book ordered by ID.
func (s *BookServiceImpl) List(ctx context.Context) ([]domain.Book, error) {
	books, err := s.bookStore.List(ctx)
	if err != nil {
		err = classify(err, "list books")
		logClassified(s.logger, "failed to list books", err)
		return nil, err
	}
	return books, nil
}

// Update merges the provided fields into the stored book. A supplied
// category ID is always re-checked, even when it is unchanged.
func (s *BookServiceImpl) Update(ctx context.Context, id int64, in domain.BookUpdate) (*domain.Book, error) {
	var (
		updated         *domain.Book
		categoryChanged bool
	)
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sqlx.Tx) error {
		txBooks := s.bookStore.WithTx(tx)

		book, err := txBooks.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if in.CategoryID != nil {
			if err := requireCategory(ctx, s.categoryStore.WithTx(tx), *in.CategoryID); err != nil {
				return err
			}
		}

		categoryChanged = in.ChangesCategory(book.CategoryID)
		in.ApplyTo(book)
		book.CategoryName = ""
		if err := txBooks.Update(ctx, book); err != nil {
			return err
		}
		updated = book
		return nil
	})
	if err != nil {
		err = classify(err, "update book")
		logClassified(s.logger, "failed to update book", err, "book_id", id)
		return nil, err
	}

	s.logger.Info("book updated successfully",
		"book_id", id,
		"category_changed", categoryChanged)
	return updated, nil
}

// Delete removes a book by ID.
func (s *BookServiceImpl) Delete(ctx context.Context, id int64) error {
	if err := s.bookStore.Delete(ctx, id); err != nil {
		err = classify(err, "delete book")
		logClassified(s.logger, "failed to delete book", err, "book_id", id)
		return err
	}

	s.logger.Info("book deleted successfully", "book_id", id)
	return nil
}
