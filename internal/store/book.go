package store

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/library-api/internal/domain"
)

// BookStore defines the interface for book data persistence.
type BookStore interface {
	// Create inserts a book and sets its ID. CategoryName is not populated.
	// Returns ErrUnknownCategory if the category reference is rejected.
	Create(ctx context.Context, book *domain.Book) error

	// GetByID returns the book joined with its category name.
	// Returns ErrBookNotFound if the book does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Book, error)

	// List returns all books joined with their category names, ordered by ID.
	List(ctx context.Context) ([]domain.Book, error)

	// Update overwrites every column of an existing book.
	// Returns ErrBookNotFound if no row matched and ErrUnknownCategory if the
	// category reference is rejected.
	Update(ctx context.Context, book *domain.Book) error

	// Delete removes a book by ID.
	// Returns ErrBookNotFound if no row matched.
	Delete(ctx context.Context, id int64) error

	// CountByCategory returns how many books reference the category.
	CountByCategory(ctx context.Context, categoryID int64) (int64, error)

	// WithTx returns a new BookStore instance that uses the provided transaction.
	WithTx(tx *sqlx.Tx) BookStore
}
