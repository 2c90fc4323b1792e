package store

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/library-api/internal/domain"
)

// CategoryStore defines the interface for category data persistence.
// Reads populate BookCount from the books table.
type CategoryStore interface {
	// Create inserts a category and sets its ID. BookCount is left at zero.
	Create(ctx context.Context, category *domain.Category) error

	// GetByID returns ErrCategoryNotFound if the category does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Category, error)

	// List returns all categories ordered by ID.
	List(ctx context.Context) ([]domain.Category, error)

	// Update overwrites name and description.
	// Returns ErrCategoryNotFound if no row matched.
	Update(ctx context.Context, category *domain.Category) error

	// Delete removes a category by ID.
	// Returns ErrCategoryNotFound if no row matched and ErrCategoryInUse if
	// the database rejects the delete because books still reference it.
	Delete(ctx context.Context, id int64) error

	// Exists reports whether a category with the given ID exists.
	Exists(ctx context.Context, id int64) (bool, error)

	// WithTx returns a new CategoryStore instance that uses the provided transaction.
	WithTx(tx *sqlx.Tx) CategoryStore
}
