package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/library-api/internal/domain"
	"github.com/phrazzld/library-api/internal/store"
)

// CategoryService manages categories. Every category it returns carries the
// number of books currently filed under it.
type CategoryService interface {
	// Create stores a new category; its book count is zero.
	Create(ctx context.Context, in domain.CategoryCreate) (*domain.Category, error)

	// Get retrieves a category by ID.
	Get(ctx context.Context, id int64) (*domain.Category, error)

	// List returns every category.
	List(ctx context.Context) ([]domain.Category, error)

	// Update applies the provided fields to an existing category.
	Update(ctx context.Context, id int64, in domain.CategoryUpdate) (*domain.Category, error)

	// Delete removes a category. It fails with a conflict error while any
	// book still references the category.
	Delete(ctx context.Context, id int64) error
}

// CategoryServiceImpl implements the CategoryService interface
type CategoryServiceImpl struct {
	categoryStore store.CategoryStore
	bookStore     store.BookStore
	db            *sqlx.DB
	logger        *slog.Logger
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(
	categoryStore store.CategoryStore,
	bookStore store.BookStore,
	db *sqlx.DB,
	logger *slog.Logger,
) CategoryService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CategoryServiceImpl{
		categoryStore: categoryStore,
		bookStore:     bookStore,
		db:            db,
		logger:        logger.With("component", "category_service"),
	}
}

// Create stores a new category.
func (s *CategoryServiceImpl) Create(ctx context.Context, in domain.CategoryCreate) (*domain.Category, error) {
	category := &domain.Category{
		Name:        in.Name,
		Description: in.Description,
	}

	if err := s.categoryStore.Create(ctx, category); err != nil {
		err = classify(err, "create category")
		logClassified(s.logger, "failed to create category", err, "name", in.Name)
		return nil, err
	}

	s.logger.Info("category created successfully",
		"category_id", category.ID,
		"name", category.Name)
	return category, nil
}

// Get retrieves a category by ID.
func (s *CategoryServiceImpl) Get(ctx context.Context, id int64) (*domain.Category, error) {
	category, err := s.categoryStore.GetByID(ctx, id)
	if err != nil {
		err = classify(err, "retrieve category")
		logClassified(s.logger, "failed to retrieve category", err, "category_id", id)
		return nil, err
	}
	return category, nil
}

// List returns every category ordered by ID.
func (s *CategoryServiceImpl) List(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.categoryStore.List(ctx)
	if err != nil {
		err = classify(err, "list categories")
		logClassified(s.logger, "failed to list categories", err)
		return nil, err
	}
	return categories, nil
}

// Update merges the provided fields into the stored category. The returned
// category keeps the book count read inside the transaction.
func (s *CategoryServiceImpl) Update(
	ctx context.Context,
	id int64,
	in domain.CategoryUpdate,
) (*domain.Category, error) {
	var updated *domain.Category
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sqlx.Tx) error {
		txStore := s.categoryStore.WithTx(tx)

		category, err := txStore.GetByID(ctx, id)
		if err != nil {
			return err
		}

		in.ApplyTo(category)
		if err := txStore.Update(ctx, category); err != nil {
			return err
		}
		updated = category
		return nil
	})
	if err != nil {
		err = classify(err, "update category")
		logClassified(s.logger, "failed to update category", err, "category_id", id)
		return nil, err
	}

	s.logger.Info("category updated successfully", "category_id", id)
	return updated, nil
}

// Delete removes a category that no book references. The count and the
// delete share a transaction, and a foreign key rejection from a concurrent
// book insert is reported the same way as a non-zero count.
func (s *CategoryServiceImpl) Delete(ctx context.Context, id int64) error {
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sqlx.Tx) error {
		books, err := s.bookStore.WithTx(tx).CountByCategory(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to count books in category: %w", err)
		}
		if books > 0 {
			return domain.NewConflictError(domain.MsgCategoryHasBooks)
		}

		return s.categoryStore.WithTx(tx).Delete(ctx, id)
	})
	if err != nil {
		err = classify(err, "delete category")
		logClassified(s.logger, "failed to delete category", err, "category_id", id)
		return err
	}

	s.logger.Info("category deleted successfully", "category_id", id)
	return nil
}
