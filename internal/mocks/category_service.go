package mocks

import (
	"context"

	"github.com/phrazzld/library-api/internal/domain"
)

// MockCategoryService implements service.CategoryService for testing
type MockCategoryService struct {
	CreateFn func(ctx context.Context, in domain.CategoryCreate) (*domain.Category, error)
	GetFn    func(ctx context.Context, id int64) (*domain.Category, error)
	ListFn   func(ctx context.Context) ([]domain.Category, error)
	UpdateFn func(ctx context.Context, id int64, in domain.CategoryUpdate) (*domain.Category, error)
	DeleteFn func(ctx context.Context, id int64) error

	// Default return values
	Category     *domain.Category
	Categories   []domain.Category
	DefaultError error
}

// Create implements the CategoryService.Create method
func (m *MockCategoryService) Create(ctx context.Context, in domain.CategoryCreate) (*domain.Category, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, in)
	}
	return m.Category, m.DefaultError
}

// Get implements the CategoryService.Get method
func (m *MockCategoryService) Get(ctx context.Context, id int64) (*domain.Category, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, id)
	}
	return m.Category, m.DefaultError
}

// List implements the CategoryService.List method
func (m *MockCategoryService) List(ctx context.Context) ([]domain.Category, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return m.Categories, m.DefaultError
}

// Update implements the CategoryService.Update method
func (m *MockCategoryService) Update(
	ctx context.Context,
	id int64,
	in domain.CategoryUpdate,
) (*domain.Category, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, in)
	}
	return m.Category, m.DefaultError
}

// Delete implements the CategoryService.Delete method
func (m *MockCategoryService) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return m.DefaultError
}
