package mocks

import (
	"context"

	"github.com/phrazzld/library-api/internal/domain"
)

// MockBookService implements service.BookService for testing
type MockBookService struct {
	CreateFn func(ctx context.Context, in domain.BookCreate) (*domain.Book, error)
	GetFn    func(ctx context.Context, id int64) (*domain.Book, error)
	ListFn   func(ctx context.Context) ([]domain.Book, error)
	UpdateFn func(ctx context.Context, id int64, in domain.BookUpdate) (*domain.Book, error)
	DeleteFn func(ctx context.Context, id int64) error

	// Default return values
	Book         *domain.Book
	Books        []domain.Book
	DefaultError error
}

// Create implements the BookService.Create method
func (m *MockBookService) Create(ctx context.Context, in domain.BookCreate) (*domain.Book, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, in)
	}
	return m.Book, m.DefaultError
}

// Get implements the BookService.Get method
func (m *MockBookService) Get(ctx context.Context, id int64) (*domain.Book, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, id)
	}
	return m.Book, m.DefaultError
}

// List implements the BookService.List method
func (m *MockBookService) List(ctx context.Context) ([]domain.Book, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return m.Books, m.DefaultError
}

// Update implements the BookService.Update method
func (m *MockBookService) Update(ctx context.Context, id int64, in domain.BookUpdate) (*domain.Book, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, in)
	}
	return m.Book, m.DefaultError
}

// Delete implements the BookService.Delete method
func (m *MockBookService) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return m.DefaultError
}
