package mocks

import (
	"context"
	"errors"
	"testing"

	"github.com/phrazzld/library-api/internal/domain"
	"github.com/phrazzld/library-api/internal/service"
	"github.com/phrazzld/library-api/internal/service/auth"
	"github.com/stretchr/testify/assert"
)

var (
	_ auth.JWTService         = (*MockJWTService)(nil)
	_ service.CustomerService = (*MockCustomerService)(nil)
	_ service.CategoryService = (*MockCategoryService)(nil)
	_ service.BookService     = (*MockBookService)(nil)
)

func TestMockBookService_FunctionOverridesDefaults(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	m := &MockBookService{Book: &domain.Book{ID: 1}, DefaultError: errors.New("default")}
	book, err := m.Get(ctx, 1)
	assert.Equal(t, int64(1), book.ID)
	assert.EqualError(t, err, "default")

	m.GetFn = func(ctx context.Context, id int64) (*domain.Book, error) {
		return &domain.Book{ID: id}, nil
	}
	book, err = m.Get(ctx, 9)
	assert.NoError(t, err)
	assert.Equal(t, int64(9), book.ID)
}

func TestMockJWTService_Defaults(t *testing.T) {
	t.Parallel()

	m := &MockJWTService{ValidateErr: auth.ErrExpiredToken}
	_, err := m.ValidateToken(context.Background(), "token")
	assert.ErrorIs(t, err, auth.ErrExpiredToken)
}
