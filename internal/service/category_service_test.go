package service

import (
	"context"
	"testing"

	"github.com/phrazzld/library-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createFiction(t *testing.T, svc CategoryService) *domain.Category {
	t.Helper()
	category, err := svc.Create(context.Background(), domain.CategoryCreate{
		Name:        "Fiction",
		Description: "Novels and short stories",
	})
	require.NoError(t, err)
	return category
}

func TestCategoryService_Create(t *testing.T) {
	t.Parallel()
	svc := newTestServices(t).categories

	category := createFiction(t, svc)
	assert.Positive(t, category.ID)
	assert.Equal(t, "Fiction", category.Name)
	assert.Equal(t, "Novels and short stories", category.Description)
	assert.Zero(t, category.BookCount)

	got, err := svc.Get(context.Background(), category.ID)
	require.NoError(t, err)
	assert.Equal(t, *category, *got)
}

func TestCategoryService_BookCount(t *testing.T) {
	t.Parallel()
	svcs := newTestServices(t)
	ctx := context.Background()

	fiction := createFiction(t, svcs.categories)
	empty, err := svcs.categories.Create(ctx, domain.CategoryCreate{Name: "Poetry", Description: "Verse"})
	require.NoError(t, err)
	createDune(t, svcs.books, fiction.ID)
	createDune(t, svcs.books, fiction.ID)

	all, err := svcs.categories.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, int64(2), all[0].BookCount)
	assert.Equal(t, empty.ID, all[1].ID)
	assert.Zero(t, all[1].BookCount)
}

func TestCategoryService_Update(t *testing.T) {
	t.Parallel()
	svcs := newTestServices(t)
	ctx := context.Background()

	fiction := createFiction(t, svcs.categories)
	createDune(t, svcs.books, fiction.ID)

	updated, err := svcs.categories.Update(ctx, fiction.ID, domain.CategoryUpdate{Name: strPtr("Science Fiction")})
	require.NoError(t, err)
	assert.Equal(t, "Science Fiction", updated.Name)
	assert.Equal(t, fiction.Description, updated.Description)
	assert.Equal(t, int64(1), updated.BookCount)

	_, err = svcs.categories.Update(ctx, 999, domain.CategoryUpdate{Name: strPtr("Ghost")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, domain.MsgCategoryNotFound, domain.MessageOf(err))
}

func TestCategoryService_Delete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("with books", func(t *testing.T) {
		t.Parallel()
		svcs := newTestServices(t)
		fiction := createFiction(t, svcs.categories)
		createDune(t, svcs.books, fiction.ID)

		err := svcs.categories.Delete(ctx, fiction.ID)
		assert.ErrorIs(t, err, domain.ErrConflict)
		assert.Equal(t, domain.MsgCategoryHasBooks, domain.MessageOf(err))

		_, err = svcs.categories.Get(ctx, fiction.ID)
		assert.NoError(t, err)
	})

	t.Run("without books", func(t *testing.T) {
		t.Parallel()
		svcs := newTestServices(t)
		fiction := createFiction(t, svcs.categories)

		require.NoError(t, svcs.categories.Delete(ctx, fiction.ID))

		_, err := svcs.categories.Get(ctx, fiction.ID)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Equal(t, domain.MsgCategoryNotFound, domain.MessageOf(err))
	})

	t.Run("missing", func(t *testing.T) {
		t.Parallel()
		svcs := newTestServices(t)

		err := svcs.categories.Delete(ctx, 404)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Equal(t, domain.MsgCategoryNotFound, domain.MessageOf(err))
	})
}
