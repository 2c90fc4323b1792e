package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/phrazzld/library-api/internal/domain"
	"github.com/phrazzld/library-api/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCategoryRouter(svc *mocks.MockCategoryService) http.Handler {
	h := NewCategoryHandler(svc, discardLogger())
	return resourceRouter("/categories", h.Create, h.List, h.Get, h.Update, h.Delete)
}

func TestCategoryHandler_Create(t *testing.T) {
	t.Parallel()

	svc := &mocks.MockCategoryService{
		CreateFn: func(ctx context.Context, in domain.CategoryCreate) (*domain.Category, error) {
			return &domain.Category{ID: 1, Name: in.Name, Description: in.Description}, nil
		},
	}
	router := newCategoryRouter(svc)

	rr := serve(router, http.MethodPost, "/categories", `{"name":"Fiction","description":"Novels"}`)
	require.Equal(t, http.StatusCreated, rr.Code)
	assert.JSONEq(t, `{"id":1,"name":"Fiction","description":"Novels","bookCount":0}`, rr.Body.String())

	rr = serve(router, http.MethodPost, "/categories", `{"name":"Fiction"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Invalid description: required field", decodeError(t, rr).Message)
}

func TestCategoryHandler_Delete(t *testing.T) {
	t.Parallel()

	svc := &mocks.MockCategoryService{
		DeleteFn: func(ctx context.Context, id int64) error {
			switch id {
			case 1:
				return domain.NewConflictError(domain.MsgCategoryHasBooks)
			case 2:
				return nil
			default:
				return domain.NewNotFoundError(domain.MsgCategoryNotFound)
			}
		},
	}
	router := newCategoryRouter(svc)

	rr := serve(router, http.MethodDelete, "/categories/1", "")
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.JSONEq(t,
		`{"error":"conflict","message":"Cannot delete category with associated books"}`,
		rr.Body.String())

	rr = serve(router, http.MethodDelete, "/categories/2", "")
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = serve(router, http.MethodDelete, "/categories/3", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Category not found", decodeError(t, rr).Message)
}

func TestCategoryHandler_Update(t *testing.T) {
	t.Parallel()

	var got domain.CategoryUpdate
	svc := &mocks.MockCategoryService{
		UpdateFn: func(ctx context.Context, id int64, in domain.CategoryUpdate) (*domain.Category, error) {
			got = in
			return &domain.Category{ID: id, Name: "Fiction", Description: *in.Description, BookCount: 3}, nil
		},
	}

	rr := serve(newCategoryRouter(svc), http.MethodPut, "/categories/5", `{"description":"Stories"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Nil(t, got.Name)
	assert.JSONEq(t, `{"id":5,"name":"Fiction","description":"Stories","bookCount":3}`, rr.Body.String())
}

func TestCategoryHandler_ListAndGet(t *testing.T) {
	t.Parallel()

	svc := &mocks.MockCategoryService{
		Categories: []domain.Category{{ID: 1, Name: "Fiction", Description: "Novels", BookCount: 2}},
		Category:   &domain.Category{ID: 1, Name: "Fiction", Description: "Novels", BookCount: 2},
	}
	router := newCategoryRouter(svc)

	rr := serve(router, http.MethodGet, "/categories", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[{"id":1,"name":"Fiction","description":"Novels","bookCount":2}]`, rr.Body.String())

	rr = serve(router, http.MethodGet, "/categories/1", "")
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = serve(router, http.MethodGet, "/categories/1.5", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Invalid ID", decodeError(t, rr).Message)
}
