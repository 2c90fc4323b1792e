package service

import (
	"testing"

	"github.com/phrazzld/library-api/internal/platform/database"
	"github.com/phrazzld/library-api/internal/service/auth"
	"github.com/phrazzld/library-api/internal/testdb"
	"golang.org/x/crypto/bcrypt"
)

type testServices struct {
	customers  CustomerService
	categories CategoryService
	books      BookService
}

// newTestServices wires every service to a fresh in-memory database.
func newTestServices(t *testing.T) testServices {
	t.Helper()

	db := testdb.New(t)
	customerStore := database.NewSQLCustomerStore(db, nil)
	categoryStore := database.NewSQLCategoryStore(db, nil)
	bookStore := database.NewSQLBookStore(db, nil)
	hasher := auth.NewBcryptHasher(bcrypt.MinCost)

	return testServices{
		customers:  NewCustomerService(customerStore, hasher, hasher, db, nil),
		categories: NewCategoryService(categoryStore, bookStore, db, nil),
		books:      NewBookService(bookStore, categoryStore, db, nil),
	}
}

func strPtr(s string) *string { return &s }

func int64Ptr(v int64) *int64 { return &v }
