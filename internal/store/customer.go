package store

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/library-api/internal/domain"
)

// CustomerStore defines the interface for customer data persistence.
type CustomerStore interface {
	// Create inserts a new customer and sets its server-assigned ID.
	// The customer must already carry a password hash.
	// Returns ErrEmailExists if the email is already taken.
	Create(ctx context.Context, customer *domain.Customer) error

	// GetByID retrieves a customer, including its password hash.
	// Returns ErrCustomerNotFound if the customer does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)

	// GetByEmail retrieves a customer by exact email match.
	// Returns ErrCustomerNotFound if no customer has that email.
	GetByEmail(ctx context.Context, email string) (*domain.Customer, error)

	// List returns all customers ordered by ID.
	List(ctx context.Context) ([]domain.Customer, error)

	// Update overwrites name, email and password hash of an existing customer.
	// Returns ErrCustomerNotFound if no row matched and ErrEmailExists on
	// a unique-email violation.
	Update(ctx context.Context, customer *domain.Customer) error

	// Delete removes a customer by ID.
	// Returns ErrCustomerNotFound if no row matched.
	Delete(ctx context.Context, id int64) error

	// EmailExists reports whether another customer (id != excludeID) uses email.
	// Pass 0 as excludeID to check against every customer.
	EmailExists(ctx context.Context, email string, excludeID int64) (bool, error)

	// WithTx returns a new CustomerStore instance that uses the provided transaction.
	WithTx(tx *sqlx.Tx) CustomerStore
}
