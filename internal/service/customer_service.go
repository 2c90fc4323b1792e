package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/library-api/internal/domain"
	"github.com/phrazzld/library-api/internal/service/auth"
	"github.com/phrazzld/library-api/internal/store"
)

// dummyPassword is hashed once and compared against when a login names an
// unknown email, so both failure paths cost one bcrypt comparison.
const dummyPassword = "library-api-dummy-password"

// fallbackDummyHash is a well-formed cost-10 bcrypt hash used when the dummy
// password cannot be hashed at startup.
const fallbackDummyHash = "$2a$10$oVd5DrhQBQH8iVeLsiW0De.Gx1tX38cP9jq6SxqNOILHAlVmWpYqC"

// CustomerService provides customer registration, maintenance and
// credential checks. Every result is a CustomerProfile; password hashes never
// leave the service.
type CustomerService interface {
	// Create registers a customer. It fails with a validation error for a
	// malformed email and a conflict error if the email is taken.
	Create(ctx context.Context, in domain.CustomerCreate) (*domain.CustomerProfile, error)

	// Get retrieves a customer by ID.
	Get(ctx context.Context, id int64) (*domain.CustomerProfile, error)

	// List returns every customer.
	List(ctx context.Context) ([]domain.CustomerProfile, error)

	// Update applies the provided fields to an existing customer.
	Update(ctx context.Context, id int64, in domain.CustomerUpdate) (*domain.CustomerProfile, error)

	// Delete removes a customer by ID.
	Delete(ctx context.Context, id int64) error

	// Authenticate checks an email and password pair. Unknown emails and
	// wrong passwords fail with the same unauthorized error.
	Authenticate(ctx context.Context, email, password string) (*domain.CustomerProfile, error)
}

// CustomerServiceImpl implements the CustomerService interface
type CustomerServiceImpl struct {
	customerStore store.CustomerStore
	hasher        auth.PasswordHasher
	verifier      auth.PasswordVerifier
	db            *sqlx.DB
	logger        *slog.Logger

	dummyOnce sync.Once
	dummyHash string
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(
	customerStore store.CustomerStore,
	hasher auth.PasswordHasher,
	verifier auth.PasswordVerifier,
	db *sqlx.DB,
	logger *slog.Logger,
) CustomerService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CustomerServiceImpl{
		customerStore: customerStore,
		hasher:        hasher,
		verifier:      verifier,
		db:            db,
		logger:        logger.With("component", "customer_service"),
	}
}

func validatePassword(password string) error {
	if len(password) < domain.MinPasswordLength || len(password) > domain.MaxPasswordLength {
		return domain.NewValidationError(fmt.Sprintf(
			"Invalid password: must be between %d and %d bytes",
			domain.MinPasswordLength, domain.MaxPasswordLength))
	}
	return nil
}

// Create registers a new customer. The email check and the insert share a
// transaction; the password is hashed before it starts.
func (s *CustomerServiceImpl) Create(
	ctx context.Context,
	in domain.CustomerCreate,
) (*domain.CustomerProfile, error) {
	email := domain.NormalizeEmail(in.Email)
	if err := domain.ValidateEmail(email); err != nil {
		s.logger.Debug("rejected customer with invalid email", "email", email)
		return nil, err
	}
	if err := validatePassword(in.Password); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		s.logger.Error("failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	customer := &domain.Customer{
		Name:         in.Name,
		Email:        email,
		PasswordHash: hash,
	}

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sqlx.Tx) error {
		txStore := s.customerStore.WithTx(tx)

		exists, err := txStore.EmailExists(ctx, email, 0)
		if err != nil {
			return fmt.Errorf("failed to check email: %w", err)
		}
		if exists {
			return domain.NewConflictError(domain.MsgEmailExists)
		}

		return txStore.Create(ctx, customer)
	})
	if err != nil {
		err = classify(err, "create customer")
		logClassified(s.logger, "failed to create customer", err, "email", email)
		return nil, err
	}

	s.logger.Info("customer created successfully",
		"customer_id", customer.ID,
		"email", customer.Email)

	profile := customer.Profile()
	return &profile, nil
}

// Get retrieves a customer by ID.
func (s *CustomerServiceImpl) Get(ctx context.Context, id int64) (*domain.CustomerProfile, error) {
	customer, err := s.customerStore.GetByID(ctx, id)
	if err != nil {
		err = classify(err, "retrieve customer")
		logClassified(s.logger, "failed to retrieve customer", err, "customer_id", id)
		return nil, err
	}

	profile := customer.Profile()
	return &profile, nil
}

// List returns every customer ordered by ID.
func (s *CustomerServiceImpl) List(ctx context.Context) ([]domain.CustomerProfile, error) {
	customers, err := s.customerStore.List(ctx)
	if err != nil {
		err = classify(err, "list customers")
		logClassified(s.logger, "failed to list customers", err)
		return nil, err
	}

	profiles := make([]domain.CustomerProfile, 0, len(customers))
	for i := range customers {
		profiles = append(profiles, customers[i].Profile())
	}
	return profiles, nil
}

// Update loads the current record, merges the provided fields and writes it
// back. A new email is validated and checked for uniqueness against every
// other customer; a new password is re-hashed.
func (s *CustomerServiceImpl) Update(
	ctx context.Context,
	id int64,
	in domain.CustomerUpdate,
) (*domain.CustomerProfile, error) {
	if in.Email != nil {
		email := domain.NormalizeEmail(*in.Email)
		if err := domain.ValidateEmail(email); err != nil {
			return nil, err
		}
		in.Email = &email
	}

	var newHash string
	if in.Password != nil {
		if err := validatePassword(*in.Password); err != nil {
			return nil, err
		}
		hash, err := s.hasher.Hash(*in.Password)
		if err != nil {
			s.logger.Error("failed to hash password", "error", err, "customer_id", id)
			return nil, fmt.Errorf("failed to update customer: %w", err)
		}
		newHash = hash
	}

	var updated *domain.Customer
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sqlx.Tx) error {
		txStore := s.customerStore.WithTx(tx)

		customer, err := txStore.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if in.Email != nil && *in.Email != customer.Email {
			exists, err := txStore.EmailExists(ctx, *in.Email, id)
			if err != nil {
				return fmt.Errorf("failed to check email: %w", err)
			}
			if exists {
				return domain.NewConflictError(domain.MsgEmailExists)
			}
		}

		in.ApplyTo(customer)
		if newHash != "" {
			customer.PasswordHash = newHash
		}

		if err := txStore.Update(ctx, customer); err != nil {
			return err
		}
		updated = customer
		return nil
	})
	if err != nil {
		err = classify(err, "update customer")
		logClassified(s.logger, "failed to update customer", err, "customer_id", id)
		return nil, err
	}

	s.logger.Info("customer updated successfully",
		"customer_id", id,
		"password_changed", newHash != "")

	profile := updated.Profile()
	return &profile, nil
}

// Delete removes a customer by ID.
func (s *CustomerServiceImpl) Delete(ctx context.Context, id int64) error {
	if err := s.customerStore.Delete(ctx, id); err != nil {
		err = classify(err, "delete customer")
		logClassified(s.logger, "failed to delete customer", err, "customer_id", id)
		return err
	}

	s.logger.Info("customer deleted successfully", "customer_id", id)
	return nil
}

// Authenticate verifies the password of the customer with the given email.
func (s *CustomerServiceImpl) Authenticate(
	ctx context.Context,
	email, password string,
) (*domain.CustomerProfile, error) {
	email = domain.NormalizeEmail(email)

	customer, err := s.customerStore.GetByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, store.ErrCustomerNotFound) {
			s.logger.Error("failed to look up customer for login", "error", err)
			return nil, fmt.Errorf("failed to authenticate customer: %w", err)
		}
		// Spend the same bcrypt work as a real comparison.
		_ = s.verifier.Compare(s.dummyPasswordHash(), password)
		s.logger.Debug("login attempt for unknown email")
		return nil, domain.NewUnauthorizedError(domain.MsgInvalidCredentials)
	}

	if err := s.verifier.Compare(customer.PasswordHash, password); err != nil {
		if !errors.Is(err, auth.ErrPasswordMismatch) {
			s.logger.Error("stored password hash is unusable",
				"error", err,
				"customer_id", customer.ID)
		} else {
			s.logger.Debug("login attempt with wrong password", "customer_id", customer.ID)
		}
		return nil, domain.NewUnauthorizedError(domain.MsgInvalidCredentials)
	}

	s.logger.Debug("customer authenticated", "customer_id", customer.ID)
	profile := customer.Profile()
	return &profile, nil
}

func (s *CustomerServiceImpl) dummyPasswordHash() string {
	s.dummyOnce.Do(func() {
		hash, err := s.hasher.Hash(dummyPassword)
		if err != nil {
			s.logger.Error("failed to prepare dummy password hash, using fallback", "error", err)
			s.dummyHash = fallbackDummyHash
			return
		}
		s.dummyHash = hash
	})
	return s.dummyHash
}
