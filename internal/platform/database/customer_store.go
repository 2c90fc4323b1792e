package database

import (
	"context"
	"log/slog"

	"github.com/doug-martin/goqu/v9"
	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/library-api/internal/domain"
	"github.com/phrazzld/library-api/internal/platform/logger"
	"github.com/phrazzld/library-api/internal/redact"
	"github.com/phrazzld/library-api/internal/store"
)

const customersTable = "customers"

var customerColumns = []interface{}{"id", "name", "email", "password"}

// SQLCustomerStore implements the store.CustomerStore interface
// on top of either supported SQL backend.
type SQLCustomerStore struct {
	sqlBuilder
	db     store.DBTX
	logger *slog.Logger
}

// NewSQLCustomerStore creates a new SQL implementation of the CustomerStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewSQLCustomerStore(db store.DBTX, logger *slog.Logger) *SQLCustomerStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &SQLCustomerStore{
		sqlBuilder: newSQLBuilder(db),
		db:         db,
		logger:     logger.With(slog.String("component", "customer_store")),
	}
}

// Ensure SQLCustomerStore implements store.CustomerStore interface
var _ store.CustomerStore = (*SQLCustomerStore)(nil)

// WithTx implements store.CustomerStore.WithTx
func (s *SQLCustomerStore) WithTx(tx *sqlx.Tx) store.CustomerStore {
	return &SQLCustomerStore{
		sqlBuilder: s.sqlBuilder,
		db:         tx,
		logger:     s.logger,
	}
}

// Create implements store.CustomerStore.Create
func (s *SQLCustomerStore) Create(ctx context.Context, customer *domain.Customer) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	id, err := s.insertReturningID(ctx, s.db, customersTable, goqu.Record{
		"name":     customer.Name,
		"email":    customer.Email,
		"password": customer.PasswordHash,
	})
	if err != nil {
		err = MapError(err)
		if store.IsDuplicateError(err) {
			log.Debug("customer email already exists")
			return store.ErrEmailExists
		}
		log.Error("failed to create customer", redact.Attr(err))
		return store.NewStoreError("customer", "create", "insert failed", err)
	}

	customer.ID = id
	log.Info("customer created", slog.Int64("customer_id", id))
	return nil
}

// GetByID implements store.CustomerStore.GetByID
func (s *SQLCustomerStore) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	return s.getOne(ctx, goqu.C("id").Eq(id))
}

// GetByEmail implements store.CustomerStore.GetByEmail
func (s *SQLCustomerStore) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	return s.getOne(ctx, goqu.C("email").Eq(email))
}

func (s *SQLCustomerStore) getOne(ctx context.Context, where goqu.Expression) (*domain.Customer, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query, args, err := build(s.goqu.From(customersTable).
		Select(customerColumns...).
		Where(where).
		Prepared(true))
	if err != nil {
		return nil, err
	}

	var customer domain.Customer
	if err := sqlx.GetContext(ctx, s.db, &customer, query, args...); err != nil {
		err = MapError(err)
		if store.IsNotFoundError(err) {
			return nil, store.ErrCustomerNotFound
		}
		log.Error("failed to get customer", redact.Attr(err))
		return nil, store.NewStoreError("customer", "get", "select failed", err)
	}
	return &customer, nil
}

// List implements store.CustomerStore.List
func (s *SQLCustomerStore) List(ctx context.Context) ([]domain.Customer, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query, args, err := build(s.goqu.From(customersTable).
		Select(customerColumns...).
		Order(goqu.C("id").Asc()).
		Prepared(true))
	if err != nil {
		return nil, err
	}

	customers := []domain.Customer{}
	if err := sqlx.SelectContext(ctx, s.db, &customers, query, args...); err != nil {
		log.Error("failed to list customers", redact.Attr(err))
		return nil, store.NewStoreError("customer", "list", "select failed", MapError(err))
	}
	return customers, nil
}

// Update implements store.CustomerStore.Update
func (s *SQLCustomerStore) Update(ctx context.Context, customer *domain.Customer) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query, args, err := build(s.goqu.Update(customersTable).
		Set(goqu.Record{
			"name":     customer.Name,
			"email":    customer.Email,
			"password": customer.PasswordHash,
		}).
		Where(goqu.C("id").Eq(customer.ID)).
		Prepared(true))
	if err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		err = MapError(err)
		if store.IsDuplicateError(err) {
			return store.ErrEmailExists
		}
		log.Error("failed to update customer",
			slog.Int64("customer_id", customer.ID),
			redact.Attr(err))
		return store.NewStoreError("customer", "update", "update failed", err)
	}

	if err := CheckRowsAffected(result, store.ErrCustomerNotFound); err != nil {
		return err
	}

	log.Info("customer updated", slog.Int64("customer_id", customer.ID))
	return nil
}

// Delete implements store.CustomerStore.Delete
func (s *SQLCustomerStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query, args, err := build(s.goqu.Delete(customersTable).
		Where(goqu.C("id").Eq(id)).
		Prepared(true))
	if err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to delete customer",
			slog.Int64("customer_id", id),
			redact.Attr(err))
		return store.NewStoreError("customer", "delete", "delete failed", MapError(err))
	}

	if err := CheckRowsAffected(result, store.ErrCustomerNotFound); err != nil {
		return err
	}

	log.Info("customer deleted", slog.Int64("customer_id", id))
	return nil
}

// EmailExists implements store.CustomerStore.EmailExists
func (s *SQLCustomerStore) EmailExists(ctx context.Context, email string, excludeID int64) (bool, error) {
	n, err := s.count(ctx, s.db, customersTable,
		goqu.C("email").Eq(email),
		goqu.C("id").Neq(excludeID))
	if err != nil {
		return false, store.NewStoreError("customer", "email_exists", "count failed", MapError(err))
	}
	return n > 0, nil
}
