package mocks

import (
	"context"

	"github.com/phrazzld/library-api/internal/domain"
)

// MockCustomerService implements service.CustomerService for testing
type MockCustomerService struct {
	CreateFn       func(ctx context.Context, in domain.CustomerCreate) (*domain.CustomerProfile, error)
	GetFn          func(ctx context.Context, id int64) (*domain.CustomerProfile, error)
	ListFn         func(ctx context.Context) ([]domain.CustomerProfile, error)
	UpdateFn       func(ctx context.Context, id int64, in domain.CustomerUpdate) (*domain.CustomerProfile, error)
	DeleteFn       func(ctx context.Context, id int64) error
	AuthenticateFn func(ctx context.Context, email, password string) (*domain.CustomerProfile, error)

	// Default return values
	Profile      *domain.CustomerProfile
	Profiles     []domain.CustomerProfile
	DefaultError error
}

// Create implements the CustomerService.Create method
func (m *MockCustomerService) Create(
	ctx context.Context,
	in domain.CustomerCreate,
) (*domain.CustomerProfile, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, in)
	}
	return m.Profile, m.DefaultError
}

// Get implements the CustomerService.Get method
func (m *MockCustomerService) Get(ctx context.Context, id int64) (*domain.CustomerProfile, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, id)
	}
	return m.Profile, m.DefaultError
}

// List implements the CustomerService.List method
func (m *MockCustomerService) List(ctx context.Context) ([]domain.CustomerProfile, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return m.Profiles, m.DefaultError
}

// Update implements the CustomerService.Update method
func (m *MockCustomerService) Update(
	ctx context.Context,
	id int64,
	in domain.CustomerUpdate,
) (*domain.CustomerProfile, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, in)
	}
	return m.Profile, m.DefaultError
}

// Delete implements the CustomerService.Delete method
func (m *MockCustomerService) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return m.DefaultError
}

// Authenticate implements the CustomerService.Authenticate method
func (m *MockCustomerService) Authenticate(
	ctx context.Context,
	email, password string,
) (*domain.CustomerProfile, error) {
	if m.AuthenticateFn != nil {
		return m.AuthenticateFn(ctx, email, password)
	}
	return m.Profile, m.DefaultError
}
