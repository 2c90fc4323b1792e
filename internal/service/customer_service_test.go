package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/phrazzld/library-api/internal/domain"
	"github.com/phrazzld/library-api/internal/platform/database"
	"github.com/phrazzld/library-api/internal/service/auth"
	"github.com/phrazzld/library-api/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func registerJohn(t *testing.T, svc CustomerService) *domain.CustomerProfile {
	t.Helper()
	profile, err := svc.Create(context.Background(), domain.CustomerCreate{
		Name:     "John Doe",
		Email:    "john.doe@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	return profile
}

func TestCustomerService_Create(t *testing.T) {
	t.Parallel()
	svc := newTestServices(t).customers

	profile := registerJohn(t, svc)
	assert.Positive(t, profile.ID)
	assert.Equal(t, "John Doe", profile.Name)
	assert.Equal(t, "john.doe@example.com", profile.Email)
}

func TestCustomerService_CreateValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		in          domain.CustomerCreate
		wantMessage string
	}{
		{
			name:        "invalid email",
			in:          domain.CustomerCreate{Name: "A", Email: "not-an-email", Password: "password123"},
			wantMessage: domain.MsgInvalidEmail,
		},
		{
			name:        "email without tld",
			in:          domain.CustomerCreate{Name: "A", Email: "a@localhost", Password: "password123"},
			wantMessage: domain.MsgInvalidEmail,
		},
		{
			name:        "short password",
			in:          domain.CustomerCreate{Name: "A", Email: "a@example.com", Password: "short"},
			wantMessage: "Invalid password: must be between 8 and 72 bytes",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			svc := newTestServices(t).customers

			_, err := svc.Create(context.Background(), tc.in)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.Equal(t, tc.wantMessage, domain.MessageOf(err))

			all, err := svc.List(context.Background())
			require.NoError(t, err)
			assert.Empty(t, all)
		})
	}
}

func TestCustomerService_DuplicateEmail(t *testing.T) {
	t.Parallel()
	svc := newTestServices(t).customers
	ctx := context.Background()

	first := registerJohn(t, svc)

	_, err := svc.Create(ctx, domain.CustomerCreate{
		Name:     "Johnny",
		Email:    "john.doe@example.com",
		Password: "different123",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, domain.MsgEmailExists, domain.MessageOf(err))

	got, err := svc.Get(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, *first, *got)
}

func TestCustomerService_GetAndList(t *testing.T) {
	t.Parallel()
	svc := newTestServices(t).customers
	ctx := context.Background()

	empty, err := svc.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	john := registerJohn(t, svc)
	jane, err := svc.Create(ctx, domain.CustomerCreate{
		Name:     "Jane Roe",
		Email:    "jane@example.com",
		Password: "password456",
	})
	require.NoError(t, err)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.CustomerProfile{*john, *jane}, all)

	_, err = svc.Get(ctx, 9999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, domain.MsgCustomerNotFound, domain.MessageOf(err))
}

func TestCustomerService_Update(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("name only", func(t *testing.T) {
		t.Parallel()
		svc := newTestServices(t).customers
		john := registerJohn(t, svc)

		updated, err := svc.Update(ctx, john.ID, domain.CustomerUpdate{Name: strPtr("Johnathan Doe")})
		require.NoError(t, err)
		assert.Equal(t, "Johnathan Doe", updated.Name)
		assert.Equal(t, john.Email, updated.Email)

		// The password is untouched.
		_, err = svc.Authenticate(ctx, john.Email, "password123")
		assert.NoError(t, err)
	})

	t.Run("password", func(t *testing.T) {
		t.Parallel()
		svc := newTestServices(t).customers
		john := registerJohn(t, svc)

		_, err := svc.Update(ctx, john.ID, domain.CustomerUpdate{Password: strPtr("new-password")})
		require.NoError(t, err)

		_, err = svc.Authenticate(ctx, john.Email, "password123")
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
		_, err = svc.Authenticate(ctx, john.Email, "new-password")
		assert.NoError(t, err)
	})

	t.Run("email taken by another customer", func(t *testing.T) {
		t.Parallel()
		svc := newTestServices(t).customers
		john := registerJohn(t, svc)
		_, err := svc.Create(ctx, domain.CustomerCreate{
			Name:     "Jane Roe",
			Email:    "jane@example.com",
			Password: "password456",
		})
		require.NoError(t, err)

		_, err = svc.Update(ctx, john.ID, domain.CustomerUpdate{Email: strPtr("jane@example.com")})
		assert.ErrorIs(t, err, domain.ErrConflict)
		assert.Equal(t, domain.MsgEmailExists, domain.MessageOf(err))
	})

	t.Run("own email is not a conflict", func(t *testing.T) {
		t.Parallel()
		svc := newTestServices(t).customers
		john := registerJohn(t, svc)

		updated, err := svc.Update(ctx, john.ID, domain.CustomerUpdate{
			Name:  strPtr("J. Doe"),
			Email: strPtr(john.Email),
		})
		require.NoError(t, err)
		assert.Equal(t, "J. Doe", updated.Name)
	})

	t.Run("invalid email", func(t *testing.T) {
		t.Parallel()
		svc := newTestServices(t).customers
		john := registerJohn(t, svc)

		_, err := svc.Update(ctx, john.ID, domain.CustomerUpdate{Email: strPtr("nope")})
		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.Equal(t, domain.MsgInvalidEmail, domain.MessageOf(err))
	})

	t.Run("missing customer", func(t *testing.T) {
		t.Parallel()
		svc := newTestServices(t).customers

		_, err := svc.Update(ctx, 42, domain.CustomerUpdate{Name: strPtr("Ghost")})
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Equal(t, domain.MsgCustomerNotFound, domain.MessageOf(err))
	})
}

func TestCustomerService_Delete(t *testing.T) {
	t.Parallel()
	svc := newTestServices(t).customers
	ctx := context.Background()

	john := registerJohn(t, svc)
	require.NoError(t, svc.Delete(ctx, john.ID))

	_, err := svc.Get(ctx, john.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = svc.Delete(ctx, john.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, domain.MsgCustomerNotFound, domain.MessageOf(err))
}

func TestCustomerService_Authenticate(t *testing.T) {
	t.Parallel()
	svc := newTestServices(t).customers
	ctx := context.Background()

	john := registerJohn(t, svc)

	got, err := svc.Authenticate(ctx, "john.doe@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, *john, *got)

	_, wrongPassword := svc.Authenticate(ctx, "john.doe@example.com", "wrong-password")
	_, unknownEmail := svc.Authenticate(ctx, "nobody@example.com", "password123")

	require.Error(t, wrongPassword)
	require.Error(t, unknownEmail)
	assert.ErrorIs(t, wrongPassword, domain.ErrUnauthorized)
	assert.ErrorIs(t, unknownEmail, domain.ErrUnauthorized)
	assert.Equal(t, domain.MsgInvalidCredentials, domain.MessageOf(wrongPassword))
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

type failingHasher struct{}

func (failingHasher) Hash(string) (string, error) {
	return "", errors.New("entropy source unavailable")
}

// recordingVerifier delegates to bcrypt and remembers which hashes it saw.
type recordingVerifier struct {
	mu     sync.Mutex
	hashes []string
}

func (v *recordingVerifier) Compare(hashedPassword, password string) error {
	v.mu.Lock()
	v.hashes = append(v.hashes, hashedPassword)
	v.mu.Unlock()
	return auth.NewBcryptHasher(bcrypt.MinCost).Compare(hashedPassword, password)
}

func TestCustomerService_AuthenticateUnknownEmailFallsBackToStaticHash(t *testing.T) {
	t.Parallel()

	db := testdb.New(t)
	verifier := &recordingVerifier{}
	svc := NewCustomerService(database.NewSQLCustomerStore(db, nil), failingHasher{}, verifier, db, nil)

	_, err := svc.Authenticate(context.Background(), "nobody@example.com", "password123")
	require.Error(t, err)
	assert.Equal(t, domain.KindUnauthorized, domain.KindOf(err))
	assert.Equal(t, domain.MsgInvalidCredentials, err.Error())

	require.Len(t, verifier.hashes, 1)
	assert.Equal(t, fallbackDummyHash, verifier.hashes[0])

	cost, err := bcrypt.Cost([]byte(fallbackDummyHash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
	assert.ErrorIs(t,
		auth.NewBcryptHasher(bcrypt.MinCost).Compare(fallbackDummyHash, "q7-unrelated-login-attempt"),
		auth.ErrPasswordMismatch)
}
