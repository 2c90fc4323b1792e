// Package mocks provides centralized mock implementations for testing.
//
// The service and JWT mocks expose a function field per interface method,
// plus canned return values used when the function field is nil, so handler
// and middleware tests can stub exactly the calls they care about.
//
// Usage:
//
// Import the mocks package in your test file and create the required mock:
//
//	import "github.com/phrazzld/library-api/internal/mocks"
//
//	func TestSomething(t *testing.T) {
//	    mockJWTService := &mocks.MockJWTService{
//	        ValidateTokenFn: func(ctx context.Context, token string) (*auth.Claims, error) {
//	            return &auth.Claims{CustomerID: 1}, nil
//	        },
//	    }
//
//	    // Use the mock in your test...
//	}
package mocks
