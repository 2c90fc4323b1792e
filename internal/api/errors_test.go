package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/library-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"validation", domain.NewValidationError("Invalid title: required field"), http.StatusBadRequest, "Invalid title: required field"},
		{"unauthorized", domain.NewUnauthorizedError(domain.MsgInvalidCredentials), http.StatusUnauthorized, domain.MsgInvalidCredentials},
		{"not found", domain.NewNotFoundError(domain.MsgBookNotFound), http.StatusNotFound, domain.MsgBookNotFound},
		{"conflict", domain.NewConflictError(domain.MsgEmailExists), http.StatusConflict, domain.MsgEmailExists},
		{
			"wrapped classified",
			fmt.Errorf("handler: %w", domain.NewNotFoundError(domain.MsgCategoryNotFound)),
			http.StatusNotFound,
			domain.MsgCategoryNotFound,
		},
		{"unclassified", errors.New("pq: relation books does not exist"), http.StatusInternalServerError, domain.MsgInternalServerError},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.wantStatus, MapErrorToStatusCode(tc.err))
			assert.Equal(t, tc.wantMsg, GetSafeErrorMessage(tc.err))
		})
	}
}

func TestHandleAPIErrorDoesNotLeakInternals(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/books", nil)
	HandleAPIError(rr, req, errors.New("dial tcp 10.0.0.5:5432: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"error": "internal_error", "message": "Internal server error"}`, rr.Body.String())
}
