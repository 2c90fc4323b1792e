package api

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	jsoniter "github.com/json-iterator/go"
	"github.com/phrazzld/library-api/internal/api/shared"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// resourceRouter mounts CRUD handlers under prefix the way the server does,
// without authentication.
func resourceRouter(prefix string, create, list, get, update, remove http.HandlerFunc) chi.Router {
	r := chi.NewRouter()
	mountResource(r, prefix, create, list, get, update, remove)
	return r
}

func mountResource(r chi.Router, prefix string, create, list, get, update, remove http.HandlerFunc) {
	r.Route(prefix, func(r chi.Router) {
		r.Get("/", list)
		r.Post("/", create)
		r.Get("/{id}", get)
		r.Put("/{id}", update)
		r.Delete("/{id}", remove)
	})
}

func serve(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) shared.ErrorResponse {
	t.Helper()
	var body shared.ErrorResponse
	require.NoError(t, jsoniter.Unmarshal(rr.Body.Bytes(), &body))
	return body
}
