package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	apiMiddleware "github.com/phrazzld/library-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	// Forwarded headers are client-controlled unless a proxy rewrites them.
	if app.config.Server.TrustProxyHeaders {
		r.Use(middleware.RealIP)
	}
	r.Use(apiMiddleware.TraceMiddleware(app.logger))
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/", app.writeText("Library Management API"))
	r.Get("/health", app.writeText("OK"))

	// Registration and login are public and rate limited per client.
	r.With(app.rateLimiter.Middleware).Post("/login", app.customerHandler.Login)

	r.Route("/customers", func(r chi.Router) {
		r.With(app.rateLimiter.Middleware).Post("/", app.customerHandler.Create)
		r.Group(func(r chi.Router) {
			r.Use(app.authMiddleware.Authenticate)
			r.Get("/", app.customerHandler.List)
			r.Get("/{id}", app.customerHandler.Get)
			r.Put("/{id}", app.customerHandler.Update)
			r.Delete("/{id}", app.customerHandler.Delete)
		})
	})

	r.Route("/categories", func(r chi.Router) {
		r.Get("/", app.categoryHandler.List)
		r.Get("/{id}", app.categoryHandler.Get)
		r.Group(func(r chi.Router) {
			r.Use(app.authMiddleware.Authenticate)
			r.Post("/", app.categoryHandler.Create)
			r.Put("/{id}", app.categoryHandler.Update)
			r.Delete("/{id}", app.categoryHandler.Delete)
		})
	})

	r.Route("/books", func(r chi.Router) {
		r.Get("/", app.bookHandler.List)
		r.Get("/{id}", app.bookHandler.Get)
		r.Group(func(r chi.Router) {
			r.Use(app.authMiddleware.Authenticate)
			r.Post("/", app.bookHandler.Create)
			r.Put("/{id}", app.bookHandler.Update)
			r.Delete("/{id}", app.bookHandler.Delete)
		})
	})

	return r
}

func (app *application) writeText(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(body)); err != nil {
			app.logger.Error("Failed to write response", "error", err, "path", r.URL.Path)
		}
	}
}
