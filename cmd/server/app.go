package main

import (
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/library-api/internal/api"
	apiMiddleware "github.com/phrazzld/library-api/internal/api/middleware"
	"github.com/phrazzld/library-api/internal/config"
	"github.com/phrazzld/library-api/internal/platform/database"
	"github.com/phrazzld/library-api/internal/service"
	"github.com/phrazzld/library-api/internal/service/auth"
	"github.com/phrazzld/library-api/internal/store"
)

// application holds the shared dependencies wired together at startup.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sqlx.DB

	// Stores
	customerStore store.CustomerStore
	categoryStore store.CategoryStore
	bookStore     store.BookStore

	// Services
	jwtService      auth.JWTService
	customerService service.CustomerService
	categoryService service.CategoryService
	bookService     service.BookService

	// HTTP
	customerHandler *api.CustomerHandler
	categoryHandler *api.CategoryHandler
	bookHandler     *api.BookHandler
	authMiddleware  *apiMiddleware.AuthMiddleware
	rateLimiter     *apiMiddleware.RateLimiter
}

// newApplication creates a new application instance with all dependencies initialized.
// The database connection must already be open and migrated.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sqlx.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	hasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)

	app.customerStore = database.NewSQLCustomerStore(db, logger)
	app.categoryStore = database.NewSQLCategoryStore(db, logger)
	app.bookStore = database.NewSQLBookStore(db, logger)

	app.customerService = service.NewCustomerService(app.customerStore, hasher, hasher, db, logger)
	app.categoryService = service.NewCategoryService(app.categoryStore, app.bookStore, db, logger)
	app.bookService = service.NewBookService(app.bookStore, app.categoryStore, db, logger)

	app.customerHandler = api.NewCustomerHandler(app.customerService, app.jwtService, logger)
	app.categoryHandler = api.NewCategoryHandler(app.categoryService, logger)
	app.bookHandler = api.NewBookHandler(app.bookService, logger)
	app.authMiddleware = apiMiddleware.NewAuthMiddleware(app.jwtService)
	app.rateLimiter = apiMiddleware.NewRateLimiter(cfg.RateLimit)

	return app, nil
}
