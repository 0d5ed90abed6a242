package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/books-api/internal/config"
	"github.com/phrazzld/books-api/internal/platform/postgres"
	"github.com/phrazzld/books-api/internal/service"
	"github.com/phrazzld/books-api/internal/service/auth"
	"github.com/phrazzld/books-api/internal/store"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger
	db     *sql.DB

	// Stores
	userStore store.UserStore
	bookStore store.BookStore

	// Service interfaces
	jwtService     auth.JWTService
	passwordHasher auth.PasswordHasher
	userService    service.UserService
	bookService    service.BookService
}

// newApplication creates a new application instance backed by Postgres.
// The database connection must already be established.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app, err := buildApplication(
		cfg,
		logger,
		postgres.NewPostgresUserStore(db, logger),
		postgres.NewPostgresBookStore(db, logger),
	)
	if err != nil {
		return nil, err
	}
	app.db = db
	return app, nil
}

// buildApplication wires services over the given stores.
func buildApplication(
	cfg *config.Config,
	logger *slog.Logger,
	userStore store.UserStore,
	bookStore store.BookStore,
) (*application, error) {
	app := &application{
		config:    cfg,
		logger:    logger,
		userStore: userStore,
		bookStore: bookStore,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	hasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)
	app.passwordHasher = hasher
	logger.Debug("Password hasher initialized", "bcrypt_cost", hasher.Cost())

	app.userService = service.NewUserService(userStore, app.passwordHasher, app.jwtService, logger)
	app.bookService = service.NewBookService(bookStore, logger)

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
