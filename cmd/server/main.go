// Package main implements the entry point for the Books API server.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/phrazzld/books-api/internal/config"
	"github.com/phrazzld/books-api/internal/platform/logger"
)

// main parses flags and hands off to run. Exit status 1 reports any failure.
func main() {
	migrateCmd := flag.String("migrate", "", "run a migration command (up, down, status, version) and exit")
	verbose := flag.Bool("verbose", false, "log every migration step")
	flag.Parse()

	if err := run(context.Background(), *migrateCmd, *verbose); err != nil {
		slog.Error("Books API failed", "error", err)
		os.Exit(1)
	}
}

// run loads configuration, sets up logging and the database, and either
// executes a migration command or serves HTTP until shutdown.
func run(ctx context.Context, migrateCmd string, verbose bool) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	l, err := setupAppLogger(cfg)
	if err != nil {
		return err
	}

	if migrateCmd != "" {
		return runMigrations(ctx, cfg, migrateCmd, verbose)
	}

	db, err := setupAppDatabase(ctx, cfg, l)
	if err != nil {
		return err
	}

	if cfg.Database.AutoMigrate {
		if err := applyMigrations(ctx, db, "up", verbose); err != nil {
			_ = db.Close()
			return fmt.Errorf("failed to apply migrations: %w", err)
		}
	}

	app, err := newApplication(cfg, l, db)
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}

// loadAppConfig loads the application configuration from the environment,
// an optional .env file and an optional config.yaml.
func loadAppConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// setupAppLogger installs the JSON logger as the slog default and logs the
// non-secret parts of the configuration.
func setupAppLogger(cfg *config.Config) (*slog.Logger, error) {
	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	l.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"auto_migrate", cfg.Database.AutoMigrate)
	l.Debug("Database configuration", "url", maskDatabaseURL(cfg.Database.URL))
	l.Debug("Auth configuration",
		"jwt_secret_present", cfg.Auth.JWTSecret != "",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes,
		"bcrypt_cost", cfg.Auth.BcryptCost)

	return l, nil
}
