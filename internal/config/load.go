package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every configuration environment variable,
// e.g. BOOKS_SERVER_PORT or BOOKS_AUTH_JWT_SECRET.
const EnvPrefix = "BOOKS"

// DefaultTokenLifetimeMinutes is the session token lifetime: 30 days.
const DefaultTokenLifetimeMinutes = 30 * 24 * 60

// envBindings lists every configuration key together with any unprefixed
// variable names that are accepted as well.
var envBindings = map[string][]string{
	"server.port":                 {"PORT"},
	"server.log_level":            nil,
	"server.cors_allowed_origins": nil,
	"database.url":                {"DATABASE_URL"},
	"database.auto_migrate":       nil,
	"auth.jwt_secret":             {"JWT_SECRET"},
	"auth.token_lifetime_minutes": nil,
	"auth.bcrypt_cost":            nil,
}

// Load configuration from environment variables and optionally config files.
// Environment variables take precedence over values from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}

	v := viper.New()

	v.SetDefault("server.port", 3000)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.cors_allowed_origins", []string{"*"})
	v.SetDefault("database.auto_migrate", true)
	v.SetDefault("auth.token_lifetime_minutes", DefaultTokenLifetimeMinutes)
	v.SetDefault("auth.bcrypt_cost", 10)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, legacy := range envBindings {
		names := append([]string{envName(key)}, legacy...)
		if err := v.BindEnv(append([]string{key}, names...)...); err != nil {
			return nil, fmt.Errorf("failed to bind environment variable for %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// envName returns the prefixed environment variable name for a config key.
func envName(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// loadDotEnv populates the process environment from path when it exists.
// Variables already set in the environment are left untouched.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}
