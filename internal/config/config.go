// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package config handles application configuration loading from environment
// variables. It provides a centralized Config struct used across the application.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host string `env:"APP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"APP_PORT" envDefault:"8080"`
	Env  string `env:"APP_ENV" envDefault:"development"` // "development", "production", "testing"

	// PostgreSQL connection
	DBHost     string `env:"POSTGRES_HOST" envDefault:"localhost"`
	DBPort     string `env:"POSTGRES_PORT" envDefault:"5432"`
	DBUser     string `env:"POSTGRES_USER" envDefault:"catalog"`
	DBPassword string `env:"POSTGRES_PASSWORD" envDefault:"changeme"`
	DBName     string `env:"POSTGRES_DB" envDefault:"catalog"`

	// Valkey (Redis-compatible response cache).
	CacheEnabled   bool          `env:"CACHE_ENABLED" envDefault:"true"`
	ValkeyHost     string        `env:"VALKEY_HOST" envDefault:"localhost"`
	ValkeyPort     string        `env:"VALKEY_PORT" envDefault:"6379"`
	ValkeyPassword string        `env:"VALKEY_PASSWORD"`
	CacheTTL       time.Duration `env:"CACHE_TTL" envDefault:"5m"`

	// S3-compatible object storage for product images.
	S3Endpoint  string `env:"S3_ENDPOINT"`
	S3Region    string `env:"S3_REGION" envDefault:"fsn1"`
	S3AccessKey string `env:"S3_ACCESS_KEY"`
	S3SecretKey string `env:"S3_SECRET_KEY"`
	S3Bucket    string `env:"S3_BUCKET" envDefault:"catalog-media"`
	S3PublicURL string `env:"S3_PUBLIC_URL"`

	// Languages
	LanguageCode     string   `env:"LANGUAGE_CODE" envDefault:"en"`
	Languages        []string `env:"LANGUAGES" envDefault:"en,de,fr" envSeparator:","`
	FallbackLanguage string   `env:"FALLBACK_LANGUAGE" envDefault:"en"`

	// HTTP surface
	PageSize           int      `env:"PAGE_SIZE" envDefault:"20"`
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
	RateLimit          int      `env:"RATE_LIMIT" envDefault:"300"`    // requests per minute per IP
	TrustProxy         bool     `env:"TRUST_PROXY" envDefault:"false"` // honour X-Forwarded-For
}

// Load reads configuration from environment variables, applying defaults
// for development where appropriate. A .env file in the working directory
// is loaded first if present. Returns an error if critical values are
// missing in production mode.
func Load() (*Config, error) {
	// The .env file is optional.
	_ = godotenv.Load()
	return load(env.ToMap(os.Environ()))
}

func load(environ map[string]string) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Environment: environ}); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	if cfg.Env == "production" {
		if cfg.DBPassword == "changeme" {
			return nil, fmt.Errorf("POSTGRES_PASSWORD must be set in production")
		}
	}

	if err := cfg.validateLanguages(); err != nil {
		return nil, err
	}
	if cfg.PageSize < 1 {
		return nil, fmt.Errorf("PAGE_SIZE must be positive, got %d", cfg.PageSize)
	}

	return cfg, nil
}

// validateLanguages checks that every configured code is a well-formed
// BCP 47 tag and that the default and fallback are supported.
func (c *Config) validateLanguages() error {
	if len(c.Languages) == 0 {
		return errors.New("LANGUAGES must list at least one language")
	}
	for _, code := range c.Languages {
		if _, err := language.Parse(code); err != nil {
			return fmt.Errorf("LANGUAGES: invalid code %q: %w", code, err)
		}
	}
	if !slices.Contains(c.Languages, c.LanguageCode) {
		return fmt.Errorf("LANGUAGE_CODE %q is not in LANGUAGES %v", c.LanguageCode, c.Languages)
	}
	if c.FallbackLanguage != "" && !slices.Contains(c.Languages, c.FallbackLanguage) {
		return fmt.Errorf("FALLBACK_LANGUAGE %q is not in LANGUAGES %v", c.FallbackLanguage, c.Languages)
	}
	return nil
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName,
	)
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// HasStorage reports whether S3 credentials are configured.
func (c *Config) HasStorage() bool {
	return c.S3Endpoint != "" && c.S3AccessKey != "" && c.S3SecretKey != ""
}
