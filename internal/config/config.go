// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package config handles application configuration loading from environment
// variables. It provides a centralized Config struct used across the application.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"
)

// DefaultCategorySlug is the category rendered when CATEGORY_SLUG is unset.
const DefaultCategorySlug = "oral-health-tips"

var categorySlugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// reservedSlugs are first path segments already routed or linked elsewhere.
var reservedSlugs = []string{"health", "blog"}

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host string
	Port string
	Env  string // "development", "production", "testing"

	// PostgreSQL connection
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// Valkey (Redis-compatible) for rate-limit counters. Empty host disables it.
	ValkeyHost     string
	ValkeyPort     string
	ValkeyPassword string

	// Site identity used in titles, canonical URLs and feeds.
	SiteName     string
	SiteURL      string
	CategorySlug string

	// Per-IP rate limiting on public routes. Zero requests disables it.
	RateLimitRequests int
	RateLimitWindow   time.Duration

	// TrustProxy makes the server take the client address from forwarding
	// headers. Enable only behind a proxy that overwrites them.
	TrustProxy bool

	LogLevel slog.Level
}

// Load reads configuration from environment variables, applying defaults
// for development where appropriate. Returns an error if critical values
// are missing or malformed.
func Load() (*Config, error) {
	cfg := &Config{
		Host: envOrDefault("APP_HOST", "0.0.0.0"),
		Port: envOrDefault("APP_PORT", "8080"),
		Env:  envOrDefault("APP_ENV", "development"),

		DBHost:     envOrDefault("POSTGRES_HOST", "localhost"),
		DBPort:     envOrDefault("POSTGRES_PORT", "5432"),
		DBUser:     envOrDefault("POSTGRES_USER", "pediatricdir"),
		DBPassword: envOrDefault("POSTGRES_PASSWORD", "changeme"),
		DBName:     envOrDefault("POSTGRES_DB", "pediatricdir"),

		ValkeyHost:     os.Getenv("VALKEY_HOST"),
		ValkeyPort:     envOrDefault("VALKEY_PORT", "6379"),
		ValkeyPassword: os.Getenv("VALKEY_PASSWORD"),

		SiteName:     envOrDefault("SITE_NAME", "Pediatric Dentist Directory"),
		SiteURL:      strings.TrimRight(envOrDefault("SITE_URL", "http://localhost:8080"), "/"),
		CategorySlug: envOrDefault("CATEGORY_SLUG", DefaultCategorySlug),
	}

	var err error
	cfg.RateLimitRequests, err = strconv.Atoi(envOrDefault("RATE_LIMIT_REQUESTS", "120"))
	if err != nil || cfg.RateLimitRequests < 0 {
		return nil, fmt.Errorf("RATE_LIMIT_REQUESTS must be a non-negative integer")
	}
	cfg.RateLimitWindow, err = time.ParseDuration(envOrDefault("RATE_LIMIT_WINDOW", "1m"))
	if err != nil || cfg.RateLimitWindow <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT_WINDOW must be a positive duration")
	}
	cfg.TrustProxy, err = strconv.ParseBool(envOrDefault("TRUST_PROXY", "false"))
	if err != nil {
		return nil, fmt.Errorf("TRUST_PROXY must be a boolean")
	}
	if err := cfg.LogLevel.UnmarshalText([]byte(envOrDefault("LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("LOG_LEVEL: %w", err)
	}

	if !categorySlugPattern.MatchString(cfg.CategorySlug) {
		return nil, fmt.Errorf("CATEGORY_SLUG must be lowercase letters, digits and single hyphens, got %q", cfg.CategorySlug)
	}
	if slices.Contains(reservedSlugs, cfg.CategorySlug) {
		return nil, fmt.Errorf("CATEGORY_SLUG %q is reserved", cfg.CategorySlug)
	}

	if cfg.Env == "production" {
		if cfg.DBPassword == "changeme" {
			return nil, fmt.Errorf("POSTGRES_PASSWORD must be set in production")
		}
	}

	return cfg, nil
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

// ValkeyEnabled reports whether a Valkey host was configured.
func (c *Config) ValkeyEnabled() bool {
	return c.ValkeyHost != ""
}

// envOrDefault reads an environment variable, returning a fallback if unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
