// Package config loads process configuration from the environment, once at
// startup. API credentials are passed explicitly into each adapter's
// constructor; nothing in the codebase reads a credential from a literal or
// from the environment at call time.
package config

import (
	"log/slog"
	"os"
)

// Environment variable names.
const (
	EnvTavilyAPIKey    = "TAVILY_API_KEY"
	EnvFirecrawlAPIKey = "FIRECRAWL_API_KEY"
)

// Config holds the credentials for the tool adapters. Either key may be
// empty; the corresponding adapter then reports a structured
// missing_credential error instead of calling its API.
type Config struct {
	TavilyAPIKey    string
	FirecrawlAPIKey string
}

// FromEnv reads the configuration from the process environment. A .env file,
// if present, is applied beforehand via godotenv/autoload in the main
// package.
func FromEnv() Config {
	cfg := Config{
		TavilyAPIKey:    os.Getenv(EnvTavilyAPIKey),
		FirecrawlAPIKey: os.Getenv(EnvFirecrawlAPIKey),
	}

	if cfg.TavilyAPIKey == "" {
		slog.Warn("search credential not configured", "env", EnvTavilyAPIKey)
	}
	if cfg.FirecrawlAPIKey == "" {
		slog.Warn("scrape credential not configured", "env", EnvFirecrawlAPIKey)
	}

	return cfg
}
