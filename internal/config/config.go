// Package config loads CLI configuration from environment variables
// and an optional .env file, with flag values taking precedence.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds the journal CLI configuration.
type Config struct {
	JournalPath  string // path to the exported journal JSON
	OutputDir    string // directory for generated reports
	CatalogExtra string // optional YAML file extending the instrument catalog
	Timezone     string // IANA name for calendar bucketing, default local
	LogLevel     string
	LogFormat    string
}

// Load reads configuration from env vars (and .env if present).
// Non-empty flag values override the environment.
func Load(flagJournal, flagOutput, flagExtras string) (*Config, error) {
	// A missing .env file is fine.
	_ = godotenv.Load()

	cfg := &Config{
		JournalPath:  envOrDefault("JOURNAL_PATH", ""),
		OutputDir:    envOrDefault("REPORT_OUTPUT_DIR", "./reports"),
		CatalogExtra: envOrDefault("CATALOG_EXTRAS", ""),
		Timezone:     envOrDefault("JOURNAL_TZ", ""),
		LogLevel:     envOrDefault("LOG_LEVEL", "info"),
		LogFormat:    envOrDefault("LOG_FORMAT", "text"),
	}

	if flagJournal != "" {
		cfg.JournalPath = flagJournal
	}
	if flagOutput != "" {
		cfg.OutputDir = flagOutput
	}
	if flagExtras != "" {
		cfg.CatalogExtra = flagExtras
	}

	if cfg.JournalPath == "" {
		return nil, fmt.Errorf("journal path required: set --journal or JOURNAL_PATH")
	}
	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
