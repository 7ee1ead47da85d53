// Package config provides configuration management for the reach tile matcher.
package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// DateRangeExploratory selects the fixed 2020 exploratory window instead of
// the observation range.
const DateRangeExploratory = "exploratory"

// Config holds the complete application configuration loaded from environment variables.
type Config struct {
	Input   InputConfig   `envPrefix:"PAIR_"`
	Catalog CatalogConfig `envPrefix:"CATALOG_"`
	Logging LoggingConfig `envPrefix:"LOG_"`
}

// InputConfig locates the input archives and selects the reach to process.
type InputConfig struct {
	// Root is the directory holding the reaches file, sword/ and swot/.
	Root string `env:"INPUT_ROOT" envDefault:"mnt/data/input"`

	// ReachIndex selects one entry of the reaches file.
	ReachIndex int `env:"REACH_INDEX" envDefault:"0"`

	// DateRangeOverride replaces the observation date range when set:
	// "exploratory" or an explicit "start/end".
	DateRangeOverride string `env:"DATE_RANGE_OVERRIDE" envDefault:""`
}

// CatalogConfig contains STAC catalog client configuration.
type CatalogConfig struct {
	BaseURL      string        `env:"BASE_URL" envDefault:"https://cmr.earthdata.nasa.gov/stac/LPCLOUD"`
	Collections  []string      `env:"COLLECTIONS" envDefault:"HLSL30.v2.0,HLSS30.v2.0"`
	Timeout      time.Duration `env:"TIMEOUT" envDefault:"60s"`
	PageSize     int           `env:"PAGE_SIZE" envDefault:"250"`
	RateInterval time.Duration `env:"RATE_INTERVAL" envDefault:"250ms"`
	CacheSize    int           `env:"CACHE_SIZE" envDefault:"256"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level  string `env:"LEVEL" envDefault:"info"`
	Format string `env:"FORMAT" envDefault:"text"`
}

// Load parses configuration from environment variables, reading a .env file
// in the working directory first if one exists.
// It returns an error if required fields are missing or invalid.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	opts := env.Options{
		RequiredIfNoDef: true,
	}

	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Input.Root) == "" {
		return fmt.Errorf("input root is required")
	}

	if c.Input.ReachIndex < 0 {
		return fmt.Errorf("reach index must be non-negative, got %d", c.Input.ReachIndex)
	}

	if c.Catalog.BaseURL == "" {
		return fmt.Errorf("catalog base URL is required")
	}

	if len(c.Catalog.Collections) == 0 {
		return fmt.Errorf("at least one catalog collection is required")
	}
	for i, coll := range c.Catalog.Collections {
		if strings.TrimSpace(coll) == "" {
			return fmt.Errorf("catalog collection at index %d cannot be empty", i)
		}
	}

	if c.Catalog.Timeout <= 0 {
		return fmt.Errorf("catalog timeout must be positive, got %s", c.Catalog.Timeout)
	}

	if c.Catalog.PageSize < 1 || c.Catalog.PageSize > 2000 {
		return fmt.Errorf("catalog page size must be between 1 and 2000, got %d", c.Catalog.PageSize)
	}

	if c.Catalog.RateInterval < 0 {
		return fmt.Errorf("catalog rate interval must not be negative, got %s", c.Catalog.RateInterval)
	}

	if c.Catalog.CacheSize < 0 {
		return fmt.Errorf("catalog cache size must not be negative, got %d", c.Catalog.CacheSize)
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level %q, must be one of: debug, info, warn, error", c.Logging.Level)
	}

	validLogFormats := map[string]bool{
		"json": true,
		"text": true,
	}
	if !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("invalid log format %q, must be one of: json, text", c.Logging.Format)
	}

	return nil
}

// ReachesPath returns the path of the reaches file under the input root.
func (in InputConfig) ReachesPath(name string) string {
	return filepath.Join(in.Root, name)
}

// SWORDPath returns the path of a hydrography file under the input root.
func (in InputConfig) SWORDPath(name string) string {
	return filepath.Join(in.Root, "sword", name)
}

// SWOTPath returns the observation file path for a reach.
func (in InputConfig) SWOTPath(reachID string) string {
	return filepath.Join(in.Root, "swot", reachID+"_SWOT.nc")
}
