// Package config loads gigfeed configuration from YAML with environment
// variable overrides.
package config

import (
	"fmt"
	"time"
)

// Config holds all configuration for the gigfeed service.
type Config struct {
	Service ServiceConfig `yaml:"service"`
	Scraper ScraperConfig `yaml:"scraper"`
	Logging LoggingConfig `yaml:"logging"`
	CORS    CORSConfig    `yaml:"cors"`
}

// ServiceConfig holds service-level configuration.
type ServiceConfig struct {
	Name              string `yaml:"name"`
	Version           string `yaml:"version"`
	Port              int    `yaml:"port" env:"GIGFEED_PORT"`
	Debug             bool   `yaml:"debug" env:"GIGFEED_DEBUG"`
	MaxResults        int    `yaml:"max_results" env:"GIGFEED_MAX_RESULTS"`
	DefaultResults    int    `yaml:"default_results" env:"GIGFEED_DEFAULT_RESULTS"`
	DefaultLocale     string `yaml:"default_locale"`
	ChartTopLocations int    `yaml:"chart_top_locations"`
}

// ScraperConfig holds configuration for the external scrape collaborator.
type ScraperConfig struct {
	URL     string        `yaml:"url" env:"SCRAPER_URL"`
	Timeout time.Duration `yaml:"timeout" env:"SCRAPER_TIMEOUT"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL"`
	Format string `yaml:"format" env:"LOG_FORMAT"`
}

// CORSConfig holds CORS configuration.
type CORSConfig struct {
	Enabled          bool     `yaml:"enabled"`
	AllowedOrigins   []string `yaml:"allowed_origins" env:"CORS_ORIGINS"`
	AllowedMethods   []string `yaml:"allowed_methods"`
	AllowedHeaders   []string `yaml:"allowed_headers"`
	AllowCredentials bool     `yaml:"allow_credentials"`
	MaxAge           int      `yaml:"max_age"`
}

// Load loads configuration from file and environment variables.
func Load(path string) (*Config, error) {
	cfg, err := loadWithDefaults(path, setDefaults)
	if err != nil {
		return nil, err
	}

	if validateErr := cfg.Validate(); validateErr != nil {
		return nil, fmt.Errorf("invalid configuration: %w", validateErr)
	}

	return cfg, nil
}

// setDefaults applies default values to the config.
func setDefaults(cfg *Config) {
	// Service defaults
	if cfg.Service.Name == "" {
		cfg.Service.Name = "gigfeed"
	}
	if cfg.Service.Version == "" {
		cfg.Service.Version = "1.0.0"
	}
	if cfg.Service.Port == 0 {
		cfg.Service.Port = 8094
	}
	if cfg.Service.MaxResults == 0 {
		cfg.Service.MaxResults = 500
	}
	if cfg.Service.DefaultResults == 0 {
		cfg.Service.DefaultResults = 120
	}
	if cfg.Service.DefaultLocale == "" {
		cfg.Service.DefaultLocale = "en"
	}
	if cfg.Service.ChartTopLocations == 0 {
		cfg.Service.ChartTopLocations = 15
	}

	// Scraper defaults
	if cfg.Scraper.URL == "" {
		cfg.Scraper.URL = "http://localhost:8095"
	}
	if cfg.Scraper.Timeout == 0 {
		cfg.Scraper.Timeout = 30 * time.Second
	}

	// Logging defaults
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}

	// CORS defaults
	if len(cfg.CORS.AllowedOrigins) == 0 {
		cfg.CORS.AllowedOrigins = []string{"*"}
	}
	if len(cfg.CORS.AllowedMethods) == 0 {
		cfg.CORS.AllowedMethods = []string{"GET", "POST", "OPTIONS"}
	}
	if len(cfg.CORS.AllowedHeaders) == 0 {
		cfg.CORS.AllowedHeaders = []string{"Content-Type", "Authorization"}
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Service.Port < 1 || c.Service.Port > 65535 {
		return &ValidationError{Field: "service.port", Message: fmt.Sprintf("invalid port: %d", c.Service.Port)}
	}
	if c.Service.MaxResults < 1 {
		return &ValidationError{Field: "service.max_results", Message: "must be greater than 0"}
	}
	if c.Service.DefaultResults < 1 || c.Service.DefaultResults > c.Service.MaxResults {
		return &ValidationError{
			Field:   "service.default_results",
			Message: fmt.Sprintf("must be between 1 and %d", c.Service.MaxResults),
		}
	}
	if c.Scraper.URL == "" {
		return &ValidationError{Field: "scraper.url", Message: "is required"}
	}
	if err := validateLogLevel(c.Logging.Level); err != nil {
		return err
	}
	if err := validateLogFormat(c.Logging.Format); err != nil {
		return err
	}
	return nil
}

// ValidationError describes a single invalid configuration field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config field %s: %s", e.Field, e.Message)
}

func validateLogLevel(level string) error {
	switch level {
	case "debug", "info", "warn", "error":
		return nil
	}
	return &ValidationError{Field: "logging.level", Message: fmt.Sprintf("unknown level %q", level)}
}

func validateLogFormat(format string) error {
	switch format {
	case "json", "console":
		return nil
	}
	return &ValidationError{Field: "logging.format", Message: fmt.Sprintf("unknown format %q", format)}
}
