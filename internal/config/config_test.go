package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Service.Name != "gigfeed" {
		t.Errorf("Service.Name = %q, want %q", cfg.Service.Name, "gigfeed")
	}
	if cfg.Service.Port != 8094 {
		t.Errorf("Service.Port = %d, want 8094", cfg.Service.Port)
	}
	if cfg.Service.MaxResults != 500 {
		t.Errorf("Service.MaxResults = %d, want 500", cfg.Service.MaxResults)
	}
	if cfg.Service.DefaultResults != 120 {
		t.Errorf("Service.DefaultResults = %d, want 120", cfg.Service.DefaultResults)
	}
	if cfg.Service.DefaultLocale != "en" {
		t.Errorf("Service.DefaultLocale = %q, want %q", cfg.Service.DefaultLocale, "en")
	}
	if cfg.Scraper.URL != "http://localhost:8095" {
		t.Errorf("Scraper.URL = %q", cfg.Scraper.URL)
	}
	if cfg.Scraper.Timeout != 30*time.Second {
		t.Errorf("Scraper.Timeout = %v, want 30s", cfg.Scraper.Timeout)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "json" {
		t.Errorf("Logging = %+v, want info/json", cfg.Logging)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
service:
  port: 9000
  default_results: 60
scraper:
  url: http://scraper:8095
  timeout: 5s
logging:
  level: debug
  format: console
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Service.Port != 9000 {
		t.Errorf("Service.Port = %d, want 9000", cfg.Service.Port)
	}
	if cfg.Service.DefaultResults != 60 {
		t.Errorf("Service.DefaultResults = %d, want 60", cfg.Service.DefaultResults)
	}
	if cfg.Scraper.Timeout != 5*time.Second {
		t.Errorf("Scraper.Timeout = %v, want 5s", cfg.Scraper.Timeout)
	}
	if cfg.Logging.Format != "console" {
		t.Errorf("Logging.Format = %q, want console", cfg.Logging.Format)
	}
	// Unset fields still get defaults.
	if cfg.Service.MaxResults != 500 {
		t.Errorf("Service.MaxResults = %d, want default 500", cfg.Service.MaxResults)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("GIGFEED_PORT", "7070")
	t.Setenv("GIGFEED_DEBUG", "yes")
	t.Setenv("SCRAPER_URL", "http://override:9999")
	t.Setenv("SCRAPER_TIMEOUT", "90s")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Service.Port != 7070 {
		t.Errorf("Service.Port = %d, want 7070", cfg.Service.Port)
	}
	if !cfg.Service.Debug {
		t.Error("Service.Debug = false, want true")
	}
	if cfg.Scraper.URL != "http://override:9999" {
		t.Errorf("Scraper.URL = %q", cfg.Scraper.URL)
	}
	if cfg.Scraper.Timeout != 90*time.Second {
		t.Errorf("Scraper.Timeout = %v, want 90s", cfg.Scraper.Timeout)
	}
	want := []string{"https://a.example", "https://b.example"}
	if len(cfg.CORS.AllowedOrigins) != 2 || cfg.CORS.AllowedOrigins[0] != want[0] || cfg.CORS.AllowedOrigins[1] != want[1] {
		t.Errorf("CORS.AllowedOrigins = %v, want %v", cfg.CORS.AllowedOrigins, want)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantField string
	}{
		{
			name:      "port out of range",
			mutate:    func(c *Config) { c.Service.Port = 70000 },
			wantField: "service.port",
		},
		{
			name:      "default results above max",
			mutate:    func(c *Config) { c.Service.DefaultResults = 1000 },
			wantField: "service.default_results",
		},
		{
			name:      "missing scraper url",
			mutate:    func(c *Config) { c.Scraper.URL = "" },
			wantField: "scraper.url",
		},
		{
			name:      "bad log level",
			mutate:    func(c *Config) { c.Logging.Level = "loud" },
			wantField: "logging.level",
		},
		{
			name:      "bad log format",
			mutate:    func(c *Config) { c.Logging.Format = "xml" },
			wantField: "logging.format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cfg Config
			setDefaults(&cfg)
			tt.mutate(&cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("Validate() error type = %T, want *ValidationError", err)
			}
			if vErr.Field != tt.wantField {
				t.Errorf("ValidationError.Field = %q, want %q", vErr.Field, tt.wantField)
			}
		})
	}
}

func TestGetConfigPath(t *testing.T) {
	if got := GetConfigPath("config.yml"); got != "config.yml" {
		t.Errorf("GetConfigPath() = %q, want default", got)
	}
	t.Setenv("CONFIG_PATH", "/etc/gigfeed/config.yml")
	if got := GetConfigPath("config.yml"); got != "/etc/gigfeed/config.yml" {
		t.Errorf("GetConfigPath() = %q, want env value", got)
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}
