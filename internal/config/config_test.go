package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pelletier/go-toml/v2"

	"boxoffice/internal/config"
)

func TestLoadDefaultConfigUsesEnvKey(t *testing.T) {
	t.Setenv("OMDB_API_KEY", " env-key ")
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	if cfg.OMDb.APIKey != "env-key" {
		t.Fatalf("expected OMDb key from env, got %q", cfg.OMDb.APIKey)
	}
	if !cfg.Configured() {
		t.Fatal("expected config to report configured")
	}
	if cfg.OMDb.BaseURL != config.Default().OMDb.BaseURL {
		t.Fatalf("unexpected base url: %q", cfg.OMDb.BaseURL)
	}
	if cfg.Lookup.MaxAttempts != 3 {
		t.Fatalf("expected 3 attempts by default, got %d", cfg.Lookup.MaxAttempts)
	}
	if cfg.RequestTimeout() != 10*time.Second {
		t.Fatalf("unexpected request timeout: %v", cfg.RequestTimeout())
	}
	if cfg.RetryBackoff() != 0 {
		t.Fatalf("expected immediate retries by default, got %v", cfg.RetryBackoff())
	}
}

func TestLoadWithoutKeyIsUnconfiguredNotInvalid(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	t.Setenv("OMDB_API_KEY", "")

	cfg, _, _, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Configured() {
		t.Fatal("expected unconfigured state without api key")
	}
	if got := cfg.MaskedAPIKey(); got != "(not set)" {
		t.Fatalf("unexpected masked key: %q", got)
	}
}

func TestLoadCustomPath(t *testing.T) {
	t.Setenv("OMDB_API_KEY", "")
	configPath := filepath.Join(t.TempDir(), "boxoffice.toml")

	type payload struct {
		OMDb struct {
			APIKey  string `toml:"api_key"`
			BaseURL string `toml:"base_url"`
		} `toml:"omdb"`
		Lookup struct {
			MaxAttempts    int `toml:"max_attempts"`
			RetryBackoffMS int `toml:"retry_backoff_ms"`
		} `toml:"lookup"`
		Logging struct {
			Format string `toml:"format"`
			Level  string `toml:"level"`
		} `toml:"logging"`
	}
	custom := payload{}
	custom.OMDb.APIKey = "abc123"
	custom.OMDb.BaseURL = "https://example.com/omdb/"
	custom.Lookup.MaxAttempts = 5
	custom.Lookup.RetryBackoffMS = 250
	custom.Logging.Format = "JSON"
	custom.Logging.Level = "Debug"

	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != configPath {
		t.Fatalf("unexpected resolution: %q exists=%v", resolved, exists)
	}
	if cfg.OMDb.APIKey != "abc123" {
		t.Fatalf("unexpected api key: %q", cfg.OMDb.APIKey)
	}
	if cfg.OMDb.BaseURL != "https://example.com/omdb" {
		t.Fatalf("expected trailing slash trimmed, got %q", cfg.OMDb.BaseURL)
	}
	if cfg.Lookup.MaxAttempts != 5 {
		t.Fatalf("unexpected max attempts: %d", cfg.Lookup.MaxAttempts)
	}
	if cfg.RetryBackoff() != 250*time.Millisecond {
		t.Fatalf("unexpected backoff: %v", cfg.RetryBackoff())
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("expected normalized logging settings, got %+v", cfg.Logging)
	}
	if got := cfg.MaskedAPIKey(); got != "****23" {
		t.Fatalf("unexpected masked key: %q", got)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "attempts too high", content: "[lookup]\nmax_attempts = 99\n", want: "lookup.max_attempts"},
		{name: "negative timeout", content: "[lookup]\ntimeout_seconds = -1\n", want: "lookup.timeout_seconds"},
		{name: "negative backoff", content: "[lookup]\nretry_backoff_ms = -5\n", want: "lookup.retry_backoff_ms"},
		{name: "bad scheme", content: "[omdb]\nbase_url = \"ftp://example.com\"\n", want: "omdb.base_url"},
		{name: "bad level", content: "[logging]\nlevel = \"loud\"\n", want: "logging.level"},
		{name: "bad color", content: "[display]\ncolor = \"rainbow\"\n", want: "display.color"},
		{name: "unknown field", content: "[omdb]\napi_token = \"x\"\n", want: "parse config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "boxoffice.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			_, _, _, err := config.Load(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error mentioning %q, got %v", tt.want, err)
			}
		})
	}
}

func TestCreateSampleLoads(t *testing.T) {
	t.Setenv("OMDB_API_KEY", "")
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample returned error: %v", err)
	}
	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("sample config should load: %v", err)
	}
	if !exists {
		t.Fatal("expected sample config to exist")
	}
	if cfg.Configured() {
		t.Fatal("expected sample config to ship without an api key")
	}
	if !cfg.Display.ShowPosters || cfg.Display.Color != "auto" {
		t.Fatalf("unexpected display defaults: %+v", cfg.Display)
	}
}

func TestExpandPathTilde(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	got, err := config.ExpandPath("~/logs")
	if err != nil {
		t.Fatalf("ExpandPath returned error: %v", err)
	}
	if got != filepath.Join(home, "logs") {
		t.Fatalf("unexpected expansion: %q", got)
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "debug", want: "debug"},
		{in: " WARN ", want: "warn"},
		{in: "Error", want: "error"},
		{in: "verbos", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		got, err := config.ParseLogLevel(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseLogLevel(%q) expected error", tt.in)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseLogLevel(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
		}
	}
}
