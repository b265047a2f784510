package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// OMDb contains connection settings for the OMDb lookup service.
type OMDb struct {
	APIKey  string `toml:"api_key" json:"api_key"`
	BaseURL string `toml:"base_url" json:"base_url"`
}

// Lookup contains request and retry tuning for the lookup client.
type Lookup struct {
	TimeoutSeconds int `toml:"timeout_seconds" json:"timeout_seconds"`
	MaxAttempts    int `toml:"max_attempts" json:"max_attempts"`
	RetryBackoffMS int `toml:"retry_backoff_ms" json:"retry_backoff_ms"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format" json:"format"`
	Level  string `toml:"level" json:"level"`
	Dir    string `toml:"dir" json:"dir"`
}

// Display contains presentation preferences for the CLI.
type Display struct {
	ShowPosters bool   `toml:"show_posters" json:"show_posters"`
	Color       string `toml:"color" json:"color"`
}

// Config encapsulates all configuration values for BoxOffice.
//
// Configuration sections by subsystem:
//   - OMDb: API key and base URL of the lookup service
//   - Lookup: HTTP timeout and detail retry policy
//   - Logging: log format, level, and optional log directory
//   - Display: table columns and colorization
type Config struct {
	OMDb    OMDb    `toml:"omdb" json:"omdb"`
	Lookup  Lookup  `toml:"lookup" json:"lookup"`
	Logging Logging `toml:"logging" json:"logging"`
	Display Display `toml:"display" json:"display"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath(defaultConfigPath)
}

// Load locates, parses, and validates a configuration file. It returns the
// config, the resolved path, and whether that file existed.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config %s: %w", resolvedPath, err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := expandPath(defaultConfigPath)
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs(projectConfigName)
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// Configured reports whether an API key is available. Lookups without a key
// are silent no-ops.
func (c *Config) Configured() bool {
	return strings.TrimSpace(c.OMDb.APIKey) != ""
}

// RequestTimeout returns the per-request HTTP timeout.
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.Lookup.TimeoutSeconds) * time.Second
}

// RetryBackoff returns the pause between detail lookup attempts.
func (c *Config) RetryBackoff() time.Duration {
	return time.Duration(c.Lookup.RetryBackoffMS) * time.Millisecond
}

// MaskedAPIKey returns the API key with all but the last two characters hidden.
func (c *Config) MaskedAPIKey() string {
	key := strings.TrimSpace(c.OMDb.APIKey)
	if key == "" {
		return "(not set)"
	}
	if len(key) <= 2 {
		return strings.Repeat("*", len(key))
	}
	return strings.Repeat("*", len(key)-2) + key[len(key)-2:]
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
