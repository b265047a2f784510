package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Validate ensures the configuration is usable. An empty API key is allowed.
func (c *Config) Validate() error {
	if err := c.validateOMDb(); err != nil {
		return err
	}
	if err := c.validateLookup(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateDisplay(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateOMDb() error {
	parsed, err := url.Parse(c.OMDb.BaseURL)
	if err != nil {
		return fmt.Errorf("omdb.base_url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("omdb.base_url must use http or https, got %q", c.OMDb.BaseURL)
	}
	if parsed.Host == "" {
		return fmt.Errorf("omdb.base_url must include a host, got %q", c.OMDb.BaseURL)
	}
	return nil
}

func (c *Config) validateLookup() error {
	if c.Lookup.TimeoutSeconds <= 0 {
		return errors.New("lookup.timeout_seconds must be positive")
	}
	if c.Lookup.MaxAttempts < 1 || c.Lookup.MaxAttempts > maxAllowedAttempts {
		return fmt.Errorf("lookup.max_attempts must be between 1 and %d", maxAllowedAttempts)
	}
	if c.Lookup.RetryBackoffMS < 0 {
		return errors.New("lookup.retry_backoff_ms must be >= 0")
	}
	return nil
}

func (c *Config) validateLogging() error {
	if _, err := ParseLogLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level %w", err)
	}
	return nil
}

// ParseLogLevel lowercases level and checks it against the supported levels.
func ParseLogLevel(level string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(level))
	switch normalized {
	case "debug", "info", "warn", "error":
		return normalized, nil
	default:
		return "", fmt.Errorf("must be one of debug, info, warn, error; got %q", level)
	}
}

func (c *Config) validateDisplay() error {
	switch c.Display.Color {
	case "auto", "always", "never":
		return nil
	default:
		return fmt.Errorf("display.color must be one of auto, always, never; got %q", c.Display.Color)
	}
}
