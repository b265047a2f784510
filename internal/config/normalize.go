package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	c.normalizeOMDb()
	c.normalizeLookup()
	if err := c.normalizeLogging(); err != nil {
		return err
	}
	c.normalizeDisplay()
	return nil
}

func (c *Config) normalizeOMDb() {
	c.OMDb.APIKey = strings.TrimSpace(c.OMDb.APIKey)
	if c.OMDb.APIKey == "" {
		if value, ok := os.LookupEnv("OMDB_API_KEY"); ok {
			c.OMDb.APIKey = strings.TrimSpace(value)
		}
	}
	c.OMDb.BaseURL = strings.TrimRight(strings.TrimSpace(c.OMDb.BaseURL), "/")
	if c.OMDb.BaseURL == "" {
		c.OMDb.BaseURL = defaultOMDbBaseURL
	}
}

func (c *Config) normalizeLookup() {
	if c.Lookup.TimeoutSeconds == 0 {
		c.Lookup.TimeoutSeconds = defaultTimeoutSeconds
	}
	if c.Lookup.MaxAttempts == 0 {
		c.Lookup.MaxAttempts = defaultMaxAttempts
	}
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	var err error
	if c.Logging.Dir, err = expandPath(strings.TrimSpace(c.Logging.Dir)); err != nil {
		return fmt.Errorf("logging.dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeDisplay() {
	c.Display.Color = strings.ToLower(strings.TrimSpace(c.Display.Color))
	if c.Display.Color == "" {
		c.Display.Color = defaultColorMode
	}
}
