package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"boxoffice/internal/config"
	"boxoffice/internal/logging"
	"boxoffice/internal/omdb"
	"boxoffice/internal/services"
)

type commandContext struct {
	configFlag   *string
	logLevelFlag *string
	verboseFlag  *bool

	configOnce sync.Once
	config     *config.Config
	configErr  error
	configPath string
	configSeen bool
}

func newCommandContext(configFlag, logLevelFlag *string, verboseFlag *bool) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		logLevelFlag: logLevelFlag,
		verboseFlag:  verboseFlag,
	}
}

func (c *commandContext) configFlagValue() string {
	if c.configFlag == nil {
		return ""
	}
	return strings.TrimSpace(*c.configFlag)
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, path, exists, err := config.Load(c.configFlagValue())
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = path
		c.configSeen = exists
	})
	return c.config, c.configErr
}

// logLevelOverride returns the level requested on the command line, or ""
// when the config file decides. --verbose wins over --log-level.
func (c *commandContext) logLevelOverride() (string, error) {
	if c.verboseFlag != nil && *c.verboseFlag {
		return "debug", nil
	}
	if c.logLevelFlag == nil || strings.TrimSpace(*c.logLevelFlag) == "" {
		return "", nil
	}
	level, err := config.ParseLogLevel(*c.logLevelFlag)
	if err != nil {
		return "", fmt.Errorf("%w: --log-level %w", services.ErrValidation, err)
	}
	return level, nil
}

func (c *commandContext) newLogger(cfg *config.Config) (*slog.Logger, error) {
	override, err := c.logLevelOverride()
	if err != nil {
		return nil, err
	}
	effective := *cfg
	if override != "" {
		effective.Logging.Level = override
	}
	logger, err := logging.NewFromConfig(&effective)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return logger, nil
}

func (c *commandContext) newLookupClient(cfg *config.Config, logger *slog.Logger) (*omdb.Client, error) {
	return omdb.New(
		cfg.OMDb.BaseURL,
		omdb.WithHTTPClient(newHTTPClient(cfg.RequestTimeout())),
		omdb.WithLogger(logger),
		omdb.WithMaxAttempts(cfg.Lookup.MaxAttempts),
		omdb.WithRetryBackoff(cfg.RetryBackoff()),
	)
}

// lookupSession bundles what a lookup command needs for one invocation.
type lookupSession struct {
	ctx    context.Context
	cfg    *config.Config
	logger *slog.Logger
	client omdb.Lookup
}

func (c *commandContext) openLookupSession(cmd *cobra.Command) (*lookupSession, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := c.newLogger(cfg)
	if err != nil {
		return nil, err
	}
	client, err := c.newLookupClient(cfg, logger)
	if err != nil {
		return nil, err
	}
	ctx := commandScope(cmd)
	logging.WithContext(ctx, logger).Debug("lookup session ready",
		logging.String("base_url", cfg.OMDb.BaseURL),
		logging.Bool("api_key_set", cfg.Configured()),
		logging.Int("max_attempts", cfg.Lookup.MaxAttempts),
	)
	return &lookupSession{ctx: ctx, cfg: cfg, logger: logger, client: client}, nil
}

// commandScope stamps the command path and a fresh correlation id onto the
// command's context.
func commandScope(cmd *cobra.Command) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = services.WithCommand(ctx, cmd.CommandPath())
	return services.WithRequestID(ctx, uuid.NewString())
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
