package config

const (
	defaultConfigPath     = "~/.config/boxoffice/config.toml"
	projectConfigName     = "boxoffice.toml"
	defaultOMDbBaseURL    = "https://www.omdbapi.com"
	defaultTimeoutSeconds = 10
	defaultMaxAttempts    = 3
	maxAllowedAttempts    = 10
	defaultLogFormat      = "console"
	defaultLogLevel       = "warn"
	defaultColorMode      = "auto"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		OMDb: OMDb{
			BaseURL: defaultOMDbBaseURL,
		},
		Lookup: Lookup{
			TimeoutSeconds: defaultTimeoutSeconds,
			MaxAttempts:    defaultMaxAttempts,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Display: Display{
			ShowPosters: true,
			Color:       defaultColorMode,
		},
	}
}
