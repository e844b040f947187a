package config

import "github.com/bnema/attachprop/pkg/attached"

// Default configuration constants
const (
	defaultLogLevel  = "info"
	defaultLogFormat = "console"
	defaultAccent    = "#4ade80"
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Store: StoreConfig{
			SweepEvery: attached.DefaultSweepEvery,
		},
		CLI: CLIConfig{
			Accent: defaultAccent,
		},
	}
}

func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("store.sweep_every", defaults.Store.SweepEvery)
	m.viper.SetDefault("cli.default_scene", defaults.CLI.DefaultScene)
	m.viper.SetDefault("cli.accent", defaults.CLI.Accent)
}
