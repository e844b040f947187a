// Package config provides configuration management for attachprop with Viper integration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

// File permission constants
const (
	dirPerm  = 0755 // Standard directory permissions (rwxr-xr-x)
	filePerm = 0644 // Standard file permissions (rw-r--r--)
)

// Config represents the complete configuration for attachprop.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging" toml:"logging" json:"logging"`
	// Store tunes the attached-value store.
	Store StoreConfig `mapstructure:"store" toml:"store" json:"store"`
	// CLI holds defaults for attachctl.
	CLI CLIConfig `mapstructure:"cli" toml:"cli" json:"cli"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	// Level is one of trace, debug, info, warn, error.
	Level string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	// Format is json or console.
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=json,enum=console"`
}

// StoreConfig holds attached-value store settings.
type StoreConfig struct {
	// SweepEvery is the number of entry creations between sweeps of collected
	// owners. 0 disables access-time sweeping.
	SweepEvery int `mapstructure:"sweep_every" toml:"sweep_every" json:"sweep_every" jsonschema:"minimum=0"`
}

// CLIConfig holds attachctl defaults.
type CLIConfig struct {
	// DefaultScene is used when --scene is not given.
	DefaultScene string `mapstructure:"default_scene" toml:"default_scene" json:"default_scene"`
	// Accent is the accent color of rendered tables.
	Accent string `mapstructure:"accent" toml:"accent" json:"accent"`
}

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
	file      string
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithConfigFile reads path instead of searching the config directories.
func WithConfigFile(path string) ManagerOption {
	return func(m *Manager) {
		m.file = path
	}
}

// NewManager creates a new configuration manager.
func NewManager(opts ...ManagerOption) (*Manager, error) {
	m := &Manager{
		viper:     viper.New(),
		callbacks: make([]func(*Config), 0),
	}
	for _, opt := range opts {
		opt(m)
	}

	v := m.viper
	v.SetConfigType("toml")
	if m.file != "" {
		v.SetConfigFile(m.file)
	} else {
		v.SetConfigName("config")

		configDir, err := GetConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to determine config directory: %w", err)
		}
		v.AddConfigPath(configDir)
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("ATTACHPROP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "ATTACHPROP_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind ATTACHPROP_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "ATTACHPROP_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind ATTACHPROP_LOG_FORMAT: %w", err)
	}

	return m, nil
}

// Load loads the configuration from file and environment variables.
// A missing config file is not an error; defaults apply.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.reload()
}

// reload must be called with m.mu held.
func (m *Manager) reload() error {
	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("failed to read config file: %w", err)
}

// Get returns the loaded configuration, or defaults before Load.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	return m.config
}

// ConfigFileUsed returns the path of the file that was read, if any.
func (m *Manager) ConfigFileUsed() string {
	return m.viper.ConfigFileUsed()
}

// OnConfigChange registers a callback function to be called when config changes.
func (m *Manager) OnConfigChange(callback func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callbacks = append(m.callbacks, callback)
}

// WriteDefault writes the default configuration to path as TOML.
func WriteDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(DefaultConfig())
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func normalizeConfig(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	if config.Logging.Format == "text" {
		config.Logging.Format = "console"
	}
}
