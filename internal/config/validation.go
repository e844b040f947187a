package config

import (
	"fmt"
	"regexp"
	"strings"
)

var hexColor = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// validateConfig validates the configuration values.
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateStore(config)...)
	validationErrors = append(validationErrors, validateCLI(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string

	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level must be one of trace, debug, info, warn, error (got %q)", config.Logging.Level))
	}

	switch config.Logging.Format {
	case "json", "console":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.format must be json or console (got %q)", config.Logging.Format))
	}

	return validationErrors
}

func validateStore(config *Config) []string {
	if config.Store.SweepEvery < 0 {
		return []string{"store.sweep_every must be non-negative"}
	}
	return nil
}

func validateCLI(config *Config) []string {
	if config.CLI.Accent != "" && !hexColor.MatchString(config.CLI.Accent) {
		return []string{fmt.Sprintf("cli.accent must be a hex color (got %q)", config.CLI.Accent)}
	}
	return nil
}
