// Package cmd provides Cobra CLI commands for attachctl.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/attachprop/internal/cli"
)

var (
	app        *cli.App
	configFile string
	logLevel   string
	rootCmd    = &cobra.Command{
		Use:   "attachctl",
		Short: "Inspect attached properties and value inheritance",
		Long: `attachctl loads scene descriptions into an in-memory visual tree and shows
how attached property values resolve through it.

A scene is a TOML file describing an application, its windows and their
widget trees, with properties set on any node. Inheriting reads walk from a
widget to its container, then to its window, then to the application.

Use 'attachctl resolve' to trace one property, 'attachctl inspect' to list a
whole scene, and 'attachctl explore' to browse it interactively.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "schema", "init":
				return nil
			}

			var err error
			app, err = cli.NewApp(cli.Options{
				ConfigFile: configFile,
				LogLevel:   logLevel,
				LogOutput:  cmd.ErrOrStderr(),
			})
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			return nil
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default $XDG_CONFIG_HOME/attachprop/config.toml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level override (trace, debug, info, warn, error)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

func requireApp() (*cli.App, error) {
	a := GetApp()
	if a == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	return a, nil
}

// SetVersion sets the build information shown by --version.
func SetVersion(version, commit, buildDate string) {
	rootCmd.Version = fmt.Sprintf("%s (commit %s, built %s)", version, commit, buildDate)
}
