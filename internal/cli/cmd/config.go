package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/attachprop/internal/config"
)

var configInitForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or initialize the configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init [PATH]",
	Short: "Write the default configuration file",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigInit,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)

	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "overwrite an existing file")
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	cfg := app.Config
	fmt.Fprintln(out, app.Theme.Title.Render("configuration"))
	fmt.Fprintf(out, "  logging.level       %s\n", cfg.Logging.Level)
	fmt.Fprintf(out, "  logging.format      %s\n", cfg.Logging.Format)
	fmt.Fprintf(out, "  store.sweep_every   %d\n", cfg.Store.SweepEvery)
	fmt.Fprintf(out, "  cli.default_scene   %s\n", cfg.CLI.DefaultScene)
	fmt.Fprintf(out, "  cli.accent          %s\n", cfg.CLI.Accent)
	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := configFile
	if len(args) == 1 {
		path = args[0]
	}
	if path == "" {
		var err error
		if path, err = config.GetConfigFile(); err != nil {
			return fmt.Errorf("resolve config file: %w", err)
		}
	}

	if _, err := os.Stat(path); err == nil && !configInitForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat config file: %w", err)
	}

	if err := config.WriteDefault(path); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
	return nil
}
