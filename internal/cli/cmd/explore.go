package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/attachprop/internal/cli/model"
	"github.com/bnema/attachprop/internal/cli/styles"
	"github.com/bnema/attachprop/internal/config"
	"github.com/bnema/attachprop/internal/logging"
)

var exploreScene string

var exploreCmd = &cobra.Command{
	Use:   "explore",
	Short: "Browse a scene interactively",
	Long: `Interactive scene browser. The left pane lists the nodes of the scene, the
right pane shows how the selected property resolves from the selected node.
Edits to cli.accent in the config file are applied while the explorer runs.`,
	Args: cobra.NoArgs,
	RunE: runExplore,
}

func init() {
	rootCmd.AddCommand(exploreCmd)

	exploreCmd.Flags().StringVar(&exploreScene, "scene", "", "scene file (default cli.default_scene)")
}

func runExplore(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	s, err := app.LoadScene(exploreScene)
	if err != nil {
		return err
	}

	m := model.NewExplorerModel(app.Ctx(), app.Theme, s)

	p := tea.NewProgram(m, tea.WithAltScreen())
	err = app.WatchConfig(func(cfg *config.Config) {
		p.Send(model.ThemeChangedMsg{Theme: styles.NewTheme(cfg)})
	})
	if err != nil {
		logging.FromContext(app.Ctx()).Warn().Err(err).Msg("config changes will not be applied")
	}

	_, err = p.Run()
	return err
}
