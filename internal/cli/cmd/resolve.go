package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/attachprop/internal/cli/styles"
	"github.com/bnema/attachprop/internal/scene"
)

var (
	resolveScene string
	resolveJSON  bool
)

var resolveCmd = &cobra.Command{
	Use:   "resolve NODE PROPERTY",
	Short: "Trace an inheriting read through a scene",
	Long: `Resolve PROPERTY on NODE the way an inheriting read does and print every
node visited on the way, ending at the node that supplied the value.

Examples:
  attachctl resolve --scene library.toml item Theme
  attachctl resolve --scene library.toml --json settings Locale`,
	Args: cobra.ExactArgs(2),
	RunE: runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)

	resolveCmd.Flags().StringVar(&resolveScene, "scene", "", "scene file (default cli.default_scene)")
	resolveCmd.Flags().BoolVar(&resolveJSON, "json", false, "output as JSON")
}

// resolveStep is the JSON form of scene.Step.
type resolveStep struct {
	Depth int    `json:"depth"`
	Node  string `json:"node"`
	Kind  string `json:"kind"`
	Has   bool   `json:"has"`
	Value any    `json:"value,omitempty"`
}

// resolveOutput is the JSON form of a trace.
type resolveOutput struct {
	Node     string        `json:"node"`
	Property string        `json:"property"`
	Found    bool          `json:"found"`
	Value    any           `json:"value,omitempty"`
	Source   string        `json:"source,omitempty"`
	Depth    int           `json:"depth"`
	Steps    []resolveStep `json:"steps"`
}

func runResolve(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	s, err := app.LoadScene(resolveScene)
	if err != nil {
		return err
	}

	tr, err := s.Trace(args[0], args[1])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if resolveJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(toResolveOutput(tr))
	}

	theme := app.Theme
	fmt.Fprintln(out, theme.Title.Render(fmt.Sprintf("%s on %s", tr.Property, tr.Node)))
	fmt.Fprintln(out, styles.RenderTable(theme, styles.TraceColumns(), styles.TraceRows(tr)))
	if tr.Resolution.Found {
		fmt.Fprintln(out, theme.SuccessStyle.Render(fmt.Sprintf("%s from %s (depth %d)",
			styles.FormatValue(tr.Resolution.Value), tr.SourceName(), tr.Resolution.Depth)))
	} else {
		fmt.Fprintln(out, theme.WarningStyle.Render("not set on the chain"))
	}
	return nil
}

func toResolveOutput(tr scene.Trace) resolveOutput {
	o := resolveOutput{
		Node:     tr.Node,
		Property: tr.Property,
		Found:    tr.Resolution.Found,
		Value:    tr.Resolution.Value,
		Source:   tr.SourceName(),
		Depth:    tr.Resolution.Depth,
		Steps:    make([]resolveStep, 0, len(tr.Steps)),
	}
	for _, step := range tr.Steps {
		o.Steps = append(o.Steps, resolveStep{
			Depth: step.Depth,
			Node:  step.Name,
			Kind:  step.Kind.String(),
			Has:   step.Has,
			Value: step.Value,
		})
	}
	return o
}
