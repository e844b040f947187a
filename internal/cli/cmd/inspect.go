package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/spf13/cobra"

	"github.com/bnema/attachprop/internal/cli/styles"
	"github.com/bnema/attachprop/internal/scene"
)

var (
	inspectScene string
	inspectJSON  bool
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "List every node of a scene with its properties",
	Long: `List every node of a scene in tree order with the properties set on it and
the values it inherits from its ancestors. Inherited values carry the number
of steps to the node that supplied them.`,
	Args: cobra.NoArgs,
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().StringVar(&inspectScene, "scene", "", "scene file (default cli.default_scene)")
	inspectCmd.Flags().BoolVar(&inspectJSON, "json", false, "output as JSON")
}

// inspectNode is the JSON form of one scene node.
type inspectNode struct {
	Name      string         `json:"name"`
	Kind      string         `json:"kind"`
	Parent    string         `json:"parent,omitempty"`
	Explicit  map[string]any `json:"explicit"`
	Inherited map[string]any `json:"inherited"`
}

func runInspect(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	s, err := app.LoadScene(inspectScene)
	if err != nil {
		return err
	}

	nodes := s.Nodes()
	out := cmd.OutOrStdout()

	if inspectJSON {
		records := make([]inspectNode, 0, len(nodes))
		for _, info := range nodes {
			rec, err := toInspectNode(s, info)
			if err != nil {
				return err
			}
			records = append(records, rec)
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}

	rows := make([]table.Row, 0, len(nodes))
	for _, info := range nodes {
		resolved, err := s.Inherited(info.Name)
		if err != nil {
			return err
		}
		rows = append(rows, styles.InspectRow(info, resolved))
	}

	fmt.Fprintln(out, app.Theme.Title.Render(fmt.Sprintf("%d nodes, %d properties", len(nodes), len(s.PropertyNames()))))
	fmt.Fprintln(out, styles.RenderTable(app.Theme, styles.InspectColumns(), rows))
	return nil
}

func toInspectNode(s *scene.Scene, info scene.NodeInfo) (inspectNode, error) {
	resolved, err := s.Inherited(info.Name)
	if err != nil {
		return inspectNode{}, err
	}

	rec := inspectNode{
		Name:      info.Name,
		Kind:      info.Kind.String(),
		Parent:    info.Parent,
		Explicit:  info.Explicit,
		Inherited: make(map[string]any),
	}
	for name, r := range resolved {
		if r.Depth > 0 {
			rec.Inherited[name] = r.Value
		}
	}
	return rec, nil
}
