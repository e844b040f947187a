package styles

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/attachprop/internal/scene"
	"github.com/bnema/attachprop/pkg/attached"
)

const maxValueWidth = 40

// NewStyledTable creates a themed table model.
func NewStyledTable(theme *Theme, columns []table.Column, rows []table.Row, width, height int) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
		table.WithWidth(width),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Foreground(theme.Accent).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(theme.Text).
		Background(theme.SurfaceVariant).
		Bold(true)
	s.Cell = s.Cell.
		Foreground(theme.Text)

	t.SetStyles(s)
	return t
}

// RenderTable renders rows as a static table sized to its content.
func RenderTable(theme *Theme, columns []table.Column, rows []table.Row) string {
	width := 0
	for _, c := range columns {
		width += c.Width + 2
	}
	t := NewStyledTable(theme, columns, rows, width, len(rows)+1)
	t.Blur()
	return t.View()
}

// TraceColumns returns columns for a resolution chain.
func TraceColumns() []table.Column {
	return []table.Column{
		{Title: "Depth", Width: 5},
		{Title: "Node", Width: 20},
		{Title: "Kind", Width: 11},
		{Title: "Value", Width: maxValueWidth},
	}
}

// TraceRows converts the steps of a trace to table rows.
func TraceRows(tr scene.Trace) []table.Row {
	rows := make([]table.Row, 0, len(tr.Steps))
	for _, step := range tr.Steps {
		value := "-"
		if step.Has {
			value = FormatValue(step.Value)
		}
		rows = append(rows, table.Row{fmt.Sprint(step.Depth), step.Name, step.Kind.String(), value})
	}
	return rows
}

// InspectColumns returns columns for the node listing.
func InspectColumns() []table.Column {
	return []table.Column{
		{Title: "Node", Width: 24},
		{Title: "Kind", Width: 11},
		{Title: "Explicit", Width: maxValueWidth},
		{Title: "Inherited", Width: maxValueWidth},
	}
}

// InspectRow converts a node and its resolved values to a table row. The node
// name is indented by its tree level; values found on the node itself are
// listed as explicit only.
func InspectRow(info scene.NodeInfo, resolved map[string]attached.Resolution) table.Row {
	var explicit, inherited []string
	for _, name := range sortedNames(info.Explicit) {
		explicit = append(explicit, name+"="+FormatValue(info.Explicit[name]))
	}
	for _, name := range sortedNames(resolved) {
		r := resolved[name]
		if r.Depth == 0 {
			continue
		}
		inherited = append(inherited, fmt.Sprintf("%s=%s (+%d)", name, FormatValue(r.Value), r.Depth))
	}

	return table.Row{
		strings.Repeat("  ", info.Level) + info.Name,
		info.Kind.String(),
		truncate(strings.Join(explicit, " "), maxValueWidth),
		truncate(strings.Join(inherited, " "), maxValueWidth),
	}
}

// FormatValue renders a property value for display.
func FormatValue(v any) string {
	switch v := v.(type) {
	case nil:
		return "<nil>"
	case string:
		return truncate(fmt.Sprintf("%q", v), maxValueWidth)
	default:
		return truncate(fmt.Sprint(v), maxValueWidth)
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func sortedNames[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
